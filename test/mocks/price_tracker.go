package mocks

import (
	"context"

	"github.com/minseok-oh/price-tracker/internal/models"
	"github.com/stretchr/testify/mock"
)

// PriceTracker is a mock for server.PriceTracker.
type PriceTracker struct {
	mock.Mock
}

func (m *PriceTracker) SearchProducts(ctx context.Context, keyword string, count int) ([]models.Product, error) {
	args := m.Called(ctx, keyword, count)

	var products []models.Product
	if args.Get(0) != nil {
		products = args.Get(0).([]models.Product)
	}

	return products, args.Error(1)
}

func (m *PriceTracker) ComparePrices(ctx context.Context, keyword string) (*models.Comparison, error) {
	args := m.Called(ctx, keyword)

	var comparison *models.Comparison
	if args.Get(0) != nil {
		comparison = args.Get(0).(*models.Comparison)
	}

	return comparison, args.Error(1)
}

func (m *PriceTracker) SetPriceAlert(ctx context.Context, keyword string, targetPrice int) (*models.PriceAlert, error) {
	args := m.Called(ctx, keyword, targetPrice)

	var alert *models.PriceAlert
	if args.Get(0) != nil {
		alert = args.Get(0).(*models.PriceAlert)
	}

	return alert, args.Error(1)
}

func (m *PriceTracker) GetPriceHistory(ctx context.Context, keyword string, days int) ([]models.PriceRecord, error) {
	args := m.Called(ctx, keyword, days)

	var records []models.PriceRecord
	if args.Get(0) != nil {
		records = args.Get(0).([]models.PriceRecord)
	}

	return records, args.Error(1)
}

func (m *PriceTracker) TrackProduct(ctx context.Context, keyword string) (*models.TrackResult, error) {
	args := m.Called(ctx, keyword)

	var track *models.TrackResult
	if args.Get(0) != nil {
		track = args.Get(0).(*models.TrackResult)
	}

	return track, args.Error(1)
}

func (m *PriceTracker) ListTrackedProducts(ctx context.Context) ([]models.TrackedProduct, error) {
	args := m.Called(ctx)

	var products []models.TrackedProduct
	if args.Get(0) != nil {
		products = args.Get(0).([]models.TrackedProduct)
	}

	return products, args.Error(1)
}

func (m *PriceTracker) GetBestDeals(ctx context.Context, limit int) ([]models.Deal, error) {
	args := m.Called(ctx, limit)

	var deals []models.Deal
	if args.Get(0) != nil {
		deals = args.Get(0).([]models.Deal)
	}

	return deals, args.Error(1)
}

func (m *PriceTracker) CheckPriceAlerts(ctx context.Context) ([]models.TriggeredAlert, error) {
	args := m.Called(ctx)

	var triggered []models.TriggeredAlert
	if args.Get(0) != nil {
		triggered = args.Get(0).([]models.TriggeredAlert)
	}

	return triggered, args.Error(1)
}
