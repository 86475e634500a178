package mocks

import (
	"context"
	"time"

	"github.com/minseok-oh/price-tracker/internal/models"
	"github.com/stretchr/testify/mock"
)

// PriceRepository is a mock for sqlite.PriceRepository.
type PriceRepository struct {
	mock.Mock
}

func (m *PriceRepository) SavePrice(ctx context.Context, rec models.PriceRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *PriceRepository) GetPriceHistory(ctx context.Context, keyword string, since time.Time) ([]models.PriceRecord, error) {
	args := m.Called(ctx, keyword, since)

	var records []models.PriceRecord
	if args.Get(0) != nil {
		records = args.Get(0).([]models.PriceRecord)
	}

	return records, args.Error(1)
}

func (m *PriceRepository) CreateAlert(ctx context.Context, keyword string, targetPrice int, platform string) (int64, error) {
	args := m.Called(ctx, keyword, targetPrice, platform)
	return args.Get(0).(int64), args.Error(1)
}

func (m *PriceRepository) ActiveAlerts(ctx context.Context) ([]models.PriceAlert, error) {
	args := m.Called(ctx)

	var alerts []models.PriceAlert
	if args.Get(0) != nil {
		alerts = args.Get(0).([]models.PriceAlert)
	}

	return alerts, args.Error(1)
}

func (m *PriceRepository) DeactivateAlert(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *PriceRepository) AddTrackedProduct(ctx context.Context, productName, keyword string) (int64, error) {
	args := m.Called(ctx, productName, keyword)
	return args.Get(0).(int64), args.Error(1)
}

func (m *PriceRepository) ListTrackedProducts(ctx context.Context) ([]models.TrackedProduct, error) {
	args := m.Called(ctx)

	var products []models.TrackedProduct
	if args.Get(0) != nil {
		products = args.Get(0).([]models.TrackedProduct)
	}

	return products, args.Error(1)
}
