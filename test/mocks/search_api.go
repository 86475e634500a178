// Package mocks provides hand-rolled testify mocks for the interfaces
// consumed across the service.
package mocks

import (
	"context"

	"github.com/minseok-oh/price-tracker/internal/models"
	"github.com/minseok-oh/price-tracker/internal/naver"
	"github.com/stretchr/testify/mock"
)

// SearchAPI is a mock for naver.API.
type SearchAPI struct {
	mock.Mock
}

func (m *SearchAPI) Search(ctx context.Context, keyword string, display int, sort naver.SortMode) ([]models.Product, error) {
	args := m.Called(ctx, keyword, display, sort)

	var products []models.Product
	if args.Get(0) != nil {
		products = args.Get(0).([]models.Product)
	}

	return products, args.Error(1)
}
