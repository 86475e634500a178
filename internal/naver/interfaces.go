package naver

import (
	"context"

	"github.com/minseok-oh/price-tracker/internal/models"
)

// API is the search capability the tracking engine consumes.
type API interface {
	// Search queries the shopping API and returns normalized products.
	Search(ctx context.Context, keyword string, display int, sort SortMode) ([]models.Product, error)
}
