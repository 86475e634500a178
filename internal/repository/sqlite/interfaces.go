package sqlite

import (
	"context"
	"time"

	"github.com/minseok-oh/price-tracker/internal/models"
)

// PriceRepository describes the persistence operations of the price store.
// All writes are append-only except DeactivateAlert.
type PriceRepository interface {
	// SavePrice appends one price observation.
	SavePrice(ctx context.Context, rec models.PriceRecord) error
	// GetPriceHistory returns observations matching keyword recorded at or after since, newest first.
	GetPriceHistory(ctx context.Context, keyword string, since time.Time) ([]models.PriceRecord, error)
	// CreateAlert inserts a new price alert and returns its ID.
	CreateAlert(ctx context.Context, keyword string, targetPrice int, platform string) (int64, error)
	// ActiveAlerts returns alerts with the active flag set, newest first.
	ActiveAlerts(ctx context.Context) ([]models.PriceAlert, error)
	// DeactivateAlert clears the active flag on one alert.
	DeactivateAlert(ctx context.Context, id int64) error
	// AddTrackedProduct registers a keyword/title pair and returns the registration ID.
	AddTrackedProduct(ctx context.Context, productName, keyword string) (int64, error)
	// ListTrackedProducts returns all registrations, newest first.
	ListTrackedProducts(ctx context.Context) ([]models.TrackedProduct, error)
}
