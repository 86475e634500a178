package tracker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/minseok-oh/price-tracker/internal/models"
	"github.com/minseok-oh/price-tracker/internal/naver"
	"github.com/minseok-oh/price-tracker/internal/repository/sqlite"
)

// ErrNoResults means the upstream search returned zero products for a
// keyword. Distinct from an upstream failure, which surfaces as its own error.
var ErrNoResults = errors.New("no products found for keyword")

const (
	compareBatchSize   = 20 // results fetched per comparison
	topProductsLimit   = 10 // comparison keeps the cheapest 10
	DefaultSearchCount = 10
	DefaultHistoryDays = 30
)

// Tracker is the orchestrator for price comparison, product tracking and
// alert evaluation. It holds no state of its own: every durable fact
// lives in the repository, every live fact comes from the search API.
type Tracker struct {
	log      *slog.Logger
	api      naver.API
	repo     sqlite.PriceRepository
	notifier Notifier
}

// Notifier delivers triggered alerts to an external channel.
type Notifier interface {
	NotifyAlerts(ctx context.Context, alerts []models.TriggeredAlert) error
}

// New creates a Tracker over the given search API and repository.
func New(log *slog.Logger, api naver.API, repo sqlite.PriceRepository) *Tracker {
	return &Tracker{log: log, api: api, repo: repo}
}

// SetNotifier attaches an optional delivery channel for triggered alerts.
func (t *Tracker) SetNotifier(n Notifier) {
	t.notifier = n
}

// SearchProducts runs a live keyword search, relevance-ordered.
func (t *Tracker) SearchProducts(ctx context.Context, keyword string, count int) ([]models.Product, error) {
	const opn = "tracker.SearchProducts"

	products, err := t.api.Search(ctx, keyword, count, naver.SortSimilarity)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opn, err)
	}

	return products, nil
}

// SetPriceAlert registers a standing watch on a keyword. Inserts
// unconditionally: duplicate alerts are independent watches, and the
// target is not validated.
func (t *Tracker) SetPriceAlert(ctx context.Context, keyword string, targetPrice int) (*models.PriceAlert, error) {
	const opn = "tracker.SetPriceAlert"

	id, err := t.repo.CreateAlert(ctx, keyword, targetPrice, models.PlatformNaver)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opn, err)
	}

	t.log.InfoContext(ctx, "Price alert created", "op", opn, "alert_id", id, "keyword", keyword, "target_price", targetPrice)

	return &models.PriceAlert{
		ID:          id,
		Keyword:     keyword,
		TargetPrice: targetPrice,
		Platform:    models.PlatformNaver,
		IsActive:    true,
		CreatedAt:   time.Now(),
	}, nil
}

// GetPriceHistory returns persisted observations whose title contains
// keyword, recorded within the last days days, newest first.
func (t *Tracker) GetPriceHistory(ctx context.Context, keyword string, days int) ([]models.PriceRecord, error) {
	const opn = "tracker.GetPriceHistory"

	since := time.Now().AddDate(0, 0, -days)

	history, err := t.repo.GetPriceHistory(ctx, keyword, since)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opn, err)
	}

	return history, nil
}

// TrackProduct fetches the single best match for keyword, registers it
// for tracking under the result's title and snapshots its current price.
// Returns ErrNoResults (wrapped) with no writes when nothing matches.
func (t *Tracker) TrackProduct(ctx context.Context, keyword string) (*models.TrackResult, error) {
	const opn = "tracker.TrackProduct"

	products, err := t.api.Search(ctx, keyword, 1, naver.SortSimilarity)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opn, err)
	}
	if len(products) == 0 {
		return nil, fmt.Errorf("%s: %q: %w", opn, keyword, ErrNoResults)
	}

	product := products[0]

	// No transaction spans the two writes: a crash in between leaves a
	// registration without its first snapshot.
	trackID, err := t.repo.AddTrackedProduct(ctx, product.Title, keyword)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to register tracked product: %w", opn, err)
	}

	err = t.repo.SavePrice(ctx, models.PriceRecord{
		ProductName: product.Title,
		Platform:    product.Platform,
		Price:       product.Price,
		ProductLink: product.Link,
		MallName:    product.MallName,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: failed to save price snapshot: %w", opn, err)
	}

	t.log.InfoContext(ctx, "Product tracking started", "op", opn, "track_id", trackID, "keyword", keyword, "title", product.Title)

	return &models.TrackResult{TrackID: trackID, Product: product}, nil
}

// ListTrackedProducts returns every registration, newest first.
func (t *Tracker) ListTrackedProducts(ctx context.Context) ([]models.TrackedProduct, error) {
	const opn = "tracker.ListTrackedProducts"

	products, err := t.repo.ListTrackedProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opn, err)
	}

	return products, nil
}
