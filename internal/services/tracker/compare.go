package tracker

import (
	"context"
	"fmt"
	"sort"

	"github.com/minseok-oh/price-tracker/internal/models"
	"github.com/minseok-oh/price-tracker/internal/naver"
)

// bestDealKeywords is the fixed candidate list scanned by GetBestDeals.
var bestDealKeywords = []string{
	"노트북", "무선이어폰", "스마트워치", "태블릿",
	"키보드", "마우스", "모니터", "웹캠",
}

// ComparePrices fetches a batch of 20 results for keyword and derives
// price statistics plus the cheapest 10 products. Zero results is a
// defined shape with TotalCount 0 and nil statistics, not an error.
func (t *Tracker) ComparePrices(ctx context.Context, keyword string) (*models.Comparison, error) {
	const opn = "tracker.ComparePrices"

	products, err := t.api.Search(ctx, keyword, compareBatchSize, naver.SortSimilarity)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opn, err)
	}

	if len(products) == 0 {
		return &models.Comparison{Keyword: keyword, TopProducts: []models.Product{}}, nil
	}

	lowest, highest, sum := products[0].Price, products[0].Price, 0
	for _, p := range products {
		if p.Price < lowest {
			lowest = p.Price
		}
		if p.Price > highest {
			highest = p.Price
		}
		sum += p.Price
	}
	// truncating mean, fractional part discarded
	average := sum / len(products)

	// Stable sort keeps the fetch order among equal prices.
	sorted := make([]models.Product, len(products))
	copy(sorted, products)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Price < sorted[j].Price
	})

	top := sorted
	if len(top) > topProductsLimit {
		top = top[:topProductsLimit]
	}

	t.log.DebugContext(ctx, "Price comparison done", "op", opn,
		"keyword", keyword, "count", len(products), "lowest", lowest, "highest", highest, "average", average)

	return &models.Comparison{
		Keyword:      keyword,
		TotalCount:   len(products),
		LowestPrice:  &lowest,
		HighestPrice: &highest,
		AveragePrice: &average,
		TopProducts:  top,
	}, nil
}

// GetBestDeals compares prices for up to limit candidate keywords and
// ranks the outcomes by value score: lowest price divided by the typical
// price, lower is better. The same limit caps both the keywords scanned
// and the entries returned, so fewer productive keywords means a short
// result and extra candidates are never scanned.
func (t *Tracker) GetBestDeals(ctx context.Context, limit int) ([]models.Deal, error) {
	const opn = "tracker.GetBestDeals"

	if limit < 0 {
		limit = 0
	}

	keywords := bestDealKeywords
	if limit < len(keywords) {
		keywords = keywords[:limit]
	}

	deals := make([]models.Deal, 0, len(keywords))
	for _, keyword := range keywords {
		comparison, err := t.ComparePrices(ctx, keyword)
		if err != nil {
			// One bad keyword must not abort the scan.
			t.log.WarnContext(ctx, "Skipping keyword after failed comparison", "op", opn, "keyword", keyword, "error", err)
			continue
		}
		if comparison.TotalCount == 0 {
			continue
		}

		best := comparison.TopProducts[0]
		deals = append(deals, models.Deal{
			Keyword:      keyword,
			LowestPrice:  *comparison.LowestPrice,
			AveragePrice: *comparison.AveragePrice,
			ProductCount: comparison.TotalCount,
			BestProduct:  &best,
		})
	}

	sort.SliceStable(deals, func(i, j int) bool {
		return dealScore(deals[i]) < dealScore(deals[j])
	})

	if len(deals) > limit {
		deals = deals[:limit]
	}

	return deals, nil
}

// dealScore is the value ranking: a low floor relative to the typical
// price scores best. The denominator is clamped to 1 to survive
// all-zero price batches.
func dealScore(d models.Deal) float64 {
	average := d.AveragePrice
	if average < 1 {
		average = 1
	}

	return float64(d.LowestPrice) / float64(average)
}
