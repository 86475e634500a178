package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/minseok-oh/price-tracker/internal/models"
)

// timeLayout is the format CURRENT_TIMESTAMP writes; window bounds are
// rendered the same way so lexicographic comparison holds.
const timeLayout = "2006-01-02 15:04:05"

// SavePrice appends one price observation. Records are never updated or
// deleted; the insertion timestamp is store-assigned.
func (r *Repository) SavePrice(ctx context.Context, rec models.PriceRecord) error {
	const opn = "repository.sqlite.SavePrice"

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO price_history (product_name, platform, price, product_link, mall_name) VALUES (?, ?, ?, ?, ?)",
		rec.ProductName, rec.Platform, rec.Price, nullable(rec.ProductLink), nullable(rec.MallName),
	)
	if err != nil {
		return fmt.Errorf("%s: %w", opn, err)
	}

	return nil
}

// GetPriceHistory returns observations whose product name contains
// keyword and which were recorded at or after since, newest first.
// Matching is plain substring, exactly as stored.
func (r *Repository) GetPriceHistory(ctx context.Context, keyword string, since time.Time) ([]models.PriceRecord, error) {
	const opn = "repository.sqlite.GetPriceHistory"

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, product_name, platform, price, product_link, mall_name, created_at
		 FROM price_history
		 WHERE product_name LIKE ? AND created_at >= ?
		 ORDER BY created_at DESC, id DESC`,
		"%"+keyword+"%", since.UTC().Format(timeLayout),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opn, err)
	}
	defer rows.Close()

	var records []models.PriceRecord
	for rows.Next() {
		var (
			rec      models.PriceRecord
			link     sql.NullString
			mallName sql.NullString
		)
		if err = rows.Scan(&rec.ID, &rec.ProductName, &rec.Platform, &rec.Price, &link, &mallName, &rec.RecordedAt); err != nil {
			return nil, fmt.Errorf("%s: failed to scan price record: %w", opn, err)
		}
		rec.ProductLink = link.String
		rec.MallName = mallName.String
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows iteration error: %w", opn, err)
	}

	return records, nil
}

// nullable maps an empty string to NULL.
func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
