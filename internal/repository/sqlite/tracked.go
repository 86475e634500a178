package sqlite

import (
	"context"
	"fmt"

	"github.com/minseok-oh/price-tracker/internal/models"
)

// AddTrackedProduct registers a keyword/title pair for ongoing
// observation and returns the registration ID.
func (r *Repository) AddTrackedProduct(ctx context.Context, productName, keyword string) (int64, error) {
	const opn = "repository.sqlite.AddTrackedProduct"

	res, err := r.db.ExecContext(ctx,
		"INSERT INTO tracked_products (product_name, keyword) VALUES (?, ?)",
		productName, keyword,
	)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opn, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: failed to get last insert id: %w", opn, err)
	}

	return id, nil
}

// ListTrackedProducts returns all registrations, newest first.
func (r *Repository) ListTrackedProducts(ctx context.Context) ([]models.TrackedProduct, error) {
	const opn = "repository.sqlite.ListTrackedProducts"

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, product_name, keyword, created_at
		 FROM tracked_products
		 ORDER BY created_at DESC, id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opn, err)
	}
	defer rows.Close()

	var products []models.TrackedProduct
	for rows.Next() {
		var p models.TrackedProduct
		if err = rows.Scan(&p.ID, &p.ProductName, &p.Keyword, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: failed to scan tracked product: %w", opn, err)
		}
		products = append(products, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows iteration error: %w", opn, err)
	}

	return products, nil
}
