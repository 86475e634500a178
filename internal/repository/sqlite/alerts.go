package sqlite

import (
	"context"
	"fmt"

	"github.com/minseok-oh/price-tracker/internal/models"
	"github.com/minseok-oh/price-tracker/internal/repository"
)

// CreateAlert inserts a new price alert and returns its ID. Duplicate
// alerts on the same keyword are allowed: each row is an independent watch.
func (r *Repository) CreateAlert(ctx context.Context, keyword string, targetPrice int, platform string) (int64, error) {
	const opn = "repository.sqlite.CreateAlert"

	res, err := r.db.ExecContext(ctx,
		"INSERT INTO price_alerts (keyword, target_price, platform) VALUES (?, ?, ?)",
		keyword, targetPrice, platform,
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

// ActiveAlerts returns every alert with is_active set, newest first.
func (r *Repository) ActiveAlerts(ctx context.Context) ([]models.PriceAlert, error) {
	const opn = "repository.sqlite.ActiveAlerts"

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, keyword, target_price, platform, is_active, created_at
		 FROM price_alerts
		 WHERE is_active = 1
		 ORDER BY created_at DESC, id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opn, err)
	}
	defer rows.Close()

	var alerts []models.PriceAlert
	for rows.Next() {
		var alert models.PriceAlert
		if err = rows.Scan(&alert.ID, &alert.Keyword, &alert.TargetPrice, &alert.Platform, &alert.IsActive, &alert.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: failed to scan alert: %w", opn, err)
		}
		alerts = append(alerts, alert)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows iteration error: %w", opn, err)
	}

	return alerts, nil
}

// DeactivateAlert clears the is_active flag on one alert.
func (r *Repository) DeactivateAlert(ctx context.Context, id int64) error {
	const opn = "repository.sqlite.DeactivateAlert"

	res, err := r.db.ExecContext(ctx, "UPDATE price_alerts SET is_active = 0 WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("%s: %w", opn, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: failed to get affected rows: %w", opn, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: id %d: %w", opn, id, repository.ErrAlertNotFound)
	}

	return nil
}
