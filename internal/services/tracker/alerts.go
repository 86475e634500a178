package tracker

import (
	"context"
	"fmt"

	"github.com/minseok-oh/price-tracker/internal/models"
	"github.com/minseok-oh/price-tracker/internal/naver"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// won renders integer prices with thousands separators for messages.
var won = message.NewPrinter(language.Korean)

// CheckPriceAlerts sweeps every active alert: re-fetches the current best
// match for its keyword and triggers when the live price is at or below
// the target (non-strict). Per-alert fetch failures are logged and
// skipped so one bad keyword cannot abort the sweep. Alerts are not
// deduplicated: one that stays below target triggers on every sweep.
func (t *Tracker) CheckPriceAlerts(ctx context.Context) ([]models.TriggeredAlert, error) {
	const opn = "tracker.CheckPriceAlerts"

	alerts, err := t.repo.ActiveAlerts(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opn, err)
	}

	triggered := make([]models.TriggeredAlert, 0)
	for _, alert := range alerts {
		products, err := t.api.Search(ctx, alert.Keyword, 1, naver.SortSimilarity)
		if err != nil {
			t.log.WarnContext(ctx, "Skipping alert after failed search", "op", opn,
				"alert_id", alert.ID, "keyword", alert.Keyword, "error", err)
			continue
		}
		if len(products) == 0 {
			t.log.DebugContext(ctx, "No products for alert keyword", "op", opn,
				"alert_id", alert.ID, "keyword", alert.Keyword)
			continue
		}

		current := products[0].Price
		if current > alert.TargetPrice {
			continue
		}

		triggered = append(triggered, models.TriggeredAlert{
			AlertID:      alert.ID,
			Keyword:      alert.Keyword,
			TargetPrice:  alert.TargetPrice,
			CurrentPrice: current,
			Product:      products[0],
			Message: won.Sprintf("'%s'이(가) 목표가 %d원 이하입니다! (현재가: %d원)",
				alert.Keyword, alert.TargetPrice, current),
		})
	}

	t.log.InfoContext(ctx, "Alert sweep complete", "op", opn, "checked", len(alerts), "triggered", len(triggered))

	if t.notifier != nil && len(triggered) > 0 {
		// Delivery failure does not fail the sweep.
		if err = t.notifier.NotifyAlerts(ctx, triggered); err != nil {
			t.log.ErrorContext(ctx, "Failed to deliver alert notifications", "op", opn, "error", err)
		}
	}

	return triggered, nil
}

// AlertMessage is the confirmation text returned when an alert is set.
func AlertMessage(keyword string, targetPrice int) string {
	return won.Sprintf("'%s'의 목표가 %d원 알림이 설정되었습니다.", keyword, targetPrice)
}
