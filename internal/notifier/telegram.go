package notifier

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/minseok-oh/price-tracker/internal/models"
	"gopkg.in/telebot.v4"
)

// Telegram delivers triggered price alerts to a single chat.
type Telegram struct {
	bot  sender
	chat telebot.ChatID
	log  *slog.Logger
}

// sender is the slice of the telebot API the notifier uses.
type sender interface {
	Send(to telebot.Recipient, what interface{}, opts ...interface{}) (*telebot.Message, error)
}

// NewTelegram creates a notifier authorized with the given bot token.
func NewTelegram(log *slog.Logger, token string, chatID int64) (*Telegram, error) {
	bot, err := telebot.NewBot(telebot.Settings{Token: token})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Telegram bot: %w", err)
	}
	log.Info("Authorized on account", "account", bot.Me.Username)

	return &Telegram{bot: bot, chat: telebot.ChatID(chatID), log: log}, nil
}

// NotifyAlerts sends one message per sweep with every triggered alert.
func (t *Telegram) NotifyAlerts(ctx context.Context, alerts []models.TriggeredAlert) error {
	const opn = "notifier.NotifyAlerts"

	if len(alerts) == 0 {
		return nil
	}

	if _, err := t.bot.Send(t.chat, formatAlerts(alerts)); err != nil {
		return fmt.Errorf("%s: failed to send alert message: %w", opn, err)
	}

	t.log.InfoContext(ctx, "Delivered alert notifications", "op", opn, "count", len(alerts))

	return nil
}

// formatAlerts renders the sweep outcome as one plain-text message.
func formatAlerts(alerts []models.TriggeredAlert) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🔔 가격 알림 %d건\n", len(alerts))
	for _, alert := range alerts {
		fmt.Fprintf(&b, "\n%s\n%s\n%s\n", alert.Message, alert.Product.Title, alert.Product.Link)
	}

	return strings.TrimRight(b.String(), "\n")
}
