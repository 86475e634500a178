package mocks

import (
	"context"

	"github.com/minseok-oh/price-tracker/internal/models"
	"github.com/stretchr/testify/mock"
)

// Notifier is a mock for tracker.Notifier.
type Notifier struct {
	mock.Mock
}

func (m *Notifier) NotifyAlerts(ctx context.Context, alerts []models.TriggeredAlert) error {
	args := m.Called(ctx, alerts)
	return args.Error(0)
}
