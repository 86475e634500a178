package tracker_test

import (
	"testing"

	"github.com/minseok-oh/price-tracker/internal/models"
	"github.com/minseok-oh/price-tracker/internal/naver"
	"github.com/minseok-oh/price-tracker/internal/services/tracker"
	"github.com/minseok-oh/price-tracker/test/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCheckPriceAlerts(t *testing.T) {
	ctx := t.Context()

	alertAt := func(id int64, keyword string, target int) models.PriceAlert {
		return models.PriceAlert{ID: id, Keyword: keyword, TargetPrice: target, Platform: models.PlatformNaver, IsActive: true}
	}

	t.Run("triggers on equality, not above", func(t *testing.T) {
		engine, api, repo := newTracker(t)
		repo.On("ActiveAlerts", ctx).Return([]models.PriceAlert{
			alertAt(1, "키보드", 100),
			alertAt(2, "마우스", 100),
		}, nil).Once()
		// current price 100 vs target 100: non-strict, triggers
		api.On("Search", ctx, "키보드", 1, naver.SortSimilarity).
			Return([]models.Product{{Title: "기계식 키보드", Price: 100}}, nil).Once()
		// current price 101 vs target 100: does not trigger
		api.On("Search", ctx, "마우스", 1, naver.SortSimilarity).
			Return([]models.Product{{Title: "무선 마우스", Price: 101}}, nil).Once()

		triggered, err := engine.CheckPriceAlerts(ctx)

		require.NoError(t, err)
		require.Len(t, triggered, 1)
		assert.Equal(t, int64(1), triggered[0].AlertID)
		assert.Equal(t, "키보드", triggered[0].Keyword)
		assert.Equal(t, 100, triggered[0].TargetPrice)
		assert.Equal(t, 100, triggered[0].CurrentPrice)
		assert.Equal(t, "기계식 키보드", triggered[0].Product.Title)
		assert.Contains(t, triggered[0].Message, "이하입니다")
	})

	t.Run("per-alert failures are skipped, sweep continues", func(t *testing.T) {
		engine, api, repo := newTracker(t)
		repo.On("ActiveAlerts", ctx).Return([]models.PriceAlert{
			alertAt(1, "잘못된키워드", 100),
			alertAt(2, "없는상품", 100),
			alertAt(3, "키보드", 100),
		}, nil).Once()
		api.On("Search", ctx, "잘못된키워드", 1, naver.SortSimilarity).Return(nil, assert.AnError).Once()
		api.On("Search", ctx, "없는상품", 1, naver.SortSimilarity).Return([]models.Product{}, nil).Once()
		api.On("Search", ctx, "키보드", 1, naver.SortSimilarity).
			Return([]models.Product{{Title: "기계식 키보드", Price: 50}}, nil).Once()

		triggered, err := engine.CheckPriceAlerts(ctx)

		require.NoError(t, err)
		require.Len(t, triggered, 1)
		assert.Equal(t, int64(3), triggered[0].AlertID)
	})

	t.Run("duplicate alerts both trigger, no dedup", func(t *testing.T) {
		engine, api, repo := newTracker(t)
		repo.On("ActiveAlerts", ctx).Return([]models.PriceAlert{
			alertAt(1, "키보드", 100),
			alertAt(2, "키보드", 100),
		}, nil).Once()
		api.On("Search", ctx, "키보드", 1, naver.SortSimilarity).
			Return([]models.Product{{Title: "기계식 키보드", Price: 90}}, nil).Twice()

		triggered, err := engine.CheckPriceAlerts(ctx)

		require.NoError(t, err)
		require.Len(t, triggered, 2)
	})

	t.Run("no active alerts - empty sweep", func(t *testing.T) {
		engine, _, repo := newTracker(t)
		repo.On("ActiveAlerts", ctx).Return([]models.PriceAlert{}, nil).Once()

		triggered, err := engine.CheckPriceAlerts(ctx)

		require.NoError(t, err)
		assert.Empty(t, triggered)
		assert.NotNil(t, triggered)
	})

	t.Run("error - alert listing failure aborts the sweep", func(t *testing.T) {
		engine, _, repo := newTracker(t)
		repo.On("ActiveAlerts", ctx).Return(nil, assert.AnError).Once()

		_, err := engine.CheckPriceAlerts(ctx)

		require.ErrorIs(t, err, assert.AnError)
	})

	t.Run("notifier receives triggered alerts", func(t *testing.T) {
		engine, api, repo := newTracker(t)
		notifier := &mocks.Notifier{}
		engine.SetNotifier(notifier)
		t.Cleanup(func() { notifier.AssertExpectations(t) })

		repo.On("ActiveAlerts", ctx).Return([]models.PriceAlert{alertAt(1, "키보드", 100)}, nil).Once()
		api.On("Search", ctx, "키보드", 1, naver.SortSimilarity).
			Return([]models.Product{{Title: "기계식 키보드", Price: 90}}, nil).Once()
		notifier.On("NotifyAlerts", ctx, mock.AnythingOfType("[]models.TriggeredAlert")).Return(nil).Once()

		triggered, err := engine.CheckPriceAlerts(ctx)

		require.NoError(t, err)
		require.Len(t, triggered, 1)
	})

	t.Run("notifier failure does not fail the sweep", func(t *testing.T) {
		engine, api, repo := newTracker(t)
		notifier := &mocks.Notifier{}
		engine.SetNotifier(notifier)
		t.Cleanup(func() { notifier.AssertExpectations(t) })

		repo.On("ActiveAlerts", ctx).Return([]models.PriceAlert{alertAt(1, "키보드", 100)}, nil).Once()
		api.On("Search", ctx, "키보드", 1, naver.SortSimilarity).
			Return([]models.Product{{Title: "기계식 키보드", Price: 90}}, nil).Once()
		notifier.On("NotifyAlerts", ctx, mock.AnythingOfType("[]models.TriggeredAlert")).Return(assert.AnError).Once()

		triggered, err := engine.CheckPriceAlerts(ctx)

		require.NoError(t, err)
		require.Len(t, triggered, 1)
	})

	t.Run("notifier not called when nothing triggers", func(t *testing.T) {
		engine, api, repo := newTracker(t)
		notifier := &mocks.Notifier{}
		engine.SetNotifier(notifier)
		t.Cleanup(func() { notifier.AssertExpectations(t) })

		repo.On("ActiveAlerts", ctx).Return([]models.PriceAlert{alertAt(1, "키보드", 100)}, nil).Once()
		api.On("Search", ctx, "키보드", 1, naver.SortSimilarity).
			Return([]models.Product{{Title: "기계식 키보드", Price: 200}}, nil).Once()

		triggered, err := engine.CheckPriceAlerts(ctx)

		require.NoError(t, err)
		assert.Empty(t, triggered)
	})
}

func TestAlertMessage(t *testing.T) {
	msg := tracker.AlertMessage("갤럭시 버즈", 100000)
	assert.Contains(t, msg, "갤럭시 버즈")
	assert.Contains(t, msg, "100,000")
}
