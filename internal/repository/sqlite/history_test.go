package sqlite_test

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/minseok-oh/price-tracker/internal/models"
	"github.com/minseok-oh/price-tracker/internal/repository/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Integration tests (using a real temporary database)
// =============================================================================

func TestPriceHistory_RoundTrip(t *testing.T) {
	ctx := t.Context()
	repo := newTestRepo(t)

	rec := models.PriceRecord{
		ProductName: "에어팟 프로 2세대",
		Platform:    models.PlatformNaver,
		Price:       219000,
		ProductLink: "https://shopping.example/1",
		MallName:    "쿠팡",
	}
	require.NoError(t, repo.SavePrice(ctx, rec))

	t.Run("retrievable by any substring of the title", func(t *testing.T) {
		for _, keyword := range []string{"에어팟", "프로", "에어팟 프로 2세대"} {
			history, err := repo.GetPriceHistory(ctx, keyword, time.Now().AddDate(0, 0, -30))
			require.NoError(t, err)
			require.Len(t, history, 1, "keyword %q", keyword)

			got := history[0]
			assert.Equal(t, rec.ProductName, got.ProductName)
			assert.Equal(t, rec.Platform, got.Platform)
			assert.Equal(t, rec.Price, got.Price)
			assert.Equal(t, rec.ProductLink, got.ProductLink)
			assert.Equal(t, rec.MallName, got.MallName)
			assert.Positive(t, got.ID)
			assert.False(t, got.RecordedAt.IsZero(), "recorded_at must be store-assigned")
		}
	})

	t.Run("absent for a non-matching keyword", func(t *testing.T) {
		history, err := repo.GetPriceHistory(ctx, "갤럭시", time.Now().AddDate(0, 0, -30))
		require.NoError(t, err)
		assert.Empty(t, history)
	})

	t.Run("absent outside the time window", func(t *testing.T) {
		// A window starting in the future excludes the record just written.
		history, err := repo.GetPriceHistory(ctx, "에어팟", time.Now().Add(time.Hour))
		require.NoError(t, err)
		assert.Empty(t, history)
	})

	t.Run("matching is case sensitive exactly as stored", func(t *testing.T) {
		require.NoError(t, repo.SavePrice(ctx, models.PriceRecord{
			ProductName: "MacBook Air",
			Platform:    models.PlatformNaver,
			Price:       1590000,
		}))

		history, err := repo.GetPriceHistory(ctx, "MacBook", time.Now().AddDate(0, 0, -1))
		require.NoError(t, err)
		require.Len(t, history, 1)
	})
}

func TestPriceHistory_NewestFirst(t *testing.T) {
	ctx := t.Context()
	repo := newTestRepo(t)

	for _, price := range []int{100, 200, 300} {
		require.NoError(t, repo.SavePrice(ctx, models.PriceRecord{
			ProductName: "키보드",
			Platform:    models.PlatformNaver,
			Price:       price,
		}))
	}

	history, err := repo.GetPriceHistory(ctx, "키보드", time.Now().AddDate(0, 0, -1))
	require.NoError(t, err)
	require.Len(t, history, 3)

	// Same store-assigned second, so insertion order decides: latest insert first.
	assert.Equal(t, 300, history[0].Price)
	assert.Equal(t, 200, history[1].Price)
	assert.Equal(t, 100, history[2].Price)
	assert.GreaterOrEqual(t, history[0].ID, history[1].ID)
}

// =============================================================================
// Failure-path tests (using sqlmock)
// =============================================================================

// newMockedRepo wraps a sqlmock handle in a Repository.
func newMockedRepo(t *testing.T) (*sqlite.Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return sqlite.New(db, logger), mock
}

func TestPriceHistory_Failures(t *testing.T) {
	ctx := t.Context()

	t.Run("error_on_insert", func(t *testing.T) {
		repo, mock := newMockedRepo(t)
		expectedErr := errors.New("disk I/O error")
		mock.ExpectExec("INSERT INTO price_history").WillReturnError(expectedErr)

		err := repo.SavePrice(ctx, models.PriceRecord{ProductName: "모니터", Platform: models.PlatformNaver, Price: 1})

		require.Error(t, err)
		assert.Contains(t, err.Error(), expectedErr.Error())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error_on_query", func(t *testing.T) {
		repo, mock := newMockedRepo(t)
		mock.ExpectQuery("SELECT id, product_name, platform, price").WillReturnError(assert.AnError)

		_, err := repo.GetPriceHistory(ctx, "모니터", time.Now())

		require.ErrorIs(t, err, assert.AnError)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error_on_scan", func(t *testing.T) {
		repo, mock := newMockedRepo(t)
		rows := sqlmock.NewRows([]string{"id", "product_name", "platform", "price", "product_link", "mall_name", "created_at"}).
			AddRow("not-an-id", nil, nil, "x", nil, nil, nil)
		mock.ExpectQuery("SELECT id, product_name, platform, price").WillReturnRows(rows)

		_, err := repo.GetPriceHistory(ctx, "모니터", time.Now())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to scan price record")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error_on_rows", func(t *testing.T) {
		repo, mock := newMockedRepo(t)
		rows := sqlmock.NewRows([]string{"id", "product_name", "platform", "price", "product_link", "mall_name", "created_at"}).
			AddRow(1, "모니터", models.PlatformNaver, 100, nil, nil, time.Now()).
			RowError(0, assert.AnError)
		mock.ExpectQuery("SELECT id, product_name, platform, price").WillReturnRows(rows)

		_, err := repo.GetPriceHistory(ctx, "모니터", time.Now())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "rows iteration error")
		require.ErrorIs(t, err, assert.AnError)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
