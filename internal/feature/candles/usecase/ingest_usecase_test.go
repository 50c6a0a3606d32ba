package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stock_charts/internal/feature/candles/domain/entity"
	"stock_charts/internal/feature/candles/usecase"
)

// mockMarketRepository はMarketRepositoryインターフェースのモック実装です。
type mockMarketRepository struct {
	GetTimeSeriesFunc func(ctx context.Context, symbol, interval string, outputsize int) ([]entity.Candle, error)
	Calls             int
}

func (m *mockMarketRepository) GetTimeSeries(ctx context.Context, symbol, interval string, outputsize int) ([]entity.Candle, error) {
	m.Calls++
	if m.GetTimeSeriesFunc != nil {
		return m.GetTimeSeriesFunc(ctx, symbol, interval, outputsize)
	}
	return nil, errors.New("GetTimeSeriesFunc is not implemented")
}

// noopRateLimiter はテスト用に待機しないレートリミッターです。
type noopRateLimiter struct{ Calls int }

func (n *noopRateLimiter) WaitIfNeeded() { n.Calls++ }

// TestIngestUsecase_IngestAll は全銘柄・全時間足の取り込みと、
// 銘柄単位のエラーが処理を止めないことをテストします。
func TestIngestUsecase_IngestAll(t *testing.T) {
	ctx := context.Background()

	t.Run("success: upserts symbol and interval onto fetched candles", func(t *testing.T) {
		var upserted []entity.Candle
		market := &mockMarketRepository{
			GetTimeSeriesFunc: func(ctx context.Context, symbol, interval string, outputsize int) ([]entity.Candle, error) {
				return []entity.Candle{{Close: 100}}, nil
			},
		}
		candle := &mockCandleRepository{
			UpsertBatchFunc: func(ctx context.Context, candles []entity.Candle) error {
				upserted = append(upserted, candles...)
				return nil
			},
		}
		rl := &noopRateLimiter{}
		uc := usecase.NewIngestUsecase(market, candle, rl)

		err := uc.IngestAll(ctx, []string{"AAPL"})

		require.NoError(t, err)
		// 3つの時間足（日足・週足・月足）で1回ずつ取得される
		assert.Equal(t, 3, market.Calls)
		assert.Equal(t, 3, rl.Calls, "rate limiter consulted before every request")
		require.Len(t, upserted, 3)
		assert.Equal(t, "AAPL", upserted[0].Symbol)
		assert.Equal(t, "1day", upserted[0].Interval)
	})

	t.Run("error in one symbol does not stop the rest", func(t *testing.T) {
		market := &mockMarketRepository{
			GetTimeSeriesFunc: func(ctx context.Context, symbol, interval string, outputsize int) ([]entity.Candle, error) {
				if symbol == "BAD" {
					return nil, errors.New("upstream failure")
				}
				return []entity.Candle{{Close: 100}}, nil
			},
		}
		var goodUpserts int
		candle := &mockCandleRepository{
			UpsertBatchFunc: func(ctx context.Context, candles []entity.Candle) error {
				goodUpserts++
				return nil
			},
		}
		uc := usecase.NewIngestUsecase(market, candle, &noopRateLimiter{})

		err := uc.IngestAll(ctx, []string{"BAD", "AAPL"})

		require.NoError(t, err)
		assert.Equal(t, 6, market.Calls, "both symbols attempted for all intervals")
		assert.Equal(t, 3, goodUpserts, "healthy symbol still persisted")
	})
}
