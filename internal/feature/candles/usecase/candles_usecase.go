// Package usecase はローソク足データ操作のビジネスロジックを実装します。
package usecase

import (
	"context"

	"stock_charts/internal/feature/candles/domain/entity"
)

const (
	// DefaultInterval はローソク足クエリのデフォルト時間間隔です。
	DefaultInterval = "1day"
	// DefaultOutputSize はデフォルトのローソク足返却件数です。
	DefaultOutputSize = 200
	// MaxOutputSize はローソク足の最大返却件数です。
	MaxOutputSize = 5000
)

// CandleRepository はローソク足データの読み取りレイヤーを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type CandleRepository interface {
	// Find はデータベースから単一銘柄のローソク足データを検索します。
	Find(ctx context.Context, symbol, interval string, outputsize int) ([]entity.Candle, error)

	// FindBySymbols は複数銘柄のローソク足データを時刻昇順で検索します。
	// チャート描画のように複数系列を一度に扱う呼び出し元のためのメソッドです。
	FindBySymbols(ctx context.Context, symbols []string, interval string, outputsize int) ([]entity.Candle, error)

	// UpsertBatch はローソク足データを一括で挿入または更新します。
	UpsertBatch(ctx context.Context, candles []entity.Candle) error
}

// candlesUsecase はローソク足データ操作のユースケースを定義します。
type candlesUsecase struct {
	candle CandleRepository
}

// NewCandlesUsecase はcandlesUsecaseの新しいインスタンスを生成します。
func NewCandlesUsecase(candle CandleRepository) *candlesUsecase {
	return &candlesUsecase{candle: candle}
}

// normalize はintervalとoutputsizeを既定値の範囲に丸めます。
func normalize(interval string, outputsize int) (string, int) {
	if interval == "" {
		interval = DefaultInterval
	}
	if outputsize <= 0 || outputsize > MaxOutputSize {
		outputsize = DefaultOutputSize
	}
	return interval, outputsize
}

// GetCandles は指定された銘柄と時間間隔のローソク足データを取得します。
func (cu *candlesUsecase) GetCandles(ctx context.Context, symbol, interval string, outputsize int) ([]entity.Candle, error) {
	interval, outputsize = normalize(interval, outputsize)
	return cu.candle.Find(ctx, symbol, interval, outputsize)
}

// GetCandlesBySymbols は複数銘柄のローソク足データをまとめて取得します。
func (cu *candlesUsecase) GetCandlesBySymbols(ctx context.Context, symbols []string, interval string, outputsize int) ([]entity.Candle, error) {
	interval, outputsize = normalize(interval, outputsize)
	return cu.candle.FindBySymbols(ctx, symbols, interval, outputsize)
}
