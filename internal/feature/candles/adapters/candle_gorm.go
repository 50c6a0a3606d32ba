// Package adapters はcandlesフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"stock_charts/internal/feature/candles/domain/entity"
	"stock_charts/internal/feature/candles/usecase"
)

// candleGorm はCandleRepositoryインターフェースのgorm実装です。
type candleGorm struct {
	db *gorm.DB
}

var _ usecase.CandleRepository = (*candleGorm)(nil)

// NewCandleRepository は指定されたDB接続でcandleGormリポジトリの新しいインスタンスを生成します。
func NewCandleRepository(db *gorm.DB) *candleGorm {
	return &candleGorm{db: db}
}

// CandleModel はcandlesテーブルの永続化モデルです。
type CandleModel struct {
	ID       uint      `gorm:"primaryKey"`
	Symbol   string    `gorm:"size:32;not null;uniqueIndex:candle_sym_int_time,priority:1"`
	Interval string    `gorm:"size:16;not null;uniqueIndex:candle_sym_int_time,priority:2"`
	Time     time.Time `gorm:"not null;uniqueIndex:candle_sym_int_time,priority:3"`

	Open   float64 `gorm:"not null"`
	High   float64 `gorm:"not null"`
	Low    float64 `gorm:"not null"`
	Close  float64 `gorm:"not null"`
	Volume int64   `gorm:"not null;default:0"`
}

// TableName はgormが使用するテーブル名を返します。
func (CandleModel) TableName() string {
	return "candles"
}

func toModel(e entity.Candle) CandleModel {
	return CandleModel{
		Symbol:   e.Symbol,
		Interval: e.Interval,
		Time:     e.Time,
		Open:     e.Open,
		High:     e.High,
		Low:      e.Low,
		Close:    e.Close,
		Volume:   e.Volume,
	}
}

func toEntity(m CandleModel) entity.Candle {
	return entity.Candle{
		Symbol:   m.Symbol,
		Interval: m.Interval,
		Time:     m.Time,
		Open:     m.Open,
		High:     m.High,
		Low:      m.Low,
		Close:    m.Close,
		Volume:   m.Volume,
	}
}

// UpsertBatch はローソク足を一括で挿入し、一意キー衝突時は価格と出来高を更新します。
func (r *candleGorm) UpsertBatch(ctx context.Context, candles []entity.Candle) error {
	if len(candles) == 0 {
		return nil
	}
	ms := make([]CandleModel, 0, len(candles))
	for _, e := range candles {
		ms = append(ms, toModel(e))
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "symbol"}, {Name: "interval"}, {Name: "time"}},
		DoUpdates: clause.AssignmentColumns([]string{"open", "high", "low", "close", "volume"}),
	}).Create(&ms).Error
}

// Find は単一銘柄のローソク足を新しい順に最大outputsize件返します。
func (r *candleGorm) Find(ctx context.Context, symbol, interval string, outputsize int) ([]entity.Candle, error) {
	var rows []CandleModel
	q := r.db.WithContext(ctx).
		Where(`symbol = ? AND "interval" = ?`, symbol, interval).
		Order(`"time" DESC`)
	if outputsize > 0 {
		q = q.Limit(outputsize)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.Candle, 0, len(rows))
	for _, m := range rows {
		out = append(out, toEntity(m))
	}
	return out, nil
}

// FindBySymbols は複数銘柄のローソク足を銘柄・時刻昇順で返します。
// outputsizeは銘柄ごとの件数ではなく、各銘柄の直近outputsize件に相当する
// 範囲を銘柄別に取得して結合します。
func (r *candleGorm) FindBySymbols(ctx context.Context, symbols []string, interval string, outputsize int) ([]entity.Candle, error) {
	var out []entity.Candle
	for _, s := range symbols {
		var rows []CandleModel
		q := r.db.WithContext(ctx).
			Where(`symbol = ? AND "interval" = ?`, s, interval).
			Order(`"time" DESC`)
		if outputsize > 0 {
			q = q.Limit(outputsize)
		}
		if err := q.Find(&rows).Error; err != nil {
			return nil, err
		}
		// 描画順を保つため時刻昇順に並べ替えて結合する
		for i := len(rows) - 1; i >= 0; i-- {
			out = append(out, toEntity(rows[i]))
		}
	}
	return out, nil
}
