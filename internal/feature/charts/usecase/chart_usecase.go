package usecase

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/wcharczuk/go-chart/v2"

	"stock_charts/internal/feature/candles/domain/entity"
	"stock_charts/internal/shared/plot"
)

const (
	// DefaultInterval is the candle interval charted when none is given.
	DefaultInterval = "1day"
	// DefaultOutputSize is the number of candles charted per symbol.
	DefaultOutputSize = 200
	// DefaultColumn is the candle field charted when none is given.
	DefaultColumn = "close"
)

// CandleRepository abstracts the candle read layer for chart assembly.
// Following Go convention, the interface is defined by the consumer.
type CandleRepository interface {
	FindBySymbols(ctx context.Context, symbols []string, interval string, outputsize int) ([]entity.Candle, error)
}

// ChartRequest describes one chart to render.
type ChartRequest struct {
	Symbols          []string // ticker symbols, one series per symbol
	Column           string   // candle field to plot: open/high/low/close/volume
	Interval         string   // candle interval, e.g. "1day"
	OutputSize       int      // candles per symbol
	SubplotThreshold int      // symbol count above which panels replace the combined chart
	LineWidth        float64  // optional stroke width forwarded to every line
}

func (r ChartRequest) withDefaults() ChartRequest {
	if r.Column == "" {
		r.Column = DefaultColumn
	}
	if r.Interval == "" {
		r.Interval = DefaultInterval
	}
	if r.OutputSize <= 0 {
		r.OutputSize = DefaultOutputSize
	}
	return r
}

// chartUsecase assembles candle data into rendered chart images.
type chartUsecase struct {
	candle CandleRepository
}

// NewChartUsecase creates a new chartUsecase instance.
func NewChartUsecase(candle CandleRepository) *chartUsecase {
	return &chartUsecase{candle: candle}
}

// RenderChartPNG fetches candles for the requested symbols, plots the
// requested field over time grouped by symbol, and returns the encoded PNG.
func (cu *chartUsecase) RenderChartPNG(ctx context.Context, req ChartRequest) ([]byte, error) {
	req = req.withDefaults()

	if len(req.Symbols) == 0 {
		return nil, ErrNoSymbols
	}
	if _, ok := (entity.Candle{}).Field(req.Column); !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, req.Column)
	}

	candles, err := cu.candle.FindBySymbols(ctx, req.Symbols, req.Interval, req.OutputSize)
	if err != nil {
		return nil, err
	}
	if len(candles) == 0 {
		return nil, ErrNoData
	}

	fig, err := plot.RenderColumn(buildFrame(candles, req.Column), req.Column, plot.Options{
		SubplotThreshold: req.SubplotThreshold,
		Series:           chart.Style{StrokeWidth: req.LineWidth},
	})
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := fig.WritePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// buildFrame lays candles out as a plot frame with the conventional
// datetime and symbol columns plus the requested value column.
func buildFrame(candles []entity.Candle, column string) *plot.Frame {
	times := make([]time.Time, 0, len(candles))
	symbols := make([]string, 0, len(candles))
	values := make([]float64, 0, len(candles))
	for _, c := range candles {
		v, _ := c.Field(column)
		times = append(times, c.Time)
		symbols = append(symbols, c.Symbol)
		values = append(values, v)
	}

	f := plot.NewFrame()
	f.AddTimeColumn(plot.DefaultTimeColumn, times)
	f.AddStringColumn(plot.DefaultGroupColumn, symbols)
	f.AddFloatColumn(column, values)
	return f
}
