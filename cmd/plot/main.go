// Command plot renders a chart PNG for a set of symbols straight from the
// database, without going through the HTTP server.
//
// Usage:
//
//	plot -symbols AAPL,MSFT -column close -o chart.png
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"strings"
	"time"

	candleadapters "stock_charts/internal/feature/candles/adapters"
	"stock_charts/internal/feature/charts/usecase"
	infradb "stock_charts/internal/platform/db"
)

func main() {
	var (
		symbols    = flag.String("symbols", "", "comma-separated symbol codes (required)")
		column     = flag.String("column", "close", "candle field to plot (open, high, low, close, volume)")
		interval   = flag.String("interval", "1day", "candle interval")
		outputsize = flag.Int("outputsize", 200, "number of candles per symbol")
		threshold  = flag.Int("threshold", 0, "symbol count above which a subplot grid is used (0 = default)")
		lineWidth  = flag.Float64("line-width", 0, "stroke width of the plotted lines (0 = default)")
		out        = flag.String("o", "chart.png", "output PNG path")
	)
	flag.Parse()

	if *symbols == "" {
		flag.Usage()
		os.Exit(2)
	}

	db := infradb.OpenDB()
	candleRepo := candleadapters.NewCandleRepository(db)
	uc := usecase.NewChartUsecase(candleRepo)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	png, err := uc.RenderChartPNG(ctx, usecase.ChartRequest{
		Symbols:          strings.Split(*symbols, ","),
		Column:           *column,
		Interval:         *interval,
		OutputSize:       *outputsize,
		SubplotThreshold: *threshold,
		LineWidth:        *lineWidth,
	})
	if err != nil {
		log.Fatal(err)
	}

	if err := os.WriteFile(*out, png, 0o644); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s (%d bytes)", *out, len(png))
}
