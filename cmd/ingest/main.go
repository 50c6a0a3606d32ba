package main

import (
	"context"
	"log"
	"time"

	candleadapters "stock_charts/internal/feature/candles/adapters"
	"stock_charts/internal/feature/candles/usecase"
	symbollistadapters "stock_charts/internal/feature/symbollist/adapters"
	infradb "stock_charts/internal/platform/db"
	infrahttp "stock_charts/internal/platform/http"
	"stock_charts/internal/platform/externalapi/twelvedata"
	"stock_charts/internal/shared/ratelimiter"
)

func main() {
	db := infradb.OpenDB()

	cfg := twelvedata.LoadConfig()
	client := infrahttp.NewHTTPClient(cfg.Timeout)
	marketRepo := twelvedata.NewTwelveDataMarket(cfg, client)
	candleRepo := candleadapters.NewCandleRepository(db)
	symbolRepo := symbollistadapters.NewSymbolRepository(db)

	// 無料プランは8リクエスト/分まで
	limiter := ratelimiter.NewRateLimiter(8, time.Minute)
	uc := usecase.NewIngestUsecase(marketRepo, candleRepo, limiter)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	symbols, err := symbolRepo.ListActiveCodes(ctx)
	if err != nil {
		log.Fatal("failed to load symbols:", err)
	}

	if err := uc.IngestAll(ctx, symbols); err != nil {
		log.Fatal(err)
	}
	log.Println("ingest ok")
}
