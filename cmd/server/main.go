package main

import (
	"log"
	"os"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"stock_charts/internal/app/router"
	authadapters "stock_charts/internal/feature/auth/adapters"
	authhandler "stock_charts/internal/feature/auth/transport/handler"
	authusecase "stock_charts/internal/feature/auth/usecase"
	candleadapters "stock_charts/internal/feature/candles/adapters"
	candlehandler "stock_charts/internal/feature/candles/transport/handler"
	candleusecase "stock_charts/internal/feature/candles/usecase"
	charthandler "stock_charts/internal/feature/charts/transport/handler"
	chartusecase "stock_charts/internal/feature/charts/usecase"
	symbollistadapters "stock_charts/internal/feature/symbollist/adapters"
	symbollisthandler "stock_charts/internal/feature/symbollist/transport/handler"
	symbollistusecase "stock_charts/internal/feature/symbollist/usecase"
	"stock_charts/internal/platform/cache"
	infradb "stock_charts/internal/platform/db"
	jwtmw "stock_charts/internal/platform/jwt"
	infraredis "stock_charts/internal/platform/redis"
)

func main() {
	// db
	db := infradb.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	userRepo := authadapters.NewUserRepository(db)
	symbolRepo := symbollistadapters.NewSymbolRepository(db)
	candleRepo := candleadapters.NewCandleRepository(db)

	// Usecase
	jwtGen := jwtmw.NewGenerator(os.Getenv(jwtmw.EnvKeyJWTSecret), 24*time.Hour)
	authUC := authusecase.NewAuthUsecase(userRepo, jwtGen)
	symbolUC := symbollistusecase.NewSymbolUsecase(symbolRepo)
	candlesUC := candleusecase.NewCandlesUsecase(candleRepo)
	chartUC := chartusecase.NewChartUsecase(candleRepo)

	// チャートPNGはRedisキャッシュでラップ
	// ローソク足は朝のバッチ取り込みまで変わらないため、TTLを次回取り込み時刻に合わせる
	ttl := cache.TimeUntilNextIngest()
	cachedChartUC := cache.NewCachingChartRenderer(rdb, ttl, chartUC, "charts")

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	symbolH := symbollisthandler.NewSymbolHandler(symbolUC)
	candlesH := candlehandler.NewCandlesHandler(candlesUC)
	chartsH := charthandler.NewChartHandler(cachedChartUC)

	// ルータ生成
	router := router.NewRouter(authH, candlesH, symbolH, chartsH)

	// JWT_SECRETチェック（開発中の注意喚起）
	if os.Getenv(jwtmw.EnvKeyJWTSecret) == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	if err := router.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
