// Package router はアプリケーションのHTTPルーティングを定義します。
package router

import (
	authhandler "stock_charts/internal/feature/auth/transport/handler"
	candlehandler "stock_charts/internal/feature/candles/transport/handler"
	charthandler "stock_charts/internal/feature/charts/transport/handler"
	symbollisthandler "stock_charts/internal/feature/symbollist/transport/handler"
	"stock_charts/internal/platform/http/handler"
	jwtmw "stock_charts/internal/platform/jwt"

	"github.com/gin-gonic/gin"
)

func NewRouter(authHandler *authhandler.AuthHandler, candles *candlehandler.CandlesHandler,
	symbol *symbollisthandler.SymbolHandler, charts *charthandler.ChartHandler) *gin.Engine {
	r := gin.Default()

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)
	r.HEAD("/healthz", handler.Health)
	// 新規ユーザー登録
	r.POST("/signup", authHandler.Signup)
	// ログイン（JWT 発行）
	r.POST("/login", authHandler.Login)

	// 認証必須のルート
	// r.Group("/") でルートグループを作成
	auth := r.Group("/")
	// jwtmw.AuthRequired() ミドルウェアを適用
	// → リクエストヘッダーに JWT が必要になる
	auth.Use(jwtmw.AuthRequired())
	{
		auth.GET("/candles/:code", candles.GetCandlesHandler)
		auth.GET("/symbols", symbol.List)
		auth.GET("/charts", charts.GetChartHandler)
	}

	return r
}
