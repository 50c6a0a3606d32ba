// Package handler provides the HTTP handlers for the charts feature.
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"stock_charts/internal/api"
	"stock_charts/internal/feature/charts/usecase"
)

// ChartUsecase defines the chart rendering usecase interface.
// Following Go convention, the interface is defined by the consumer.
type ChartUsecase interface {
	RenderChartPNG(ctx context.Context, req usecase.ChartRequest) ([]byte, error)
}

// ChartHandler serves rendered chart images over HTTP.
type ChartHandler struct {
	uc ChartUsecase
}

// NewChartHandler creates a new ChartHandler instance.
func NewChartHandler(uc ChartUsecase) *ChartHandler {
	return &ChartHandler{uc: uc}
}

// GetChartHandler renders the requested symbols as a PNG line chart.
//
// Example:
// GET /charts?symbols=AAPL,MSFT&column=close&interval=1day&outputsize=200&threshold=10&line_width=2
func (h *ChartHandler) GetChartHandler(c *gin.Context) {
	symbols := splitSymbols(c.Query("symbols"))
	outputsize, _ := strconv.Atoi(c.DefaultQuery("outputsize", "200"))
	threshold, _ := strconv.Atoi(c.DefaultQuery("threshold", "0"))
	lineWidth, _ := strconv.ParseFloat(c.DefaultQuery("line_width", "0"), 64)

	png, err := h.uc.RenderChartPNG(c.Request.Context(), usecase.ChartRequest{
		Symbols:          symbols,
		Column:           c.Query("column"),
		Interval:         c.Query("interval"),
		OutputSize:       outputsize,
		SubplotThreshold: threshold,
		LineWidth:        lineWidth,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNoSymbols), errors.Is(err, usecase.ErrUnknownColumn):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, usecase.ErrNoData):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "image/png", png)
}

// splitSymbols parses the comma-separated symbols parameter, dropping empty
// entries and surrounding whitespace.
func splitSymbols(raw string) []string {
	var out []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
