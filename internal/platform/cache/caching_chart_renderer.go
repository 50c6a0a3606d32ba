// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"stock_charts/internal/feature/charts/usecase"
)

// ChartRenderer is the rendering interface decorated by the cache.
type ChartRenderer interface {
	RenderChartPNG(ctx context.Context, req usecase.ChartRequest) ([]byte, error)
}

// CachingChartRenderer decorates a ChartRenderer with Redis caching of the
// rendered PNG bytes. It implements the decorator pattern, transparently
// adding caching without modifying the underlying renderer.
//
// Rendering the same chart twice is pure waste: the output depends only on
// the stored candles, which change at most once per ingest run.
type CachingChartRenderer struct {
	inner     ChartRenderer
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// NewCachingChartRenderer decorates a ChartRenderer with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses
// "charts".
func NewCachingChartRenderer(rdb *redis.Client, ttl time.Duration, inner ChartRenderer, namespace string) *CachingChartRenderer {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "charts"
	}
	return &CachingChartRenderer{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// RenderChartPNG returns the cached PNG when present, falling back to the
// underlying renderer and storing the result best-effort.
func (c *CachingChartRenderer) RenderChartPNG(ctx context.Context, req usecase.ChartRequest) ([]byte, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.RenderChartPNG(ctx, req)
	}

	key := c.cacheKey(req)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		return b, nil
	}

	// 2) Fallback to the renderer
	out, err := c.inner.RenderChartPNG(ctx, req)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	_ = c.rdb.Set(ctx, key, out, c.ttl).Err()

	return out, nil
}

// cacheKey generates a cache key covering every request field that affects
// the rendered image.
func (c *CachingChartRenderer) cacheKey(req usecase.ChartRequest) string {
	symbols := make([]string, 0, len(req.Symbols))
	for _, s := range req.Symbols {
		symbols = append(symbols, safe(s))
	}
	return fmt.Sprintf("%s:%s:%s:%s:%d:%d:%g",
		c.namespace,
		strings.Join(symbols, ","),
		safe(req.Column),
		safe(req.Interval),
		req.OutputSize,
		req.SubplotThreshold,
		req.LineWidth,
	)
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
