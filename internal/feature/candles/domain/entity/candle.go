// Package entity defines the domain models for the candles feature.
package entity

import "time"

// Candle represents OHLCV (Open, High, Low, Close, Volume) candlestick data
// for a stock symbol at a specific time interval.
type Candle struct {
	Symbol   string    // Stock ticker symbol (e.g., "AAPL", "7203.T")
	Interval string    // Time interval (e.g., "1day", "1week", "1month")
	Time     time.Time // Timestamp for the start of this candle period
	Open     float64   // Opening price
	High     float64   // Highest price during this period
	Low      float64   // Lowest price during this period
	Close    float64   // Closing price
	Volume   int64     // Trading volume
}

// Field returns the named numeric component of the candle. The second
// return value reports whether the name is a known field.
func (c Candle) Field(name string) (float64, bool) {
	switch name {
	case "open":
		return c.Open, true
	case "high":
		return c.High, true
	case "low":
		return c.Low, true
	case "close":
		return c.Close, true
	case "volume":
		return float64(c.Volume), true
	default:
		return 0, false
	}
}
