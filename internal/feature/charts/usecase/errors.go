// Package usecase implements the business logic for the charts feature.
package usecase

import "errors"

var (
	// ErrNoSymbols is returned when a chart is requested without any symbols.
	ErrNoSymbols = errors.New("no symbols specified")

	// ErrUnknownColumn is returned when the requested column is not a
	// plottable candle field.
	ErrUnknownColumn = errors.New("unknown chart column")

	// ErrNoData is returned when none of the requested symbols have candle
	// data for the requested interval.
	ErrNoData = errors.New("no candle data for requested symbols")
)
