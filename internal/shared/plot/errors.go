package plot

import "errors"

// Errors returned by Frame accessors and RenderColumn.
// These represent malformed input and should be handled by upper layers.
var (
	// ErrMissingColumn is returned when a frame does not contain a column
	// with the requested name.
	ErrMissingColumn = errors.New("missing column")

	// ErrColumnType is returned when a column exists but does not hold the
	// requested value type.
	ErrColumnType = errors.New("column has unexpected type")
)
