// Package plot renders time-series data grouped by a categorical column as
// either a single combined line chart or a grid of per-group panels.
package plot

import (
	"fmt"
	"time"
)

// ColumnKind identifies the value type a frame column holds.
type ColumnKind int

const (
	// KindTime marks a column of timestamps.
	KindTime ColumnKind = iota
	// KindFloat marks a column of numeric values.
	KindFloat
	// KindString marks a column of string values.
	KindString
)

// column is a typed array of values. Exactly one of the value slices is
// populated, selected by kind.
type column struct {
	kind    ColumnKind
	times   []time.Time
	floats  []float64
	strings []string
}

// Frame is a column-oriented table. Columns are typed when they are added,
// so accessors can convert an absent or mistyped column into a single
// well-defined error instead of failing somewhere downstream.
type Frame struct {
	order []string
	cols  map[string]*column
}

// NewFrame creates an empty frame.
func NewFrame() *Frame {
	return &Frame{cols: map[string]*column{}}
}

// AddTimeColumn adds a timestamp column. Adding a column with an existing
// name replaces it.
func (f *Frame) AddTimeColumn(name string, values []time.Time) {
	f.add(name, &column{kind: KindTime, times: values})
}

// AddFloatColumn adds a numeric column.
func (f *Frame) AddFloatColumn(name string, values []float64) {
	f.add(name, &column{kind: KindFloat, floats: values})
}

// AddStringColumn adds a string column.
func (f *Frame) AddStringColumn(name string, values []string) {
	f.add(name, &column{kind: KindString, strings: values})
}

func (f *Frame) add(name string, c *column) {
	if _, ok := f.cols[name]; !ok {
		f.order = append(f.order, name)
	}
	f.cols[name] = c
}

// Has reports whether the frame contains a column with the given name.
func (f *Frame) Has(name string) bool {
	_, ok := f.cols[name]
	return ok
}

// Columns returns the column names in the order they were added.
func (f *Frame) Columns() []string {
	out := make([]string, len(f.order))
	copy(out, f.order)
	return out
}

// Len returns the number of rows, taken from the first column added.
// An empty frame has zero rows.
func (f *Frame) Len() int {
	if len(f.order) == 0 {
		return 0
	}
	c := f.cols[f.order[0]]
	switch c.kind {
	case KindTime:
		return len(c.times)
	case KindFloat:
		return len(c.floats)
	default:
		return len(c.strings)
	}
}

// Times returns the values of a timestamp column.
func (f *Frame) Times(name string) ([]time.Time, error) {
	c, err := f.typed(name, KindTime)
	if err != nil {
		return nil, err
	}
	return c.times, nil
}

// Floats returns the values of a numeric column.
func (f *Frame) Floats(name string) ([]float64, error) {
	c, err := f.typed(name, KindFloat)
	if err != nil {
		return nil, err
	}
	return c.floats, nil
}

// Strings returns the values of a string column.
func (f *Frame) Strings(name string) ([]string, error) {
	c, err := f.typed(name, KindString)
	if err != nil {
		return nil, err
	}
	return c.strings, nil
}

func (f *Frame) typed(name string, kind ColumnKind) (*column, error) {
	c, ok := f.cols[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
	}
	if c.kind != kind {
		return nil, fmt.Errorf("%w: %q", ErrColumnType, name)
	}
	return c, nil
}
