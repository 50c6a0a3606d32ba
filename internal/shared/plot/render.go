package plot

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/wcharczuk/go-chart/v2"
)

const (
	// DefaultGroupColumn is the column holding group identifiers.
	DefaultGroupColumn = "symbol"
	// DefaultTimeColumn is the column holding timestamps.
	DefaultTimeColumn = "datetime"
	// DefaultSubplotThreshold is the group count above which the layout
	// switches from a combined chart to a grid of panels.
	DefaultSubplotThreshold = 10

	// maxGridColumns caps panel width at 3 columns for readability on
	// typical displays.
	maxGridColumns = 3

	combinedWidth  = 1000
	combinedHeight = 600

	// Grid figures keep a fixed total width and grow by a fixed height
	// unit per row, so tall grids remain readable.
	gridFigureWidth = 1500
	gridRowHeight   = 500
	bannerHeight    = 60

	dateFormat = "2006-01-02"
)

// Options configures a render call. The zero value selects all defaults.
type Options struct {
	// GroupColumn names the column whose distinct values partition the
	// frame into series. Defaults to "symbol".
	GroupColumn string

	// TimeColumn names the column plotted on the x-axis. Defaults to
	// "datetime".
	TimeColumn string

	// SubplotThreshold is the maximum number of groups drawn on shared
	// axes before the render switches to one panel per group.
	// Defaults to 10.
	SubplotThreshold int

	// Series is forwarded verbatim to every line draw. Values are not
	// validated here.
	Series chart.Style
}

func (o Options) withDefaults() Options {
	if o.GroupColumn == "" {
		o.GroupColumn = DefaultGroupColumn
	}
	if o.TimeColumn == "" {
		o.TimeColumn = DefaultTimeColumn
	}
	if o.SubplotThreshold == 0 {
		o.SubplotThreshold = DefaultSubplotThreshold
	}
	return o
}

// series is one group's slice of the frame, in row order.
type series struct {
	name   string
	times  []time.Time
	values []float64
}

// RenderColumn draws columnName over time, one line per distinct value of the
// group column. With at most SubplotThreshold groups all lines share one set
// of axes with a legend; above the threshold each group gets its own panel in
// a grid of at most three columns.
//
// The frame must contain the configured time and group columns; otherwise
// ErrMissingColumn is returned before anything is drawn. Groups are drawn in
// the order their values are first encountered in the frame.
func RenderColumn(f *Frame, columnName string, opts Options) (*Figure, error) {
	opts = opts.withDefaults()

	// Precondition: time and group columns must exist before any other work.
	if !f.Has(opts.TimeColumn) || !f.Has(opts.GroupColumn) {
		return nil, fmt.Errorf("%w: frame must have %q and %q columns",
			ErrMissingColumn, opts.TimeColumn, opts.GroupColumn)
	}

	groups, err := f.Strings(opts.GroupColumn)
	if err != nil {
		return nil, err
	}
	times, err := f.Times(opts.TimeColumn)
	if err != nil {
		return nil, err
	}
	values, err := f.Floats(columnName)
	if err != nil {
		return nil, err
	}

	ss := splitByGroup(groups, times, values)
	title := fmt.Sprintf("`%s` Over Time by Symbol", columnName)

	if len(ss) > opts.SubplotThreshold {
		slog.Warn("large number of symbols, switching to subplot view",
			"symbols", len(ss), "threshold", opts.SubplotThreshold)
		return newGridFigure(title, columnName, ss, opts.Series), nil
	}
	return newCombinedFigure(title, columnName, ss, opts.Series), nil
}

// splitByGroup partitions rows by group value, preserving the order groups
// are first encountered and the row order within each group.
func splitByGroup(groups []string, times []time.Time, values []float64) []series {
	index := map[string]int{}
	var out []series
	for i, g := range groups {
		at, ok := index[g]
		if !ok {
			at = len(out)
			index[g] = at
			out = append(out, series{name: g})
		}
		out[at].times = append(out[at].times, times[i])
		out[at].values = append(out[at].values, values[i])
	}
	return out
}

// lineSeries builds the drawable line for one group, applying the caller's
// extra draw options unchanged.
func lineSeries(s series, style chart.Style) chart.TimeSeries {
	return chart.TimeSeries{
		Name:    s.name,
		XValues: s.times,
		YValues: s.values,
		Style:   style,
	}
}

// timeAxis is the shared x-axis treatment: "Date" label, date-formatted
// ticks rotated 45 degrees, and major grid lines.
func timeAxis() chart.XAxis {
	return chart.XAxis{
		Name:           "Date",
		ValueFormatter: chart.TimeValueFormatterWithFormat(dateFormat),
		TickStyle:      chart.Style{TextRotationDegrees: 45.0},
		GridMajorStyle: chart.Style{
			StrokeColor: chart.ColorAlternateGray,
			StrokeWidth: 1.0,
		},
	}
}

// valueAxis is the shared y-axis treatment: the plotted column as label and
// major grid lines.
func valueAxis(columnName string) chart.YAxis {
	return chart.YAxis{
		Name: columnName,
		GridMajorStyle: chart.Style{
			StrokeColor: chart.ColorAlternateGray,
			StrokeWidth: 1.0,
		},
	}
}

// newCombinedFigure overlays every group on one set of axes with a legend
// placed past the right edge of the plot area.
func newCombinedFigure(title, columnName string, ss []series, style chart.Style) *Figure {
	drawn := make([]chart.Series, 0, len(ss))
	names := make([]string, 0, len(ss))
	for _, s := range ss {
		drawn = append(drawn, lineSeries(s, style))
		names = append(names, s.name)
	}

	fig := &Figure{
		layout: LayoutCombined,
		title:  title,
		rows:   1,
		cols:   1,
		names:  names,
		charts: []chart.Chart{{
			Title:  title,
			Width:  combinedWidth,
			Height: combinedHeight,
			Background: chart.Style{
				// Right padding reserves room so the legend never overlaps data.
				Padding: chart.Box{Top: 20, Left: 20, Right: 140, Bottom: 20},
			},
			XAxis:  timeAxis(),
			YAxis:  valueAxis(columnName),
			Series: drawn,
		}},
	}
	ch := &fig.charts[0]
	ch.Elements = []chart.Renderable{chart.Legend(ch)}
	return fig
}

// newGridFigure draws one panel per group. Column count is capped at
// maxGridColumns; the hidden slot count is computed explicitly from the
// group count and the grid dimensions.
func newGridFigure(title, columnName string, ss []series, style chart.Style) *Figure {
	g := len(ss)
	cols := min(maxGridColumns, g)
	rows := (g + cols - 1) / cols

	charts := make([]chart.Chart, 0, g)
	names := make([]string, 0, g)
	for _, s := range ss {
		charts = append(charts, chart.Chart{
			Title:  s.name,
			Width:  gridFigureWidth / cols,
			Height: gridRowHeight,
			XAxis:  timeAxis(),
			YAxis:  valueAxis(columnName),
			Series: []chart.Series{lineSeries(s, style)},
		})
		names = append(names, s.name)
	}

	return &Figure{
		layout: LayoutGrid,
		title:  title,
		rows:   rows,
		cols:   cols,
		hidden: rows*cols - g,
		names:  names,
		charts: charts,
	}
}
