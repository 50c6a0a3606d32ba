package plot

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Layout identifies how a figure arranges its series.
type Layout int

const (
	// LayoutCombined overlays every series on one set of axes with a
	// shared legend.
	LayoutCombined Layout = iota
	// LayoutGrid gives every series its own panel.
	LayoutGrid
)

// String returns a human-readable layout name.
func (l Layout) String() string {
	if l == LayoutGrid {
		return "grid"
	}
	return "combined"
}

// Figure is the drawable result of a render call. It owns all of its chart
// state, so concurrent renders never share drawing context. Callers inspect
// its structure through the accessors and produce output with WritePNG or
// SavePNG.
type Figure struct {
	layout Layout
	title  string
	rows   int
	cols   int
	hidden int
	names  []string
	charts []chart.Chart
}

// Layout returns the chosen layout.
func (f *Figure) Layout() Layout { return f.layout }

// Title returns the overall figure title.
func (f *Figure) Title() string { return f.title }

// GridDims returns the panel grid dimensions. A combined figure is a 1x1
// grid.
func (f *Figure) GridDims() (rows, cols int) { return f.rows, f.cols }

// Panels returns the number of visible panels.
func (f *Figure) Panels() int {
	if f.layout == LayoutCombined {
		return 1
	}
	return len(f.charts)
}

// Series returns the group labels in draw order, one per drawn line.
func (f *Figure) Series() []string {
	out := make([]string, len(f.names))
	copy(out, f.names)
	return out
}

// HiddenSlots returns the number of allocated grid cells without a panel,
// left blank because rows*cols exceeds the group count.
func (f *Figure) HiddenSlots() int { return f.hidden }

// WritePNG encodes the figure as PNG. Drawing-backend failures are
// returned unmodified.
func (f *Figure) WritePNG(w io.Writer) error {
	if f.layout == LayoutCombined {
		return f.charts[0].Render(chart.PNG, w)
	}
	img, err := f.compose()
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// SavePNG writes the figure to a file, creating or truncating it.
func (f *Figure) SavePNG(path string) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := f.WritePNG(out); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// compose renders every grid panel and places it into one image, with the
// overall title in a banner above the panels. Slots past the last group
// stay background-colored.
func (f *Figure) compose() (image.Image, error) {
	panelW := gridFigureWidth / f.cols
	total := image.NewRGBA(image.Rect(0, 0, f.cols*panelW, bannerHeight+f.rows*gridRowHeight))
	draw.Draw(total, total.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	banner, err := renderToImage(titleBanner(f.title, f.cols*panelW))
	if err != nil {
		return nil, err
	}
	draw.Draw(total, image.Rect(0, 0, f.cols*panelW, bannerHeight), banner, image.Point{}, draw.Over)

	for i := range f.charts {
		panel, err := renderToImage(f.charts[i])
		if err != nil {
			return nil, err
		}
		x := (i % f.cols) * panelW
		y := bannerHeight + (i/f.cols)*gridRowHeight
		draw.Draw(total, image.Rect(x, y, x+panelW, y+gridRowHeight), panel, image.Point{}, draw.Over)
	}
	return total, nil
}

// renderToImage rasterizes a single chart.
func renderToImage(ch chart.Chart) (image.Image, error) {
	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return png.Decode(&buf)
}

// titleBanner builds a text-only strip for the overall grid title. The
// chart carries one fully transparent series because the renderer refuses
// to draw without data.
func titleBanner(title string, width int) chart.Chart {
	invisible := chart.Style{
		StrokeWidth: 1,
		StrokeColor: drawing.Color{R: 0, G: 0, B: 0, A: 0},
	}
	return chart.Chart{
		Title:  title,
		Width:  width,
		Height: bannerHeight,
		XAxis:  chart.XAxis{Style: chart.Style{Hidden: true}},
		YAxis:  chart.YAxis{Style: chart.Style{Hidden: true}},
		Series: []chart.Series{
			chart.ContinuousSeries{
				XValues: []float64{0, 1},
				YValues: []float64{0, 1},
				Style:   invisible,
			},
		},
	}
}
