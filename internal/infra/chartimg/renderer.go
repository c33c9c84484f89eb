package chartimg

import (
	"fmt"
	"io"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/aalvaropc/lpdash/internal/domain"
	"github.com/aalvaropc/lpdash/internal/ports"
)

const (
	FormatPNG = "png"
	FormatSVG = "svg"

	defaultWidth  = 1000
	defaultHeight = 700
)

// Renderer draws chart descriptions with go-chart.
type Renderer struct {
	width  int
	height int
}

type Option func(*Renderer)

func WithSize(width, height int) Option {
	return func(r *Renderer) {
		if width > 0 {
			r.width = width
		}
		if height > 0 {
			r.height = height
		}
	}
}

func New(opts ...Option) *Renderer {
	r := &Renderer{width: defaultWidth, height: defaultHeight}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var _ ports.ChartRenderer = (*Renderer)(nil)

// Render encodes c as png or svg.
func (r *Renderer) Render(w io.Writer, c domain.Chart, format string) error {
	var provider chart.RendererProvider
	switch strings.ToLower(format) {
	case FormatPNG, "":
		provider = chart.PNG
	case FormatSVG:
		provider = chart.SVG
	default:
		return fmt.Errorf("unsupported chart format %q (expected png|svg)", format)
	}

	ch := r.build(c)
	if err := ch.Render(provider, w); err != nil {
		return fmt.Errorf("go-chart render: %w", err)
	}
	return nil
}

// build maps the chart description onto a go-chart Chart. Series order is
// the z-order: region, constraint lines, reference lines, marker.
func (r *Renderer) build(c domain.Chart) chart.Chart {
	win := c.Window
	grid := chart.Style{
		StrokeColor:     drawing.Color{R: 0x80, G: 0x80, B: 0x80, A: 0x99},
		StrokeWidth:     1,
		StrokeDashArray: []float64{1, 3},
	}

	series := []chart.Series{
		maskSeries{grid: c.Grid, window: win, color: toColor(c.Region)},
	}
	var entries []legendEntry

	for _, l := range c.Lines {
		style := chart.Style{StrokeColor: toColor(l.Color), StrokeWidth: 2}
		entries = append(entries, legendEntry{label: l.Label, style: style})

		x0, y0, x1, y1, ok := clipLine(l.Constraint, win)
		if !ok {
			continue
		}
		series = append(series, chart.ContinuousSeries{
			Name:    l.Label,
			Style:   style,
			XValues: []float64{x0, x1},
			YValues: []float64{y0, y1},
		})
	}

	for _, ref := range c.RefLines {
		style := chart.Style{StrokeColor: toColor(ref.Color), StrokeWidth: ref.Width}
		if ref.Dashed {
			style.StrokeDashArray = []float64{6, 4}
		}
		if ref.Label != "" {
			entries = append(entries, legendEntry{label: ref.Label, style: style})
		}

		var xs, ys []float64
		switch ref.Orientation {
		case domain.Vertical:
			if ref.At < win.XMin || ref.At > win.XMax {
				continue
			}
			xs, ys = []float64{ref.At, ref.At}, []float64{win.YMin, win.YMax}
		case domain.Horizontal:
			if ref.At < win.YMin || ref.At > win.YMax {
				continue
			}
			xs, ys = []float64{win.XMin, win.XMax}, []float64{ref.At, ref.At}
		}
		series = append(series, chart.ContinuousSeries{Name: ref.Label, Style: style, XValues: xs, YValues: ys})
	}

	if m := c.Marker; m != nil {
		ms := markerSeries{marker: *m}
		series = append(series, ms)
		entries = append(entries, legendEntry{label: m.Label, style: ms.GetStyle(), dot: true})
	}

	ch := chart.Chart{
		Width:  r.width,
		Height: r.height,
		Background: chart.Style{
			Padding: chart.Box{Top: 20, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{
			Name:           c.XLabel,
			Range:          &chart.ContinuousRange{Min: win.XMin, Max: win.XMax},
			GridMajorStyle: grid,
		},
		YAxis: chart.YAxis{
			Name:           c.YLabel,
			Range:          &chart.ContinuousRange{Min: win.YMin, Max: win.YMax},
			GridMajorStyle: grid,
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{legend(entries)}
	return ch
}

func toColor(c domain.Color) drawing.Color {
	return drawing.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

// clipLine returns the part of a constraint boundary inside win
// (Liang-Barsky on the segment spanning the window's x range).
func clipLine(c domain.Constraint, win domain.Window) (x0, y0, x1, y1 float64, ok bool) {
	if c.B == 0 {
		if c.A == 0 {
			return 0, 0, 0, 0, false
		}
		x := c.RHS / c.A
		if x < win.XMin || x > win.XMax {
			return 0, 0, 0, 0, false
		}
		return x, win.YMin, x, win.YMax, true
	}

	x0, x1 = win.XMin, win.XMax
	y0, y1 = c.YAt(x0), c.YAt(x1)
	dx, dy := x1-x0, y1-y0

	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, x0 - win.XMin},
		{dx, win.XMax - x0},
		{-dy, y0 - win.YMin},
		{dy, win.YMax - y0},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return 0, 0, 0, 0, false
			}
			if t > t0 {
				t0 = t
			}
		} else {
			if t < t0 {
				return 0, 0, 0, 0, false
			}
			if t < t1 {
				t1 = t
			}
		}
	}
	if t1 <= t0 {
		return 0, 0, 0, 0, false
	}
	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true
}
