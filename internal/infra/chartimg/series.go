package chartimg

import (
	"errors"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/aalvaropc/lpdash/internal/domain"
)

// maskSeries shades the feasible cells of a grid, clipped to the window.
// Each sample owns a cell of extent/n on each axis, like an image drawn over
// the grid extent.
type maskSeries struct {
	grid   domain.Grid
	window domain.Window
	color  drawing.Color
}

func (s maskSeries) GetName() string           { return "Feasible Region" }
func (s maskSeries) GetYAxis() chart.YAxisType { return chart.YAxisPrimary }
func (s maskSeries) GetStyle() chart.Style     { return chart.Style{FillColor: s.color} }

func (s maskSeries) Validate() error {
	if len(s.grid.Mask) != len(s.grid.Ys) {
		return errors.New("mask rows do not match grid ys")
	}
	return nil
}

func (s maskSeries) Render(r chart.Renderer, box chart.Box, xr, yr chart.Range, _ chart.Style) {
	nx, ny := len(s.grid.Xs), len(s.grid.Ys)
	if nx == 0 || ny == 0 {
		return
	}
	ext := s.grid.Extent()
	cw := (ext.XMax - ext.XMin) / float64(nx)
	ch := (ext.YMax - ext.YMin) / float64(ny)

	px := func(x float64) int {
		x = math.Max(s.window.XMin, math.Min(s.window.XMax, x))
		return box.Left + xr.Translate(x)
	}
	py := func(y float64) int {
		y = math.Max(s.window.YMin, math.Min(s.window.YMax, y))
		return box.Bottom - yr.Translate(y)
	}

	r.SetFillColor(s.color)
	r.SetStrokeWidth(0)
	drew := false

	for row := 0; row < ny; row++ {
		lo := ext.YMin + float64(row)*ch
		if lo >= s.window.YMax {
			break
		}
		top, bottom := py(lo+ch), py(lo)
		if top == bottom {
			continue
		}

		mask := s.grid.Mask[row]
		for col := 0; col < nx; {
			if !mask[col] {
				col++
				continue
			}
			start := col
			for col < nx && mask[col] {
				col++
			}
			left := px(ext.XMin + float64(start)*cw)
			right := px(ext.XMin + float64(col)*cw)
			if left == right {
				continue
			}
			r.MoveTo(left, top)
			r.LineTo(right, top)
			r.LineTo(right, bottom)
			r.LineTo(left, bottom)
			r.LineTo(left, top)
			r.Close()
			drew = true
		}
	}
	if drew {
		r.Fill()
	}
	r.ResetStyle()
}

// markerSeries draws the optimal point as a filled circle with a border.
type markerSeries struct {
	marker domain.Marker
}

func (s markerSeries) GetName() string           { return s.marker.Label }
func (s markerSeries) GetYAxis() chart.YAxisType { return chart.YAxisPrimary }

func (s markerSeries) GetStyle() chart.Style {
	return chart.Style{
		FillColor:   toColor(s.marker.Fill),
		StrokeColor: toColor(s.marker.Border),
		StrokeWidth: 2,
		DotColor:    toColor(s.marker.Fill),
		DotWidth:    s.radius(),
	}
}

func (s markerSeries) Validate() error {
	if math.IsNaN(s.marker.Point.X) || math.IsNaN(s.marker.Point.Y) {
		return errors.New("marker point is NaN")
	}
	return nil
}

// radius converts a scatter size (area in points²) to a pixel radius.
func (s markerSeries) radius() float64 {
	return math.Max(4, math.Sqrt(s.marker.Size)*0.6)
}

func (s markerSeries) Render(r chart.Renderer, box chart.Box, xr, yr chart.Range, _ chart.Style) {
	x := box.Left + xr.Translate(s.marker.Point.X)
	y := box.Bottom - yr.Translate(s.marker.Point.Y)

	st := s.GetStyle()
	r.SetFillColor(st.FillColor)
	r.SetStrokeColor(st.StrokeColor)
	r.SetStrokeWidth(st.StrokeWidth)
	r.SetStrokeDashArray(nil)
	r.Circle(s.radius(), x, y)
	r.FillStroke()
	r.ResetStyle()
}
