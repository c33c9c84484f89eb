// Package region builds the feasible-region chart description for a set of
// dashboard parameters. Everything here is a pure function of its inputs.
package region

import (
	"fmt"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/aalvaropc/lpdash/internal/domain"
)

const (
	// Resolution is the number of samples per axis.
	Resolution = 400
	// gridMargin extends the sampled area past the bounds.
	gridMargin = 2
	// windowMargin extends the visible area past the bounds.
	windowMargin = 1

	rowBands = 8
)

var lineColors = []domain.Color{domain.ColorBlue, domain.ColorGreen, domain.ColorOrange}

// Linspace returns n evenly spaced values over [start, stop], endpoints included.
func Linspace(start, stop float64, n int) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{start}
	}
	out := make([]float64, n)
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[n-1] = stop
	return out
}

// SampleGrid evaluates the feasibility predicate over
// [0, XUpper+2] x [0, YUpper+2] at n points per axis.
func SampleGrid(p domain.Params, n int) domain.Grid {
	g := domain.Grid{
		Xs:   Linspace(0, p.XUpper+gridMargin, n),
		Ys:   Linspace(0, p.YUpper+gridMargin, n),
		Mask: make([][]bool, n),
	}

	// Rows only read Xs/Ys and write their own slice.
	var eg errgroup.Group
	band := (n + rowBands - 1) / rowBands
	for lo := 0; lo < n; lo += band {
		lo, hi := lo, min(lo+band, n)
		eg.Go(func() error {
			for r := lo; r < hi; r++ {
				y := g.Ys[r]
				row := make([]bool, len(g.Xs))
				for c, x := range g.Xs {
					row[c] = domain.Feasible(p, x, y)
				}
				g.Mask[r] = row
			}
			return nil
		})
	}
	// Workers never return an error; Wait only joins them.
	_ = eg.Wait()

	return g
}

// Build returns the chart for p, with a marker when opt is non-nil.
func Build(p domain.Params, opt *domain.Point) domain.Chart {
	grid := SampleGrid(p, Resolution)
	model := domain.BuildModel(p)

	lines := make([]domain.Line, 0, len(model.Constraints))
	for i, c := range model.Constraints {
		ys := make([]float64, len(grid.Xs))
		for j, x := range grid.Xs {
			ys[j] = c.YAt(x)
		}
		lines = append(lines, domain.Line{
			Label:      fmt.Sprintf("%s = %s", lhsLabel(c), num(c.RHS)),
			Constraint: c,
			Color:      lineColors[i%len(lineColors)],
			Xs:         grid.Xs,
			Ys:         ys,
		})
	}

	ch := domain.Chart{
		Params: p,
		Grid:   grid,
		Region: domain.ColorRegion,
		Lines:  lines,
		RefLines: []domain.RefLine{
			{Orientation: domain.Vertical, At: 0, Color: domain.ColorBlack, Width: 1},
			{Orientation: domain.Horizontal, At: 0, Color: domain.ColorBlack, Width: 1},
			{Label: "x limit=" + num(p.XUpper), Orientation: domain.Vertical, At: p.XUpper, Color: domain.ColorGray, Dashed: true, Width: 1.5},
			{Label: "y limit=" + num(p.YUpper), Orientation: domain.Horizontal, At: p.YUpper, Color: domain.ColorGray, Dashed: true, Width: 1.5},
		},
		Window: domain.Window{
			XMin: 0, XMax: p.XUpper + windowMargin,
			YMin: 0, YMax: p.YUpper + windowMargin,
		},
		XLabel: "x",
		YLabel: "y",
	}

	if opt != nil {
		ch.Marker = &domain.Marker{
			Label:  "Optimal Solution",
			Point:  *opt,
			Fill:   domain.ColorRed,
			Border: domain.ColorWhite,
			Size:   150,
		}
	}
	return ch
}

// lhsLabel renders the left-hand side the way the sidebar labels read, e.g. "-x + 2y".
func lhsLabel(c domain.Constraint) string {
	return term(c.A, "x", true) + term(c.B, "y", false)
}

func term(coef float64, name string, first bool) string {
	var s string
	switch {
	case coef < 0 && first:
		s = "-"
	case coef < 0:
		s = " - "
	case !first:
		s = " + "
	}
	if a := abs(coef); a != 1 {
		s += strconv.FormatFloat(a, 'g', -1, 64)
	}
	return s + name
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// num prints a value the way the sliders show it: always with a decimal.
func num(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	for _, r := range s {
		if r == '.' || r == 'e' {
			return s
		}
	}
	return s + ".0"
}
