package tui

import (
	"strings"
	"testing"

	"github.com/aalvaropc/lpdash/internal/domain"
	"github.com/aalvaropc/lpdash/internal/usecase/region"
)

func countRune(r *raster, ch rune) int {
	n := 0
	for _, row := range r.cells {
		for _, c := range row {
			if c.set && c.r == ch {
				n++
			}
		}
	}
	return n
}

func TestRasterize_MarkerDrawnLast(t *testing.T) {
	c := region.Build(domain.DefaultParams(), &domain.Point{X: 4, Y: 6})
	r := rasterize(c, 45, 23)

	// Window is [0, 11] on both axes.
	row, col := r.row(6), r.col(4)
	if row != 10 || col != 16 {
		t.Fatalf("unexpected marker cell row=%d col=%d", row, col)
	}
	if got := r.cells[row][col]; got.r != runeMarker || got.color != domain.ColorRed {
		t.Fatalf("expected red marker at optimum, got %q %+v", got.r, got.color)
	}
	if countRune(r, runeMarker) != 1 {
		t.Fatalf("expected exactly one marker cell")
	}
}

func TestRasterize_RegionShading(t *testing.T) {
	feasible := rasterize(region.Build(domain.DefaultParams(), nil), 45, 23)
	if countRune(feasible, runeRegion) == 0 {
		t.Fatalf("expected shaded cells for a feasible region")
	}
	if countRune(feasible, runeMarker) != 0 {
		t.Fatalf("expected no marker without a result")
	}

	empty := domain.Params{XUpper: 10, YUpper: 10, RHS1: -20, RHS2: 0, RHS3: 0}
	r := rasterize(region.Build(empty, nil), 45, 23)
	if n := countRune(r, runeRegion); n != 0 {
		t.Fatalf("expected no shaded cells for an empty region, got %d", n)
	}
}

func TestRasterize_ReferenceLines(t *testing.T) {
	r := rasterize(region.Build(domain.DefaultParams(), nil), 45, 23)

	// y axis at column 0, solid.
	for row := 0; row < r.h; row++ {
		if ch := r.cells[row][0].r; ch != runeVert && ch != runeCross {
			t.Fatalf("expected axis at col 0 row %d, got %q", row, ch)
		}
	}

	// x limit at 10 is dashed.
	col := r.col(10)
	dashed := 0
	for row := 0; row < r.h; row++ {
		if r.cells[row][col].r == runeVertD {
			dashed++
		}
	}
	if dashed == 0 {
		t.Fatalf("expected dashed cells on the x limit line")
	}
}

func TestRasterize_Deterministic(t *testing.T) {
	c := region.Build(domain.DefaultParams(), &domain.Point{X: 4, Y: 6})
	a := rasterize(c, 60, 20).Plain()
	b := rasterize(c, 60, 20).Plain()
	if a != b {
		t.Fatalf("expected identical rasters for identical charts")
	}
	if lines := strings.Split(a, "\n"); len(lines) != 20 {
		t.Fatalf("expected 20 rows, got %d", len(lines))
	}
}

func TestRenderChart_TooSmall(t *testing.T) {
	out := renderChart(region.Build(domain.DefaultParams(), nil), 8, 3)
	if !strings.Contains(out, "too small") {
		t.Fatalf("expected size hint, got %q", out)
	}
}

func TestLegend_ListsLabels(t *testing.T) {
	out := legend(region.Build(domain.DefaultParams(), &domain.Point{X: 4, Y: 6}))
	for _, w := range []string{"-x + 2y = 8.0", "x limit=10.0", "Feasible Region", "Optimal Solution"} {
		if !strings.Contains(out, w) {
			t.Fatalf("expected legend to contain %q, got %q", w, out)
		}
	}
}
