package domain

import "testing"

func TestGridAtNearestSample(t *testing.T) {
	g := Grid{
		Xs: []float64{0, 1, 2},
		Ys: []float64{0, 1},
		Mask: [][]bool{
			{true, false, false},
			{false, false, true},
		},
	}

	if !g.At(0.2, 0.3) {
		t.Fatalf("expected (0.2, 0.3) to snap to (0, 0)")
	}
	if !g.At(1.6, 0.9) {
		t.Fatalf("expected (1.6, 0.9) to snap to (2, 1)")
	}
	if g.At(3, 0) || g.At(0, -0.1) {
		t.Fatalf("expected points outside the extent to be false")
	}
	if g.FeasibleCount() != 2 {
		t.Fatalf("expected 2 feasible samples, got %d", g.FeasibleCount())
	}
	if ext := g.Extent(); ext != (Window{XMin: 0, XMax: 2, YMin: 0, YMax: 1}) {
		t.Fatalf("unexpected extent %+v", ext)
	}
}

func TestSolveResultOptimalPoint(t *testing.T) {
	ok := SolveSucceeded(SolverGLPK, 4, 6, 10)
	if p := ok.OptimalPoint(); p == nil || *p != (Point{4, 6}) {
		t.Fatalf("expected point (4, 6), got %+v", p)
	}
	bad := SolveFailed(SolverCBC, TerminationInfeasible, "No solution found (infeasible)")
	if bad.OptimalPoint() != nil {
		t.Fatalf("expected no point for failures")
	}
}
