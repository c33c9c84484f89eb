package lpsolver

import (
	"context"
	"math"
	"os/exec"
	"testing"

	"github.com/aalvaropc/lpdash/internal/domain"
)

// These run the real binaries and are skipped when they are not installed.
func TestInstalledSolvers_Scenarios(t *testing.T) {
	backends := []*Backend{NewGLPK("glpsol"), NewCBC("cbc")}

	cases := []struct {
		name       string
		p          domain.Params
		term       domain.Termination
		x, y, want float64
	}{
		{name: "c1 c2 vertex", p: domain.Params{XUpper: 10, YUpper: 10, RHS1: 8, RHS2: 14, RHS3: 10}, term: domain.TerminationOptimal, x: 4, y: 6, want: 10},
		{name: "bounds bind", p: domain.Params{XUpper: 5, YUpper: 5, RHS1: 8, RHS2: 14, RHS3: 10}, term: domain.TerminationOptimal, x: 4.5, y: 5, want: 9.5},
		{name: "rhs2 zero", p: domain.Params{XUpper: 10, YUpper: 10, RHS1: 8, RHS2: 0, RHS3: 10}, term: domain.TerminationOptimal, x: 0, y: 0, want: 0},
		{name: "empty region", p: domain.Params{XUpper: 10, YUpper: 10, RHS1: 8, RHS2: -5, RHS3: 10}, term: domain.TerminationInfeasible},
	}

	const tol = 1e-6
	for _, b := range backends {
		if _, err := exec.LookPath(b.Binary()); err != nil {
			t.Logf("skipping %s: %s not installed", b.Name(), b.Binary())
			continue
		}
		for _, c := range cases {
			t.Run(string(b.Name())+"/"+c.name, func(t *testing.T) {
				m := domain.BuildModel(c.p)
				sol, err := b.Solve(context.Background(), m)
				if err != nil {
					t.Fatalf("Solve error: %v", err)
				}
				if sol.Termination != c.term {
					t.Fatalf("expected %s, got %s (%s)", c.term, sol.Termination, sol.Raw)
				}
				if c.term != domain.TerminationOptimal {
					return
				}
				if !m.Satisfies(sol.X, sol.Y, tol) {
					t.Fatalf("solution (%v, %v) violates the model", sol.X, sol.Y)
				}
				if math.Abs(sol.X-c.x) > tol || math.Abs(sol.Y-c.y) > tol || math.Abs(m.Objective(sol.X, sol.Y)-c.want) > tol {
					t.Fatalf("expected (%v, %v), got (%v, %v)", c.x, c.y, sol.X, sol.Y)
				}
			})
		}
	}
}
