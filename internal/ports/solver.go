package ports

import (
	"context"

	"github.com/aalvaropc/lpdash/internal/domain"
)

// Solver runs a model through one external LP backend.
// A returned error means the backend could not be invoked or its output could
// not be read; a non-optimal outcome is reported through the Solution.
type Solver interface {
	Name() domain.SolverName
	Solve(ctx context.Context, m domain.Model) (domain.Solution, error)
}

// SolverRegistry resolves a backend by name.
type SolverRegistry interface {
	Lookup(name domain.SolverName) (Solver, error)
}
