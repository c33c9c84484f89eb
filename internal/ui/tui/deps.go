package tui

import (
	"context"
	"log/slog"

	"github.com/aalvaropc/lpdash/internal/domain"
	"github.com/aalvaropc/lpdash/internal/ports"
)

// SolverCatalog exposes the configured backends to the solver selector.
type SolverCatalog interface {
	Names() []domain.SolverName
	Available(name domain.SolverName) bool
}

type Solver interface {
	Execute(ctx context.Context, solverName string, p domain.Params) domain.SolveResult
}

type ChartBuilder interface {
	Execute(p domain.Params, res *domain.SolveResult) domain.Chart
}

type ChartExporter interface {
	Execute(c domain.Chart, name, format string) (string, error)
}

type Deps struct {
	Config      domain.Config
	Solvers     SolverCatalog
	SolveModel  Solver
	RenderChart ChartBuilder
	ExportChart ChartExporter

	Locator     ports.ConfigLocator
	Initializer ports.ConfigInitializer
	Root        string

	Logger *slog.Logger
	Debug  bool
}
