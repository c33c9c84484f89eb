package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/aalvaropc/lpdash/internal/domain"
	"github.com/aalvaropc/lpdash/internal/ports"
)

type SolveModel struct {
	solvers ports.SolverRegistry
	log     *slog.Logger
}

func NewSolveModel(solvers ports.SolverRegistry, log *slog.Logger) *SolveModel {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &SolveModel{solvers: solvers, log: log}
}

// Execute solves the dashboard model once with the named backend. It never
// returns an error: invocation problems and non-optimal outcomes both become
// a failed SolveResult carrying a status message.
func (uc *SolveModel) Execute(ctx context.Context, solverName string, p domain.Params) domain.SolveResult {
	name := domain.SolverName(strings.ToLower(strings.TrimSpace(solverName)))
	model := domain.BuildModel(p)

	uc.log.Info("solve.start",
		"solver", solverName,
		"max_x", p.XUpper, "max_y", p.YUpper,
		"rhs1", p.RHS1, "rhs2", p.RHS2, "rhs3", p.RHS3,
	)

	solver, err := uc.solvers.Lookup(name)
	if err != nil {
		uc.log.Warn("solve.unsupported", "solver", solverName, "err", err)
		return domain.SolveFailed(name, domain.TerminationUnsupported, solverError(err))
	}

	start := time.Now()
	sol, err := solver.Solve(ctx, model)
	elapsed := time.Since(start)

	if err != nil {
		uc.log.Error("solve.failed", "solver", solverName, "err", err, "elapsed_ms", elapsed.Milliseconds())
		return domain.SolveFailed(name, domain.TerminationError, solverError(err))
	}

	if !sol.Optimal() {
		uc.log.Info("solve.not_optimal",
			"solver", solverName,
			"status", string(sol.Status),
			"termination", string(sol.Termination),
			"raw", sol.Raw,
			"elapsed_ms", elapsed.Milliseconds(),
		)
		return domain.SolveFailed(name, sol.Termination, fmt.Sprintf("No solution found (%s)", sol.Termination))
	}

	obj := model.Objective(sol.X, sol.Y)
	uc.log.Info("solve.ok",
		"solver", solverName,
		"x", sol.X, "y", sol.Y, "objective", obj,
		"elapsed_ms", elapsed.Milliseconds(),
	)
	return domain.SolveSucceeded(name, sol.X, sol.Y, obj)
}

func solverError(err error) string {
	return "Solver Error: " + domain.Cause(err)
}
