package tui

import (
	"context"
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/lpdash/internal/domain"
)

func cmdSolve(deps Deps, solver domain.SolverName, p domain.Params) tea.Cmd {
	return func() tea.Msg {
		if deps.SolveModel == nil {
			return solveDoneMsg{
				solver: solver,
				params: p,
				result: domain.SolveFailed(solver, domain.TerminationError, "Solver Error: solver is not configured"),
			}
		}
		res := deps.SolveModel.Execute(context.Background(), string(solver), p)
		return solveDoneMsg{solver: solver, params: p, result: res}
	}
}

func cmdExport(deps Deps, c domain.Chart) tea.Cmd {
	return func() tea.Msg {
		if deps.ExportChart == nil {
			return exportDoneMsg{err: errors.New("ExportChart is nil")}
		}
		format := strings.TrimSpace(deps.Config.Chart.Format)
		if format == "" {
			format = "png"
		}
		path, err := deps.ExportChart.Execute(c, "feasible region", format)
		return exportDoneMsg{path: path, err: err}
	}
}

func cmdInitWorkspace(deps Deps) tea.Cmd {
	return func() tea.Msg {
		if deps.Initializer == nil {
			return initDoneMsg{root: deps.Root, err: errors.New("Initializer is nil")}
		}
		err := deps.Initializer.Init(deps.Root, false)
		return initDoneMsg{root: deps.Root, err: err}
	}
}
