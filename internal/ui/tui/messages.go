package tui

import "github.com/aalvaropc/lpdash/internal/domain"

// solveDoneMsg carries the solver and params it was started with so stale results can be dropped.
type solveDoneMsg struct {
	solver domain.SolverName
	params domain.Params
	result domain.SolveResult
}

type exportDoneMsg struct {
	path string
	err  error
}

type initDoneMsg struct {
	root string
	err  error
}
