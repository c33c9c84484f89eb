package domain

import (
	"fmt"
	"strings"
)

// SolverName identifies an external LP backend.
type SolverName string

const (
	SolverGLPK SolverName = "glpk"
	SolverCBC  SolverName = "cbc"
)

// SupportedSolvers lists the backends in selection order.
func SupportedSolvers() []SolverName {
	return []SolverName{SolverGLPK, SolverCBC}
}

// ParseSolver normalizes s and checks it against the supported backends.
func ParseSolver(s string) (SolverName, error) {
	n := SolverName(strings.ToLower(strings.TrimSpace(s)))
	for _, sn := range SupportedSolvers() {
		if n == sn {
			return n, nil
		}
	}
	return "", &OpError{
		Op:   "domain.parse_solver",
		Kind: KindUnsupportedSolver,
		Err:  fmt.Errorf("unsupported solver %q: %w", s, ErrUnsupportedSolver),
	}
}
