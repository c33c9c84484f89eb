package lpsolver

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aalvaropc/lpdash/internal/domain"
	"github.com/aalvaropc/lpdash/internal/infra/lpfile"
)

type cbcDialect struct{}

func (cbcDialect) args(modelPath, solutionPath string) []string {
	return []string{modelPath, "solve", "solu", solutionPath}
}

// parse reads a cbc solution file:
//
//	Optimal - objective value 10.00000000
//	      0 x                          4                       0
//	      1 y                          6                       0
//
// cbc only prints non-zero columns by default, so a missing column is zero.
// Values that violate a bound are prefixed with "**".
func (cbcDialect) parse(r io.Reader) (domain.Solution, error) {
	sc := bufio.NewScanner(r)

	var sol domain.Solution
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return domain.Solution{}, err
		}
		return domain.Solution{}, errors.New("cbc solution file is empty")
	}

	head := strings.TrimSpace(sc.Text())
	status := head
	if i := strings.Index(head, " - "); i >= 0 {
		status = strings.TrimSpace(head[:i])
	}
	sol.Raw = status
	sol.Status, sol.Termination = cbcTermination(status)

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		line = strings.TrimSpace(strings.TrimPrefix(line, "**"))
		f := strings.Fields(line)
		if len(f) < 3 {
			continue
		}
		v, err := strconv.ParseFloat(f[2], 64)
		if err != nil {
			return domain.Solution{}, fmt.Errorf("cbc value for %s %q: %w", f[1], f[2], err)
		}
		switch f[1] {
		case lpfile.VarX:
			sol.X = v
		case lpfile.VarY:
			sol.Y = v
		}
	}
	if err := sc.Err(); err != nil {
		return domain.Solution{}, err
	}
	return sol, nil
}

func cbcTermination(status string) (domain.SolverStatus, domain.Termination) {
	s := strings.ToLower(status)
	switch {
	case strings.HasPrefix(s, "optimal"):
		return domain.StatusOK, domain.TerminationOptimal
	case strings.Contains(s, "infeasible"):
		return domain.StatusOK, domain.TerminationInfeasible
	case strings.Contains(s, "unbounded"):
		return domain.StatusOK, domain.TerminationUnbounded
	case strings.HasPrefix(s, "stopped"):
		return domain.StatusWarning, domain.TerminationUndefined
	default:
		return domain.StatusError, domain.TerminationUndefined
	}
}
