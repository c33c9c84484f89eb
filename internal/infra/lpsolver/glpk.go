package lpsolver

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aalvaropc/lpdash/internal/domain"
)

type glpkDialect struct{}

func (glpkDialect) args(modelPath, solutionPath string) []string {
	return []string{"--lp", modelPath, "--write", solutionPath}
}

// parse reads the GLPK raw (glpk_write_sol) format:
//
//	c <comment>
//	s bas <rows> <cols> <primal> <dual> <obj>
//	i <row> <stat> <prim> <dual>
//	j <col> <stat> <prim> <dual>
//	e o f
//
// Columns follow their first appearance in the LP file, so x is 1 and y is 2.
func (glpkDialect) parse(r io.Reader) (domain.Solution, error) {
	var (
		sol     domain.Solution
		sawHead bool
		cols    = map[int]float64{}
	)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		f := strings.Fields(sc.Text())
		if len(f) == 0 {
			continue
		}
		switch f[0] {
		case "s":
			if len(f) < 7 || f[1] != "bas" {
				return domain.Solution{}, fmt.Errorf("unexpected glpk solution header %q", sc.Text())
			}
			sol.Status = domain.StatusOK
			sol.Termination = glpkTermination(f[4], f[5])
			sol.Raw = fmt.Sprintf("primal=%s dual=%s", glpkStatusName(f[4]), glpkStatusName(f[5]))
			sawHead = true
		case "j":
			if len(f) < 4 {
				return domain.Solution{}, fmt.Errorf("unexpected glpk column line %q", sc.Text())
			}
			idx, err := strconv.Atoi(f[1])
			if err != nil {
				return domain.Solution{}, fmt.Errorf("glpk column index %q: %w", f[1], err)
			}
			v, err := strconv.ParseFloat(f[3], 64)
			if err != nil {
				return domain.Solution{}, fmt.Errorf("glpk column value %q: %w", f[3], err)
			}
			cols[idx] = v
		}
	}
	if err := sc.Err(); err != nil {
		return domain.Solution{}, err
	}
	if !sawHead {
		return domain.Solution{}, errors.New("glpk solution header not found")
	}

	sol.X = cols[1]
	sol.Y = cols[2]
	return sol, nil
}

func glpkTermination(primal, dual string) domain.Termination {
	switch {
	case primal == "f" && dual == "f":
		return domain.TerminationOptimal
	case primal == "n" || primal == "i":
		return domain.TerminationInfeasible
	case primal == "f" && (dual == "n" || dual == "i"):
		return domain.TerminationUnbounded
	default:
		return domain.TerminationUndefined
	}
}

func glpkStatusName(s string) string {
	switch s {
	case "f":
		return "feasible"
	case "i":
		return "infeasible"
	case "n":
		return "no-feasible"
	case "u":
		return "undefined"
	default:
		return s
	}
}
