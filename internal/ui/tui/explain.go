package tui

import (
	"strconv"

	"github.com/aalvaropc/lpdash/internal/app/template"
	"github.com/aalvaropc/lpdash/internal/domain"
)

const modelTemplate = `Maximize    Z = x + y

Subject to
  C1:  -x + 2y ≤ {{rhs1}}
  C2:  2x +  y ≤ {{rhs2}}
  C3:  2x -  y ≤ {{rhs3}}

Bounds
  0 ≤ x ≤ {{max_x}}
  0 ≤ y ≤ {{max_y}}

Solver: {{solver}}`

const componentsText = `Components

  Objective function   Z = x + y is the quantity being maximized. Its level
                       lines are diagonals and the optimum sits where the
                       highest one still touches the feasible region.
  Decision variables   x and y, continuous and bounded to [0, max_x] and
                       [0, max_y].
  Constraints          Each constraint is a half-plane. C1 bounds y from
                       above by the line y = (rhs1 + x) / 2, C2 by
                       y = rhs2 - 2x, and C3 asks y ≥ 2x - rhs3.
  Feasible region      The shaded area: the points satisfying every
                       constraint and bound at once. When it is empty the
                       solver reports the model as infeasible.
  Optimal solution     For a linear objective the optimum, when it exists,
                       is attained at a vertex of the feasible region.`

func explainVars(p domain.Params, solver domain.SolverName) map[string]string {
	vars := map[string]string{"solver": string(solver)}
	for _, spec := range domain.ParamSpecs() {
		vars[spec.Key] = strconv.FormatFloat(p.Get(spec.Field), 'f', 1, 64)
	}
	return vars
}

// explanation returns the model text with the current values interpolated.
func explanation(p domain.Params, solver domain.SolverName) string {
	return template.MustRender(modelTemplate, explainVars(p, solver)) + "\n\n" + componentsText
}
