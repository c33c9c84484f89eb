package domain

// Sense is the optimization direction.
type Sense string

const (
	Maximize Sense = "maximize"
	Minimize Sense = "minimize"
)

// Bound is the closed interval a variable may take.
type Bound struct {
	Lower float64
	Upper float64
}

// Constraint is a linear inequality A*x + B*y <= RHS.
type Constraint struct {
	Name string
	A    float64
	B    float64
	RHS  float64
}

// Eval returns the left-hand side at (x, y).
func (c Constraint) Eval(x, y float64) float64 {
	return c.A*x + c.B*y
}

// YAt solves the equality form of c for y. It is only meaningful when B != 0,
// which holds for every constraint of the dashboard model.
func (c Constraint) YAt(x float64) float64 {
	return (c.RHS - c.A*x) / c.B
}

// Model is the fixed-shape LP handed to a solver backend.
type Model struct {
	Name        string
	Sense       Sense
	ObjX        float64
	ObjY        float64
	X           Bound
	Y           Bound
	Constraints []Constraint
}

// BuildModel builds: maximize x + y subject to
//
//	0 <= x <= XUpper
//	0 <= y <= YUpper
//	C1: -x + 2y <= RHS1
//	C2: 2x +  y <= RHS2
//	C3: 2x -  y <= RHS3
func BuildModel(p Params) Model {
	return Model{
		Name:  "dashboard",
		Sense: Maximize,
		ObjX:  1,
		ObjY:  1,
		X:     Bound{Lower: 0, Upper: p.XUpper},
		Y:     Bound{Lower: 0, Upper: p.YUpper},
		Constraints: []Constraint{
			{Name: "C1", A: -1, B: 2, RHS: p.RHS1},
			{Name: "C2", A: 2, B: 1, RHS: p.RHS2},
			{Name: "C3", A: 2, B: -1, RHS: p.RHS3},
		},
	}
}

// Objective evaluates the objective at (x, y).
func (m Model) Objective(x, y float64) float64 {
	return m.ObjX*x + m.ObjY*y
}

// Satisfies reports whether (x, y) meets every bound and constraint of m
// within tol.
func (m Model) Satisfies(x, y, tol float64) bool {
	if x < m.X.Lower-tol || x > m.X.Upper+tol {
		return false
	}
	if y < m.Y.Lower-tol || y > m.Y.Upper+tol {
		return false
	}
	for _, c := range m.Constraints {
		if c.Eval(x, y) > c.RHS+tol {
			return false
		}
	}
	return true
}

// Feasible is the exact pointwise predicate used for the shaded region.
func Feasible(p Params, x, y float64) bool {
	return x >= 0 && x <= p.XUpper &&
		y >= 0 && y <= p.YUpper &&
		-x+2*y <= p.RHS1 &&
		2*x+y <= p.RHS2 &&
		2*x-y <= p.RHS3
}
