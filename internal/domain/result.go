package domain

// Termination is the solver's classification of why it stopped.
type Termination string

const (
	TerminationOptimal     Termination = "optimal"
	TerminationInfeasible  Termination = "infeasible"
	TerminationUnbounded   Termination = "unbounded"
	TerminationUndefined   Termination = "undefined"
	TerminationError       Termination = "error"
	TerminationUnsupported Termination = "unsupported"
)

// SolverStatus is the backend's overall run status, independent of termination.
type SolverStatus string

const (
	StatusOK      SolverStatus = "ok"
	StatusWarning SolverStatus = "warning"
	StatusError   SolverStatus = "error"
)

// Solution is what a backend reports for a single run.
type Solution struct {
	Status      SolverStatus
	Termination Termination
	X           float64
	Y           float64
	// Raw is the backend's own status text, kept for messages.
	Raw string
}

// Optimal reports whether the backend found a proven optimum.
func (s Solution) Optimal() bool {
	return s.Status == StatusOK && s.Termination == TerminationOptimal
}

// Point is a location in the (x, y) plane.
type Point struct {
	X float64
	Y float64
}

// SolveResult is either a success carrying the optimum, or a failure carrying
// a user-facing message.
type SolveResult struct {
	Success     bool        `json:"success"`
	Solver      SolverName  `json:"solver"`
	X           float64     `json:"x"`
	Y           float64     `json:"y"`
	Objective   float64     `json:"objective"`
	Termination Termination `json:"termination"`
	Message     string      `json:"message"`
}

// SolveSucceeded builds a success result.
func SolveSucceeded(solver SolverName, x, y, obj float64) SolveResult {
	return SolveResult{
		Success:     true,
		Solver:      solver,
		X:           x,
		Y:           y,
		Objective:   obj,
		Termination: TerminationOptimal,
		Message:     "Optimal Solution Found",
	}
}

// SolveFailed builds a failure result.
func SolveFailed(solver SolverName, term Termination, msg string) SolveResult {
	return SolveResult{
		Solver:      solver,
		Termination: term,
		Message:     msg,
	}
}

// OptimalPoint returns the solved point, or nil for failures.
func (r SolveResult) OptimalPoint() *Point {
	if !r.Success {
		return nil
	}
	return &Point{X: r.X, Y: r.Y}
}
