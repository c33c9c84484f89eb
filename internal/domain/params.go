package domain

import "math"

// Params are the five tunable inputs of the dashboard model. They fully
// determine both the solve and the chart.
type Params struct {
	XUpper float64 `json:"max_x"`
	YUpper float64 `json:"max_y"`
	RHS1   float64 `json:"rhs1"`
	RHS2   float64 `json:"rhs2"`
	RHS3   float64 `json:"rhs3"`
}

// ParamField identifies one of the five inputs.
type ParamField int

const (
	FieldXUpper ParamField = iota
	FieldYUpper
	FieldRHS1
	FieldRHS2
	FieldRHS3
)

// ParamSpec describes the range an input control accepts.
type ParamSpec struct {
	Field   ParamField
	Key     string
	Label   string
	Min     float64
	Max     float64
	Step    float64
	Default float64
}

var paramSpecs = []ParamSpec{
	{Field: FieldXUpper, Key: "max_x", Label: "Upper bound for x", Min: 1, Max: 50, Step: 0.1, Default: 10},
	{Field: FieldYUpper, Key: "max_y", Label: "Upper bound for y", Min: 1, Max: 50, Step: 0.1, Default: 10},
	{Field: FieldRHS1, Key: "rhs1", Label: "C1: -x + 2y ≤", Min: -20, Max: 20, Step: 0.1, Default: 8},
	{Field: FieldRHS2, Key: "rhs2", Label: "C2: 2x + y ≤", Min: 0, Max: 40, Step: 0.1, Default: 14},
	{Field: FieldRHS3, Key: "rhs3", Label: "C3: 2x - y ≤", Min: 0, Max: 30, Step: 0.1, Default: 10},
}

// ParamSpecs returns the input limits in display order. The returned slice is a copy.
func ParamSpecs() []ParamSpec {
	out := make([]ParamSpec, len(paramSpecs))
	copy(out, paramSpecs)
	return out
}

// SpecFor returns the limits of a single field.
func SpecFor(f ParamField) ParamSpec {
	return paramSpecs[f]
}

// DefaultParams returns the dashboard's initial values.
func DefaultParams() Params {
	var p Params
	for _, s := range paramSpecs {
		p = p.With(s.Field, s.Default)
	}
	return p
}

// Get returns the value of a field.
func (p Params) Get(f ParamField) float64 {
	switch f {
	case FieldXUpper:
		return p.XUpper
	case FieldYUpper:
		return p.YUpper
	case FieldRHS1:
		return p.RHS1
	case FieldRHS2:
		return p.RHS2
	case FieldRHS3:
		return p.RHS3
	}
	return 0
}

// With returns a copy of p with field f set to v.
func (p Params) With(f ParamField, v float64) Params {
	switch f {
	case FieldXUpper:
		p.XUpper = v
	case FieldYUpper:
		p.YUpper = v
	case FieldRHS1:
		p.RHS1 = v
	case FieldRHS2:
		p.RHS2 = v
	case FieldRHS3:
		p.RHS3 = v
	}
	return p
}

// Clamp limits v to the control range and rounds it to the control's step.
func (s ParamSpec) Clamp(v float64) float64 {
	if s.Step > 0 {
		v = math.Round(v/s.Step) * s.Step
		// Strip representation noise such as 8.100000000000001.
		v = math.Round(v*1e9) / 1e9
	}
	return math.Max(s.Min, math.Min(s.Max, v))
}

// Contains reports whether v is inside the control range.
func (s ParamSpec) Contains(v float64) bool {
	return !math.IsNaN(v) && v >= s.Min && v <= s.Max
}

// Preset is a named set of parameters loaded from configuration.
type Preset struct {
	Name   string
	Params Params
}
