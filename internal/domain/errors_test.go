package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestOpErrorWrapUnwrap(t *testing.T) {
	root := errors.New("root")
	err := &OpError{
		Op:   "lpsolver.glpk",
		Kind: KindSolver,
		Path: "/tmp/model.lp",
		Err:  root,
	}

	if !errors.Is(err, root) {
		t.Fatalf("expected errors.Is to match cause")
	}
	if !strings.Contains(err.Error(), "path=/tmp/model.lp") {
		t.Fatalf("expected path in message, got %q", err.Error())
	}

	var got *OpError
	if !errors.As(err, &got) {
		t.Fatalf("expected errors.As to match OpError")
	}
	if got.Kind != KindSolver {
		t.Fatalf("expected kind %s", KindSolver)
	}
}

func TestIsKind(t *testing.T) {
	err := &OpError{Op: "x", Kind: KindInvalidConfig}
	if !IsKind(err, KindInvalidConfig) {
		t.Fatalf("expected IsKind to match")
	}
	if IsKind(errors.New("plain"), KindInvalidConfig) {
		t.Fatalf("expected plain error not to match")
	}
}

func TestCauseUnwrapsNestedOpErrors(t *testing.T) {
	inner := errors.New(`exec: "glpsol": executable file not found in $PATH`)
	err := &OpError{Op: "outer", Kind: KindSolver, Err: &OpError{Op: "inner", Kind: KindExecution, Err: inner}}

	if got := Cause(err); got != inner.Error() {
		t.Fatalf("expected innermost message, got %q", got)
	}
	if Cause(nil) != "" {
		t.Fatalf("expected empty cause for nil")
	}
}

func TestParseSolver(t *testing.T) {
	for _, in := range []string{"glpk", " GLPK ", "cbc"} {
		if _, err := ParseSolver(in); err != nil {
			t.Fatalf("ParseSolver(%q): %v", in, err)
		}
	}

	_, err := ParseSolver("gurobi")
	if !IsKind(err, KindUnsupportedSolver) || !errors.Is(err, ErrUnsupportedSolver) {
		t.Fatalf("expected unsupported solver error, got %v", err)
	}
}
