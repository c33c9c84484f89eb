package lpsolver

import (
	"fmt"

	"github.com/aalvaropc/lpdash/internal/domain"
	"github.com/aalvaropc/lpdash/internal/ports"
)

// Registry maps solver names to backends.
type Registry struct {
	order    []domain.SolverName
	backends map[domain.SolverName]ports.Solver
}

func NewRegistry(solvers ...ports.Solver) *Registry {
	r := &Registry{backends: map[domain.SolverName]ports.Solver{}}
	for _, s := range solvers {
		if _, dup := r.backends[s.Name()]; !dup {
			r.order = append(r.order, s.Name())
		}
		r.backends[s.Name()] = s
	}
	return r
}

// FromConfig registers the glpk and cbc backends configured in cfg.
func FromConfig(cfg domain.SolverConfig, opts ...Option) *Registry {
	base := []Option{
		WithTimeout(cfg.Timeout),
		WithKeepFiles(cfg.KeepFiles),
	}
	base = append(base, opts...)
	return NewRegistry(
		NewGLPK(cfg.GLPKPath, base...),
		NewCBC(cfg.CBCPath, base...),
	)
}

var _ ports.SolverRegistry = (*Registry)(nil)

func (r *Registry) Lookup(name domain.SolverName) (ports.Solver, error) {
	s, ok := r.backends[name]
	if !ok {
		return nil, &domain.OpError{
			Op:   "lpsolver.lookup",
			Kind: domain.KindUnsupportedSolver,
			Err:  fmt.Errorf("unsupported solver %q: %w", name, domain.ErrUnsupportedSolver),
		}
	}
	return s, nil
}

// Names returns the registered backends in registration order.
func (r *Registry) Names() []domain.SolverName {
	out := make([]domain.SolverName, len(r.order))
	copy(out, r.order)
	return out
}

// Available reports whether a backend's binary is installed. Backends that
// cannot tell are assumed available.
func (r *Registry) Available(name domain.SolverName) bool {
	s, ok := r.backends[name]
	if !ok {
		return false
	}
	if a, ok := s.(interface{ Available() bool }); ok {
		return a.Available()
	}
	return true
}
