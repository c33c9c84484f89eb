package lpsolver

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aalvaropc/lpdash/internal/domain"
	"github.com/aalvaropc/lpdash/internal/infra/lpfile"
	"github.com/aalvaropc/lpdash/internal/ports"
)

const (
	modelFile    = "model.lp"
	solutionFile = "solution.txt"
)

// dialect is what differs between backends: how they are invoked and what
// their solution file looks like.
type dialect interface {
	args(modelPath, solutionPath string) []string
	parse(r io.Reader) (domain.Solution, error)
}

// Backend runs one external solver binary over an LP file in a scratch dir.
type Backend struct {
	name      domain.SolverName
	bin       string
	dialect   dialect
	runner    Runner
	timeout   time.Duration
	keepFiles bool
	tempDir   string
}

type Option func(*Backend)

func WithRunner(r Runner) Option {
	return func(b *Backend) { b.runner = r }
}

// WithTimeout bounds a single solve; zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(b *Backend) { b.timeout = d }
}

// WithKeepFiles leaves the scratch directory in place for debugging.
func WithKeepFiles(keep bool) Option {
	return func(b *Backend) { b.keepFiles = keep }
}

// WithTempDir sets the parent of scratch directories (os.TempDir by default).
func WithTempDir(dir string) Option {
	return func(b *Backend) { b.tempDir = dir }
}

// NewGLPK returns a backend driving glpsol.
func NewGLPK(bin string, opts ...Option) *Backend {
	if strings.TrimSpace(bin) == "" {
		bin = "glpsol"
	}
	return newBackend(domain.SolverGLPK, bin, glpkDialect{}, opts)
}

// NewCBC returns a backend driving cbc.
func NewCBC(bin string, opts ...Option) *Backend {
	if strings.TrimSpace(bin) == "" {
		bin = "cbc"
	}
	return newBackend(domain.SolverCBC, bin, cbcDialect{}, opts)
}

func newBackend(name domain.SolverName, bin string, d dialect, opts []Option) *Backend {
	b := &Backend{
		name:    name,
		bin:     bin,
		dialect: d,
		runner:  NewExecRunner(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

var _ ports.Solver = (*Backend)(nil)

func (b *Backend) Name() domain.SolverName { return b.name }

// Binary is the executable this backend invokes.
func (b *Backend) Binary() string { return b.bin }

// Available reports whether the binary can be found.
func (b *Backend) Available() bool {
	_, err := b.runner.LookPath(b.bin)
	return err == nil
}

func (b *Backend) Solve(ctx context.Context, m domain.Model) (domain.Solution, error) {
	op := "lpsolver." + string(b.name)

	if b.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.timeout)
		defer cancel()
	}

	dir, err := os.MkdirTemp(b.tempDir, "lpdash-"+string(b.name)+"-")
	if err != nil {
		return domain.Solution{}, &domain.OpError{Op: op + ".mkdir", Kind: domain.KindExecution, Err: err}
	}
	if !b.keepFiles {
		defer os.RemoveAll(dir)
	}

	modelPath := filepath.Join(dir, modelFile)
	if err := os.WriteFile(modelPath, []byte(lpfile.String(m)), 0o600); err != nil {
		return domain.Solution{}, &domain.OpError{Op: op + ".write_model", Kind: domain.KindExecution, Path: modelPath, Err: err}
	}

	solPath := filepath.Join(dir, solutionFile)
	out, runErr := b.runner.Run(ctx, dir, b.bin, b.dialect.args(modelPath, solPath)...)
	if runErr != nil {
		err := fmt.Errorf("run %s: %w", b.bin, runErr)
		if tail := lastLine(out); tail != "" {
			err = fmt.Errorf("%w: %s", err, tail)
		}
		return domain.Solution{}, &domain.OpError{Op: op + ".run", Kind: domain.KindSolver, Err: err}
	}

	f, err := os.Open(solPath)
	if err != nil {
		return domain.Solution{}, &domain.OpError{Op: op + ".read_solution", Kind: domain.KindSolver, Path: solPath, Err: err}
	}
	defer f.Close()

	sol, err := b.dialect.parse(f)
	if err != nil {
		return domain.Solution{}, &domain.OpError{Op: op + ".parse_solution", Kind: domain.KindSolver, Path: solPath, Err: err}
	}
	return sol, nil
}

func lastLine(out []byte) string {
	lines := bytes.Split(bytes.TrimSpace(out), []byte("\n"))
	for i := len(lines) - 1; i >= 0; i-- {
		if l := strings.TrimSpace(string(lines[i])); l != "" {
			return l
		}
	}
	return ""
}
