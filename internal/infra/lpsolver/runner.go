package lpsolver

import (
	"bytes"
	"context"
	"os/exec"
)

const defaultMaxOutputBytes = 64 * 1024 // 64KB

// Runner executes a solver binary inside dir and returns its combined output.
type Runner interface {
	Run(ctx context.Context, dir, bin string, args ...string) ([]byte, error)
	LookPath(bin string) (string, error)
}

// ExecRunner runs binaries with os/exec.
type ExecRunner struct {
	MaxOutputBytes int
}

func NewExecRunner() *ExecRunner {
	return &ExecRunner{MaxOutputBytes: defaultMaxOutputBytes}
}

func (r *ExecRunner) Run(ctx context.Context, dir, bin string, args ...string) ([]byte, error) {
	buf := &boundedBuffer{max: r.MaxOutputBytes}

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = dir
	cmd.Stdout = buf
	cmd.Stderr = buf

	err := cmd.Run()
	if ctxErr := ctx.Err(); ctxErr != nil && err != nil {
		return buf.Bytes(), ctxErr
	}
	return buf.Bytes(), err
}

func (r *ExecRunner) LookPath(bin string) (string, error) {
	return exec.LookPath(bin)
}

// boundedBuffer keeps the last max bytes written, which is where solvers
// print their error summary.
type boundedBuffer struct {
	max int
	buf bytes.Buffer
}

func (b *boundedBuffer) Write(p []byte) (int, error) {
	n := len(p)
	if b.max <= 0 {
		return b.buf.Write(p)
	}
	if len(p) >= b.max {
		b.buf.Reset()
		b.buf.Write(p[len(p)-b.max:])
		return n, nil
	}
	if over := b.buf.Len() + len(p) - b.max; over > 0 {
		b.buf.Next(over)
	}
	b.buf.Write(p)
	return n, nil
}

func (b *boundedBuffer) Bytes() []byte {
	return b.buf.Bytes()
}
