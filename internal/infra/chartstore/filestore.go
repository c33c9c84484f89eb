package chartstore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aalvaropc/lpdash/internal/domain"
	"github.com/aalvaropc/lpdash/internal/ports"
)

const defaultOutDir = "charts"

// FileStore writes exported charts under <root>/<outDir>.
type FileStore struct {
	rootDir string
	outDir  string
	now     func() time.Time
}

type Option func(*FileStore)

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *FileStore) { s.now = now }
}

func NewFileStore(root string, cfg domain.ChartConfig, opts ...Option) *FileStore {
	outDir := cfg.OutDir
	if strings.TrimSpace(outDir) == "" {
		outDir = defaultOutDir
	}

	s := &FileStore{
		rootDir: root,
		outDir:  outDir,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.ChartStore = (*FileStore)(nil)

// SaveChart writes data as <UTC timestamp>_<slug>.<format> and returns the path.
func (s *FileStore) SaveChart(name, format string, data []byte) (string, error) {
	dir := s.outDir
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(s.rootDir, dir)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &domain.OpError{
			Op:   "chartstore.mkdir",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	slug := slugify(name)
	if slug == "" {
		slug = "chart"
	}
	ext := slugify(format)
	if ext == "" {
		ext = "png"
	}

	filename := fmt.Sprintf("%s_%s.%s", s.now().UTC().Format("20060102T150405Z"), slug, ext)
	path := filepath.Join(dir, filename)

	// Atomic-ish write: tmp then rename.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return "", &domain.OpError{
			Op:   "chartstore.write",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", &domain.OpError{
			Op:   "chartstore.rename",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	return path, nil
}

func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))

	lastDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}
