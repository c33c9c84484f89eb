package fsinit

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/lpdash/internal/domain"
	"github.com/aalvaropc/lpdash/internal/ports"
)

//go:embed templates
var templatesFS embed.FS

// Initializer scaffolds an lpdash workspace: config file, chart dir and log dir.
type Initializer struct {
	ChartsDir string
}

func NewInitializer() *Initializer {
	return &Initializer{ChartsDir: domain.DefaultConfig().Chart.OutDir}
}

var _ ports.ConfigInitializer = (*Initializer)(nil)

// Init writes the templates into root. Existing files are kept unless force is set.
func (i *Initializer) Init(root string, force bool) error {
	root = filepath.Clean(root)

	dirs := []string{
		filepath.Join(root, i.ChartsDir),
		filepath.Join(root, ".lpdash", "logs"),
	}
	for _, d := range dirs {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return initErr("fsinit.mkdir", d, err)
		}
	}

	if err := ensureGitignore(root, i.ChartsDir); err != nil {
		return initErr("fsinit.gitignore", filepath.Join(root, ".gitignore"), err)
	}

	return fs.WalkDir(templatesFS, "templates", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel := strings.TrimPrefix(p, "templates/")
		dst := filepath.Join(root, rel)

		if !force {
			if _, statErr := os.Stat(dst); statErr == nil {
				return nil
			}
		}

		b, err := fs.ReadFile(templatesFS, p)
		if err != nil {
			return initErr("fsinit.template", p, err)
		}
		if err := os.WriteFile(dst, b, 0o644); err != nil {
			return initErr("fsinit.write", dst, err)
		}
		return nil
	})
}

func initErr(op, path string, err error) error {
	return &domain.OpError{Op: op, Kind: domain.KindExecution, Path: path, Err: err}
}

const gitignoreHeader = "# lpdash"

func gitignoreEntries(chartsDir string) []string {
	return []string{
		".lpdash/",
		fmt.Sprintf("%s/", strings.TrimSuffix(filepath.ToSlash(chartsDir), "/")),
	}
}

func ensureGitignore(root, chartsDir string) error {
	entries := gitignoreEntries(chartsDir)

	path := filepath.Join(root, ".gitignore")
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			lines := append([]string{gitignoreHeader}, entries...)
			lines = append(lines, "")
			return os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644)
		}
		return err
	}

	existing := string(b)
	present := map[string]bool{}
	for _, line := range strings.Split(existing, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			present[trimmed] = true
		}
	}

	var missing []string
	for _, e := range entries {
		if !present[e] {
			missing = append(missing, e)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	var out strings.Builder
	out.WriteString(existing)
	if existing != "" && !strings.HasSuffix(existing, "\n") {
		out.WriteByte('\n')
	}
	out.WriteByte('\n')
	if !present[gitignoreHeader] {
		out.WriteString(gitignoreHeader)
		out.WriteByte('\n')
	}
	for _, e := range missing {
		out.WriteString(e)
		out.WriteByte('\n')
	}

	return os.WriteFile(path, []byte(out.String()), 0o644)
}
