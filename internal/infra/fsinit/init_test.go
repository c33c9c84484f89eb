package fsinit

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aalvaropc/lpdash/internal/infra/config"
)

func TestInit_CreatesWorkspace(t *testing.T) {
	tmp := t.TempDir()

	if err := NewInitializer().Init(tmp, false); err != nil {
		t.Fatalf("Init error: %v", err)
	}

	for _, p := range []string{
		filepath.Join(tmp, "lpdash.yaml"),
		filepath.Join(tmp, "charts"),
		filepath.Join(tmp, ".lpdash", "logs"),
		filepath.Join(tmp, ".gitignore"),
	} {
		if _, err := os.Stat(p); err != nil {
			t.Fatalf("expected %s to exist: %v", p, err)
		}
	}

	// The scaffolded file must load cleanly.
	cfg, err := config.LoadConfig(tmp)
	if err != nil {
		t.Fatalf("LoadConfig on template: %v", err)
	}
	if len(cfg.Presets) != 3 {
		t.Fatalf("expected 3 presets in template, got %d", len(cfg.Presets))
	}
}

func TestInit_KeepsExistingUnlessForced(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "lpdash.yaml")
	custom := "lpdash:\n  solver:\n    default: cbc\n"
	if err := os.WriteFile(path, []byte(custom), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	in := NewInitializer()
	if err := in.Init(tmp, false); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	b, _ := os.ReadFile(path)
	if string(b) != custom {
		t.Fatalf("expected existing config to be kept, got:\n%s", b)
	}

	if err := in.Init(tmp, true); err != nil {
		t.Fatalf("Init force error: %v", err)
	}
	b, _ = os.ReadFile(path)
	if string(b) == custom {
		t.Fatalf("expected config to be overwritten with force")
	}
}

func TestEnsureGitignore_CreatesFile(t *testing.T) {
	tmp := t.TempDir()

	if err := ensureGitignore(tmp, "charts"); err != nil {
		t.Fatalf("ensureGitignore error: %v", err)
	}

	b, err := os.ReadFile(filepath.Join(tmp, ".gitignore"))
	if err != nil {
		t.Fatalf("read .gitignore: %v", err)
	}
	s := string(b)
	for _, w := range []string{"# lpdash", ".lpdash/", "charts/"} {
		if !strings.Contains(s, w) {
			t.Fatalf("expected .gitignore to contain %q, got:\n%s", w, s)
		}
	}
}

func TestEnsureGitignore_AppendsMissingEntries(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, ".gitignore")

	existing := "node_modules/\n# lpdash\ncharts/"
	if err := os.WriteFile(path, []byte(existing), 0o644); err != nil {
		t.Fatalf("write .gitignore: %v", err)
	}

	if err := ensureGitignore(tmp, "charts"); err != nil {
		t.Fatalf("ensureGitignore error: %v", err)
	}

	b, _ := os.ReadFile(path)
	s := string(b)
	if !strings.Contains(s, "node_modules/") {
		t.Fatalf("expected existing content preserved, got:\n%s", s)
	}
	if strings.Count(s, "# lpdash") != 1 {
		t.Fatalf("expected 1 header, got:\n%s", s)
	}
	if strings.Count(s, "charts/") != 1 {
		t.Fatalf("expected charts/ not duplicated, got:\n%s", s)
	}
	if !strings.Contains(s, ".lpdash/") {
		t.Fatalf("expected .lpdash/ appended, got:\n%s", s)
	}
}
