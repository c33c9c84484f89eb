package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aalvaropc/lpdash/internal/domain"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestLoadConfig_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Solver.Default != domain.SolverGLPK {
		t.Fatalf("expected default solver glpk, got %q", cfg.Solver.Default)
	}
	if cfg.Defaults != domain.DefaultParams() {
		t.Fatalf("expected default params, got %+v", cfg.Defaults)
	}
}

func TestLoadConfig_AppliesValuesOnTopOfDefaults(t *testing.T) {
	tmp := t.TempDir()
	writeConfig(t, tmp, `lpdash:
  solver:
    default: CBC
    timeout: 30s
    keep_files: true
  defaults:
    rhs1: 0
  chart:
    format: svg
  presets:
    - name: bounds-dominate
      max_x: 5
      max_y: 5
`)

	cfg, err := LoadConfig(tmp)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.Solver.Default != domain.SolverCBC {
		t.Fatalf("expected cbc, got %q", cfg.Solver.Default)
	}
	if cfg.Solver.Timeout != 30*time.Second {
		t.Fatalf("expected 30s timeout, got %s", cfg.Solver.Timeout)
	}
	if !cfg.Solver.KeepFiles {
		t.Fatalf("expected keep_files=true")
	}
	if cfg.Solver.GLPKPath != "glpsol" {
		t.Fatalf("expected default glpk path, got %q", cfg.Solver.GLPKPath)
	}
	if cfg.Defaults.RHS1 != 0 || cfg.Defaults.RHS2 != 14 {
		t.Fatalf("unexpected defaults %+v", cfg.Defaults)
	}
	if cfg.Chart.Format != "svg" || cfg.Chart.Width != 1000 {
		t.Fatalf("unexpected chart config %+v", cfg.Chart)
	}
	if len(cfg.Presets) != 1 {
		t.Fatalf("expected one preset, got %d", len(cfg.Presets))
	}
	want := domain.Params{XUpper: 5, YUpper: 5, RHS1: 0, RHS2: 14, RHS3: 10}
	if cfg.Presets[0].Params != want {
		t.Fatalf("expected preset %+v, got %+v", want, cfg.Presets[0].Params)
	}
}

func TestLoadConfig_InvalidFields(t *testing.T) {
	cases := []struct {
		name    string
		content string
		field   string
	}{
		{"solver", "lpdash:\n  solver:\n    default: highs\n", "solver.default"},
		{"timeout", "lpdash:\n  solver:\n    timeout: soon\n", "solver.timeout"},
		{"defaults", "lpdash:\n  defaults:\n    max_x: 0.5\n", "defaults.max_x"},
		{"preset range", "lpdash:\n  presets:\n    - name: wide\n      rhs3: 31\n", "presets[0].rhs3"},
		{"preset name", "lpdash:\n  presets:\n    - max_x: 5\n", "presets[0].name"},
		{"chart", "lpdash:\n  chart:\n    format: gif\n", "chart.format"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tmp := t.TempDir()
			path := writeConfig(t, tmp, tc.content)

			_, err := LoadConfig(tmp)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !domain.IsKind(err, domain.KindInvalidConfig) {
				t.Fatalf("expected KindInvalidConfig, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.field) {
				t.Fatalf("expected field %s in error, got %v", tc.field, err)
			}
			if !strings.Contains(err.Error(), path) {
				t.Fatalf("expected path in error, got %v", err)
			}
		})
	}
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	tmp := t.TempDir()
	writeConfig(t, tmp, "lpdash: [\n")

	_, err := LoadConfig(tmp)
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got %v", err)
	}
}

func TestLoadFile_MissingIsNotFound(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got %v", err)
	}
}
