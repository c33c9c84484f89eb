package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestNew_WritesUTCJSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, false)
	l.Debug("hidden")
	l.Info("solve.start", "solver", "glpk")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected only the info line, got %d lines:\n%s", len(lines), buf.String())
	}

	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &rec); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if rec["msg"] != "solve.start" || rec["solver"] != "glpk" {
		t.Fatalf("unexpected record %v", rec)
	}
	ts, _ := rec["time"].(string)
	parsed, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		t.Fatalf("time %q not RFC3339Nano: %v", ts, err)
	}
	if _, off := parsed.Zone(); off != 0 {
		t.Fatalf("expected UTC time, got %q", ts)
	}
}

func TestSetup_CreatesLogFile(t *testing.T) {
	tmp := t.TempDir()

	cleanup, err := Setup(Config{Root: tmp, Debug: true})
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}
	if err := IsReady(); err != nil {
		t.Fatalf("expected logger ready: %v", err)
	}

	want := filepath.Join(tmp, ".lpdash", "logs", "lpdash.log")
	if Path() != want {
		t.Fatalf("expected path %s, got %s", want, Path())
	}
	L().Debug("debug.visible")

	if err := cleanup(); err != nil {
		t.Fatalf("cleanup: %v", err)
	}
	if IsReady() == nil {
		t.Fatalf("expected logger reset after cleanup")
	}

	b, err := os.ReadFile(want)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	for _, w := range []string{"logger.initialized", "debug.visible"} {
		if !strings.Contains(string(b), w) {
			t.Fatalf("expected %q in log, got:\n%s", w, b)
		}
	}
}
