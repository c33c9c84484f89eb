package tui

import (
	"errors"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/aalvaropc/lpdash/internal/domain"
)

var reLine = regexp.MustCompile(`(?i)\bline\s+(\d+)\b`)

// userMessage turns an error into a short status line.
func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {
		case domain.KindNotFound:
			if strings.Contains(oe.Op, "config.findroot") {
				return "lpdash.yaml not found"
			}
			return "Not found"

		case domain.KindInvalidConfig:
			base := "config"
			if strings.TrimSpace(oe.Path) != "" {
				base = filepath.Base(oe.Path)
			}
			if line := extractLine(err.Error()); line != "" {
				return "Invalid YAML at " + base + " line " + line
			}
			if looksLikeYAMLProblem(err.Error()) {
				return "Invalid YAML at " + base
			}
			return "Invalid config: " + domain.Cause(err)

		case domain.KindUnsupportedSolver:
			return "Unsupported solver"

		case domain.KindExecution:
			if strings.HasPrefix(oe.Op, "chartstore.") {
				return "Could not write chart (see logs)"
			}
			if strings.HasPrefix(oe.Op, "fsinit.") {
				return "Could not create workspace (see logs)"
			}
			return "Unexpected error (see logs)"

		case domain.KindSolver:
			return "Solver Error: " + domain.Cause(err)

		default:
			return "Unexpected error (see logs)"
		}
	}

	if strings.Contains(strings.ToLower(err.Error()), "unsupported chart format") {
		return "Unsupported chart format"
	}
	if looksLikeYAMLProblem(err.Error()) {
		if line := extractLine(err.Error()); line != "" {
			return "Invalid YAML line " + line
		}
		return "Invalid YAML"
	}

	return "Unexpected error (see logs)"
}

func looksLikeYAMLProblem(s string) bool {
	ls := strings.ToLower(s)
	return strings.Contains(ls, "yaml:") || strings.Contains(ls, "did not find expected") || strings.Contains(ls, "cannot unmarshal")
}

func extractLine(s string) string {
	m := reLine.FindStringSubmatch(s)
	if len(m) == 2 {
		return m[1]
	}
	return ""
}
