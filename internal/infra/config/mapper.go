package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/aalvaropc/lpdash/internal/domain"
)

// chart pixel limits accepted from the file.
const (
	minChartSide = 100
	maxChartSide = 4000
)

// MapConfig applies the parsed file on top of domain.DefaultConfig.
func MapConfig(path string, y YAMLConfig) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	if s := strings.TrimSpace(y.Solver.Default); s != "" {
		name, err := domain.ParseSolver(s)
		if err != nil {
			return cfg, invalidField(path, "solver.default", fmt.Sprintf("unsupported solver %q", s))
		}
		cfg.Solver.Default = name
	}
	if s := strings.TrimSpace(y.Solver.GLPKPath); s != "" {
		cfg.Solver.GLPKPath = s
	}
	if s := strings.TrimSpace(y.Solver.CBCPath); s != "" {
		cfg.Solver.CBCPath = s
	}
	if s := strings.TrimSpace(y.Solver.Timeout); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil {
			return cfg, invalidField(path, "solver.timeout", err.Error())
		}
		if d < 0 {
			return cfg, invalidField(path, "solver.timeout", "must not be negative")
		}
		cfg.Solver.Timeout = d
	}
	if y.Solver.KeepFiles != nil {
		cfg.Solver.KeepFiles = *y.Solver.KeepFiles
	}

	defaults, err := mapParams(path, "defaults", cfg.Defaults, y.Defaults)
	if err != nil {
		return cfg, err
	}
	cfg.Defaults = defaults

	if y.Chart.Width != nil {
		if *y.Chart.Width < minChartSide || *y.Chart.Width > maxChartSide {
			return cfg, invalidField(path, "chart.width", fmt.Sprintf("must be within [%d, %d]", minChartSide, maxChartSide))
		}
		cfg.Chart.Width = *y.Chart.Width
	}
	if y.Chart.Height != nil {
		if *y.Chart.Height < minChartSide || *y.Chart.Height > maxChartSide {
			return cfg, invalidField(path, "chart.height", fmt.Sprintf("must be within [%d, %d]", minChartSide, maxChartSide))
		}
		cfg.Chart.Height = *y.Chart.Height
	}
	if s := strings.ToLower(strings.TrimSpace(y.Chart.Format)); s != "" {
		if s != "png" && s != "svg" {
			return cfg, invalidField(path, "chart.format", fmt.Sprintf("unsupported format %q", y.Chart.Format))
		}
		cfg.Chart.Format = s
	}
	if s := strings.TrimSpace(y.Chart.OutDir); s != "" {
		cfg.Chart.OutDir = s
	}

	cfg.Presets = make([]domain.Preset, 0, len(y.Presets))
	seen := map[string]bool{}
	for i, yp := range y.Presets {
		prefix := fmt.Sprintf("presets[%d]", i)
		name := strings.TrimSpace(yp.Name)
		if name == "" {
			return cfg, invalidField(path, prefix+".name", "preset name is required")
		}
		if seen[name] {
			return cfg, invalidField(path, prefix+".name", fmt.Sprintf("duplicate preset %q", name))
		}
		seen[name] = true

		// Omitted preset values fall back to the configured defaults.
		p, err := mapParams(path, prefix, cfg.Defaults, yp.YAMLParams)
		if err != nil {
			return cfg, err
		}
		cfg.Presets = append(cfg.Presets, domain.Preset{Name: name, Params: p})
	}

	return cfg, nil
}

func mapParams(path, prefix string, base domain.Params, y YAMLParams) (domain.Params, error) {
	fields := []struct {
		field domain.ParamField
		value *float64
	}{
		{domain.FieldXUpper, y.MaxX},
		{domain.FieldYUpper, y.MaxY},
		{domain.FieldRHS1, y.RHS1},
		{domain.FieldRHS2, y.RHS2},
		{domain.FieldRHS3, y.RHS3},
	}

	out := base
	for _, f := range fields {
		if f.value == nil {
			continue
		}
		spec := domain.SpecFor(f.field)
		if !spec.Contains(*f.value) {
			return base, invalidField(path, prefix+"."+spec.Key,
				fmt.Sprintf("%g is outside [%g, %g]", *f.value, spec.Min, spec.Max))
		}
		out = out.With(f.field, *f.value)
	}
	return out, nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
