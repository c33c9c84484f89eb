package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/aalvaropc/lpdash/internal/domain"
)

// paramFlags binds --max-x, --max-y, --rhs1, --rhs2 and --rhs3.
type paramFlags struct {
	preset string
	values map[domain.ParamField]*float64
}

func flagName(spec domain.ParamSpec) string {
	switch spec.Field {
	case domain.FieldXUpper:
		return "max-x"
	case domain.FieldYUpper:
		return "max-y"
	default:
		return spec.Key
	}
}

func bindParamFlags(c *cobra.Command) *paramFlags {
	pf := &paramFlags{values: map[domain.ParamField]*float64{}}
	for _, spec := range domain.ParamSpecs() {
		v := new(float64)
		c.Flags().Float64Var(v, flagName(spec), spec.Default,
			fmt.Sprintf("%s [%g, %g]", spec.Label, spec.Min, spec.Max))
		pf.values[spec.Field] = v
	}
	c.Flags().StringVar(&pf.preset, "preset", "", "Start from a preset defined in lpdash.yaml")
	return pf
}

// resolve starts from the configured defaults (or a preset) and applies the
// flags the user actually set. Out-of-range values are rejected, not clamped.
func (pf *paramFlags) resolve(flags *pflag.FlagSet, cfg domain.Config) (domain.Params, error) {
	p := cfg.Defaults
	if pf.preset != "" {
		found := false
		for _, pr := range cfg.Presets {
			if pr.Name == pf.preset {
				p, found = pr.Params, true
				break
			}
		}
		if !found {
			return p, fmt.Errorf("preset %q not found in config", pf.preset)
		}
	}

	for _, spec := range domain.ParamSpecs() {
		name := flagName(spec)
		if !flags.Changed(name) {
			continue
		}
		v := *pf.values[spec.Field]
		if !spec.Contains(v) {
			return p, fmt.Errorf("--%s: %g is outside [%g, %g]", name, v, spec.Min, spec.Max)
		}
		p = p.With(spec.Field, v)
	}
	return p, nil
}
