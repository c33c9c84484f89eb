package domain

import "time"

// Config represents the lpdash configuration loaded from lpdash.yaml.
type Config struct {
	Solver   SolverConfig
	Defaults Params
	Chart    ChartConfig
	Presets  []Preset
}

type SolverConfig struct {
	Default   SolverName
	GLPKPath  string
	CBCPath   string
	Timeout   time.Duration // 0 disables the timeout
	KeepFiles bool
}

type ChartConfig struct {
	Width  int
	Height int
	Format string
	OutDir string
}

// DefaultConfig provides sane defaults if lpdash.yaml is missing or partial.
func DefaultConfig() Config {
	return Config{
		Solver: SolverConfig{
			Default:  SolverGLPK,
			GLPKPath: "glpsol",
			CBCPath:  "cbc",
		},
		Defaults: DefaultParams(),
		Chart: ChartConfig{
			Width:  1000,
			Height: 700,
			Format: "png",
			OutDir: "charts",
		},
	}
}
