package config

// YAMLFile mirrors lpdash.yaml. Pointers mark fields that may be omitted.
type YAMLFile struct {
	LPDash YAMLConfig `yaml:"lpdash"`
}

type YAMLConfig struct {
	Solver   YAMLSolver   `yaml:"solver"`
	Defaults YAMLParams   `yaml:"defaults"`
	Chart    YAMLChart    `yaml:"chart"`
	Presets  []YAMLPreset `yaml:"presets"`
}

type YAMLSolver struct {
	Default   string `yaml:"default"`
	GLPKPath  string `yaml:"glpk_path"`
	CBCPath   string `yaml:"cbc_path"`
	Timeout   string `yaml:"timeout"`
	KeepFiles *bool  `yaml:"keep_files"`
}

type YAMLParams struct {
	MaxX *float64 `yaml:"max_x"`
	MaxY *float64 `yaml:"max_y"`
	RHS1 *float64 `yaml:"rhs1"`
	RHS2 *float64 `yaml:"rhs2"`
	RHS3 *float64 `yaml:"rhs3"`
}

type YAMLChart struct {
	Width  *int   `yaml:"width"`
	Height *int   `yaml:"height"`
	Format string `yaml:"format"`
	OutDir string `yaml:"out_dir"`
}

type YAMLPreset struct {
	Name       string `yaml:"name"`
	YAMLParams `yaml:",inline"`
}
