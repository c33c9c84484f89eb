package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/aalvaropc/lpdash/internal/domain"
	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the workspace root.
const FileName = "lpdash.yaml"

// LoadConfig loads lpdash.yaml from root. A missing file yields the defaults.
func LoadConfig(root string) (domain.Config, error) {
	path := filepath.Join(root, FileName)
	cfg, err := LoadFile(path)
	if err != nil && errors.Is(err, fs.ErrNotExist) {
		return domain.DefaultConfig(), nil
	}
	return cfg, err
}

// LoadFile loads an explicit config path. Unlike LoadConfig, a missing file is an error.
func LoadFile(path string) (domain.Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.DefaultConfig(), &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y YAMLFile
	if err := yaml.Unmarshal(b, &y); err != nil {
		return domain.DefaultConfig(), &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return MapConfig(path, y.LPDash)
}
