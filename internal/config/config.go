package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/rootscan/rootscan/roots"
)

// FileName is the name of the configuration file looked up in the working directory.
const FileName = "rootscan.yaml"

// FileConfig is the on-disk YAML configuration shape for rootscan.
// Unset fields are nil so that they can be told apart from zero values.
type FileConfig struct {
	Epsilon       *float64 `yaml:"epsilon"`
	MaxIterations *int     `yaml:"max_iterations"`
	Function      *string  `yaml:"function"`
	Polish        *uint    `yaml:"polish"`
}

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadLocal loads FileName from dir. It returns an empty
// configuration, and no error, if the file does not exist.
func LoadLocal(dir string) (FileConfig, error) {
	cfg, err := LoadFile(filepath.Join(dir, FileName))
	if errors.Is(err, os.ErrNotExist) {
		return FileConfig{}, nil
	}
	return cfg, err
}

// ParametersLiteral returns the scanner parameters set by the file.
// Unset fields are left to zero so that roots.NewParametersFromLiteral substitutes the defaults.
func (c FileConfig) ParametersLiteral() (lit roots.ParametersLiteral) {
	if c.Epsilon != nil {
		lit.Epsilon = *c.Epsilon
	}
	if c.MaxIterations != nil {
		lit.MaxIterations = *c.MaxIterations
	}
	return
}
