// Package config parses the optional slc.yaml project file pinned
// alongside a source file, supplementing the Cobra flags that otherwise
// drive every build.
package config

import (
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// Config is the optional per-project configuration pinned alongside a
// source file.
type Config struct {
	// OutputDir overrides the directory the build command writes
	// <stem>.ll into; empty means "next to the input file".
	OutputDir string `yaml:"outputDir"`
	// WarningsAsErrors escalates any illegal-byte entries recorded by the
	// scanner (scanning never aborts on its own, but it does record
	// non-fatal illegal-byte entries) into a build failure.
	WarningsAsErrors bool `yaml:"warningsAsErrors"`
}

// Load reads slc.yaml from dir, returning a zero-value Config (all
// defaults) if the file does not exist. Any other read or parse error
// is returned to the caller.
func Load(dir string) (Config, error) {
	path := filepath.Join(dir, "slc.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
