package skylight

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the project configuration file discovered upward from
// the working directory.
const ConfigFileName = ".skylight.yaml"

// FileConfig is the on-disk project configuration. All fields are optional;
// zero values mean "use the default".
type FileConfig struct {
	IndentWidth int `yaml:"indent_width"`
}

// LoadConfig searches dir and its ancestors for [ConfigFileName] and parses
// the first one found. Returns a zero FileConfig when no file exists. An
// invalid indent width in the file is a configuration error, rejected here
// at the boundary so the engines never see it.
func LoadConfig(dir string) (FileConfig, error) {
	var cfg FileConfig
	path, err := findConfigFile(dir)
	if err != nil {
		return cfg, err
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.IndentWidth != 0 {
		if err := ValidateIndentWidth(cfg.IndentWidth); err != nil {
			return FileConfig{}, fmt.Errorf("config %s: %w", path, err)
		}
	}
	return cfg, nil
}

// findConfigFile walks from dir to the filesystem root looking for the
// config file. Returns "" when none exists.
func findConfigFile(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	for {
		path := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		} else if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("stat %s: %w", path, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}
