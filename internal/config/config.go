package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk YAML configuration shape for dsnscout. Fields
// are pointers so an unset value can be told apart from a zero one when
// merging with CLI flags.
type FileConfig struct {
	Include         *string `yaml:"include"`
	Exclude         *string `yaml:"exclude"`
	MaxBytes        *int64  `yaml:"max_bytes"`
	Threads         *int    `yaml:"threads"`
	Disable         *string `yaml:"disable"`
	NoColor         *bool   `yaml:"no_color"`
	DefaultExcludes *bool   `yaml:"default_excludes"`
	NoCache         *bool   `yaml:"no_cache"`
	NoGitRoot       *bool   `yaml:"no_git_root"`
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

// LoadLocal searches for a project-local config file in the given root.
// It supports .dsnscout.yml/.yaml and dsnscout.yml/.yaml.
func LoadLocal(root string) (FileConfig, error) {
	var cfg FileConfig
	for _, name := range []string{".dsnscout.yml", ".dsnscout.yaml", "dsnscout.yml", "dsnscout.yaml"} {
		p := filepath.Join(root, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return cfg, errors.New("no local config")
}

// LoadGlobal loads the global config file from XDG base directory or
// ~/.config.
func LoadGlobal() (FileConfig, error) {
	var cfg FileConfig
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			base = filepath.Join(home, ".config")
		}
	}
	if base == "" {
		return cfg, errors.New("no config dir")
	}
	p := filepath.Join(base, "dsnscout", "config.yml")
	if _, err := os.Stat(p); err == nil {
		return LoadFile(p)
	}
	return cfg, errors.New("no global config")
}
