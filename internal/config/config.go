package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config carries the checker's startup settings. Every field has a default,
// so a missing config file is not an error.
type Config struct {
	Project struct {
		// Root is the directory tree to validate.
		Root string `yaml:"root"`
		// Manifest optionally points at a YAML check manifest; empty means
		// the builtin one.
		Manifest string `yaml:"manifest"`
	} `yaml:"project"`
}

// Load reads the config file (if present) and applies overrides, lowest
// precedence first: defaults, YAML file, then TREECHECK_* environment
// variables. A .env file is loaded first so the variables can live there.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	cfg.Project.Root = "."

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if uerr := yaml.Unmarshal(data, cfg); uerr != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, uerr)
		}
	case os.IsNotExist(err):
		// defaults apply
	default:
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if root := os.Getenv("TREECHECK_ROOT"); root != "" {
		cfg.Project.Root = root
	}
	if manifest := os.Getenv("TREECHECK_MANIFEST"); manifest != "" {
		cfg.Project.Manifest = manifest
	}
	if cfg.Project.Root == "" {
		cfg.Project.Root = "."
	}
	return cfg, nil
}
