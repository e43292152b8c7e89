package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/satellitewp/rocket-parser/internal/fragment"
	"github.com/satellitewp/rocket-parser/internal/storage"
)

const (
	defaultConfigFile   = "rocket-nginx.ini"
	defaultTemplateFile = "rocket-nginx.tmpl"
)

// Config aggregates runtime configuration for one generation pass.
type Config struct {
	ConfigFile   string
	TemplateFile string
	OutputDir    string
	IncludeRoot  string
	DirMode      os.FileMode
	Verbose      bool
	Dump         bool
}

// CLIOverrides holds command-line flag overrides.
type CLIOverrides struct {
	ConfigFile   *string
	TemplateFile *string
	OutputDir    *string
	Verbose      bool
	Dump         bool
}

// Load resolves configuration with precedence: CLI flags > Defaults.
func Load(overrides *CLIOverrides) (Config, error) {
	cfg := Default()

	if overrides != nil {
		applyCLIOverrides(&cfg, overrides)
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Default returns a Config with default values.
func Default() Config {
	return Config{
		ConfigFile:   defaultConfigFile,
		TemplateFile: defaultTemplateFile,
		OutputDir:    fragment.DefaultIncludeRoot,
		IncludeRoot:  fragment.DefaultIncludeRoot,
		DirMode:      storage.DefaultDirMode,
	}
}

// applyCLIOverrides applies command-line flag overrides.
func applyCLIOverrides(cfg *Config, overrides *CLIOverrides) {
	if overrides.ConfigFile != nil && strings.TrimSpace(*overrides.ConfigFile) != "" {
		cfg.ConfigFile = strings.TrimSpace(*overrides.ConfigFile)
	}

	if overrides.TemplateFile != nil && strings.TrimSpace(*overrides.TemplateFile) != "" {
		cfg.TemplateFile = strings.TrimSpace(*overrides.TemplateFile)
	}

	if overrides.OutputDir != nil && strings.TrimSpace(*overrides.OutputDir) != "" {
		cfg.OutputDir = strings.TrimSpace(*overrides.OutputDir)
	}

	cfg.Verbose = overrides.Verbose
	cfg.Dump = overrides.Dump
}

// validateConfig validates the final configuration.
func validateConfig(cfg Config) error {
	if cfg.ConfigFile == "" {
		return fmt.Errorf("config file path cannot be empty")
	}
	if cfg.TemplateFile == "" {
		return fmt.Errorf("template file path cannot be empty")
	}
	if cfg.OutputDir == "" {
		return fmt.Errorf("output directory cannot be empty")
	}
	if cfg.DirMode.Perm() == 0 {
		return fmt.Errorf("directory mode must grant at least one permission")
	}
	return nil
}
