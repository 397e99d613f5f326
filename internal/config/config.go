// Package config loads the CLI tool configuration from defaults, an
// optional JSON config file and CAREPROC_-prefixed environment
// variables, in increasing priority.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Configuration represents the careproc-validator CLI configuration.
type Configuration struct {
	// ProjectRoot anchors the run; empty means upward marker discovery
	// from the working directory.
	ProjectRoot string `koanf:"project_root"`

	// Generation overrides API generation detection ("v1" or "v2").
	Generation string `koanf:"generation" validate:"omitempty,oneof=v1 v2"`

	// OutputDir receives the JSON report files.
	OutputDir string `koanf:"output_dir" validate:"required"`

	// BuildOutputDir is the relative directory of compiled classes.
	BuildOutputDir string `koanf:"build_output_dir" validate:"required"`

	// SeedTerminology extends the vocabulary cache from the project's
	// code-system folder before validation.
	SeedTerminology bool `koanf:"seed_terminology"`

	// ValidateClasses enables implementation class checks.
	ValidateClasses bool `koanf:"validate_classes"`

	// LogLevel is one of debug, info, warn, error, none.
	LogLevel string `koanf:"log_level" validate:"omitempty,oneof=debug info warn error none"`
}

// Defaults returns the default configuration values.
func Defaults() map[string]any {
	return map[string]any{
		"project_root":     "",
		"generation":       "",
		"output_dir":       "target/validation",
		"build_output_dir": "target/classes",
		"seed_terminology": true,
		"validate_classes": true,
		"log_level":        "info",
	}
}

// Load loads the configuration.
// Priority: environment variables > config file > defaults.
func Load(configPath string) (*Configuration, error) {
	k := koanf.New(".")

	for key, value := range Defaults() {
		_ = k.Set(key, value)
	}

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			if err := k.Load(file.Provider(configPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("load config file %s: %w", configPath, err)
			}
		}
	}

	if err := k.Load(env.Provider("CAREPROC_", ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// envTransform converts environment variable names to config keys.
// Example: CAREPROC_OUTPUT_DIR -> output_dir
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "CAREPROC_"))
}
