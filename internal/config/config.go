// Package config loads the docaudit configuration from global, local, and
// environment sources.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Configuration represents the docaudit tool configuration.
type Configuration struct {
	DocsDir      string `koanf:"docs_dir" validate:"required"`    // Root directory batch runs walk
	SchemasDir   string `koanf:"schemas_dir"`                     // Optional schema override directory
	Workers      int    `koanf:"workers" validate:"min=1,max=64"` // Parallel validations in batch runs
	FailUnder    int    `koanf:"fail_under" validate:"min=0,max=100"`
	ShowProgress bool   `koanf:"show_progress"` // Show a spinner during batch runs
}

// Load loads configuration from global, local, and environment sources.
// Priority: Environment variables > Local config > Global config > Defaults
func Load(localConfigPath string) (*Configuration, error) {
	k := koanf.New(".")

	defaults := GetDefaults()
	for key, value := range defaults {
		k.Set(key, value)
	}

	// Load global config if it exists
	homeDir, err := os.UserHomeDir()
	if err == nil {
		globalPath := filepath.Join(homeDir, ".docaudit", "config.json")
		if _, err := os.Stat(globalPath); err == nil {
			if err := k.Load(file.Provider(globalPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load global config: %w", err)
			}
		}
	}

	// Load local config if it exists
	if localConfigPath != "" {
		if _, err := os.Stat(localConfigPath); err == nil {
			if err := k.Load(file.Provider(localConfigPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load local config: %w", err)
			}
		}
	}

	// Override with environment variables (highest priority)
	k.Load(env.Provider("DOCAUDIT_", ".", envTransform), nil)

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	cfg.DocsDir = expandHomePath(cfg.DocsDir)
	cfg.SchemasDir = expandHomePath(cfg.SchemasDir)

	return &cfg, nil
}

// envTransform converts environment variable names to config keys
// Example: DOCAUDIT_FAIL_UNDER -> fail_under
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "DOCAUDIT_"))
}

// expandHomePath expands ~ to the user's home directory
func expandHomePath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(homeDir, path[2:])
		}
	}
	return path
}
