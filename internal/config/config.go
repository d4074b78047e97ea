// confkeep - Server Settings Management
// Author: Ariel Frischer
// Source: https://github.com/ariel-frischer/confkeep

// Package config provides hierarchical configuration management for the
// confkeep tool itself using koanf. Configuration is loaded with priority:
// environment variables > project config (.confkeep/config.yml) > user config
// (~/.config/confkeep/config.yml) > defaults.
//
// This configures the tool, not the managed settings file; that file is
// handled by the settings package.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// ConfigSource tracks where a configuration value came from
type ConfigSource string

const (
	SourceDefault ConfigSource = "default"
	SourceUser    ConfigSource = "user"
	SourceProject ConfigSource = "project"
	SourceEnv     ConfigSource = "env"
)

// Configuration represents the confkeep CLI tool configuration
type Configuration struct {
	// Settings locates the managed settings file.
	Settings SettingsConfig `koanf:"settings"`

	// Debug controls the leveled debug printer.
	Debug DebugConfig `koanf:"debug"`

	// Output controls terminal output formatting.
	Output OutputConfig `koanf:"output"`

	// Watch controls the watch command.
	Watch WatchConfig `koanf:"watch"`
}

// SettingsConfig locates the settings file.
type SettingsConfig struct {
	// Dir is the directory holding the settings file. Empty means the
	// directory of the running executable.
	// Can be set via CONFKEEP_SETTINGS_DIR env var or the --dir flag.
	Dir string `koanf:"dir"`
}

// DebugConfig controls debug output.
type DebugConfig struct {
	// Level prints debug messages at or below this level. 0 disables.
	// Can be set via CONFKEEP_DEBUG_LEVEL env var or the --debug flag.
	Level int `koanf:"level" validate:"min=0,max=10"`
}

// OutputConfig controls terminal output.
type OutputConfig struct {
	// Color enables colorized output. The --no-color flag overrides.
	Color bool `koanf:"color"`
}

// WatchConfig controls the watch command.
type WatchConfig struct {
	// Interval is the poll interval used as a fallback when filesystem
	// events are missed.
	Interval time.Duration `koanf:"interval" validate:"min=0"`
}

// Load loads configuration from user, project, and environment sources.
// Priority: Environment variables > Project config > User config > Defaults
//
// Config paths:
//   - User config: ~/.config/confkeep/config.yml (XDG compliant)
//   - Project config: .confkeep/config.yml
//
// projectConfigPath overrides the project config path when non-empty
// (set by the --config flag and by tests).
func Load(projectConfigPath string) (*Configuration, error) {
	k := koanf.New(".")

	loadDefaults(k)

	if err := loadUserConfig(k); err != nil {
		return nil, err
	}

	if err := loadProjectConfig(k, projectConfigPath); err != nil {
		return nil, err
	}

	if err := loadEnvironmentConfig(k); err != nil {
		return nil, err
	}

	return finalizeConfig(k)
}

// loadDefaults applies default configuration values
func loadDefaults(k *koanf.Koanf) {
	defaults := GetDefaults()
	for key, value := range defaults {
		k.Set(key, value)
	}
}

// loadUserConfig loads the user-level config file if present
func loadUserConfig(k *koanf.Koanf) error {
	userPath, _ := UserConfigPath()
	if !fileExists(userPath) {
		return nil
	}
	if err := loadYAMLConfig(k, userPath, "user"); err != nil {
		return fmt.Errorf("loading user config: %w", err)
	}
	return nil
}

// loadProjectConfig loads the project-level config file if present.
// Supports a custom path override (for the --config flag and testing).
func loadProjectConfig(k *koanf.Koanf, customPath string) error {
	projectPath := ProjectConfigPath()
	if customPath != "" {
		projectPath = customPath
	}
	if !fileExists(projectPath) {
		if customPath != "" {
			return fmt.Errorf("config file not found: %s", customPath)
		}
		return nil
	}
	if err := loadYAMLConfig(k, projectPath, "project"); err != nil {
		return fmt.Errorf("loading project config: %w", err)
	}
	return nil
}

// loadYAMLConfig validates and loads a YAML config file
func loadYAMLConfig(k *koanf.Koanf, path, configType string) error {
	if err := ValidateYAMLSyntax(path); err != nil {
		return fmt.Errorf("validating YAML syntax for %s config: %w", configType, err)
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("failed to load %s config %s: %w", configType, path, err)
	}
	return nil
}

// loadEnvironmentConfig loads environment variable overrides
func loadEnvironmentConfig(k *koanf.Koanf) error {
	if err := k.Load(env.Provider("CONFKEEP_", ".", envTransform), nil); err != nil {
		return fmt.Errorf("failed to load environment config: %w", err)
	}
	return nil
}

// finalizeConfig unmarshals, validates, and applies final transformations
func finalizeConfig(k *koanf.Koanf) (*Configuration, error) {
	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := ValidateConfigValues(&cfg, "config"); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	cfg.Settings.Dir = expandHomePath(cfg.Settings.Dir)

	return &cfg, nil
}

// fileExists returns true if the file exists and is readable
func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// envTransform converts environment variable names to config keys
// Example: CONFKEEP_DEBUG_LEVEL -> debug.level
func envTransform(s string) string {
	return strings.Replace(strings.ToLower(strings.TrimPrefix(s, "CONFKEEP_")), "_", ".", -1)
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
