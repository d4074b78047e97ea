package config

import (
	"os"
	"path/filepath"
)

// UserConfigPath returns the path to the user-level config file.
// This follows the XDG Base Directory Specification:
// - Linux: ~/.config/confkeep/config.yml
// - macOS: ~/Library/Application Support/confkeep/config.yml
// - Windows: %APPDATA%\confkeep\config.yml
//
// If XDG_CONFIG_HOME is set, it will be respected on Linux.
func UserConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "confkeep", "config.yml"), nil
}

// UserConfigDir returns the path to the user-level config directory.
func UserConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "confkeep"), nil
}

// ProjectConfigPath returns the path to the project-level config file.
// This is always .confkeep/config.yml relative to the current directory.
func ProjectConfigPath() string {
	return filepath.Join(".confkeep", "config.yml")
}

// ProjectConfigDir returns the path to the project-level config directory.
func ProjectConfigDir() string {
	return ".confkeep"
}

// Source describes one configuration layer.
type Source struct {
	Kind   ConfigSource
	Path   string
	Exists bool
}

// Sources returns the configuration layers in ascending priority order.
// projectConfigPath overrides the project layer path when non-empty.
func Sources(projectConfigPath string) []Source {
	userPath, _ := UserConfigPath()
	projectPath := ProjectConfigPath()
	if projectConfigPath != "" {
		projectPath = projectConfigPath
	}
	return []Source{
		{Kind: SourceDefault, Path: "(built-in)", Exists: true},
		{Kind: SourceUser, Path: userPath, Exists: fileExists(userPath)},
		{Kind: SourceProject, Path: projectPath, Exists: fileExists(projectPath)},
		{Kind: SourceEnv, Path: "CONFKEEP_*", Exists: true},
	}
}
