package errors

import "fmt"

// Common error messages for the confkeep CLI.
// These templates ensure consistent, actionable error messages.

// SettingsFileNotFound creates an error for a missing settings file.
func SettingsFileNotFound(path string) *CLIError {
	return NewPrerequisiteError(
		fmt.Sprintf("settings file not found: %s", path),
		"Run 'confkeep init' to create a starter settings file",
		"Or point at the right directory with --dir",
	)
}

// SettingsParseError creates an error for a malformed settings file.
func SettingsParseError(err error) *CLIError {
	return WrapWithMessage(err, Configuration,
		"settings file is not valid YAML",
		"Check the reported line for stray tabs or unclosed quotes",
		"Run 'confkeep validate' to see all syntax problems",
	)
}

// CommentScanError creates an error for a line whose key token could not be
// parsed during comment extraction.
func CommentScanError(err error) *CLIError {
	return WrapWithMessage(err, Configuration,
		"cannot recover comments from the settings file",
		"Every unindented line must be a 'KEY: value' entry or a # comment",
		"Fix the reported line, then retry",
	)
}

// KeyNotFound creates an error for a key missing from the settings file.
func KeyNotFound(key string) *CLIError {
	return NewArgumentError(
		fmt.Sprintf("key not found: %s", key),
		"List all keys with: confkeep show",
		"Add it with: confkeep add "+key+" <value>",
	)
}

// KeyAlreadyExists creates an error when add would overwrite a key.
func KeyAlreadyExists(key string) *CLIError {
	return NewArgumentError(
		fmt.Sprintf("key already exists: %s", key),
		"Use 'confkeep set "+key+" <value>' to change an existing key",
	)
}

// SettingsFileExists creates an error when init would overwrite a file.
func SettingsFileExists(path string) *CLIError {
	return NewRuntimeError(
		fmt.Sprintf("settings file already exists: %s", path),
		"Pass --force to overwrite it with the starter template",
	)
}

// ToolConfigError creates an error for an invalid confkeep configuration.
func ToolConfigError(err error) *CLIError {
	return WrapWithMessage(err, Configuration,
		"invalid confkeep configuration",
		"Check ~/.config/confkeep/config.yml and .confkeep/config.yml",
		"Unset CONFKEEP_* environment overrides to rule them out",
	)
}
