// Package shared provides constants and helpers used across CLI subpackages.
package shared

import (
	"errors"
	"fmt"

	clierrors "github.com/ariel-frischer/confkeep/internal/errors"
)

// Exit codes for the confkeep CLI.
// These codes support scripting and CI integration.
const (
	// ExitSuccess indicates successful command execution
	ExitSuccess = 0

	// ExitRuntimeError indicates a failure during command execution
	ExitRuntimeError = 1

	// ExitValidationFailed indicates an invalid settings file or tool config
	ExitValidationFailed = 2

	// ExitMissingPrerequisite indicates a required file is missing
	ExitMissingPrerequisite = 3

	// ExitInvalidArguments indicates invalid command arguments
	ExitInvalidArguments = 4
)

// Command group IDs for organizing help output.
const (
	GroupGettingStarted = "getting-started"
	GroupSettings       = "settings"
	GroupInspection     = "inspection"
	GroupConfiguration  = "configuration"
)

// exitError is a custom error type that carries an exit code.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit code %d", e.code)
}

// NewExitError creates an error that carries an explicit exit code.
func NewExitError(code int) error {
	return &exitError{code: code}
}

// ExitCode returns the exit code for an error. Categorized CLI errors map to
// their category's code; anything else is a runtime failure.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}

	var cliErr *clierrors.CLIError
	if errors.As(err, &cliErr) {
		switch cliErr.Category {
		case clierrors.Argument:
			return ExitInvalidArguments
		case clierrors.Configuration:
			return ExitValidationFailed
		case clierrors.Prerequisite:
			return ExitMissingPrerequisite
		default:
			return ExitRuntimeError
		}
	}

	return ExitRuntimeError
}
