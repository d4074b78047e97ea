// Package config provides the config command group for inspecting and
// initializing confkeep's own configuration, as opposed to the managed
// settings file.
package config

import (
	"github.com/ariel-frischer/confkeep/internal/cli/shared"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Color helper functions for config command output
var (
	cGreen = color.New(color.FgGreen).SprintFunc()
	cRed   = color.New(color.FgRed).SprintFunc()
	cDim   = color.New(color.Faint).SprintFunc()
	cBold  = color.New(color.Bold).SprintFunc()
)

// ConfigCmd is the parent command for all tool configuration operations.
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage confkeep configuration",
	Long: `Manage confkeep's own configuration. This is the tool's config file, not
the managed settings file; 'confkeep show' inspects the latter.

Configuration is loaded with the following priority (highest to lowest):
  1. Environment variables (CONFKEEP_*)
  2. Project config (.confkeep/config.yml)
  3. User config (~/.config/confkeep/config.yml)
  4. Built-in defaults`,
	Example: `  # Show the effective configuration
  confkeep config show

  # List every config file consulted and whether it exists
  confkeep config path

  # Create a user-level config file with commented defaults
  confkeep config init`,
}

func init() {
	ConfigCmd.GroupID = shared.GroupConfiguration
}
