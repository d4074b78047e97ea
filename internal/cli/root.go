// Package cli implements the confkeep command line interface.
package cli

import (
	"errors"
	"strings"

	configcmd "github.com/ariel-frischer/confkeep/internal/cli/config"
	"github.com/ariel-frischer/confkeep/internal/cli/shared"
	"github.com/ariel-frischer/confkeep/internal/config"
	"github.com/ariel-frischer/confkeep/internal/debug"
	clierrors "github.com/ariel-frischer/confkeep/internal/errors"
	"github.com/ariel-frischer/confkeep/internal/settings"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "confkeep",
	Short: "Manage a server's YAML settings file",
	Long: `confkeep manages a server's YAML settings file (server.conf).

It reads, validates, and rewrites the file while preserving the comment
block above each key. Values are coerced to canonical types on every
write: path-class keys keep or drop their trailing slash, yes/no text
becomes a boolean, numeric text becomes an integer. The file is replaced
atomically so readers never observe a half-written state.

Tool configuration is loaded with the following priority (highest to lowest):
  1. Environment variables (CONFKEEP_*)
  2. Project config (.confkeep/config.yml)
  3. User config (~/.config/confkeep/config.yml)
  4. Built-in defaults`,
	Example: `  # Create a starter settings file next to the binary
  confkeep init

  # Inspect and edit values
  confkeep show
  confkeep get DEBUG
  confkeep set DEBUG 3

  # Watch a settings file for outside edits
  confkeep watch -C /etc/server`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
			color.NoColor = true
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringP("dir", "C", "", "Directory holding the settings file (default: executable directory)")
	rootCmd.PersistentFlags().String("config", "", "Path to a confkeep config file (overrides .confkeep/config.yml)")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().Int("debug", 0, "Print debug messages at or below this level (1-10)")

	rootCmd.AddGroup(
		&cobra.Group{ID: shared.GroupGettingStarted, Title: "Getting Started:"},
		&cobra.Group{ID: shared.GroupSettings, Title: "Settings:"},
		&cobra.Group{ID: shared.GroupInspection, Title: "Inspection:"},
		&cobra.Group{ID: shared.GroupConfiguration, Title: "Configuration:"},
	)

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return clierrors.NewArgumentErrorWithUsage(err.Error(), cmd.UseLine())
	})

	rootCmd.AddCommand(configcmd.ConfigCmd)
}

// Execute runs the root command and prints any resulting error with its
// category and remediation steps. The returned error carries the category
// for exit-code mapping.
func Execute() error {
	err := rootCmd.Execute()
	if err == nil {
		return nil
	}

	cliErr := categorize(err)
	clierrors.PrintError(cliErr)
	return cliErr
}

// ExitCode returns the process exit code for an error returned by Execute.
func ExitCode(err error) int {
	return shared.ExitCode(err)
}

// loadToolConfig loads the tool configuration and applies the global flag
// overrides. It also arms colored output and the debug printer, so every
// command calls it before doing real work.
func loadToolConfig(cmd *cobra.Command) (*config.Configuration, error) {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, clierrors.ToolConfigError(err)
	}

	if cmd.Flags().Changed("dir") {
		dir, _ := cmd.Flags().GetString("dir")
		cfg.Settings.Dir = dir
	}
	if cmd.Flags().Changed("debug") {
		level, _ := cmd.Flags().GetInt("debug")
		cfg.Debug.Level = level
	}
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		cfg.Output.Color = false
	}

	if !cfg.Output.Color {
		color.NoColor = true
	}
	debug.SetThreshold(cfg.Debug.Level)

	return cfg, nil
}

// categorize maps domain errors onto CLI errors with remediation guidance.
func categorize(err error) *clierrors.CLIError {
	var cliErr *clierrors.CLIError
	if errors.As(err, &cliErr) {
		return cliErr
	}

	var notFound *settings.NotFoundError
	if errors.As(err, &notFound) {
		return clierrors.SettingsFileNotFound(notFound.Path)
	}

	var exists *settings.ExistsError
	if errors.As(err, &exists) {
		return clierrors.SettingsFileExists(exists.Path)
	}

	var parseErr *settings.ParseError
	if errors.As(err, &parseErr) {
		return clierrors.SettingsParseError(parseErr)
	}

	var keyErr *settings.KeyFormatError
	if errors.As(err, &keyErr) {
		return clierrors.CommentScanError(keyErr)
	}

	var validationErr *config.ValidationError
	if errors.As(err, &validationErr) {
		return clierrors.ToolConfigError(validationErr)
	}

	if isUsageError(err) {
		return clierrors.NewArgumentError(err.Error(), "Run 'confkeep --help' for usage")
	}

	return clierrors.Wrap(err, clierrors.Runtime)
}

// isUsageError recognizes the plain errors cobra produces for argument and
// command misuse.
func isUsageError(err error) bool {
	msg := err.Error()
	for _, prefix := range []string{
		"unknown command",
		"unknown flag",
		"unknown shorthand flag",
		"accepts ",
		"requires at least",
		"invalid argument",
	} {
		if strings.HasPrefix(msg, prefix) {
			return true
		}
	}
	return false
}
