package config

import (
	"fmt"
	"os"

	"github.com/ariel-frischer/confkeep/internal/config"
	clierrors "github.com/ariel-frischer/confkeep/internal/errors"
	"github.com/spf13/cobra"
)

var setCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a single configuration value in the user config file, or in the
project config with --project. The value is validated against the key's
type before anything is written, and comments already in the file are
preserved.

Known keys:
  settings.dir     string    directory holding the settings file
  debug.level      int       debug printer threshold (0-10)
  output.color     bool      colorize command output
  watch.interval   duration  poll fallback interval for watch`,
	Example: `  # Raise the debug threshold in the user config
  confkeep config set debug.level 3

  # Point this project at its own settings directory
  confkeep config set settings.dir ./conf --project

  # Slow the watch polling fallback
  confkeep config set watch.interval 5s`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		project, _ := cmd.Flags().GetBool("project")

		if _, err := config.ValidateValue(args[0], args[1]); err != nil {
			return clierrors.Wrap(err, clierrors.Argument)
		}

		configPath, scope, err := targetConfigPath(cmd, project)
		if err != nil {
			return err
		}

		if err := config.SetConfigValue(configPath, args[0], args[1]); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s Set %s = %s in %s\n", cGreen("✓"), cBold(args[0]), args[1], scope)
		return nil
	},
}

func init() {
	setCmd.Flags().BoolP("project", "p", false, "Write to the project config (.confkeep/config.yml)")
	ConfigCmd.AddCommand(setCmd)
}

// targetConfigPath picks the config file a mutation applies to: the explicit
// --config path when given, the project config with --project, else the
// user config.
func targetConfigPath(cmd *cobra.Command, project bool) (path, scope string, err error) {
	if explicit, _ := cmd.Flags().GetString("config"); explicit != "" {
		return explicit, explicit, nil
	}

	if project {
		if _, statErr := os.Stat(config.ProjectConfigDir()); statErr != nil {
			return "", "", clierrors.NewArgumentError(
				fmt.Sprintf("not in a project directory (missing %s)", config.ProjectConfigDir()),
				"Run 'confkeep config init --project' first")
		}
		return config.ProjectConfigPath(), "project config", nil
	}

	userPath, err := config.UserConfigPath()
	if err != nil {
		return "", "", fmt.Errorf("getting user config path: %w", err)
	}
	return userPath, "user config", nil
}
