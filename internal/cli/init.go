package cli

import (
	"fmt"

	"github.com/ariel-frischer/confkeep/internal/cli/shared"
	"github.com/ariel-frischer/confkeep/internal/output"
	"github.com/ariel-frischer/confkeep/internal/settings"
	"github.com/spf13/cobra"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter settings file",
	Long: `Create a settings file from the built-in template: every key the server
reads, each with a sensible default and a comment explaining it.

The file lands in the directory of the running binary unless --dir or
the settings.dir config key points elsewhere. An existing file is left
untouched unless --force is given.`,
	Example: `  # Create server.conf next to the binary
  confkeep init

  # Create it in a system directory
  confkeep init -C /etc/server

  # Start over from the template
  confkeep init --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadToolConfig(cmd)
		if err != nil {
			return err
		}

		path, err := settings.InitFile(cfg.Settings.Dir, initForce)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		output.PrintSuccess(out, fmt.Sprintf("created %s", path))
		fmt.Fprintln(out, "  Review the defaults with: confkeep show")
		return nil
	},
}

func init() {
	initCmd.GroupID = shared.GroupGettingStarted
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing settings file with the template")
	rootCmd.AddCommand(initCmd)
}
