package cli

import (
	"fmt"

	"github.com/ariel-frischer/confkeep/internal/cli/shared"
	"github.com/ariel-frischer/confkeep/internal/output"
	"github.com/ariel-frischer/confkeep/internal/settings"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the settings file for problems",
	Long: `Check that the settings file parses as YAML and that its comment layout
can be recovered. Parse errors are reported with line and column; a line
that is neither a comment nor a 'KEY: value' entry is reported as a
comment scan problem.

Exit Codes:
  0 - Settings file is valid
  2 - Settings file is malformed
  3 - Settings file is missing`,
	Example: `  # Validate before deploying
  confkeep validate -C /etc/server`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadToolConfig(cmd)
		if err != nil {
			return err
		}

		path, err := settings.ResolveFile(cfg.Settings.Dir)
		if err != nil {
			return err
		}

		values, err := settings.LoadFile(path)
		if err != nil {
			return err
		}

		if _, err := settings.ExtractCommentsFile(path); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		output.PrintSuccess(out, fmt.Sprintf("%s is valid", path))
		fmt.Fprintf(out, "  Keys: %d\n", len(values))
		return nil
	},
}

func init() {
	validateCmd.GroupID = shared.GroupInspection
	rootCmd.AddCommand(validateCmd)
}
