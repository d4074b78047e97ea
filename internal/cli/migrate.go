package cli

import (
	"fmt"

	"github.com/ariel-frischer/confkeep/internal/cli/shared"
	"github.com/ariel-frischer/confkeep/internal/output"
	"github.com/ariel-frischer/confkeep/internal/settings"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var migrateDryRun bool

var migrateCmd = &cobra.Command{
	Use:   "migrate <legacy-json>",
	Short: "Import a legacy JSON settings file",
	Long: `Import a flat JSON settings document and write it as the YAML settings
file, coercing every value the same way the loader does.

Migration never overwrites: when the settings file already exists the import
is skipped and nothing is written. Nested JSON documents are rejected because
the settings file holds top-level scalars only.`,
	Example: `  # Import settings.json into the directory next to the binary
  confkeep migrate settings.json

  # Preview the values without writing anything
  confkeep migrate settings.json --dry-run

  # Import into another directory
  confkeep migrate settings.json -C /etc/server`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadToolConfig(cmd)
		if err != nil {
			return err
		}

		result, err := settings.MigrateJSON(args[0], cfg.Settings.Dir, migrateDryRun)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if !result.Success {
			yellow := color.New(color.FgYellow, color.Bold)
			yellow.Fprintln(out, result.Message)
			return nil
		}

		if result.DryRun {
			fmt.Fprintln(out, result.Message)
			fmt.Fprintln(out)
			output.PrintSettings(out, result.Values, nil)
			fmt.Fprintln(out)
			yellow := color.New(color.FgYellow, color.Bold)
			yellow.Fprintln(out, "Dry run complete. No changes were made.")
			return nil
		}

		output.PrintSuccess(out, result.Message)
		fmt.Fprintf(out, "  Keys: %d\n", len(result.Values))
		return nil
	},
}

func init() {
	migrateCmd.Flags().BoolVar(&migrateDryRun, "dry-run", false, "Show what would be migrated without writing")
	migrateCmd.GroupID = shared.GroupGettingStarted
	rootCmd.AddCommand(migrateCmd)
}
