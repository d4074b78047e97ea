package cli

import (
	"github.com/ariel-frischer/confkeep/internal/cli/shared"
	"github.com/ariel-frischer/confkeep/internal/debug"
	"github.com/ariel-frischer/confkeep/internal/output"
	"github.com/ariel-frischer/confkeep/internal/settings"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print all settings with their comments",
	Long: `Print every key in the settings file with its current value and the
comment block documenting it. Keys are listed in sorted order; values are
shown after coercion, so booleans and integers appear typed.`,
	Example: `  # Show the settings file next to the binary
  confkeep show

  # Show a settings file in another directory
  confkeep show -C /etc/server`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadToolConfig(cmd)
		if err != nil {
			return err
		}

		data, err := settings.Render(cfg.Settings.Dir)
		if err != nil {
			return err
		}
		debug.Printf(2, "loaded %d settings", len(data.Constants))

		output.PrintSettings(cmd.OutOrStdout(), data.Constants, data.Comments)
		return nil
	},
}

func init() {
	showCmd.GroupID = shared.GroupSettings
	rootCmd.AddCommand(showCmd)
}
