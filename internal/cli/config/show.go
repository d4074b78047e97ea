package config

import (
	"fmt"

	"github.com/ariel-frischer/confkeep/internal/config"
	"github.com/ariel-frischer/confkeep/internal/output"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Long: `Show the configuration confkeep runs with after merging every layer:
built-in defaults, the user config, the project config, and CONFKEEP_*
environment variables.`,
	Example: `  # Show the merged configuration
  confkeep config show

  # Show what a specific config file produces
  confkeep config show --config ./staging.yml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		values := map[string]any{
			"settings.dir":   cfg.Settings.Dir,
			"debug.level":    cfg.Debug.Level,
			"output.color":   cfg.Output.Color,
			"watch.interval": cfg.Watch.Interval.String(),
		}
		if cfg.Settings.Dir == "" {
			values["settings.dir"] = "(executable directory)"
		}

		out := cmd.OutOrStdout()
		output.PrintSettings(out, values, nil)
		fmt.Fprintf(out, "\n%s\n", cDim("Run 'confkeep config path' to see which files were merged."))
		return nil
	},
}

func init() {
	ConfigCmd.AddCommand(showCmd)
}
