package config

import (
	"fmt"

	"github.com/ariel-frischer/confkeep/internal/config"
	"github.com/spf13/cobra"
)

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "List the configuration files consulted",
	Long: `List every configuration layer in ascending priority order, marking the
files that exist. Later layers override earlier ones key by key.`,
	Example: `  # List the config layers
  confkeep config path`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		out := cmd.OutOrStdout()

		for _, src := range config.Sources(configPath) {
			marker := cRed("✗")
			if src.Exists {
				marker = cGreen("✓")
			}
			fmt.Fprintf(out, "%s %s %s\n", marker, cBold(fmt.Sprintf("%-8s", src.Kind)), src.Path)
		}
		return nil
	},
}

func init() {
	ConfigCmd.AddCommand(pathCmd)
}
