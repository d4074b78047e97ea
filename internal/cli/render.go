package cli

import (
	"encoding/json"
	"fmt"

	"github.com/ariel-frischer/confkeep/internal/cli/shared"
	"github.com/ariel-frischer/confkeep/internal/settings"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Emit settings as JSON for a web frontend",
	Long: `Emit the settings file as a JSON document shaped for a configuration
frontend: the coerced values, the comment text per key, and the API
endpoint URLs derived from WEB_API_PATH. When WEB_API_PATH is absent the
endpoints are empty strings.`,
	Example: `  # Render to stdout
  confkeep render

  # Feed a frontend build
  confkeep render > web/settings.json`,
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

		encoded, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding render data: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
		return nil
	},
}

func init() {
	renderCmd.GroupID = shared.GroupInspection
	rootCmd.AddCommand(renderCmd)
}
