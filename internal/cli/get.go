package cli

import (
	"fmt"

	"github.com/ariel-frischer/confkeep/internal/cli/shared"
	clierrors "github.com/ariel-frischer/confkeep/internal/errors"
	"github.com/ariel-frischer/confkeep/internal/settings"
	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print the value of a single key",
	Long: `Print the coerced value of one settings key, without decoration, so the
output can feed straight into scripts.`,
	Example: `  # Read one value
  confkeep get DEBUG

  # Use it in a script
  ssh_dir=$(confkeep get SSH_PATH)`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadToolConfig(cmd)
		if err != nil {
			return err
		}

		values, err := settings.Load(cfg.Settings.Dir)
		if err != nil {
			return err
		}

		key := args[0]
		value, ok := values[key]
		if !ok {
			return clierrors.KeyNotFound(key)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%v\n", value)
		return nil
	},
}

func init() {
	getCmd.GroupID = shared.GroupSettings
	rootCmd.AddCommand(getCmd)
}
