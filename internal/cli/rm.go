package cli

import (
	"fmt"

	"github.com/ariel-frischer/confkeep/internal/cli/shared"
	clierrors "github.com/ariel-frischer/confkeep/internal/errors"
	"github.com/ariel-frischer/confkeep/internal/output"
	"github.com/ariel-frischer/confkeep/internal/settings"
	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:     "rm <key>",
	Aliases: []string{"remove"},
	Short:   "Remove a key from the settings file",
	Long: `Remove a key and its value from the settings file. The comment block
above the removed key is dropped with it; comments of the remaining keys
survive the rewrite.`,
	Example: `  # Drop a key
  confkeep rm USE_IPV6`,
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
		if _, ok := values[key]; !ok {
			return clierrors.KeyNotFound(key)
		}

		delete(values, key)
		if _, err := settings.Write(values, cfg.Settings.Dir); err != nil {
			return err
		}

		output.PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("removed %s", key))
		return nil
	},
}

func init() {
	rmCmd.GroupID = shared.GroupSettings
	rootCmd.AddCommand(rmCmd)
}
