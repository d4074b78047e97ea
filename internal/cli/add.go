package cli

import (
	"fmt"

	"github.com/ariel-frischer/confkeep/internal/cli/shared"
	clierrors "github.com/ariel-frischer/confkeep/internal/errors"
	"github.com/ariel-frischer/confkeep/internal/output"
	"github.com/ariel-frischer/confkeep/internal/settings"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <key> <value>",
	Short: "Add a new key to the settings file",
	Long: `Add a key that does not exist in the settings file yet. The value is
coerced like any other write. The new key lands in sorted position among
the existing keys and starts without a comment block.

Use 'confkeep set' to change a key that already exists.`,
	Example: `  # Introduce a new flag
  confkeep add USE_IPV6 no

  # Numeric text arrives typed
  confkeep add MAX_RETRIES 5`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadToolConfig(cmd)
		if err != nil {
			return err
		}

		values, err := settings.Load(cfg.Settings.Dir)
		if err != nil {
			return err
		}

		key, value := args[0], args[1]
		if _, ok := values[key]; ok {
			return clierrors.KeyAlreadyExists(key)
		}

		values[key] = value
		written, err := settings.Write(values, cfg.Settings.Dir)
		if err != nil {
			return err
		}

		output.PrintSuccess(cmd.OutOrStdout(),
			fmt.Sprintf("added %s = %s", key, output.FormatValue(written[key])))
		return nil
	},
}

func init() {
	addCmd.GroupID = shared.GroupSettings
	rootCmd.AddCommand(addCmd)
}
