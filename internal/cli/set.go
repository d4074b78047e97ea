package cli

import (
	"fmt"

	"github.com/ariel-frischer/confkeep/internal/cli/shared"
	"github.com/ariel-frischer/confkeep/internal/debug"
	clierrors "github.com/ariel-frischer/confkeep/internal/errors"
	"github.com/ariel-frischer/confkeep/internal/output"
	"github.com/ariel-frischer/confkeep/internal/settings"
	"github.com/spf13/cobra"
)

var setCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change the value of an existing key",
	Long: `Change the value of a key that already exists in the settings file. The
value is coerced before writing: yes/no text becomes a boolean, numeric
text becomes an integer, and path-class keys get their trailing slash
normalized. Comments above every key survive the rewrite.

Use 'confkeep add' to introduce a key that does not exist yet.`,
	Example: `  # Raise the debug level
  confkeep set DEBUG 3

  # The trailing slash is enforced for path-class keys
  confkeep set SSH_PATH /usr/local/bin`,
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
		if _, ok := values[key]; !ok {
			return clierrors.KeyNotFound(key)
		}

		values[key] = value
		written, err := settings.Write(values, cfg.Settings.Dir)
		if err != nil {
			return err
		}
		debug.Printf(2, "wrote %d settings", len(written))

		output.PrintSuccess(cmd.OutOrStdout(),
			fmt.Sprintf("%s = %s", key, output.FormatValue(written[key])))
		return nil
	},
}

func init() {
	setCmd.GroupID = shared.GroupSettings
	rootCmd.AddCommand(setCmd)
}
