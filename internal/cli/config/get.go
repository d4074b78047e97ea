package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/ariel-frischer/confkeep/internal/config"
	clierrors "github.com/ariel-frischer/confkeep/internal/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var getCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value and its source",
	Long: `Get a single configuration value along with the layer it comes from:
environment, project config, user config, or the built-in default.`,
	Example: `  # Where does the debug level come from?
  confkeep config get debug.level

  # Check the effective settings directory
  confkeep config get settings.dir`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		schema, err := config.GetKeySchema(args[0])
		if err != nil {
			return clierrors.Wrap(err, clierrors.Argument)
		}

		keyPath, err := config.ParseKeyPath(args[0])
		if err != nil {
			return clierrors.Wrap(err, clierrors.Argument)
		}

		out := cmd.OutOrStdout()
		value, source := lookupConfigValue(cmd, args[0], keyPath)
		if source == "" {
			fmt.Fprintf(out, "%s: %v %s\n", cBold(args[0]), schema.Default, cDim("(default, not set)"))
			return nil
		}

		fmt.Fprintf(out, "%s: %s %s\n", cBold(args[0]), value, cDim("("+source+")"))
		return nil
	},
}

func init() {
	ConfigCmd.AddCommand(getCmd)
}

// lookupConfigValue finds the highest-priority layer defining key.
// Returns the raw value and a source label, or "" when no layer sets it.
func lookupConfigValue(cmd *cobra.Command, key string, keyPath []string) (string, string) {
	envName := "CONFKEEP_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	if v, ok := os.LookupEnv(envName); ok {
		return v, "environment " + envName
	}

	projectPath := config.ProjectConfigPath()
	if explicit, _ := cmd.Flags().GetString("config"); explicit != "" {
		projectPath = explicit
	}
	if v, ok := fileValue(projectPath, keyPath); ok {
		return v, "project config"
	}

	if userPath, err := config.UserConfigPath(); err == nil {
		if v, ok := fileValue(userPath, keyPath); ok {
			return v, "user config"
		}
	}

	return "", ""
}

// fileValue reads a scalar value at keyPath from a YAML file.
func fileValue(path string, keyPath []string) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return "", false
	}

	node := config.GetNestedValue(&root, keyPath)
	if node == nil || node.Kind != yaml.ScalarNode {
		return "", false
	}
	return node.Value, true
}
