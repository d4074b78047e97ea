package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ariel-frischer/confkeep/internal/config"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a config file with commented defaults",
	Long: `Create a confkeep config file populated with the default values, each
documented with a comment.

By default the user-level config at ~/.config/confkeep/config.yml is
created, which applies to every project. Use --project to create
.confkeep/config.yml in the current directory instead; project config
overrides user config key by key.

An existing config file is left unchanged unless --force is given.`,
	Example: `  # Create the user-level config
  confkeep config init

  # Create a project-level config in the current directory
  confkeep config init --project

  # Overwrite an existing config with defaults
  confkeep config init --force`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolP("project", "p", false, "Create project-level config (.confkeep/config.yml)")
	initCmd.Flags().BoolP("force", "f", false, "Overwrite existing config with defaults")
	ConfigCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	project, _ := cmd.Flags().GetBool("project")
	force, _ := cmd.Flags().GetBool("force")

	created, err := initializeConfig(cmd.OutOrStdout(), project, force)
	if err != nil {
		return err
	}
	if created {
		fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n", cDim("Adjust it, then check the result with 'confkeep config show'."))
	}
	return nil
}

// initializeConfig creates or updates the config file.
// Returns true if a new config was created.
func initializeConfig(out io.Writer, project, force bool) (bool, error) {
	configPath, err := getConfigPath(project)
	if err != nil {
		return false, fmt.Errorf("getting config path: %w", err)
	}

	configExists := fileExists(configPath)

	if configExists && !force {
		fmt.Fprintf(out, "%s %s: exists at %s\n", cGreen("✓"), cBold("Config"), cDim(configPath))
		return false, nil
	}

	if err := writeDefaultConfig(configPath); err != nil {
		return false, fmt.Errorf("writing default config: %w", err)
	}

	if configExists {
		fmt.Fprintf(out, "%s %s: overwritten at %s\n", cGreen("✓"), cBold("Config"), cDim(configPath))
	} else {
		fmt.Fprintf(out, "%s %s: created at %s\n", cGreen("✓"), cBold("Config"), cDim(configPath))
	}

	return !configExists, nil
}

// getConfigPath returns the appropriate config path based on the project flag
func getConfigPath(project bool) (string, error) {
	if project {
		return config.ProjectConfigPath(), nil
	}
	configPath, err := config.UserConfigPath()
	if err != nil {
		return "", fmt.Errorf("failed to get user config path: %w", err)
	}
	return configPath, nil
}

// writeDefaultConfig writes the default configuration to the given path
func writeDefaultConfig(configPath string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	template := config.GetDefaultConfigTemplate()
	if err := os.WriteFile(configPath, []byte(template), 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
