package cli

import (
	"fmt"
	"runtime"

	"github.com/ariel-frischer/confkeep/internal/cli/shared"
	"github.com/ariel-frischer/confkeep/internal/version"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var versionPlain bool

var versionCmd = &cobra.Command{
	Use:     "version",
	Aliases: []string{"v"},
	Short:   "Display version information (v)",
	Long:    "Display version, commit, build date, and Go version information for confkeep",
	Example: `  # Show version info
  confkeep version

  # Plain output (for scripts)
  confkeep version --plain`,
	Run: func(cmd *cobra.Command, args []string) {
		if versionPlain {
			printPlainVersion()
		} else {
			printPrettyVersion()
		}
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionPlain, "plain", false, "Plain output without formatting")
	versionCmd.GroupID = shared.GroupGettingStarted
	rootCmd.AddCommand(versionCmd)
}

// printPlainVersion prints a simple version output for scripting
func printPlainVersion() {
	fmt.Printf("confkeep %s\n", version.Version)
	fmt.Printf("commit: %s\n", version.Commit)
	fmt.Printf("built: %s\n", version.BuildDate)
	fmt.Printf("go: %s\n", runtime.Version())
	fmt.Printf("platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
}

// printPrettyVersion prints a styled version output
func printPrettyVersion() {
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	white := color.New(color.FgWhite, color.Bold).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	fmt.Println()
	fmt.Println(cyan("confkeep") + " " + white(version.Version))
	fmt.Println()

	info := []struct {
		label string
		value string
	}{
		{"Commit", truncateCommit(version.Commit)},
		{"Built", version.BuildDate},
		{"Go", runtime.Version()},
		{"Platform", fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)},
	}

	for _, item := range info {
		fmt.Printf("  %s  %s\n", yellow(fmt.Sprintf("%8s", item.label)), white(item.value))
	}
	fmt.Println()
}

// truncateCommit shortens commit hash if it's too long
func truncateCommit(commit string) string {
	if len(commit) > 8 {
		return commit[:8]
	}
	return commit
}
