// Package output provides terminal output formatting utilities for the
// confkeep CLI. This package is designed to have minimal dependencies to
// avoid import cycles.
package output

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// GetTerminalWidth returns the terminal width, defaulting to 80 if unavailable.
func GetTerminalWidth() int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	return 80
}

// IsTerminal reports whether stdout is attached to a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// FormatValue renders a settings value with a color cue for its type:
// booleans green, integers magenta, strings plain.
func FormatValue(value any) string {
	switch v := value.(type) {
	case bool:
		return color.New(color.FgGreen).Sprintf("%v", v)
	case int:
		return color.New(color.FgMagenta).Sprintf("%d", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// PrintSettings prints the snapshot as aligned "KEY: value" lines in sorted
// key order, with each key's comment above it in faint text.
func PrintSettings(out io.Writer, values map[string]any, comments map[string]string) {
	keys := make([]string, 0, len(values))
	width := 0
	for key := range values {
		keys = append(keys, key)
		if len(key) > width {
			width = len(key)
		}
	}
	sort.Strings(keys)

	cyan := color.New(color.FgCyan).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	for i, key := range keys {
		if c := comments[key]; c != "" {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "%s\n", dim("# "+c))
		}
		padding := strings.Repeat(" ", width-len(key))
		fmt.Fprintf(out, "%s:%s %s\n", cyan(key), padding, FormatValue(values[key]))
	}
}

// PrintDiff prints the changed, added, and removed keys between two
// snapshots, one line per key. Returns the number of differences.
func PrintDiff(out io.Writer, before, after map[string]any) int {
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	keys := make([]string, 0, len(before)+len(after))
	seen := make(map[string]struct{}, len(before)+len(after))
	for key := range before {
		keys = append(keys, key)
		seen[key] = struct{}{}
	}
	for key := range after {
		if _, ok := seen[key]; !ok {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	changes := 0
	for _, key := range keys {
		oldValue, inOld := before[key]
		newValue, inNew := after[key]
		switch {
		case !inOld:
			fmt.Fprintf(out, "%s %s: %v\n", green("+"), key, newValue)
			changes++
		case !inNew:
			fmt.Fprintf(out, "%s %s: %v\n", red("-"), key, oldValue)
			changes++
		case oldValue != newValue:
			fmt.Fprintf(out, "%s %s: %v -> %v\n", yellow("~"), key, oldValue, newValue)
			changes++
		}
	}
	return changes
}

// PrintSuccess prints a green checkmark line.
func PrintSuccess(out io.Writer, message string) {
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	fmt.Fprintf(out, "%s %s\n", green("✓"), message)
}
