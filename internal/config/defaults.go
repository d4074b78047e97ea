package config

import "time"

// GetDefaultConfigTemplate returns a fully commented config template
// that helps users understand all available options
func GetDefaultConfigTemplate() string {
	return `# Confkeep Configuration
# See 'confkeep config -h' for commands

# Settings file location
settings:
    dir: ""                             # Directory holding server.conf (empty = executable directory)

# Debug output
debug:
    level: 0                            # Print debug messages at or below this level (0-10, 0 disables)

# Output settings
output:
    color: true                         # Colorize command output

# Watch settings
watch:
    interval: 1s                        # Poll fallback interval for 'confkeep watch'
`
}

// GetDefaults returns the default configuration values
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		// settings.dir: Directory holding the settings file.
		// Empty means the directory of the running executable.
		"settings.dir": "",
		// debug.level: Print debug messages at or below this level.
		// 0 disables debug output entirely. Valid range: 0-10.
		"debug.level": 0,
		// output.color: Colorize command output. The --no-color flag
		// and NO_COLOR env var both override this to false.
		"output.color": true,
		// watch.interval: Poll fallback interval for the watch command.
		// Filesystem events are primary; polling covers missed events.
		"watch.interval": time.Second.String(),
	}
}
