package settings

import "os"

// DefaultTemplate returns a commented starter settings file. The layout is
// the writer's canonical form (sorted keys, one blank line between blocks,
// comments directly above their key), so rewriting the template through
// Write reproduces it byte for byte.
func DefaultTemplate() string {
	return `# Print debug messages at or below this level (0 disables)
DEBUG: 0

# Server error log, written by the error reporter
ERROR_LOG: /var/log/server/error.log

# Server message log, written by request handlers
MESSAGE_LOG: /var/log/server/message.log

# Directory containing the ping binary
PING_PATH: /bin/

# Private key used for outbound SSH commands
SSH_KEY_FILE: /etc/server/keys/id_rsa

# Directory containing the ssh binary
SSH_PATH: /usr/bin/

# Serve the web interface over HTTPS
USE_SSL: false

# Directory containing the wakeonlan binary
WAKEONLAN_PATH: /usr/bin/

# Base path of the settings web API
WEB_API_PATH: /api/

# Base path of the web GUI
WEB_GUI_PATH: /gui/
`
}

// InitFile creates the settings file under dir from the default template,
// atomically like every other write. An existing file is left untouched and
// reported as an ExistsError unless force is set.
func InitFile(dir string, force bool) (string, error) {
	path, err := ResolveFile(dir)
	if err != nil {
		return "", err
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return path, &ExistsError{Path: path}
		}
	}

	if err := atomicWriteFile(path, []byte(DefaultTemplate())); err != nil {
		return "", err
	}
	return path, nil
}
