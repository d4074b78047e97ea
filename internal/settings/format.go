package settings

import (
	"fmt"
	"strconv"
	"strings"
)

// Separator is the path separator enforced by the path classes. Settings
// values are URL and config paths, so this is always a forward slash.
const Separator = "/"

// pathWithSlash lists keys whose values always end with the separator.
var pathWithSlash = map[string]struct{}{
	"WEB_API_PATH":   {},
	"WEB_GUI_PATH":   {},
	"WAKEONLAN_PATH": {},
	"PING_PATH":      {},
	"SSH_PATH":       {},
}

// pathWithoutSlash lists keys whose values never end with the separator.
var pathWithoutSlash = map[string]struct{}{
	"MESSAGE_LOG":  {},
	"ERROR_LOG":    {},
	"SSH_KEY_FILE": {},
}

// FormatValue coerces a raw settings value to its canonical type for key.
// The rules are ordered and the first match wins:
//
//  1. key in the always-slash path class: trailing separator enforced
//  2. key in the never-slash path class: trailing separators stripped
//  3. textual form is "yes" or "true" (case-insensitive): true
//  4. textual form is "no" or "false" (case-insensitive): false
//  5. textual form parses as a base-10 integer: int
//  6. otherwise: raw, unchanged
//
// Path-class membership always wins over boolean and integer inference, so a
// path value that happens to look numeric stays a path string. The function
// is total and idempotent; it never fails.
func FormatValue(key string, raw any) any {
	if _, ok := pathWithSlash[key]; ok {
		return FormatPath(textOf(raw), true)
	}
	if _, ok := pathWithoutSlash[key]; ok {
		return FormatPath(textOf(raw), false)
	}

	switch strings.ToLower(textOf(raw)) {
	case "yes", "true":
		return true
	case "no", "false":
		return false
	}

	if n, err := strconv.Atoi(strings.TrimSpace(textOf(raw))); err == nil {
		return n
	}

	return raw
}

// FormatPath normalizes the trailing separator of a path string.
// With slash true a non-empty path gains a trailing separator if missing;
// with slash false every trailing separator is removed. Empty paths pass
// through untouched in both modes.
func FormatPath(path string, slash bool) string {
	if path == "" {
		return path
	}
	if slash {
		if !strings.HasSuffix(path, Separator) {
			return path + Separator
		}
		return path
	}
	return strings.TrimRight(path, Separator)
}

// textOf returns the textual form of a scalar used by the coercion rules.
// Strings pass through; everything else renders the way fmt prints it.
func textOf(raw any) string {
	if s, ok := raw.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", raw)
}

// formatAll applies FormatValue to every entry, returning a new map.
func formatAll(values map[string]any) map[string]any {
	formatted := make(map[string]any, len(values))
	for key, value := range values {
		formatted[key] = FormatValue(key, value)
	}
	return formatted
}
