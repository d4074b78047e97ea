package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// FileName is the fixed name of the managed settings file.
const FileName = "server.conf"

// ResolveFile returns the full path of the settings file under dir.
// An empty dir falls back to the directory of the running executable, the
// program's installation directory.
func ResolveFile(dir string) (string, error) {
	if dir == "" {
		exe, err := os.Executable()
		if err != nil {
			return "", fmt.Errorf("resolving program directory: %w", err)
		}
		dir = filepath.Dir(exe)
	}
	return FormatPath(dir, true) + FileName, nil
}

// Load reads the settings file under dir and returns the formatted snapshot.
// Every value passes through FormatValue so callers always see coerced types.
// Returns a NotFoundError when the file is missing and a ParseError when the
// YAML is malformed.
func Load(dir string) (map[string]any, error) {
	path, err := ResolveFile(dir)
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile is Load for an explicit file path.
func LoadFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, fmt.Errorf("reading settings file: %w", err)
	}

	raw := make(map[string]any)
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, newParseError(path, err)
	}

	formatted := make(map[string]any, len(raw))
	for key, value := range raw {
		formatted[key] = FormatValue(key, value)
	}
	return formatted, nil
}

// newParseError converts a yaml.v3 error into a ParseError, pulling
// line/column information out of the error text when present.
func newParseError(path string, err error) *ParseError {
	var typeErr *yaml.TypeError
	if errors.As(err, &typeErr) {
		return &ParseError{Path: path, Message: strings.Join(typeErr.Errors, "; ")}
	}

	line, column := extractLineColumn(err.Error())
	return &ParseError{Path: path, Line: line, Column: column, Message: cleanYAMLError(err.Error())}
}

// extractLineColumn pulls line and column numbers from a yaml.v3 error
// message. Returns 0, 0 when the message carries no position.
func extractLineColumn(errMsg string) (line, column int) {
	var l, c int
	if n, _ := fmt.Sscanf(errMsg, "yaml: line %d: column %d:", &l, &c); n == 2 {
		return l, c
	}
	if n, _ := fmt.Sscanf(errMsg, "yaml: line %d:", &l); n == 1 {
		return l, 1
	}
	return 0, 0
}

// cleanYAMLError strips the "yaml: line X:" prefix for cleaner output.
func cleanYAMLError(errMsg string) string {
	if strings.HasPrefix(errMsg, "yaml:") {
		if idx := strings.LastIndex(errMsg, ": "); idx > 0 {
			return errMsg[idx+2:]
		}
	}
	return errMsg
}

// Store owns the settings snapshot for a running process. It is constructed
// once at startup, loaded before any reads, and passed to every component
// that needs settings; there is no package-level state. Reads and snapshot
// replacement are safe to mix from multiple goroutines, but the initial Load
// must complete before dependent components start.
type Store struct {
	dir string

	mu     sync.RWMutex
	values map[string]any
}

// NewStore creates a Store for the settings file under dir. An empty dir
// resolves to the executable's directory at load time.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// File returns the resolved path of the managed file.
func (s *Store) File() (string, error) {
	return ResolveFile(s.dir)
}

// Load reads the settings file and replaces the entire snapshot. On failure
// the previous snapshot stays installed untouched.
func (s *Store) Load() error {
	values, err := Load(s.dir)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.values = values
	s.mu.Unlock()
	return nil
}

// Loaded reports whether a snapshot has been installed.
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values != nil
}

// Get returns the formatted value for key and whether it exists.
func (s *Store) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

// All returns a copy of the current snapshot.
func (s *Store) All() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]any, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

// Write persists values as the new settings file content, preserving
// comments from the previous file, and installs the formatted mapping as the
// new snapshot. Writing and loading coerce identically, so the installed
// snapshot matches what a reload would produce.
func (s *Store) Write(values map[string]any) error {
	formatted, err := Write(values, s.dir)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.values = formatted
	s.mu.Unlock()
	return nil
}
