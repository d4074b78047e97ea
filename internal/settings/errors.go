package settings

import "fmt"

// NotFoundError reports a missing settings file at the resolved path.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("settings file not found: %s", e.Path)
}

// ExistsError reports a settings file that would be overwritten.
type ExistsError struct {
	Path string
}

func (e *ExistsError) Error() string {
	return fmt.Sprintf("settings file already exists: %s", e.Path)
}

// ParseError reports malformed YAML in the settings file.
// Line and Column are 1-based and zero when the parser did not report them.
type ParseError struct {
	Path    string
	Line    int
	Column  int
	Message string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s", e.Path, e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// KeyFormatError reports a top-level line whose key token could not be
// parsed during comment extraction.
type KeyFormatError struct {
	Path string
	Line int
	Text string
}

func (e *KeyFormatError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s:%d: cannot parse key from line %q", e.Path, e.Line, e.Text)
	}
	return fmt.Sprintf("line %d: cannot parse key from line %q", e.Line, e.Text)
}
