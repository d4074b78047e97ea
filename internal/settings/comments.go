package settings

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ExtractComments scans the raw settings file text and returns the comment
// block attached to each top-level key. A block is the contiguous run of
// #-prefixed lines directly above the key's definition line, stored with the
// marker stripped and surrounding whitespace trimmed. Keys without a comment
// block have no entry.
//
// Blank and indented lines break adjacency: a pending comment block is
// dropped when one is reached, so only comments immediately above a
// top-level key survive. A non-blank top-level line without a colon cannot
// yield a key token and produces a KeyFormatError.
func ExtractComments(r io.Reader) (map[string][]string, error) {
	comments := make(map[string][]string)
	var pending []string

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()

		switch {
		case strings.HasPrefix(line, "#"):
			pending = append(pending, strings.TrimSpace(line[1:]))
		case strings.TrimSpace(line) == "":
			pending = nil
		case line[0] == ' ' || line[0] == '\t':
			// Nested content; comment fidelity is top-level only.
			pending = nil
		default:
			idx := strings.Index(line, ":")
			if idx <= 0 {
				return nil, &KeyFormatError{Line: lineNum, Text: line}
			}
			if len(pending) > 0 {
				comments[strings.TrimSpace(line[:idx])] = pending
				pending = nil
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning settings file: %w", err)
	}

	return comments, nil
}

// ExtractCommentsFile runs ExtractComments over the file at path, attaching
// the path to any KeyFormatError. A missing file yields an empty map so
// callers rewriting a fresh file need no special case.
func ExtractCommentsFile(path string) (map[string][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string][]string{}, nil
		}
		return nil, fmt.Errorf("opening settings file: %w", err)
	}
	defer f.Close()

	comments, err := ExtractComments(f)
	if err != nil {
		if keyErr, ok := err.(*KeyFormatError); ok {
			keyErr.Path = path
		}
		return nil, err
	}
	return comments, nil
}
