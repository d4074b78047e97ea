package settings

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Write rewrites the settings file under dir with values, preserving the
// comment blocks of the previous file. Returns the formatted mapping that
// was persisted.
//
// Comments are recovered from the old file text, never stored elsewhere:
// each recovered block is re-injected directly above its key in the new
// content, with one blank line separating top-level key blocks. Keys new to
// the file get no comment; comments of removed keys are dropped. The file is
// replaced atomically, so a failing write leaves the previous content
// intact and concurrent readers never observe a torn file. Two racing
// writers are not coordinated; the last rename wins.
func Write(values map[string]any, dir string) (map[string]any, error) {
	path, err := ResolveFile(dir)
	if err != nil {
		return nil, err
	}
	return WriteFile(values, path)
}

// WriteFile is Write for an explicit file path. A missing previous file is
// not an error; the new content is simply written without comments.
func WriteFile(values map[string]any, path string) (map[string]any, error) {
	comments, err := ExtractCommentsFile(path)
	if err != nil {
		return nil, err
	}

	formatted := formatAll(values)

	doc, err := marshalSettings(formatted)
	if err != nil {
		return nil, err
	}

	text := injectComments(string(doc), comments)

	if err := atomicWriteFile(path, []byte(text)); err != nil {
		return nil, err
	}
	return formatted, nil
}

// marshalSettings serializes the mapping as block-style YAML with four-space
// indentation and keys in sorted order, so repeated writes of the same
// mapping produce identical bytes.
func marshalSettings(values map[string]any) ([]byte, error) {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	doc := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, key := range keys {
		var value yaml.Node
		if err := value.Encode(values[key]); err != nil {
			return nil, fmt.Errorf("encoding value of %s: %w", key, err)
		}
		doc.Content = append(doc.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
			&value,
		)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(4)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encoding settings: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("closing encoder: %w", err)
	}
	return buf.Bytes(), nil
}

// topLevelKeyLine matches an unindented "key:" line in serialized output.
var topLevelKeyLine = regexp.MustCompile(`^(\S+):`)

// injectComments places each comment block directly above its key line and
// separates top-level key blocks with exactly one blank line. The first
// block starts at the top of the file without a leading blank.
func injectComments(doc string, comments map[string][]string) string {
	lines := strings.Split(strings.TrimRight(doc, "\n"), "\n")
	out := make([]string, 0, len(lines))

	first := true
	for _, line := range lines {
		if m := topLevelKeyLine.FindStringSubmatch(line); m != nil {
			if !first {
				out = append(out, "")
			}
			for _, text := range comments[m[1]] {
				if text == "" {
					out = append(out, "#")
				} else {
					out = append(out, "# "+text)
				}
			}
			first = false
		}
		out = append(out, line)
	}

	return strings.Join(out, "\n") + "\n"
}

// atomicWriteFile writes data to path using the temp file + rename pattern.
// Ensures no partial writes occur on crash.
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("writing temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath) // Best effort cleanup
		return fmt.Errorf("renaming temp file: %w", err)
	}

	return nil
}
