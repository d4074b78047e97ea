package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrEmptyKeyPath is returned when a key path has no segments.
var ErrEmptyKeyPath = errors.New("empty key path")

// ParseKeyPath splits a dotted key path into its segments.
func ParseKeyPath(path string) ([]string, error) {
	if path == "" {
		return nil, ErrEmptyKeyPath
	}

	parts := strings.Split(path, ".")
	for _, part := range parts {
		if part == "" {
			return nil, fmt.Errorf("invalid key path: %q", path)
		}
	}
	return parts, nil
}

// SetConfigValue validates value against the schema for key and writes it
// into the config file at configPath, creating the file and its parent
// directories when missing. Existing keys, formatting, and comments in the
// file are preserved; only the addressed value changes.
func SetConfigValue(configPath, key, value string) error {
	parsed, err := ValidateValue(key, value)
	if err != nil {
		return err
	}

	keyPath, err := ParseKeyPath(key)
	if err != nil {
		return err
	}

	var root yaml.Node
	data, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &root); err != nil {
			return fmt.Errorf("parsing config file %s: %w", configPath, err)
		}
	case os.IsNotExist(err):
		// New file; SetNestedValue builds the document from scratch
	default:
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := SetNestedValue(&root, keyPath, parsed.Parsed); err != nil {
		return err
	}

	out, err := yaml.Marshal(&root)
	if err != nil {
		return fmt.Errorf("serializing config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(configPath, out, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// SetNestedValue sets the value at keyPath inside a parsed YAML document,
// creating intermediate mappings as needed. Comments attached to existing
// nodes survive because the tree is edited in place, never rebuilt.
func SetNestedValue(root *yaml.Node, keyPath []string, value interface{}) error {
	if len(keyPath) == 0 {
		return ErrEmptyKeyPath
	}

	if root.Kind == 0 {
		root.Kind = yaml.DocumentNode
		root.Content = []*yaml.Node{{Kind: yaml.MappingNode, Tag: "!!map"}}
	}

	node := root
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			node.Content = []*yaml.Node{{Kind: yaml.MappingNode, Tag: "!!map"}}
		}
		node = node.Content[0]
	}

	for i, key := range keyPath {
		last := i == len(keyPath)-1

		if node.Kind != yaml.MappingNode {
			if i == 0 {
				return errors.New("config root is not a mapping")
			}
			return fmt.Errorf("key %q is not a mapping", strings.Join(keyPath[:i], "."))
		}

		child := findMappingValue(node, key)
		if child == nil {
			keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}
			valueNode := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
			if last {
				valueNode = &yaml.Node{}
				if err := valueNode.Encode(value); err != nil {
					return fmt.Errorf("encoding value: %w", err)
				}
			}
			node.Content = append(node.Content, keyNode, valueNode)
			node = valueNode
			continue
		}

		if last {
			fresh := &yaml.Node{}
			if err := fresh.Encode(value); err != nil {
				return fmt.Errorf("encoding value: %w", err)
			}
			fresh.HeadComment = child.HeadComment
			fresh.LineComment = child.LineComment
			fresh.FootComment = child.FootComment
			*child = *fresh
			continue
		}

		node = child
	}

	return nil
}

// GetNestedValue returns the node at keyPath inside a parsed YAML document,
// or nil when any segment is missing.
func GetNestedValue(root *yaml.Node, keyPath []string) *yaml.Node {
	if len(keyPath) == 0 {
		return nil
	}

	node := root
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return nil
		}
		node = node.Content[0]
	}

	for _, key := range keyPath {
		node = findMappingValue(node, key)
		if node == nil {
			return nil
		}
	}
	return node
}

// findMappingValue returns the value node for key in a mapping, or nil.
func findMappingValue(node *yaml.Node, key string) *yaml.Node {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}
