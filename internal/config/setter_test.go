package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestParseKeyPath(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		path    string
		want    []string
		wantErr error
	}{
		"single key": {
			path: "color",
			want: []string{"color"},
		},
		"nested key": {
			path: "debug.level",
			want: []string{"debug", "level"},
		},
		"deeply nested key": {
			path: "a.b.c.d",
			want: []string{"a", "b", "c", "d"},
		},
		"empty string": {
			path:    "",
			wantErr: ErrEmptyKeyPath,
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseKeyPath(tt.path)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ParseKeyPath(%q) error = %v, wantErr = %v", tt.path, err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Errorf("ParseKeyPath(%q) = %v, want %v", tt.path, got, tt.want)
				return
			}
			for i := range got {
				tt := tt
				if got[i] != tt.want[i] {
					t.Errorf("ParseKeyPath(%q)[%d] = %q, want %q", tt.path, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParseKeyPathEmptySegment(t *testing.T) {
	t.Parallel()

	for _, path := range []string{".", "debug.", ".level", "debug..level"} {
		if _, err := ParseKeyPath(path); err == nil {
			t.Errorf("ParseKeyPath(%q) should reject empty segments", path)
		}
	}
}

func TestSetNestedValue(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		initialYAML  string
		keyPath      []string
		value        interface{}
		expectedYAML string
	}{
		"set top-level string": {
			initialYAML:  "",
			keyPath:      []string{"name"},
			value:        "test",
			expectedYAML: "name: test\n",
		},
		"set top-level int": {
			initialYAML:  "",
			keyPath:      []string{"count"},
			value:        42,
			expectedYAML: "count: 42\n",
		},
		"set nested value": {
			initialYAML:  "",
			keyPath:      []string{"debug", "level"},
			value:        3,
			expectedYAML: "debug:\n    level: 3\n",
		},
		"update existing value": {
			initialYAML:  "watch:\n    interval: 1s\n",
			keyPath:      []string{"watch", "interval"},
			value:        "5s",
			expectedYAML: "watch:\n    interval: 5s\n",
		},
		"add to existing mapping": {
			initialYAML:  "debug:\n    level: 1\n",
			keyPath:      []string{"output", "color"},
			value:        false,
			expectedYAML: "debug:\n    level: 1\noutput:\n    color: false\n",
		},
		"append inside existing mapping": {
			initialYAML:  "settings:\n    dir: /etc/server\n",
			keyPath:      []string{"settings", "backup"},
			value:        true,
			expectedYAML: "settings:\n    dir: /etc/server\n    backup: true\n",
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var root yaml.Node
			if tt.initialYAML != "" {
				if err := yaml.Unmarshal([]byte(tt.initialYAML), &root); err != nil {
					t.Fatalf("failed to parse initial YAML: %v", err)
				}
			}

			if err := SetNestedValue(&root, tt.keyPath, tt.value); err != nil {
				t.Fatalf("SetNestedValue() error: %v", err)
			}

			out, err := yaml.Marshal(&root)
			if err != nil {
				t.Fatalf("failed to marshal result: %v", err)
			}

			if string(out) != tt.expectedYAML {
				t.Errorf("SetNestedValue() result:\n%s\nwant:\n%s", out, tt.expectedYAML)
			}
		})
	}
}

func TestSetNestedValueErrors(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		initialYAML string
		keyPath     []string
		errContain  string
	}{
		"empty key path": {
			initialYAML: "debug:\n    level: 1\n",
			keyPath:     nil,
			errContain:  "empty key path",
		},
		"scalar root": {
			initialYAML: "just a string\n",
			keyPath:     []string{"debug", "level"},
			errContain:  "config root is not a mapping",
		},
		"scalar ancestor": {
			initialYAML: "debug: off\n",
			keyPath:     []string{"debug", "level"},
			errContain:  `key "debug" is not a mapping`,
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var root yaml.Node
			if err := yaml.Unmarshal([]byte(tt.initialYAML), &root); err != nil {
				t.Fatalf("failed to parse initial YAML: %v", err)
			}

			err := SetNestedValue(&root, tt.keyPath, 1)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !containsString(err.Error(), tt.errContain) {
				t.Errorf("error = %q, want to contain %q", err.Error(), tt.errContain)
			}
		})
	}
}

func TestGetNestedValue(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		yaml    string
		keyPath []string
		want    string
		wantNil bool
	}{
		"get top-level": {
			yaml:    "name: test\n",
			keyPath: []string{"name"},
			want:    "test",
		},
		"get nested": {
			yaml:    "debug:\n  level: 3\n",
			keyPath: []string{"debug", "level"},
			want:    "3",
		},
		"missing key": {
			yaml:    "name: test\n",
			keyPath: []string{"missing"},
			wantNil: true,
		},
		"missing nested key": {
			yaml:    "debug:\n  level: 3\n",
			keyPath: []string{"debug", "missing"},
			wantNil: true,
		},
		"empty path": {
			yaml:    "name: test\n",
			keyPath: []string{},
			wantNil: true,
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var root yaml.Node
			if err := yaml.Unmarshal([]byte(tt.yaml), &root); err != nil {
				t.Fatalf("failed to parse YAML: %v", err)
			}

			got := GetNestedValue(&root, tt.keyPath)

			if tt.wantNil {
				if got != nil {
					t.Errorf("GetNestedValue() = %v, want nil", got.Value)
				}
				return
			}

			if got == nil {
				t.Fatalf("GetNestedValue() = nil, want %q", tt.want)
			}
			if got.Value != tt.want {
				t.Errorf("GetNestedValue() = %q, want %q", got.Value, tt.want)
			}
		})
	}
}

func TestSetConfigValue(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		initialContent string
		key            string
		value          string
		wantContains   []string
		wantErr        bool
		errContain     string
	}{
		"set new value": {
			key:          "debug.level",
			value:        "5",
			wantContains: []string{"debug:", "level: 5"},
		},
		"set bool value": {
			key:          "output.color",
			value:        "false",
			wantContains: []string{"output:", "color: false"},
		},
		"set duration value": {
			key:          "watch.interval",
			value:        "30s",
			wantContains: []string{"watch:", "interval: 30s"},
		},
		"update existing value": {
			initialContent: "debug:\n    level: 1\n",
			key:            "debug.level",
			value:          "8",
			wantContains:   []string{"level: 8"},
		},
		"invalid key": {
			key:        "unknown.key",
			value:      "value",
			wantErr:    true,
			errContain: "unknown configuration key",
		},
		"invalid value type": {
			key:        "debug.level",
			value:      "not-a-number",
			wantErr:    true,
			errContain: "invalid integer",
		},
		"invalid duration": {
			key:        "watch.interval",
			value:      "soon",
			wantErr:    true,
			errContain: "invalid duration",
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			tmpDir := t.TempDir()
			configPath := filepath.Join(tmpDir, "config.yml")

			if tt.initialContent != "" {
				if err := os.WriteFile(configPath, []byte(tt.initialContent), 0o644); err != nil {
					t.Fatalf("failed to write initial content: %v", err)
				}
			}

			err := SetConfigValue(configPath, tt.key, tt.value)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				if tt.errContain != "" && !containsString(err.Error(), tt.errContain) {
					t.Errorf("error = %q, want to contain %q", err.Error(), tt.errContain)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			content, err := os.ReadFile(configPath)
			if err != nil {
				t.Fatalf("failed to read config file: %v", err)
			}

			for _, want := range tt.wantContains {
				if !containsString(string(content), want) {
					t.Errorf("config content = %q, want to contain %q", content, want)
				}
			}
		})
	}
}

func TestSetConfigValueCreatesFile(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "subdir", "config.yml")

	err := SetConfigValue(configPath, "debug.level", "5")
	if err != nil {
		t.Fatalf("SetConfigValue() error: %v", err)
	}

	content, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("failed to read config file: %v", err)
	}

	if !containsString(string(content), "level: 5") {
		t.Errorf("config content = %q, want to contain 'level: 5'", content)
	}
}

func TestSetConfigValuePreservesComments(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yml")

	initialContent := `# Debug output
debug:
    level: 1
# Watch settings
watch:
    interval: 1s
`
	if err := os.WriteFile(configPath, []byte(initialContent), 0o644); err != nil {
		t.Fatalf("failed to write initial content: %v", err)
	}

	err := SetConfigValue(configPath, "debug.level", "5")
	if err != nil {
		t.Fatalf("SetConfigValue() error: %v", err)
	}

	content, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("failed to read config file: %v", err)
	}

	if !containsString(string(content), "level: 5") {
		t.Errorf("config content = %q, want to contain 'level: 5'", content)
	}
	if !containsString(string(content), "# Debug output") {
		t.Errorf("config content = %q, want the debug comment preserved", content)
	}
	if !containsString(string(content), "# Watch settings") {
		t.Errorf("config content = %q, want the watch comment preserved", content)
	}
	if !containsString(string(content), "interval: 1s") {
		t.Errorf("config content = %q, want the untouched key intact", content)
	}
}

func containsString(s, substr string) bool {
	return strings.Contains(s, substr)
}
