package settings

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteFile(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		previous string
		values   map[string]any
		want     string
	}{
		"keys sorted with blank line between blocks": {
			values: map[string]any{"COUNT": "2", "A_FLAG": "yes"},
			want:   "A_FLAG: true\n\nCOUNT: 2\n",
		},
		"comments survive a rewrite": {
			previous: "# Debug level\nDEBUG: 0\n\n# Use ssl\nUSE_SSL: false\n",
			values:   map[string]any{"DEBUG": "3", "USE_SSL": "yes"},
			want:     "# Debug level\nDEBUG: 3\n\n# Use ssl\nUSE_SSL: true\n",
		},
		"multi-line comment block survives": {
			previous: "# First line\n# Second line\nDEBUG: 0\n",
			values:   map[string]any{"DEBUG": 1},
			want:     "# First line\n# Second line\nDEBUG: 1\n",
		},
		"new key gets no comment": {
			previous: "# Documented\nDEBUG: 0\n",
			values:   map[string]any{"DEBUG": 0, "EXTRA": "text"},
			want:     "# Documented\nDEBUG: 0\n\nEXTRA: text\n",
		},
		"removed key comment dropped": {
			previous: "# Old comment\nOLD_KEY: 1\n",
			values:   map[string]any{"NEW_KEY": "x"},
			want:     "NEW_KEY: x\n",
		},
		"path coercion applied on write": {
			values: map[string]any{"SSH_PATH": "/usr/bin", "MESSAGE_LOG": "/var/log/msg.log/"},
			want:   "MESSAGE_LOG: /var/log/msg.log\n\nSSH_PATH: /usr/bin/\n",
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			tmpDir := t.TempDir()
			path := filepath.Join(tmpDir, FileName)

			if tt.previous != "" {
				if err := os.WriteFile(path, []byte(tt.previous), 0o644); err != nil {
					t.Fatalf("failed to write previous file: %v", err)
				}
			}

			if _, err := WriteFile(tt.values, path); err != nil {
				t.Fatalf("WriteFile() error: %v", err)
			}

			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("failed to read output file: %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("file content:\n%q\nwant:\n%q", data, tt.want)
			}
		})
	}
}

func TestWriteFileReturnsFormatted(t *testing.T) {
	t.Parallel()
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, FileName)

	written, err := WriteFile(map[string]any{
		"USE_SSL":  "yes",
		"DEBUG":    "4",
		"SSH_PATH": "/usr/bin",
	}, path)
	if err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}

	if written["USE_SSL"] != true {
		t.Errorf("USE_SSL = %v (%T), want true (bool)", written["USE_SSL"], written["USE_SSL"])
	}
	if written["DEBUG"] != 4 {
		t.Errorf("DEBUG = %v (%T), want 4 (int)", written["DEBUG"], written["DEBUG"])
	}
	if written["SSH_PATH"] != "/usr/bin/" {
		t.Errorf("SSH_PATH = %v, want /usr/bin/", written["SSH_PATH"])
	}
}

func TestWriteResolvesDir(t *testing.T) {
	t.Parallel()
	tmpDir := t.TempDir()

	if _, err := Write(map[string]any{"DEBUG": 1}, tmpDir); err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	if _, err := os.Stat(filepath.Join(tmpDir, FileName)); err != nil {
		t.Errorf("settings file not created under dir: %v", err)
	}
}

func TestWriteFileAtomic(t *testing.T) {
	t.Parallel()
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, FileName)

	if _, err := WriteFile(map[string]any{"DEBUG": 0}, path); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}

	// Verify no temp file exists after successful write
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file should not exist after successful write")
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("target file should exist after write")
	}
}

func TestWriteFileKeepsPreviousOnFailure(t *testing.T) {
	t.Parallel()

	// Skip on systems where we can't test permissions reliably
	if os.Getuid() == 0 {
		t.Skip("Skipping permission test when running as root")
	}

	tmpDir := t.TempDir()
	readOnlyDir := filepath.Join(tmpDir, "readonly")
	if err := os.MkdirAll(readOnlyDir, 0o755); err != nil {
		t.Fatalf("failed to create directory: %v", err)
	}
	path := filepath.Join(readOnlyDir, FileName)

	original := "# Keep me\nDEBUG: 0\n"
	if err := os.WriteFile(path, []byte(original), 0o644); err != nil {
		t.Fatalf("failed to write original file: %v", err)
	}

	if err := os.Chmod(readOnlyDir, 0o555); err != nil {
		t.Fatalf("failed to set permissions: %v", err)
	}
	defer os.Chmod(readOnlyDir, 0o755)

	if _, err := WriteFile(map[string]any{"DEBUG": 9}, path); err == nil {
		t.Fatal("expected error when writing into read-only directory")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read original file: %v", err)
	}
	if string(data) != original {
		t.Errorf("failed write must leave previous content intact, got:\n%s", data)
	}
}

func TestWriteFileRepeatedWritesIdentical(t *testing.T) {
	t.Parallel()
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, FileName)

	values := map[string]any{"DEBUG": "2", "USE_SSL": "no", "SSH_PATH": "/usr/bin/"}

	if _, err := WriteFile(values, path); err != nil {
		t.Fatalf("first WriteFile() error: %v", err)
	}
	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read file: %v", err)
	}

	if _, err := WriteFile(values, path); err != nil {
		t.Fatalf("second WriteFile() error: %v", err)
	}
	second, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read file: %v", err)
	}

	if string(first) != string(second) {
		t.Errorf("repeated writes differ:\nfirst:\n%s\nsecond:\n%s", first, second)
	}
}

func TestInjectComments(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		doc      string
		comments map[string][]string
		want     string
	}{
		"comment above its key": {
			doc:      "DEBUG: 0\n",
			comments: map[string][]string{"DEBUG": {"Debug level"}},
			want:     "# Debug level\nDEBUG: 0\n",
		},
		"empty comment line renders bare marker": {
			doc:      "DEBUG: 0\n",
			comments: map[string][]string{"DEBUG": {"Above", "", "Below"}},
			want:     "# Above\n#\n# Below\nDEBUG: 0\n",
		},
		"no comments still separates blocks": {
			doc:      "A: 1\nB: 2\n",
			comments: map[string][]string{},
			want:     "A: 1\n\nB: 2\n",
		},
		"first block gets no leading blank": {
			doc:      "A: 1\nB: 2\n",
			comments: map[string][]string{"A": {"First"}, "B": {"Second"}},
			want:     "# First\nA: 1\n\n# Second\nB: 2\n",
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got := injectComments(tt.doc, tt.comments)
			if got != tt.want {
				t.Errorf("injectComments() =\n%q\nwant:\n%q", got, tt.want)
			}
		})
	}
}

func TestMarshalSettingsSorted(t *testing.T) {
	t.Parallel()

	doc, err := marshalSettings(map[string]any{"ZEBRA": 1, "ALPHA": 2, "MIDDLE": 3})
	if err != nil {
		t.Fatalf("marshalSettings() error: %v", err)
	}

	content := string(doc)
	alphaIdx := strings.Index(content, "ALPHA")
	middleIdx := strings.Index(content, "MIDDLE")
	zebraIdx := strings.Index(content, "ZEBRA")
	if alphaIdx < 0 || middleIdx < 0 || zebraIdx < 0 {
		t.Fatalf("marshalSettings() missing keys:\n%s", content)
	}
	if !(alphaIdx < middleIdx && middleIdx < zebraIdx) {
		t.Errorf("keys not in sorted order:\n%s", content)
	}
}
