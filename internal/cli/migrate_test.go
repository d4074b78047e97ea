package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ariel-frischer/confkeep/internal/settings"
)

// writeLegacyJSON writes a legacy JSON settings document and returns its path.
func writeLegacyJSON(t *testing.T, dir, content string) string {
	t.Helper()

	path := filepath.Join(dir, "settings.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestMigrateCommand(t *testing.T) {
	tmpDir := isolateEnv(t)
	jsonPath := writeLegacyJSON(t, tmpDir, `{"DEBUG": 3, "USE_SSL": "yes", "SSH_PATH": "/usr/bin"}`)

	out, err := runCommand(t, "migrate", jsonPath, "--dir", tmpDir)
	if err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	if !strings.Contains(out, "Migrated") {
		t.Errorf("output = %q, want to contain 'Migrated'", out)
	}
	if !strings.Contains(out, "Keys: 3") {
		t.Errorf("output = %q, want to contain 'Keys: 3'", out)
	}

	values, err := settings.LoadFile(filepath.Join(tmpDir, "server.conf"))
	if err != nil {
		t.Fatalf("reloading migrated settings: %v", err)
	}
	if values["DEBUG"] != 3 {
		t.Errorf("DEBUG = %v (%T), want 3", values["DEBUG"], values["DEBUG"])
	}
	if values["USE_SSL"] != true {
		t.Errorf("USE_SSL = %v, want true", values["USE_SSL"])
	}
	if values["SSH_PATH"] != "/usr/bin/" {
		t.Errorf("SSH_PATH = %v, want /usr/bin/", values["SSH_PATH"])
	}
}

func TestMigrateCommandDryRun(t *testing.T) {
	tmpDir := isolateEnv(t)
	jsonPath := writeLegacyJSON(t, tmpDir, `{"DEBUG": 3}`)

	defer func() { migrateDryRun = false }()

	out, err := runCommand(t, "migrate", jsonPath, "--dir", tmpDir, "--dry-run")
	if err != nil {
		t.Fatalf("migrate --dry-run failed: %v", err)
	}

	if !strings.Contains(out, "Would migrate") {
		t.Errorf("output = %q, want to contain 'Would migrate'", out)
	}
	if !strings.Contains(out, "DEBUG:") {
		t.Errorf("output = %q, want the previewed values", out)
	}
	if !strings.Contains(out, "Dry run complete. No changes were made.") {
		t.Errorf("output = %q, want the dry run notice", out)
	}

	if _, err := os.Stat(filepath.Join(tmpDir, "server.conf")); !os.IsNotExist(err) {
		t.Error("dry run should not create the settings file")
	}
}

func TestMigrateCommandSkipsExisting(t *testing.T) {
	tmpDir := isolateEnv(t)
	jsonPath := writeLegacyJSON(t, tmpDir, `{"DEBUG": 3}`)
	path := writeConf(t, tmpDir, "DEBUG: 1\n")

	out, err := runCommand(t, "migrate", jsonPath, "--dir", tmpDir)
	if err != nil {
		t.Fatalf("migrate on existing target failed: %v", err)
	}
	if !strings.Contains(out, "skipped") {
		t.Errorf("output = %q, want to contain 'skipped'", out)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "DEBUG: 1\n" {
		t.Errorf("existing settings file was modified: %q", content)
	}
}

func TestMigrateCommandRejectsNested(t *testing.T) {
	tmpDir := isolateEnv(t)
	jsonPath := writeLegacyJSON(t, tmpDir, `{"outer": {"inner": 1}}`)

	_, err := runCommand(t, "migrate", jsonPath, "--dir", tmpDir)
	if err == nil {
		t.Fatal("migrate should reject nested documents")
	}
	if !strings.Contains(err.Error(), "only flat documents are supported") {
		t.Errorf("error = %q, want to contain 'only flat documents are supported'", err.Error())
	}
}

func TestMigrateCommandMissingSource(t *testing.T) {
	tmpDir := isolateEnv(t)

	_, err := runCommand(t, "migrate", filepath.Join(tmpDir, "nope.json"), "--dir", tmpDir)
	if err == nil {
		t.Fatal("migrate should fail when the legacy file is missing")
	}
	if !strings.Contains(err.Error(), "reading legacy settings") {
		t.Errorf("error = %q, want to contain 'reading legacy settings'", err.Error())
	}
}
