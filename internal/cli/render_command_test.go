package cli

import (
	"encoding/json"
	"testing"

	"github.com/ariel-frischer/confkeep/internal/settings"
)

func TestRenderCommand(t *testing.T) {
	tmpDir := isolateEnv(t)
	writeConf(t, tmpDir, "# Debug level\nDEBUG: 3\n\n# Base path of the web API\nWEB_API_PATH: /api/\n")

	out, err := runCommand(t, "render", "--dir", tmpDir)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	var data settings.RenderData
	if err := json.Unmarshal([]byte(out), &data); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}

	// JSON numbers decode as float64.
	if data.Constants["DEBUG"] != float64(3) {
		t.Errorf("DEBUG = %v (%T), want 3", data.Constants["DEBUG"], data.Constants["DEBUG"])
	}
	if data.Constants["WEB_API_PATH"] != "/api/" {
		t.Errorf("WEB_API_PATH = %v, want /api/", data.Constants["WEB_API_PATH"])
	}
	if data.Comments["DEBUG"] != "Debug level" {
		t.Errorf("DEBUG comment = %q, want 'Debug level'", data.Comments["DEBUG"])
	}

	if data.Endpoints.SaveSettings != "/api/save_settings" {
		t.Errorf("SaveSettings = %q, want /api/save_settings", data.Endpoints.SaveSettings)
	}
	if data.Endpoints.RemoveParam != "/api/remove_param" {
		t.Errorf("RemoveParam = %q, want /api/remove_param", data.Endpoints.RemoveParam)
	}
	if data.Endpoints.AddParam != "/api/add_param" {
		t.Errorf("AddParam = %q, want /api/add_param", data.Endpoints.AddParam)
	}
}

func TestRenderCommandWithoutAPIBase(t *testing.T) {
	tmpDir := isolateEnv(t)
	writeConf(t, tmpDir, "DEBUG: 3\n")

	out, err := runCommand(t, "render", "--dir", tmpDir)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	var data settings.RenderData
	if err := json.Unmarshal([]byte(out), &data); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if data.Endpoints != (settings.Endpoints{}) {
		t.Errorf("endpoints = %+v, want empty without WEB_API_PATH", data.Endpoints)
	}
}
