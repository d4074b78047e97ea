package settings

import (
	"fmt"
	"os"

	"github.com/knadh/koanf/parsers/json"
)

// MigrationResult describes the outcome of a settings migration.
type MigrationResult struct {
	SourcePath string
	TargetPath string
	Values     map[string]any
	Success    bool
	DryRun     bool
	Message    string
}

// MigrateJSON imports a legacy flat JSON settings document and writes it as
// the YAML settings file under dir. Values pass through the usual coercion,
// so "yes"/"no" strings and numeric text arrive typed.
//
// Migration pipeline:
//  1. Read JSON → 2. Check if settings file exists (skip if so) → 3. Convert → 4. Write
//
// Safety features:
//   - Dry-run mode reports planned action without writing
//   - Skips if the settings file already exists (no overwrite)
//
// Only flat documents migrate; a nested object or array is rejected because
// the managed file holds top-level scalars only.
func MigrateJSON(jsonPath, dir string, dryRun bool) (*MigrationResult, error) {
	targetPath, err := ResolveFile(dir)
	if err != nil {
		return nil, err
	}

	result := &MigrationResult{
		SourcePath: jsonPath,
		TargetPath: targetPath,
		DryRun:     dryRun,
	}

	data, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("reading legacy settings: %w", err)
	}

	raw, err := json.Parser().Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("parsing legacy settings %s: %w", jsonPath, err)
	}

	for key, value := range raw {
		switch value.(type) {
		case map[string]any, []any:
			return nil, fmt.Errorf("cannot migrate %s: key %q is nested, only flat documents are supported", jsonPath, key)
		}
	}

	if _, err := os.Stat(targetPath); err == nil {
		result.Message = fmt.Sprintf("Settings file already exists at %s (skipped)", targetPath)
		return result, nil
	}

	if dryRun {
		result.Success = true
		result.Values = formatAll(raw)
		result.Message = fmt.Sprintf("Would migrate %s → %s", jsonPath, targetPath)
		return result, nil
	}

	written, err := WriteFile(raw, targetPath)
	if err != nil {
		return nil, err
	}

	result.Success = true
	result.Values = written
	result.Message = fmt.Sprintf("Migrated %s → %s", jsonPath, targetPath)
	return result, nil
}
