package settings

import "strings"

// Endpoint suffixes appended to the web API base path. The rendering layer
// posts edited settings to these three routes.
const (
	saveSettingsSuffix = "save_settings"
	removeParamSuffix  = "remove_param"
	addParamSuffix     = "add_param"
)

// Endpoints holds the three derived routes the settings editor submits to.
type Endpoints struct {
	SaveSettings string `json:"save_settings"`
	RemoveParam  string `json:"remove_param"`
	AddParam     string `json:"add_param"`
}

// RenderData is everything the external rendering layer needs to build the
// settings editor: the formatted constants, the comment text per key, and
// the editor's submit routes. HTML generation stays outside this package.
type RenderData struct {
	Constants map[string]any    `json:"constants"`
	Comments  map[string]string `json:"comments"`
	Endpoints Endpoints         `json:"endpoints"`
}

// Render loads the settings file under dir and assembles the renderer data.
// Comment lines are joined with single spaces; keys without comments have no
// entry, so a map lookup yields the empty string. The endpoint routes are
// the WEB_API_PATH value plus the fixed suffixes; when WEB_API_PATH is
// missing or not a string they stay empty.
func Render(dir string) (*RenderData, error) {
	path, err := ResolveFile(dir)
	if err != nil {
		return nil, err
	}

	constants, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	blocks, err := ExtractCommentsFile(path)
	if err != nil {
		return nil, err
	}
	comments := make(map[string]string, len(blocks))
	for key, lines := range blocks {
		comments[key] = strings.Join(lines, " ")
	}

	var endpoints Endpoints
	if base, ok := constants["WEB_API_PATH"].(string); ok {
		endpoints = Endpoints{
			SaveSettings: base + saveSettingsSuffix,
			RemoveParam:  base + removeParamSuffix,
			AddParam:     base + addParamSuffix,
		}
	}

	return &RenderData{
		Constants: constants,
		Comments:  comments,
		Endpoints: endpoints,
	}, nil
}
