package config

import (
	"encoding/json"
	"os"

	"github.com/videopick/videopick/internal/flagx"
	"github.com/videopick/videopick/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the scan timeout either as a string
// like "30s" or as integer nanoseconds. After parsing, set values are
// copied into the runtime Config.
type JsonConfig struct {
	DatabasePath    string          `json:"database_path"`
	TemplatePath    string          `json:"template_path"`
	ScanTimeout     *timex.Duration `json:"scan_timeout"`
	VideoExtensions []string        `json:"video_extensions"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path comes from the -c or -config flags (via
// flagx.JsonConfigFlags); when absent, no JSON is loaded. Read or unmarshal
// errors panic, matching the fail-fast behavior of the flag layer. Only
// fields present in the file override the current values.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.TemplatePath != "" {
		cfg.TemplatePath = jc.TemplatePath
	}
	if jc.ScanTimeout != nil {
		cfg.ScanTimeout = jc.ScanTimeout.Duration
	}
	if len(jc.VideoExtensions) > 0 {
		cfg.VideoExtensions = jc.VideoExtensions
	}
}
