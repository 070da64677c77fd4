package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/okarpushin/otpdesk/internal/flagx"
	"github.com/okarpushin/otpdesk/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "1s" or
// as integer nanoseconds. After parsing, values are copied into the runtime
// Config (which uses time.Duration).
type JsonConfig struct {
	DatabasePath string         `json:"database_path"`
	ExportDir    string         `json:"export_dir"`
	TickInterval timex.Duration `json:"tick_interval"`
}

// parseJson overlays cfg with values loaded from a JSON file. The file path
// comes from the -c/-config flags via flagx.JsonConfigFlags; when absent, no
// JSON is loaded. Only fields present in the file override the defaults.
// Read or unmarshal errors panic (caller should recover if desired).
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
	if jc.ExportDir != "" {
		cfg.ExportDir = jc.ExportDir
	}
	if jc.TickInterval.Duration != 0 {
		cfg.TickInterval = time.Duration(jc.TickInterval.Duration)
	}
}
