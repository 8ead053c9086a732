package config

import (
	"encoding/json"
	"os"

	"github.com/antonvlasov/voicenotes/internal/flagx"
	"github.com/antonvlasov/voicenotes/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies
// on timex.Duration so the tick interval can be specified either as a
// string like "1s" or as integer nanoseconds.
type JsonConfig struct {
	DatabasePath string         `json:"database_path"`
	MediaDir     string         `json:"media_dir"`
	ExportDir    string         `json:"export_dir"`
	TickInterval timex.Duration `json:"tick_interval"`
}

// parseJson overlays Config with values loaded from the JSON file named
// by the -c/-config flags. Absent file path means no JSON is loaded;
// fields missing from the file keep their current values. Read or
// unmarshal errors panic (caller may recover).
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
	if jc.MediaDir != "" {
		cfg.MediaDir = jc.MediaDir
	}
	if jc.ExportDir != "" {
		cfg.ExportDir = jc.ExportDir
	}
	if jc.TickInterval.Duration != 0 {
		cfg.TickInterval = jc.TickInterval.Duration
	}
}
