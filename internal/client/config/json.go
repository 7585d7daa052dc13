package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/payforms/internal/flagx"
	"github.com/dmitrijs2005/payforms/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields tell an absent key apart from an empty one.
type JsonConfig struct {
	ServerBaseURL  *string         `json:"server_base_url"`
	StateDBPath    *string         `json:"state_db_path"`
	LogFile        *string         `json:"log_file"`
	LogLevel       *string         `json:"log_level"`
	LogJSON        *bool           `json:"log_json"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	UI             *string         `json:"ui"`
}

// parseJson overlays cfg with the file named by -c / -config in args.
// Without such a flag it does nothing. Read or decode errors panic; the
// caller is start-up code that cannot continue with a half-read config.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	jc.apply(cfg)
}

func (jc *JsonConfig) apply(cfg *Config) {
	if jc.ServerBaseURL != nil {
		cfg.ServerBaseURL = *jc.ServerBaseURL
	}
	if jc.StateDBPath != nil {
		cfg.StateDBPath = *jc.StateDBPath
	}
	if jc.LogFile != nil {
		cfg.LogFile = *jc.LogFile
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.LogJSON != nil {
		cfg.LogJSON = *jc.LogJSON
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.UI != nil {
		cfg.UI = *jc.UI
	}
}
