package config

import (
	"os"
	"time"
)

const (
	UIREPL = "repl"
	UITUI  = "tui"
)

// Config holds runtime settings for the payforms client.
//
// Fields:
//   - ServerBaseURL: base URL every backend path is appended to.
//   - StateDBPath: SQLite file holding the persisted session slot.
//   - LogFile / LogLevel: diagnostics sink and verbosity.
//   - LogJSON: JSON lines instead of text (config file only).
//   - RequestTimeout: overall per-request limit; zero means none.
//   - UI: front end to start, "repl" or "tui".
type Config struct {
	ServerBaseURL  string
	StateDBPath    string
	LogFile        string
	LogLevel       string
	LogJSON        bool
	RequestTimeout time.Duration
	UI             string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8080/api"
	c.StateDBPath = "payforms.db"
	c.LogFile = "payforms.log"
	c.LogLevel = "info"
	c.LogJSON = false
	c.RequestTimeout = 0
	c.UI = UIREPL
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	return loadFromArgs(os.Args[1:])
}

func loadFromArgs(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
