package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/payforms/internal/flagx"
)

var knownFlags = []string{"-a", "-d", "-l", "-v", "-t", "-ui"}

// parseFlags populates Config fields from command-line flags. Only the flags
// listed in knownFlags are looked at; -c and anything else is filtered out
// by flagx.FilterArgs first. Invalid values panic.
func parseFlags(cfg *Config, args []string) {
	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.ServerBaseURL, "a", cfg.ServerBaseURL, "backend base URL")
	fs.StringVar(&cfg.StateDBPath, "d", cfg.StateDBPath, "path to the state database")
	fs.StringVar(&cfg.LogFile, "l", cfg.LogFile, "log file (empty for stderr)")
	fs.StringVar(&cfg.LogLevel, "v", cfg.LogLevel, "log level")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds, 0 disables)")
	fs.StringVar(&cfg.UI, "ui", cfg.UI, "front end: repl or tui")

	if err := fs.Parse(flagx.FilterArgs(args, knownFlags)); err != nil {
		panic(err)
	}

	if *timeout < 0 {
		panic(fmt.Sprintf("negative request timeout: %d", *timeout))
	}
	// -t only overrides when given; a sub-second JSON value must survive.
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		}
	})

	if cfg.UI != UIREPL && cfg.UI != UITUI {
		panic(fmt.Sprintf("unknown ui %q", cfg.UI))
	}
}
