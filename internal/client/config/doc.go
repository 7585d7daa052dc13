// Package config loads runtime configuration for the payforms client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   backend base URL, e.g. http://127.0.0.1:8080/api
//	-d string   path to the SQLite state database
//	-l string   log file (empty logs to stderr)
//	-v string   log level: debug, info, warn, error
//	-t int      request timeout in seconds (0 disables it)
//	-ui string  front end: repl or tui
//
// # JSON schema
//
// Keys missing from the file keep their previous value. Durations accept
// strings like "15s" or integer nanoseconds:
//
//	{
//	  "server_base_url": "http://127.0.0.1:8080/api",
//	  "state_db_path": "payforms.db",
//	  "log_file": "payforms.log",
//	  "log_level": "info",
//	  "request_timeout": "0s",
//	  "ui": "repl"
//	}
package config
