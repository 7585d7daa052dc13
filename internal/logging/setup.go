package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// SetupParams describes where and how verbosely the client logs.
type SetupParams struct {
	// FileName is the log file; empty means stderr.
	FileName string
	// Level is one of debug, info, warn, error. Unknown values mean info.
	Level string
	// JSON switches the handler from text to JSON lines.
	JSON bool
}

// Setup builds the client logger. Output goes to a size-rotated file so
// diagnostics stay out of the interactive screen. The returned closer
// releases the file; it is a no-op for stderr.
func Setup(params SetupParams) (*SlogLogger, io.Closer) {
	var (
		w      io.Writer = os.Stderr
		closer io.Closer = nopCloser{}
	)

	if params.FileName != "" {
		rotating := &lumberjack.Logger{
			Filename:   params.FileName,
			MaxSize:    10, // megabytes
			MaxBackups: 5,
			Compress:   true,
		}
		w, closer = rotating, rotating
	}

	opts := &slog.HandlerOptions{Level: ParseLevel(params.Level)}

	var h slog.Handler
	if params.JSON {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}

	return NewSlogLogger(slog.New(h)), closer
}

// ParseLevel maps a config string to a slog level.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
