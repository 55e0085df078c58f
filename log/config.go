package log

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Level represents the severity of a log message.
type Level slog.Level

const (
	LevelDebug Level = Level(slog.LevelDebug)
	LevelInfo  Level = Level(slog.LevelInfo)
	LevelWarn  Level = Level(slog.LevelWarn)
	LevelError Level = Level(slog.LevelError)
)

// DefaultLevel is the default log level.
const DefaultLevel = LevelInfo

// ParseLevel parses a string representation of a log level.
// See [slog.Level.UnmarshalText] for accepted forms. Unparseable input
// falls back to [DefaultLevel].
func ParseLevel(s string) Level {
	l := new(slog.Level)

	err := l.UnmarshalText([]byte(s))
	if err != nil {
		return DefaultLevel
	}

	return Level(*l)
}

// String returns the lower-case name of the level.
func (l Level) String() string {
	return strings.ToLower(slog.Level(l).String())
}

// Format represents the output format for log messages.
type Format int

const (
	FormatText Format = iota
	FormatJSON
)

// DefaultFormat is the default log message format.
const DefaultFormat = FormatText

// ParseFormat parses a string representation of a log format.
// Unrecognized input falls back to [DefaultFormat].
func ParseFormat(s string) Format {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON
	case "text":
		return FormatText
	default:
		return DefaultFormat
	}
}

// String returns the name of the format.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	default:
		return "text"
	}
}

// config holds the logger configuration assembled from options.
type config struct {
	writer io.Writer
	level  Level
	format Format
}

// defaultConfig returns the configuration used before any options apply.
func defaultConfig() config {
	return config{
		writer: os.Stderr,
		level:  DefaultLevel,
		format: DefaultFormat,
	}
}

// handler constructs the slog.Handler described by the configuration.
func (c config) handler() slog.Handler {
	opts := &slog.HandlerOptions{Level: slog.Level(c.level)}

	if c.format == FormatJSON {
		return slog.NewJSONHandler(c.writer, opts)
	}

	return slog.NewTextHandler(c.writer, opts)
}
