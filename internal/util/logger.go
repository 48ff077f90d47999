package util

import (
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Logger = zerolog.Logger

// LogLevel represents available log levels
type LogLevel = int

// Log levels
const (
	TraceLevel LogLevel = iota
	DebugLevel
	InfoLevel
	WarnLevel
	ErrorLevel
)

// Verbosity bounds for the CLI scale, 1 (error) to 5 (trace)
const (
	MinVerbose = 1
	MaxVerbose = 5
)

// LevelFromVerbose maps CLI verbosity 1 (error) .. 5 (trace) to a LogLevel.
// Out of range values are clamped.
func LevelFromVerbose(verbose int) LogLevel {
	verbose = max(MinVerbose, min(MaxVerbose, verbose))
	lvls := [MaxVerbose]LogLevel{ErrorLevel, WarnLevel, InfoLevel, DebugLevel, TraceLevel}
	return lvls[verbose-1]
}

func zerologLevel(level LogLevel) zerolog.Level {
	switch level {
	case TraceLevel:
		return zerolog.TraceLevel
	case DebugLevel:
		return zerolog.DebugLevel
	case InfoLevel:
		return zerolog.InfoLevel
	case WarnLevel:
		return zerolog.WarnLevel
	case ErrorLevel:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// NewLogger returns a console logger writing to out at the given level.
// It does not touch the global logger, so callers can hand it to components
// explicitly.
func NewLogger(out io.Writer, level LogLevel, noColor bool) Logger {
	output := zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339, NoColor: noColor}
	ctx := zerolog.New(output).Level(zerologLevel(level)).With().Timestamp()
	if level == TraceLevel {
		ctx = ctx.Caller()
	}
	return ctx.Logger()
}

// InitializeLogger sets up the global logger with the specified configuration
// and returns it. The CLI points it at stderr so stdout only carries the tree.
func InitializeLogger(out io.Writer, level LogLevel, noColor bool) Logger {
	// Set time format to ISO8601
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.SetGlobalLevel(zerologLevel(level))

	log.Logger = NewLogger(out, level, noColor)
	log.Trace().Msg("Logger initialized")
	return log.Logger
}

// GetLogger returns a configured logger for a specific component
func GetLogger(component string) Logger {
	return log.With().Str("component", component).Logger()
}

// Component derives a component-scoped child of an explicitly passed logger
func Component(base Logger, component string) Logger {
	return base.With().Str("component", component).Logger()
}
