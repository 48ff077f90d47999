package config

import "github.com/brettbedarf/fme/internal/util"

// Output formats for the final tree dump
const (
	TextFormat = "text"
	JSONFormat = "json"
)

// CLI verbosity scale values accepted by [ConfigOverride.LogLvl]
const (
	ErrorVerbose = iota + 1
	WarnVerbose
	InfoVerbose
	DebugVerbose
	TraceVerbose
)

// Default configuration constants. See [Config] for field descriptions.
const (
	DefaultLogLvl       = util.InfoLevel
	DefaultEchoCommands = true
	DefaultFormat       = TextFormat
	DefaultNoColor      = false
	DefaultTreeHeader   = "The FME file tree:"
)
