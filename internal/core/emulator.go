package core

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/brettbedarf/fme"
	"github.com/brettbedarf/fme/commands"
	"github.com/brettbedarf/fme/config"
	"github.com/brettbedarf/fme/filesystem"
	"github.com/brettbedarf/fme/internal/util"
	"github.com/google/uuid"
	"github.com/spf13/afero"
)

// Emulator runs command batches against a fresh in-memory tree and prints the
// resulting tree once the batch is over.
type Emulator struct {
	cfg      *config.Config
	afs      afero.Fs
	stdin    io.Reader
	out      io.Writer
	registry *commands.Registry
	logger   util.Logger
	tree     *filesystem.FileSystem
}

// NewEmulator returns an emulator that opens batch files through afs and
// writes the final tree to out. A nil cfg means the default config.
func NewEmulator(cfg *config.Config, afs afero.Fs, logger util.Logger, out io.Writer) *Emulator {
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}
	return &Emulator{
		cfg:      cfg,
		afs:      afs,
		stdin:    os.Stdin,
		out:      out,
		registry: commands.DefaultRegistry(),
		logger:   logger,
	}
}

// WithStdin replaces the reader used when no batch file is given
func (e *Emulator) WithStdin(r io.Reader) *Emulator {
	e.stdin = r
	return e
}

// Tree returns the tree of the last run, nil before the first run
func (e *Emulator) Tree() *filesystem.FileSystem {
	return e.tree
}

// Run executes the batch file at path, or standard input when path is empty.
func (e *Emulator) Run(path string) fme.RunResult {
	if path == "" {
		return e.RunSource(commands.NewParser(e.stdin, e.registry, e.logger), false)
	}

	f, err := e.afs.Open(path)
	if err != nil {
		util.Component(e.logger, "emulator").Error().Err(err).Str("path", path).
			Msgf("%s: Cannot open the batch file for reading.", path)
		return fme.ResultCannotOpenInput
	}
	defer f.Close() // nolint:errcheck

	return e.RunSource(commands.NewParser(f, e.registry, e.logger), e.cfg.EchoCommands)
}

// RunSource applies every command from src in order, stopping at the first
// failure. The tree is printed in every case. When echo is set each
// recognized command is logged before it runs.
func (e *Emulator) RunSource(src fme.CommandSource, echo bool) fme.RunResult {
	runLogger := e.logger.With().Str("run_id", uuid.NewString()).Logger()
	e.tree = filesystem.NewFS(runLogger)
	logger := util.Component(runLogger, "emulator")

	result := e.execute(src, echo, logger)
	if result == fme.ResultSuccess {
		logger.Info().Msg("Run is over without error.")
	} else {
		logger.Warn().Stringer("result", result).Msg("Run is over with error.")
	}

	if err := e.printTree(); err != nil {
		logger.Error().Err(err).Msg("Failed to print the file tree")
	}
	return result
}

func (e *Emulator) execute(src fme.CommandSource, echo bool, logger util.Logger) fme.RunResult {
	for {
		cmd, ok := src.Next()
		if !ok {
			break
		}
		if echo && cmd.Name != fme.UnknownCommand {
			logger.Info().Msgf("Executing command [%s] ...", cmd.Raw)
		}
		if err := e.apply(cmd); err != nil {
			result := resultFor(err)
			logger.Error().Err(err).Str("command", cmd.Raw).Stringer("result", result).Msg("Command failed")
			return result
		}
	}

	if r, ok := src.(interface{ Err() error }); ok {
		if err := r.Err(); err != nil {
			logger.Error().Err(err).Msg("Failed to read the command input")
			return fme.ResultCannotOpenInput
		}
	}
	return fme.ResultSuccess
}

func (e *Emulator) apply(cmd fme.Command) error {
	if cmd.Err != nil {
		return cmd.Err
	}
	if err := commands.ValidateArity(cmd); err != nil {
		return err
	}
	return e.tree.Apply(cmd)
}

// resultFor maps the first failing error of a run to its result
func resultFor(err error) fme.RunResult {
	var fsErr *filesystem.Error
	switch {
	case errors.Is(err, commands.ErrUnknownCommand), errors.Is(err, commands.ErrMalformedCommand):
		return fme.ResultParseError
	case errors.Is(err, commands.ErrArgumentCount):
		return fme.ResultArgumentCount
	case errors.As(err, &fsErr):
		return fme.ResultLogicError
	default:
		return fme.ResultUnexpected
	}
}

func (e *Emulator) printTree() error {
	if e.cfg.Format == config.JSONFormat {
		return e.tree.WriteJSON(e.out)
	}
	if e.cfg.TreeHeader != "" {
		if _, err := fmt.Fprintln(e.out, e.cfg.TreeHeader); err != nil {
			return err
		}
	}
	return e.tree.Print(e.out)
}
