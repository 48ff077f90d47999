package cli

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/brettbedarf/fme"
	"github.com/brettbedarf/fme/config"
	"github.com/brettbedarf/fme/internal/core"
	"github.com/brettbedarf/fme/internal/util"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

const longHelp = `fme emulates a file manager over an in-memory directory tree.

It reads one command per line from BATCH_FILE, or from standard input when no
file is given, applies them in order and prints the resulting tree. The run
stops at the first failing command; the tree is printed either way.

Commands:
  md PATH           create a directory
  mf PATH           create a file (no-op if the name is taken)
  rm PATH           remove a file or a whole directory
  cp SOURCE DEST    copy a file or directory
  mv SOURCE DEST    move or rename a file or directory

Arguments containing spaces can be wrapped in double quotes.

Exit Codes:
  0  - Success
  1  - Batch file cannot be opened, or the configuration is invalid
  2  - Unknown command, malformed command or bad CLI usage
  3  - Wrong number of command arguments
  4  - A command failed (missing path, collision, ...)
  5  - Unexpected error`

type rootOptions struct {
	configPath string
	verbose    int
	format     string
	noColor    bool
	noEcho     bool
}

// newRootCommand builds the fme command. The outcome of the run is stored in
// result; the command itself only returns usage and config errors.
func newRootCommand(afs afero.Fs, result *fme.RunResult) *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:          "fme [BATCH_FILE]",
		Short:        "File manager emulator over an in-memory tree",
		Long:         longHelp,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, afs, opts)
			if err != nil {
				*result = fme.ResultCannotOpenInput
				return err
			}

			base := util.InitializeLogger(cmd.ErrOrStderr(), cfg.LogLvl, cfg.NoColor)
			logger := util.GetLogger("cli")

			var path string
			if len(args) == 1 {
				path = args[0]
			}
			logger.Debug().Str("batch", path).Str("format", cfg.Format).Msg("Starting emulator")

			emulator := core.NewEmulator(cfg, afs, base, cmd.OutOrStdout()).WithStdin(cmd.InOrStdin())
			*result = emulator.Run(path)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Path to a YAML or JSON config file")
	flags.IntVarP(&opts.verbose, "verbose", "v", config.InfoVerbose,
		fmt.Sprintf("Log verbosity level between %d (error) and %d (trace)", config.ErrorVerbose, config.TraceVerbose))
	flags.StringVar(&opts.format, "format", config.DefaultFormat, `Final tree format, "text" or "json"`)
	flags.BoolVar(&opts.noColor, "no-color", config.DefaultNoColor, "Disable colored log output")
	flags.BoolVar(&opts.noEcho, "no-echo", !config.DefaultEchoCommands, "Do not log batch file commands before running them")
	return cmd
}

// loadConfig layers defaults, the config file and explicitly set flags
func loadConfig(cmd *cobra.Command, afs afero.Fs, opts *rootOptions) (*config.Config, error) {
	cfg := config.NewDefaultConfig()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.NewConfigFromFile(afs, opts.configPath); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	override := &config.ConfigOverride{}
	if flags.Changed("verbose") {
		override.LogLvl = util.Pointer(opts.verbose)
	}
	if flags.Changed("format") {
		override.Format = util.Pointer(opts.format)
	}
	if flags.Changed("no-color") {
		override.NoColor = util.Pointer(opts.noColor)
	}
	if flags.Changed("no-echo") {
		override.EchoCommands = util.Pointer(!opts.noEcho)
	}
	cfg.Merge(override)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Run executes the CLI with args and returns the process exit code. A panic
// escaping the run is reported on stderr as an unexpected error.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer, afs afero.Fs) (code int) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(stderr, "panic: %v\n%s\n", r, debug.Stack())
			code = fme.ResultUnexpected.ExitCode()
		}
	}()

	result := fme.ResultSuccess
	cmd := newRootCommand(afs, &result)
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil && result == fme.ResultSuccess {
		// flag or argument usage error
		result = fme.ResultParseError
	}
	return result.ExitCode()
}

// Execute runs the CLI against the process arguments and the OS filesystem
func Execute() int {
	return Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr, afero.NewOsFs())
}
