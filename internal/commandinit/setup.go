package commandinit

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	cli "github.com/urfave/cli/v2"

	"github.com/thomasrohde/lisp2c/internal/config"
	"github.com/thomasrohde/lisp2c/pkg/compiler"
	"github.com/thomasrohde/lisp2c/pkg/diagnostics"
)

// Exit codes shared by all commands.
const (
	ExitUsage    = 1 // bad flags, unreadable files
	ExitInput    = 2 // the source does not compile
	ExitInternal = 4 // compiler defect
)

// GlobalFlags are accepted by every command.
func GlobalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Log level (trace, debug, info, warn, error). Env: " + config.EnvLogLevel,
		},
		&cli.BoolFlag{
			Name:  "pretty",
			Usage: "Print diagnostics for humans instead of as JSON. Env: " + config.EnvPretty,
		},
		&cli.IntFlag{
			Name:  "jobs",
			Usage: "Number of files compiled at once. Env: " + config.EnvJobs,
		},
	}
}

// Env is what a command needs to run.
type Env struct {
	Config   *config.Config
	Logger   zerolog.Logger
	Compiler *compiler.Compiler
}

// Setup reads the configuration and builds the logger and compiler for
// command. The logger is also stored on cliCtx.Context.
func Setup(cliCtx *cli.Context, command string) (*Env, error) {
	cfg, err := config.Read(cliCtx, os.Getenv)
	if err != nil {
		return nil, cli.Exit(fmt.Sprintf("invalid config: %s", err), ExitUsage)
	}

	logger := NewLogger(cliCtx.App.ErrWriter, cfg.LogLevel, command)
	cliCtx.Context = logger.WithContext(cliCtx.Context)

	c := compiler.New(
		compiler.WithLogger(logger),
		compiler.WithJobs(cfg.Jobs),
	)

	return &Env{Config: cfg, Logger: logger, Compiler: c}, nil
}

// ReadSource reads path, or the app's stdin when path is "-".
func ReadSource(cliCtx *cli.Context, path string) (string, string, error) {
	if path == "-" {
		data, err := io.ReadAll(cliCtx.App.Reader)
		if err != nil {
			return "", "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), "<stdin>", nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), path, nil
}

// IOFailure prints an E_IO diagnostic and returns the matching exit error.
func IOFailure(w io.Writer, err error, pretty bool) error {
	diag := diagnostics.MakeDiag(diagnostics.EIO, err.Error(), nil, "")
	fmt.Fprintln(w, diagnostics.FormatDiagnostic(diag, pretty))
	return cli.Exit("", ExitUsage)
}

// CompileFailure prints the diagnostic carried by err and returns the exit
// error for it.
func CompileFailure(w io.Writer, err error, pretty bool) error {
	diag := diagnostics.FromError(err, diagnostics.EIO)
	fmt.Fprintln(w, diagnostics.FormatDiagnostics([]diagnostics.Diagnostic{diag}, pretty))

	var ce *compiler.Error
	if errors.As(err, &ce) {
		if ce.Internal() {
			return cli.Exit("", ExitInternal)
		}
		return cli.Exit("", ExitInput)
	}
	return cli.Exit("", ExitUsage)
}
