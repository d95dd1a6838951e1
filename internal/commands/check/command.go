package check

import (
	"fmt"

	cli "github.com/urfave/cli/v2"

	"github.com/thomasrohde/lisp2c/internal/commandinit"
	"github.com/thomasrohde/lisp2c/pkg/diagnostics"
)

func NewCommand() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "Reports errors without printing compiled output.",
		ArgsUsage: "<file> [file ...]",
		Action:    run,
	}
}

func run(cliCtx *cli.Context) error {
	env, err := commandinit.Setup(cliCtx, "check")
	if err != nil {
		return err
	}
	pretty := env.Config.Pretty

	if cliCtx.NArg() == 0 {
		return cli.Exit("usage: lisp2c check <file> [file ...]", commandinit.ExitUsage)
	}

	var diags []diagnostics.Diagnostic
	for _, path := range cliCtx.Args().Slice() {
		source, name, err := commandinit.ReadSource(cliCtx, path)
		if err != nil {
			return commandinit.IOFailure(cliCtx.App.ErrWriter, err, pretty)
		}
		diags = append(diags, env.Compiler.Check(source, name)...)
	}

	if len(diags) > 0 {
		fmt.Fprintln(cliCtx.App.ErrWriter, diagnostics.FormatDiagnostics(diags, pretty))
		return cli.Exit("", commandinit.ExitInput)
	}

	if pretty {
		fmt.Fprintln(cliCtx.App.Writer, "No errors found.")
	} else {
		fmt.Fprintln(cliCtx.App.Writer, "[]")
	}
	return nil
}
