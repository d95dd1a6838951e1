package format

import (
	"fmt"
	"os"

	cli "github.com/urfave/cli/v2"

	"github.com/thomasrohde/lisp2c/internal/commandinit"
)

func NewCommand() *cli.Command {
	return &cli.Command{
		Name:      "fmt",
		Usage:     "Prints a source file in canonical form.",
		ArgsUsage: "<file>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "write",
				Usage: "Rewrite the file in place instead of printing it.",
			},
		},
		Action: run,
	}
}

func run(cliCtx *cli.Context) error {
	env, err := commandinit.Setup(cliCtx, "fmt")
	if err != nil {
		return err
	}
	pretty := env.Config.Pretty

	path := cliCtx.Args().First()
	if path == "" {
		return cli.Exit("usage: lisp2c fmt <file> [--write]", commandinit.ExitUsage)
	}

	source, name, err := commandinit.ReadSource(cliCtx, path)
	if err != nil {
		return commandinit.IOFailure(cliCtx.App.ErrWriter, err, pretty)
	}

	formatted, err := env.Compiler.Format(source, name)
	if err != nil {
		return commandinit.CompileFailure(cliCtx.App.ErrWriter, err, pretty)
	}

	if cliCtx.Bool("write") && path != "-" {
		if formatted == source {
			return nil
		}
		if err := os.WriteFile(path, []byte(formatted), 0644); err != nil {
			return commandinit.IOFailure(cliCtx.App.ErrWriter, fmt.Errorf("write %s: %w", path, err), pretty)
		}
		env.Logger.Info().Str("file", path).Msg("formatted")
		return nil
	}

	fmt.Fprint(cliCtx.App.Writer, formatted)
	return nil
}
