package compile

import (
	"fmt"

	cli "github.com/urfave/cli/v2"

	"github.com/thomasrohde/lisp2c/internal/commandinit"
	"github.com/thomasrohde/lisp2c/pkg/compiler"
)

// SampleSource is compiled when no file is given.
const SampleSource = "(add 2 (subtract 4 2))"

func NewCommand() *cli.Command {
	return &cli.Command{
		Name:      "compile",
		Usage:     "Translates call expressions into C-style statements.",
		ArgsUsage: "[file ...] (use - for stdin; no files compiles a built-in sample)",
		Action:    run,
	}
}

func run(cliCtx *cli.Context) error {
	env, err := commandinit.Setup(cliCtx, "compile")
	if err != nil {
		return err
	}
	w := cliCtx.App.Writer
	errW := cliCtx.App.ErrWriter

	paths := cliCtx.Args().Slice()
	if len(paths) == 0 {
		out, err := env.Compiler.Compile(SampleSource, "<sample>")
		if err != nil {
			return commandinit.CompileFailure(errW, err, env.Config.Pretty)
		}
		fmt.Fprint(w, out)
		return nil
	}

	sources := make([]compiler.Source, 0, len(paths))
	for _, path := range paths {
		text, name, err := commandinit.ReadSource(cliCtx, path)
		if err != nil {
			return commandinit.IOFailure(errW, err, env.Config.Pretty)
		}
		sources = append(sources, compiler.Source{Name: name, Text: text})
	}

	env.Logger.Debug().Int("files", len(sources)).Msg("compiling")

	outputs, err := env.Compiler.CompileAll(cliCtx.Context, sources)
	if err != nil {
		return commandinit.CompileFailure(errW, err, env.Config.Pretty)
	}
	for _, out := range outputs {
		fmt.Fprint(w, out.Text)
	}
	return nil
}
