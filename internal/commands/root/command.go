package root

import (
	cli "github.com/urfave/cli/v2"

	"github.com/thomasrohde/lisp2c/internal/commandinit"
	"github.com/thomasrohde/lisp2c/internal/commands/check"
	"github.com/thomasrohde/lisp2c/internal/commands/compile"
	"github.com/thomasrohde/lisp2c/internal/commands/format"
	"github.com/thomasrohde/lisp2c/internal/commands/inspect"
	"github.com/thomasrohde/lisp2c/internal/commands/repl"
)

func NewCommand() *cli.App {
	return &cli.App{
		Name:  "lisp2c",
		Usage: "Compiles Lisp-style call expressions into C-style calls.",
		Flags: commandinit.GlobalFlags(),
		Commands: []*cli.Command{
			compile.NewCommand(),
			check.NewCommand(),
			format.NewCommand(),
			inspect.NewTokensCommand(),
			inspect.NewASTCommand(),
			repl.NewCommand(),
		},
	}
}
