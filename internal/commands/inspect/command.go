// Package inspect holds debugging commands that dump intermediate
// compiler stages.
package inspect

import (
	"fmt"
	"text/tabwriter"

	"github.com/kr/pretty"
	cli "github.com/urfave/cli/v2"

	"github.com/thomasrohde/lisp2c/internal/commandinit"
	"github.com/thomasrohde/lisp2c/pkg/ast"
	"github.com/thomasrohde/lisp2c/pkg/compiler"
	"github.com/thomasrohde/lisp2c/pkg/lexer"
	"github.com/thomasrohde/lisp2c/pkg/parser"
	"github.com/thomasrohde/lisp2c/pkg/transformer"
)

func NewTokensCommand() *cli.Command {
	return &cli.Command{
		Name:      "tokens",
		Usage:     "Prints the token stream of a source file.",
		ArgsUsage: "<file>",
		Action:    runTokens,
	}
}

func NewASTCommand() *cli.Command {
	return &cli.Command{
		Name:      "ast",
		Usage:     "Prints the syntax tree of a source file.",
		ArgsUsage: "<file>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "transformed",
				Usage: "Print the tree after the statement-wrapping pass.",
			},
		},
		Action: runAST,
	}
}

func readArg(cliCtx *cli.Context, env *commandinit.Env, usage string) (string, string, error) {
	path := cliCtx.Args().First()
	if path == "" {
		return "", "", cli.Exit(usage, commandinit.ExitUsage)
	}
	source, name, err := commandinit.ReadSource(cliCtx, path)
	if err != nil {
		return "", "", commandinit.IOFailure(cliCtx.App.ErrWriter, err, env.Config.Pretty)
	}
	return source, name, nil
}

func runTokens(cliCtx *cli.Context) error {
	env, err := commandinit.Setup(cliCtx, "tokens")
	if err != nil {
		return err
	}
	source, name, err := readArg(cliCtx, env, "usage: lisp2c tokens <file>")
	if err != nil {
		return err
	}

	tokens, err := lexer.Tokenize(source)
	if err != nil {
		err = &compiler.Error{Stage: compiler.StageLex, File: name, Err: err}
		return commandinit.CompileFailure(cliCtx.App.ErrWriter, err, env.Config.Pretty)
	}

	tw := tabwriter.NewWriter(cliCtx.App.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "OFFSET\tTYPE\tVALUE")
	for _, tok := range tokens {
		fmt.Fprintf(tw, "%d\t%s\t%q\n", tok.Offset, tok.Type, tok.Value)
	}
	return tw.Flush()
}

func runAST(cliCtx *cli.Context) error {
	env, err := commandinit.Setup(cliCtx, "ast")
	if err != nil {
		return err
	}
	source, name, err := readArg(cliCtx, env, "usage: lisp2c ast <file> [--transformed]")
	if err != nil {
		return err
	}

	program, err := parser.ParseSource(source)
	if err != nil {
		stage := compiler.StageParse
		if _, ok := err.(*lexer.LexError); ok {
			stage = compiler.StageLex
		}
		err = &compiler.Error{Stage: stage, File: name, Err: err}
		return commandinit.CompileFailure(cliCtx.App.ErrWriter, err, env.Config.Pretty)
	}

	var tree ast.Node = program
	if cliCtx.Bool("transformed") {
		transformed, err := transformer.Transform(program)
		if err != nil {
			err = &compiler.Error{Stage: compiler.StageTransform, File: name, Err: err}
			return commandinit.CompileFailure(cliCtx.App.ErrWriter, err, env.Config.Pretty)
		}
		tree = transformed
	}

	_, err = pretty.Fprintf(cliCtx.App.Writer, "%# v\n", tree)
	return err
}
