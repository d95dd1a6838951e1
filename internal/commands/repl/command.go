package repl

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"
	cli "github.com/urfave/cli/v2"

	"github.com/thomasrohde/lisp2c/internal/commandinit"
	"github.com/thomasrohde/lisp2c/pkg/compiler"
	"github.com/thomasrohde/lisp2c/pkg/diagnostics"
)

const (
	historyFile = ".lisp2c_history"
	promptMain  = "lisp2c> "
	promptCont  = "   ...> "
	banner      = "lisp2c REPL. Enter call expressions; :quit exits."
)

func NewCommand() *cli.Command {
	return &cli.Command{
		Name:   "repl",
		Usage:  "Compiles call expressions interactively.",
		Action: run,
	}
}

// prompter is the part of *liner.State the loop uses.
type prompter interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

func run(cliCtx *cli.Context) error {
	env, err := commandinit.Setup(cliCtx, "repl")
	if err != nil {
		return err
	}

	fmt.Fprintln(cliCtx.App.Writer, banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		if _, ok := <-sigc; ok {
			ln.Close()
			os.Exit(130)
		}
	}()

	loop(ln, env.Compiler, cliCtx.App.Writer, cliCtx.App.ErrWriter)
	env.Logger.Debug().Msg("repl closed")
	return nil
}

// loop reads and compiles inputs until EOF or :quit.
func loop(p prompter, c *compiler.Compiler, w, errW io.Writer) {
	for {
		code, ok := readByProbe(p, c)
		if !ok {
			fmt.Fprintln(w)
			return
		}

		trimmed := strings.TrimSpace(code)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, ":") {
			switch strings.ToLower(trimmed) {
			case ":quit", ":q":
				return
			default:
				fmt.Fprintln(errW, "unknown command. Type :quit to exit.")
			}
			continue
		}

		p.AppendHistory(strings.ReplaceAll(code, "\n", " "))

		out, err := c.Compile(code, "<repl>")
		if err != nil {
			fmt.Fprintln(errW, diagnostics.FormatDiagnostic(diagnostics.FromError(err, diagnostics.EIO), true))
			continue
		}
		fmt.Fprint(w, out)
	}
}

// readByProbe keeps prompting while the accumulated input is incomplete.
// It returns false when input is exhausted.
func readByProbe(p prompter, c *compiler.Compiler) (string, bool) {
	var b strings.Builder

	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := p.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			if b.Len() > 0 {
				return b.String(), true
			}
			return "", false
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			b.Reset()
			continue
		}
		if err != nil {
			return "", false
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if strings.HasPrefix(strings.TrimSpace(src), ":") {
			return src, true
		}
		if _, err := c.Compile(src, "<repl>"); compiler.IsIncomplete(err) {
			continue
		}
		return src, true
	}
}
