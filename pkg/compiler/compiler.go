// Package compiler provides the top-level lisp2c pipeline:
// tokenize, parse, transform, generate.
package compiler

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/thomasrohde/lisp2c/pkg/ast"
	"github.com/thomasrohde/lisp2c/pkg/codegen"
	"github.com/thomasrohde/lisp2c/pkg/diagnostics"
	"github.com/thomasrohde/lisp2c/pkg/formatter"
	"github.com/thomasrohde/lisp2c/pkg/lexer"
	"github.com/thomasrohde/lisp2c/pkg/parser"
	"github.com/thomasrohde/lisp2c/pkg/transformer"
)

// Stage names the pipeline step an Error came from.
type Stage string

const (
	StageLex       Stage = "lex"
	StageParse     Stage = "parse"
	StageTransform Stage = "transform"
	StageGenerate  Stage = "generate"
)

// Compiler wires the pipeline stages together. It holds no per-source
// state, so one Compiler may be shared by any number of goroutines.
type Compiler struct {
	logger zerolog.Logger
	jobs   int
}

// Option is a functional option for configuring the Compiler.
type Option func(*Compiler)

// WithLogger sets the logger stage events are written to.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Compiler) {
		c.logger = l
	}
}

// WithJobs caps how many sources CompileAll compiles at once.
func WithJobs(n int) Option {
	return func(c *Compiler) {
		if n > 0 {
			c.jobs = n
		}
	}
}

// New creates a new Compiler with the given options.
// By default nothing is logged and CompileAll runs 4 jobs.
func New(opts ...Option) *Compiler {
	c := &Compiler{
		logger: zerolog.Nop(),
		jobs:   4,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var defaultCompiler = New()

// Compile translates source with a default Compiler.
func Compile(source string) (string, error) {
	return defaultCompiler.Compile(source, "")
}

// Compile runs the whole pipeline. The first failing stage aborts it and
// is returned as an *Error wrapping that stage's typed error.
func (c *Compiler) Compile(source, filename string) (string, error) {
	logger := c.logger.With().Str("file", filename).Logger()

	program, err := c.front(logger, source, filename)
	if err != nil {
		return "", err
	}

	out, err := codegen.Generate(program)
	if err != nil {
		return "", c.fail(logger, StageGenerate, filename, err)
	}
	logger.Debug().Int("bytes", len(out)).Msg("generated")
	return out, nil
}

// Check runs every stage except generation and reports what failed.
func (c *Compiler) Check(source, filename string) []diagnostics.Diagnostic {
	logger := c.logger.With().Str("file", filename).Logger()
	if _, err := c.front(logger, source, filename); err != nil {
		return []diagnostics.Diagnostic{diagnostics.FromError(err, diagnostics.ETransform)}
	}
	return nil
}

// Format parses source and prints it back in canonical form.
func (c *Compiler) Format(source, filename string) (string, error) {
	logger := c.logger.With().Str("file", filename).Logger()
	program, err := c.parse(logger, source, filename)
	if err != nil {
		return "", err
	}
	return formatter.Format(program), nil
}

// front tokenizes, parses and transforms source.
func (c *Compiler) front(logger zerolog.Logger, source, filename string) (*ast.Program, error) {
	program, err := c.parse(logger, source, filename)
	if err != nil {
		return nil, err
	}

	transformed, err := transformer.Transform(program)
	if err != nil {
		return nil, c.fail(logger, StageTransform, filename, err)
	}
	logger.Debug().Int("statements", len(transformed.Body)).Msg("transformed")
	return transformed, nil
}

func (c *Compiler) parse(logger zerolog.Logger, source, filename string) (*ast.Program, error) {
	tokens, err := lexer.Tokenize(source)
	if err != nil {
		return nil, c.fail(logger, StageLex, filename, err)
	}
	logger.Debug().Int("tokens", len(tokens)).Msg("tokenized")

	program, err := parser.Parse(tokens)
	if err != nil {
		return nil, c.fail(logger, StageParse, filename, err)
	}
	logger.Debug().Int("forms", len(program.Body)).Msg("parsed")
	return program, nil
}

func (c *Compiler) fail(logger zerolog.Logger, stage Stage, filename string, err error) error {
	e := &Error{Stage: stage, File: filename, Err: err}
	logger.Debug().Str("stage", string(stage)).Str("code", e.Diagnostic().Code).Err(err).Msg("compile failed")
	return e
}

// Error is returned by every Compiler method that fails. Err is one of
// *lexer.LexError, *parser.ParseError, *transformer.TransformError or
// *codegen.GenError; use errors.As to tell them apart.
type Error struct {
	Stage Stage
	File  string
	Err   error
}

func (e *Error) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s: %s error: %s", e.File, e.Stage, e.Err)
	}
	return fmt.Sprintf("%s error: %s", e.Stage, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Diagnostic returns the stage diagnostic with the file name filled in.
func (e *Error) Diagnostic() diagnostics.Diagnostic {
	code := diagnostics.ETransform
	switch e.Stage {
	case StageLex:
		code = diagnostics.ELex
	case StageParse:
		code = diagnostics.EParse
	case StageGenerate:
		code = diagnostics.EGen
	}
	return diagnostics.FromError(e.Err, code).WithFile(e.File)
}

// Internal reports whether the failure points at a defect in the compiler
// rather than in the input.
func (e *Error) Internal() bool {
	var te *transformer.TransformError
	if errors.As(e.Err, &te) {
		return te.Kind != transformer.TopLevelLiteral
	}
	return e.Stage == StageGenerate
}

// IsIncomplete reports whether err only says the source ended too early,
// so appending more text could make it compile.
func IsIncomplete(err error) bool {
	var le *lexer.LexError
	if errors.As(err, &le) {
		return le.Kind == lexer.UnexpectedEnd
	}
	var pe *parser.ParseError
	if errors.As(err, &pe) {
		return pe.Kind == parser.UnexpectedEnd
	}
	return false
}
