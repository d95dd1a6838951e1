// Package diagnostics defines lisp2c diagnostic types for lex/parse/transform/codegen errors.
package diagnostics

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Diagnostic code constants.
const (
	ELex       = "E_LEX"
	EParse     = "E_PARSE"
	ETransform = "E_TRANSFORM"
	EGen       = "E_GEN"
	EIO        = "E_IO"
)

// Location identifies a byte offset in a named source.
type Location struct {
	File   string `json:"file,omitempty"`
	Offset int    `json:"offset"`
}

// Diagnostic represents a failure reported by one compilation stage.
type Diagnostic struct {
	Code     string    `json:"code"`
	Message  string    `json:"message"`
	Location *Location `json:"location,omitempty"`
	Hint     string    `json:"hint,omitempty"`
}

// MakeDiag creates a new Diagnostic.
func MakeDiag(code, message string, loc *Location, hint string) Diagnostic {
	return Diagnostic{
		Code:     code,
		Message:  message,
		Location: loc,
		Hint:     hint,
	}
}

// At returns a Location for offset with no file name.
func At(offset int) *Location {
	return &Location{Offset: offset}
}

// WithFile returns a copy of d whose location names file.
func (d Diagnostic) WithFile(file string) Diagnostic {
	if d.Location == nil {
		return d
	}
	loc := *d.Location
	loc.File = file
	d.Location = &loc
	return d
}

// Diagnoser is implemented by every stage error.
type Diagnoser interface {
	error
	Diagnostic() Diagnostic
}

// FromError extracts the diagnostic carried by err. Errors that carry none
// are reported under fallbackCode with their message.
func FromError(err error, fallbackCode string) Diagnostic {
	var d Diagnoser
	if errors.As(err, &d) {
		return d.Diagnostic()
	}
	return MakeDiag(fallbackCode, err.Error(), nil, "")
}

// FormatDiagnostic formats a single diagnostic for display.
func FormatDiagnostic(d Diagnostic, pretty bool) string {
	if !pretty {
		b, _ := json.Marshal(d)
		return string(b)
	}
	loc := "<unknown>"
	if d.Location != nil {
		file := d.Location.File
		if file == "" {
			file = "<input>"
		}
		loc = fmt.Sprintf("%s:+%d", file, d.Location.Offset)
	}
	out := fmt.Sprintf("error[%s]: %s\n  --> %s", d.Code, d.Message, loc)
	if d.Hint != "" {
		out += fmt.Sprintf("\n  hint: %s", d.Hint)
	}
	return out
}

// FormatDiagnostics formats a slice of diagnostics for display.
func FormatDiagnostics(diags []Diagnostic, pretty bool) string {
	if !pretty {
		b, _ := json.Marshal(diags)
		return string(b)
	}
	parts := make([]string, len(diags))
	for i, d := range diags {
		parts[i] = FormatDiagnostic(d, true)
	}
	return strings.Join(parts, "\n\n")
}
