package commandinit

import (
	"io"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// NewLogger returns a console logger on w tagged with the command name and
// a fresh run id.
func NewLogger(w io.Writer, level zerolog.Level, command string) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(level).
		With().
		Timestamp().
		Str("command", command).
		Str("run_id", uuid.NewString()).
		Logger()
}
