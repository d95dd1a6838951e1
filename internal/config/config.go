package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

const (
	EnvLogLevel = "LISP2C_LOG_LEVEL"
	EnvPretty   = "LISP2C_PRETTY"
	EnvJobs     = "LISP2C_JOBS"

	defaultLogLevel = "warn"
	defaultJobs     = 4
)

type Flagger interface {
	String(name string) string
	Bool(name string) bool
	Int(name string) int
	IsSet(name string) bool
}

type Config struct {
	LogLevel zerolog.Level
	Pretty   bool
	Jobs     int
}

// Read resolves configuration. A flag that was set on the command line wins
// over its environment variable, which wins over the default.
func Read(flags Flagger, getEnv func(string) string) (*Config, error) {
	levelName := defaultLogLevel
	if v := getEnv(EnvLogLevel); v != "" {
		levelName = v
	}
	if flags.IsSet("log-level") {
		levelName = flags.String("log-level")
	}
	level, err := zerolog.ParseLevel(strings.ToLower(levelName))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", levelName, err)
	}

	pretty := false
	if v := getEnv(EnvPretty); v != "" {
		pretty, err = strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("env var %s: %w", EnvPretty, err)
		}
	}
	if flags.IsSet("pretty") {
		pretty = flags.Bool("pretty")
	}

	jobs := defaultJobs
	if v := getEnv(EnvJobs); v != "" {
		jobs, err = strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("env var %s: %w", EnvJobs, err)
		}
	}
	if flags.IsSet("jobs") {
		jobs = flags.Int("jobs")
	}
	if jobs < 1 {
		return nil, fmt.Errorf("jobs must be at least 1, got %d", jobs)
	}

	cfg := Config{
		LogLevel: level,
		Pretty:   pretty,
		Jobs:     jobs,
	}

	return &cfg, nil
}
