// Package logging builds the slog logger used across rng-rename.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// LevelTrace sits below Debug and is enabled by -vvv.
const LevelTrace = slog.LevelDebug - 4

// LevelForVerbosity maps the number of -v flags to a level:
// none = Warn, one = Info, two = Debug, three or more = Trace.
func LevelForVerbosity(v int) slog.Level {
	switch {
	case v <= 0:
		return slog.LevelWarn
	case v == 1:
		return slog.LevelInfo
	case v == 2:
		return slog.LevelDebug
	default:
		return LevelTrace
	}
}

type config struct {
	level  slog.Level
	output io.Writer
}

// Option configures logger creation.
type Option func(*config)

// WithLevel sets the minimum level.
func WithLevel(l slog.Level) Option {
	return func(c *config) { c.level = l }
}

// WithVerbosity sets the minimum level from a -v count.
func WithVerbosity(v int) Option {
	return func(c *config) { c.level = LevelForVerbosity(v) }
}

// WithOutput sets the destination, ignoring nil writers.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.output = w
		}
	}
}

// New returns a text logger writing to stderr at Warn unless configured
// otherwise.
func New(opts ...Option) *slog.Logger {
	c := &config{level: slog.LevelWarn, output: os.Stderr}
	for _, opt := range opts {
		opt(c)
	}
	return slog.New(slog.NewTextHandler(c.output, &slog.HandlerOptions{
		Level:       c.level,
		ReplaceAttr: replaceLevel,
	}))
}

// replaceLevel prints LevelTrace as TRACE instead of DEBUG-4.
func replaceLevel(groups []string, a slog.Attr) slog.Attr {
	if len(groups) > 0 || a.Key != slog.LevelKey {
		return a
	}
	if lvl, ok := a.Value.Any().(slog.Level); ok && lvl <= LevelTrace {
		a.Value = slog.StringValue("TRACE")
	}
	return a
}
