// Package errmode decides what happens when one item of a batch fails.
package errmode

import (
	"context"
	"fmt"
	"log/slog"

	"rngrename/internal/logging"
	"rngrename/internal/prompt"
)

// Mode is the policy for per-item failures.
type Mode string

const (
	// Ignore skips the failed item silently.
	Ignore Mode = "ignore"
	// Warn asks the user whether to skip, retry or halt.
	Warn Mode = "warn"
	// Halt stops at the first failure.
	Halt Mode = "halt"
)

func (m Mode) String() string { return string(m) }

// Set implements pflag.Value.
func (m *Mode) Set(v string) error {
	switch Mode(v) {
	case Ignore, Warn, Halt:
		*m = Mode(v)
		return nil
	}
	return fmt.Errorf("unknown error handling mode %q (want ignore, warn or halt)", v)
}

// Type implements pflag.Value.
func (m *Mode) Type() string { return "mode" }

// Handler applies a Mode to item operations.
type Handler struct {
	Mode   Mode
	Prompt prompt.Prompter
	Log    *slog.Logger
}

// Do runs op until it succeeds or the mode gives up on the item. It returns
// done == true when op succeeded and done == false with a nil error when the
// item was skipped. Under Halt the item's error is returned; a user halt
// returns prompt.ErrUserHalt.
func (h Handler) Do(problem string, op func() error) (done bool, err error) {
	log := h.Log
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	for {
		opErr := op()
		if opErr == nil {
			return true, nil
		}

		switch h.Mode {
		case Ignore:
			log.Debug(problem+", ignoring", "err", opErr)
			return false, nil
		case Halt:
			log.Debug(problem+", halting", "err", opErr)
			return false, fmt.Errorf("%s: %w", problem, opErr)
		}

		if h.Prompt == nil {
			return false, fmt.Errorf("%s: %w", problem, opErr)
		}
		log.Debug(problem+", prompting", "err", opErr)
		resp, err := h.Prompt.OnError(problem, opErr)
		if err != nil {
			return false, err
		}
		log.Log(context.Background(), logging.LevelTrace, "user selected response", "response", resp.String())
		switch resp {
		case prompt.Retry:
			continue
		case prompt.Halt:
			return false, prompt.ErrUserHalt
		default:
			return false, nil
		}
	}
}
