// Package prompt asks the user how to proceed when an item fails or a batch
// of renames needs confirmation.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"rngrename/internal/termstyle"
)

// ErrUserHalt is returned when the user chooses to stop.
var ErrUserHalt = errors.New("user halt")

// ErrorResponse is the user's answer to a per-item failure.
type ErrorResponse int

const (
	Skip ErrorResponse = iota
	Retry
	Halt
)

func (r ErrorResponse) String() string {
	switch r {
	case Skip:
		return "skip"
	case Retry:
		return "retry"
	case Halt:
		return "halt"
	}
	return fmt.Sprintf("ErrorResponse(%d)", int(r))
}

// ParseErrorResponse accepts skip/retry/halt or their initials.
func ParseErrorResponse(s string) (ErrorResponse, error) {
	switch strings.ToLower(s) {
	case "s", "skip":
		return Skip, nil
	case "r", "retry":
		return Retry, nil
	case "h", "halt":
		return Halt, nil
	}
	return Skip, fmt.Errorf("%q is not a valid response", s)
}

// BatchResponse is the user's answer to a batch confirmation.
type BatchResponse int

const (
	Proceed BatchResponse = iota
	SkipBatch
	HaltBatch
)

func (r BatchResponse) String() string {
	switch r {
	case Proceed:
		return "proceed"
	case SkipBatch:
		return "skip"
	case HaltBatch:
		return "halt"
	}
	return fmt.Sprintf("BatchResponse(%d)", int(r))
}

// ParseBatchResponse accepts proceed/skip/halt or their initials.
func ParseBatchResponse(s string) (BatchResponse, error) {
	switch strings.ToLower(s) {
	case "p", "proceed":
		return Proceed, nil
	case "s", "skip":
		return SkipBatch, nil
	case "h", "halt":
		return HaltBatch, nil
	}
	return Proceed, fmt.Errorf("%q is not a valid response", s)
}

// Prompter asks the user questions.
type Prompter interface {
	// OnError reports a failed item and asks whether to skip, retry or halt.
	OnError(problem string, cause error) (ErrorResponse, error)
	// ConfirmBatch asks whether to proceed with, skip or halt at a batch.
	ConfirmBatch(question string) (BatchResponse, error)
}

// Line is a Prompter reading one answer per line. An empty answer picks the
// default (skip for errors, proceed for batches); an invalid answer is
// reported and asked again.
type Line struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLine creates a line prompter.
func NewLine(in io.Reader, out io.Writer) *Line {
	return &Line{in: bufio.NewReader(in), out: out}
}

// OnError implements Prompter.
func (l *Line) OnError(problem string, cause error) (ErrorResponse, error) {
	fmt.Fprintf(l.out, "%s: %v\n", termstyle.Red(problem), cause)
	question := fmt.Sprintf("\tWhat to do? You can %s(%s), %s(%s), or %s(%s)",
		termstyle.Green("skip"), termstyle.Green("s"),
		termstyle.Green("retry"), termstyle.Green("r"),
		termstyle.Green("halt"), termstyle.Green("h"))
	return ask(l, question, Skip, ParseErrorResponse)
}

// ConfirmBatch implements Prompter.
func (l *Line) ConfirmBatch(question string) (BatchResponse, error) {
	text := fmt.Sprintf("%s You can %s(%s), %s(%s), or %s(%s)", question,
		termstyle.Green("proceed"), termstyle.Green("p"),
		termstyle.Green("skip"), termstyle.Green("s"),
		termstyle.Green("halt"), termstyle.Green("h"))
	return ask(l, text, Proceed, ParseBatchResponse)
}

func ask[T fmt.Stringer](l *Line, text string, def T, parse func(string) (T, error)) (T, error) {
	for {
		fmt.Fprintf(l.out, "%s [%s]: ", text, def)
		line, err := l.in.ReadString('\n')
		answer := strings.TrimSpace(line)
		if err != nil && (err != io.EOF || answer == "") {
			var zero T
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return zero, fmt.Errorf("read response: %w", err)
		}
		if answer == "" {
			return def, nil
		}
		resp, perr := parse(answer)
		if perr != nil {
			fmt.Fprintf(l.out, "%s\n", perr)
			continue
		}
		return resp, nil
	}
}
