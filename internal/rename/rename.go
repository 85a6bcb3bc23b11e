// Package rename applies a list of old-path/new-name pairs to the file
// system, optionally in user-confirmed batches.
package rename

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"rngrename/internal/errmode"
	"rngrename/internal/journal"
	"rngrename/internal/namegen"
	"rngrename/internal/prompt"
	"rngrename/internal/termstyle"
)

// ConfirmMode controls when the user is asked before renaming.
type ConfirmMode string

const (
	// None renames without asking.
	None ConfirmMode = "none"
	// Batch asks once per batch of BatchSize files.
	Batch ConfirmMode = "batch"
	// Each asks before every file.
	Each ConfirmMode = "each"
)

// DefaultBatchSize is the batch size used by Batch unless overridden.
const DefaultBatchSize = 10

func (m ConfirmMode) String() string { return string(m) }

// Set implements pflag.Value.
func (m *ConfirmMode) Set(v string) error {
	switch ConfirmMode(v) {
	case None, Batch, Each:
		*m = ConfirmMode(v)
		return nil
	}
	return fmt.Errorf("unknown confirm mode %q (want none, batch or each)", v)
}

// Type implements pflag.Value.
func (m *ConfirmMode) Type() string { return "mode" }

// AlreadyExistsError is returned when the target name is taken. Existing
// files are never overwritten.
type AlreadyExistsError struct {
	From, To string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("renaming %q to %q will overwrite an existing file", e.From, e.To)
}

func (e *AlreadyExistsError) Is(target error) bool {
	return target == fs.ErrExist
}

// Options configures Apply.
type Options struct {
	Confirm ConfirmMode
	// BatchSize is the number of files per confirmation in Batch mode.
	// Zero puts every file in a single batch.
	BatchSize int
	DryRun    bool

	// Errors decides what to do with a failed rename.
	Errors errmode.Handler
	// Prompt confirms batches. Required unless Confirm is None.
	Prompt  prompt.Prompter
	Out     io.Writer
	Journal *journal.Journal
	Log     *slog.Logger
}

// Target is the path a file is renamed to: the new name in the same
// directory.
func Target(path, name string) string {
	return filepath.Join(filepath.Dir(path), name)
}

// Apply renames every pair and returns how many succeeded. In a dry run
// nothing is touched but the target check still applies.
func Apply(pairs namegen.Assignment, opts Options) (int, error) {
	r := &renamer{Options: opts}
	if r.Out == nil {
		r.Out = io.Discard
	}
	if r.Journal == nil {
		r.Journal = journal.Nop()
	}
	if r.Log == nil {
		r.Log = slog.New(slog.DiscardHandler)
	}

	var err error
	switch r.Confirm {
	case "", None:
		r.Log.Debug("renaming files without confirmation")
		err = r.renameAll(pairs)
	case Batch:
		err = r.confirmed(pairs, r.BatchSize)
	case Each:
		err = r.confirmed(pairs, 1)
	default:
		err = fmt.Errorf("unknown confirm mode %q", r.Confirm)
	}
	if err != nil {
		return r.count, fmt.Errorf("rename: %w", err)
	}

	r.Log.Info("successfully renamed files", "count", r.count, "dry_run", r.DryRun)
	return r.count, nil
}

type renamer struct {
	Options
	count int
}

func (r *renamer) confirmed(pairs namegen.Assignment, size int) error {
	if r.Prompt == nil {
		return errors.New("confirmation requested but no prompt is available")
	}
	if size <= 0 {
		size = len(pairs)
	}
	r.Log.Debug("renaming files with confirmation", "batch_size", size)

	total := (len(pairs) + size - 1) / size
	for i := 0; i < total; i++ {
		batch := pairs[i*size : min((i+1)*size, len(pairs))]

		marker := ""
		if r.DryRun {
			marker = " (" + termstyle.DryRun() + ")"
		}
		fmt.Fprintf(r.Out, "Batch %s/%s%s:\n",
			termstyle.Yellow(fmt.Sprintf("#%d", i+1)),
			termstyle.Green(fmt.Sprint(total)),
			marker)
		for _, p := range batch {
			fmt.Fprintf(r.Out, "\t%s -> %s\n", termstyle.Path(p.Path), termstyle.NewName(p.Name))
		}

		resp, err := r.Prompt.ConfirmBatch("Confirm batch?")
		if err != nil {
			return err
		}
		r.Log.Debug("batch response", "batch", i+1, "response", resp.String())

		switch resp {
		case prompt.SkipBatch:
			for _, p := range batch {
				r.Journal.Skipped(p.Path, Target(p.Path, p.Name), "batch skipped")
			}
			continue
		case prompt.HaltBatch:
			return prompt.ErrUserHalt
		}

		if err := r.renameAll(batch); err != nil {
			return err
		}
	}
	return nil
}

func (r *renamer) renameAll(pairs namegen.Assignment) error {
	for _, p := range pairs {
		to := Target(p.Path, p.Name)
		var lastErr error
		ok, err := r.Errors.Do(fmt.Sprintf("Failed to rename %q to %q", p.Path, p.Name), func() error {
			lastErr = r.one(p.Path, to)
			return lastErr
		})
		if err != nil {
			r.Journal.Skipped(p.Path, to, err.Error())
			return err
		}
		if !ok {
			r.Journal.Skipped(p.Path, to, lastErr.Error())
			continue
		}
		r.count++
		r.Journal.Renamed(p.Path, to, r.DryRun)
	}
	return nil
}

func (r *renamer) one(from, to string) error {
	if _, err := os.Lstat(to); err == nil {
		return &AlreadyExistsError{From: from, To: to}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	if r.DryRun {
		fmt.Fprintf(r.Out, "\tRename preview: %s -> %s\n", termstyle.Path(from), termstyle.NewName(to))
		return nil
	}
	return os.Rename(from, to)
}
