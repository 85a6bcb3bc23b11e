// Package journal records the outcome of a rename run as JSONL, one object
// per line, so a run can be audited or reverted by hand.
package journal

import (
	"encoding/json"
	"io"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Journal writes structured JSONL entries to a file.
// All methods are safe for concurrent use. When disabled (w is nil),
// all methods are no-ops.
type Journal struct {
	mu    sync.Mutex
	w     io.WriteCloser
	runID string
}

// Open creates a Journal that appends to path. An empty path returns a
// no-op journal. A file that cannot be opened is an error.
func Open(path string) (*Journal, error) {
	if path == "" {
		return Nop(), nil
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	return newJournal(f), nil
}

func newJournal(w io.WriteCloser) *Journal {
	return &Journal{w: w, runID: uuid.NewString()}
}

// Nop returns a disabled journal. All methods are no-ops.
func Nop() *Journal {
	return &Journal{}
}

// RunID identifies every entry of this run. Empty for a disabled journal.
func (j *Journal) RunID() string {
	return j.runID
}

// entry is the common envelope for all journal lines.
type entry struct {
	Timestamp string `json:"ts"`
	RunID     string `json:"run_id"`
	Event     string `json:"event"`
}

// RunInfo describes the parameters of a run.
type RunInfo struct {
	Files    int    `json:"files"`
	Strategy string `json:"strategy"`
	CharSet  string `json:"charset"`
	Length   int    `json:"length"`
	DryRun   bool   `json:"dry_run"`
}

// RunStarted logs the start of a run.
func (j *Journal) RunStarted(info RunInfo) {
	j.log(struct {
		entry
		RunInfo
	}{
		entry:   j.entry("run_started"),
		RunInfo: info,
	})
}

// Renamed logs a completed (or, in a dry run, previewed) rename.
func (j *Journal) Renamed(from, to string, dryRun bool) {
	j.log(struct {
		entry
		From   string `json:"from"`
		To     string `json:"to"`
		DryRun bool   `json:"dry_run,omitempty"`
	}{
		entry:  j.entry("renamed"),
		From:   from,
		To:     to,
		DryRun: dryRun,
	})
}

// Skipped logs a file that was not renamed.
func (j *Journal) Skipped(from, to, reason string) {
	j.log(struct {
		entry
		From   string `json:"from"`
		To     string `json:"to"`
		Reason string `json:"reason,omitempty"`
	}{
		entry:  j.entry("skipped"),
		From:   from,
		To:     to,
		Reason: reason,
	})
}

// RunFinished logs the end of a run.
func (j *Journal) RunFinished(renamed int, runErr error) {
	var msg string
	if runErr != nil {
		msg = runErr.Error()
	}
	j.log(struct {
		entry
		Renamed int    `json:"renamed"`
		Error   string `json:"error,omitempty"`
	}{
		entry:   j.entry("run_finished"),
		Renamed: renamed,
		Error:   msg,
	})
}

// Close closes the underlying file.
func (j *Journal) Close() error {
	if j.w == nil {
		return nil
	}
	return j.w.Close()
}

func (j *Journal) entry(event string) entry {
	return entry{
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		RunID:     j.runID,
		Event:     event,
	}
}

func (j *Journal) log(v any) {
	if j.w == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	data = append(data, '\n')
	j.mu.Lock()
	j.w.Write(data)
	j.mu.Unlock()
}
