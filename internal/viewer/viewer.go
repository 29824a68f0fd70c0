// Package viewer resolves the output log of one task within a job
// array and hands it off to an external pager or printer.
package viewer

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/openbatch/joblog/internal/runner"
	"github.com/openbatch/joblog/internal/scheduler"
	"github.com/openbatch/joblog/internal/state"
)

// Confirmer asks the user whether to open path with command. ok=false
// means the user declined, which is not an error.
type Confirmer interface {
	Confirm(command, path string) (ok bool, err error)
}

// StatusFunc reports the scheduler's view of a job.
type StatusFunc func(ctx context.Context, jobID string) scheduler.State

// Viewer opens task logs with an external command. The pipeline is
// strictly sequential: validate the handle, pick the command, check job
// status, locate the file, probe the command, confirm, invoke.
type Viewer struct {
	Runner  runner.Runner
	Status  StatusFunc
	Confirm Confirmer
	Pager   string // default command for interactive sessions
	Printer string // default command otherwise

	// Out receives notices and the trailing newline after plain
	// printing. Defaults to os.Stdout.
	Out io.Writer
}

// Options select which task log to open and how.
type Options struct {
	// Task is the 1-based array index. Zero means discover the first
	// available task log in the job directory.
	Task int

	// Command overrides the viewer. Honored in interactive sessions
	// only; otherwise the call degrades to a notice and a no-op.
	Command string

	Interactive bool
}

// Open resolves the log file for one task of job and invokes the viewer
// on it. Declining the confirmation prompt is a successful no-op.
func (v *Viewer) Open(ctx context.Context, job *state.ArrayJob, opts Options) error {
	if err := job.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidJob, err)
	}

	if opts.Command != "" && !opts.Interactive {
		fmt.Fprintf(v.out(), "not an interactive session, ignoring viewer %q\n", opts.Command)
		return nil
	}

	command := opts.Command
	if command == "" {
		if opts.Interactive {
			command = v.Pager
		} else {
			command = v.Printer
		}
	}

	if v.Status != nil {
		if st := v.Status(ctx, job.JobID); !st.Started() {
			return fmt.Errorf("%w: job %s is %s", ErrNotStarted, job.JobID, st)
		}
	}

	path, err := Resolve(job, opts.Task)
	if err != nil {
		return err
	}
	slog.Debug("resolved task log", "job_id", job.JobID, "path", path)

	// Availability probe; output is discarded, only the exit status
	// matters.
	if err := v.Runner.Run(ctx, command, "--version"); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrViewerUnavailable, command, err)
	}

	if opts.Interactive {
		ok, err := v.Confirm.Confirm(command, path)
		if err != nil {
			return fmt.Errorf("reading confirmation: %w", err)
		}
		if !ok {
			return nil
		}
	} else {
		fmt.Fprintf(v.out(), "printing %s\n", path)
	}

	if command == v.Printer {
		// cat-style output would otherwise run straight into the
		// shell prompt. Deferred so it survives a failed invocation.
		defer fmt.Fprintln(v.out())
	}
	return v.Runner.RunAttached(ctx, command, path)
}

// Resolve returns the on-disk log path for the given 1-based task
// index, or for the first discovered task log when task is zero.
func Resolve(job *state.ArrayJob, task int) (string, error) {
	if err := job.Validate(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidJob, err)
	}

	dir := job.Dir()
	if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrMissingJobDir, dir)
	}

	if task == 0 {
		return discoverLog(dir)
	}

	if task < 1 || task > job.TaskCount {
		return "", fmt.Errorf("%w: %d not in [1, %d]", ErrInvalidTask, task, job.TaskCount)
	}
	path := filepath.Join(dir, job.TaskLogName(task))
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("%w: %s", ErrLogNotFound, path)
	}
	return path, nil
}

// discoverLog picks the first task log in dir. os.ReadDir sorts by
// filename, so "first" is the lexicographically smallest match.
func discoverLog(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrMissingJobDir, dir)
	}
	for _, e := range entries {
		if !e.IsDir() && strings.HasPrefix(e.Name(), state.TaskLogPrefix) {
			return filepath.Join(dir, e.Name()), nil
		}
	}
	return "", fmt.Errorf("%w: no %s* files in %s", ErrNoLogsYet, state.TaskLogPrefix, dir)
}

func (v *Viewer) out() io.Writer {
	if v.Out != nil {
		return v.Out
	}
	return os.Stdout
}
