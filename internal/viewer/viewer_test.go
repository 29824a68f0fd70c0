package viewer_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openbatch/joblog/internal/scheduler"
	"github.com/openbatch/joblog/internal/state"
	"github.com/openbatch/joblog/internal/viewer"
)

type fakeRunner struct {
	probeErr  error
	attachErr error
	probes    [][]string
	attached  [][]string
}

func (f *fakeRunner) Run(ctx context.Context, name string, args ...string) error {
	f.probes = append(f.probes, append([]string{name}, args...))
	return f.probeErr
}

func (f *fakeRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	return nil, errors.New("unexpected Output call")
}

func (f *fakeRunner) RunAttached(ctx context.Context, name string, args ...string) error {
	f.attached = append(f.attached, append([]string{name}, args...))
	return f.attachErr
}

type fakeConfirm struct {
	ok    bool
	err   error
	calls int
}

func (f *fakeConfirm) Confirm(command, path string) (bool, error) {
	f.calls++
	return f.ok, f.err
}

func running(ctx context.Context, jobID string) scheduler.State { return scheduler.StateRunning }
func queued(ctx context.Context, jobID string) scheduler.State  { return scheduler.StateQueued }

// testJob returns a handle whose job directory exists and contains the
// given files.
func testJob(t *testing.T, files ...string) *state.ArrayJob {
	t.Helper()
	job := &state.ArrayJob{JobID: "123", Name: "myjob", TmpPath: t.TempDir(), TaskCount: 2}
	require.NoError(t, os.MkdirAll(job.Dir(), 0o755))
	for _, f := range files {
		require.NoError(t, os.WriteFile(filepath.Join(job.Dir(), f), []byte("task output\n"), 0o644))
	}
	return job
}

func newViewer(run *fakeRunner, confirm *fakeConfirm, out *bytes.Buffer) *viewer.Viewer {
	return &viewer.Viewer{
		Runner:  run,
		Status:  running,
		Confirm: confirm,
		Pager:   "less",
		Printer: "cat",
		Out:     out,
	}
}

func TestInvalidHandle(t *testing.T) {
	run := &fakeRunner{}
	v := newViewer(run, &fakeConfirm{}, &bytes.Buffer{})

	err := v.Open(context.Background(), &state.ArrayJob{Name: "incomplete"}, viewer.Options{})
	assert.ErrorIs(t, err, viewer.ErrInvalidJob)
	assert.Empty(t, run.probes)
}

func TestTaskIndexOutOfRange(t *testing.T) {
	for _, task := range []int{-1, 3, 5, 99} {
		run := &fakeRunner{}
		v := newViewer(run, &fakeConfirm{}, &bytes.Buffer{})
		job := testJob(t, "02-output-123-1.out")

		err := v.Open(context.Background(), job, viewer.Options{Task: task})
		assert.ErrorIs(t, err, viewer.ErrInvalidTask, "task %d", task)
		assert.Empty(t, run.probes, "task %d", task)
		assert.Empty(t, run.attached, "task %d", task)
	}
}

func TestNotStartedWinsRegardlessOfTask(t *testing.T) {
	for _, task := range []int{0, 1, 5} {
		run := &fakeRunner{}
		v := newViewer(run, &fakeConfirm{}, &bytes.Buffer{})
		v.Status = queued
		job := testJob(t, "02-output-123-1.out")

		err := v.Open(context.Background(), job, viewer.Options{Task: task})
		assert.ErrorIs(t, err, viewer.ErrNotStarted, "task %d", task)
	}
}

func TestMissingJobDirectory(t *testing.T) {
	job := &state.ArrayJob{JobID: "123", Name: "myjob", TmpPath: t.TempDir(), TaskCount: 2}
	v := newViewer(&fakeRunner{}, &fakeConfirm{}, &bytes.Buffer{})

	err := v.Open(context.Background(), job, viewer.Options{})
	assert.ErrorIs(t, err, viewer.ErrMissingJobDir)
	assert.ErrorContains(t, err, job.Dir())
}

func TestDiscoverSingleFile(t *testing.T) {
	run := &fakeRunner{}
	var out bytes.Buffer
	v := newViewer(run, &fakeConfirm{}, &out)
	job := testJob(t, "02-output-123-1.out")

	require.NoError(t, v.Open(context.Background(), job, viewer.Options{}))
	want := filepath.Join(job.Dir(), "02-output-123-1.out")
	require.Len(t, run.attached, 1)
	assert.Equal(t, []string{"cat", want}, run.attached[0])
}

func TestDiscoveryPicksFirstMatch(t *testing.T) {
	run := &fakeRunner{}
	v := newViewer(run, &fakeConfirm{}, &bytes.Buffer{})
	job := testJob(t, "02-output-123-2.out", "02-output-123-1.out", "submit.log")

	require.NoError(t, v.Open(context.Background(), job, viewer.Options{}))
	require.Len(t, run.attached, 1)
	assert.Equal(t, filepath.Join(job.Dir(), "02-output-123-1.out"), run.attached[0][1])
}

func TestNoLogsYet(t *testing.T) {
	v := newViewer(&fakeRunner{}, &fakeConfirm{}, &bytes.Buffer{})
	job := testJob(t, "submit.log")

	err := v.Open(context.Background(), job, viewer.Options{})
	assert.ErrorIs(t, err, viewer.ErrNoLogsYet)
}

func TestIndexedLogMissing(t *testing.T) {
	v := newViewer(&fakeRunner{}, &fakeConfirm{}, &bytes.Buffer{})
	job := testJob(t, "02-output-123-1.out")

	err := v.Open(context.Background(), job, viewer.Options{Task: 2})
	assert.ErrorIs(t, err, viewer.ErrLogNotFound)
	assert.ErrorContains(t, err, filepath.Join(job.Dir(), "02-output-123-2.out"))
}

func TestNonInteractiveExplicitCommandIsANoOp(t *testing.T) {
	run := &fakeRunner{}
	var out bytes.Buffer
	v := newViewer(run, &fakeConfirm{}, &out)
	job := testJob(t, "02-output-123-1.out")

	err := v.Open(context.Background(), job, viewer.Options{Command: "vim"})
	require.NoError(t, err)
	assert.Empty(t, run.probes)
	assert.Empty(t, run.attached)
	assert.Contains(t, out.String(), "vim")
}

func TestViewerUnavailable(t *testing.T) {
	run := &fakeRunner{probeErr: errors.New("exit status 127")}
	v := newViewer(run, &fakeConfirm{}, &bytes.Buffer{})
	job := testJob(t, "02-output-123-1.out")

	err := v.Open(context.Background(), job, viewer.Options{})
	assert.ErrorIs(t, err, viewer.ErrViewerUnavailable)
	assert.ErrorContains(t, err, "cat")
	assert.Empty(t, run.attached)
}

func TestProbeUsesVersionFlag(t *testing.T) {
	run := &fakeRunner{}
	v := newViewer(run, &fakeConfirm{}, &bytes.Buffer{})
	job := testJob(t, "02-output-123-1.out")

	require.NoError(t, v.Open(context.Background(), job, viewer.Options{}))
	require.Len(t, run.probes, 1)
	assert.Equal(t, []string{"cat", "--version"}, run.probes[0])
}

func TestInteractiveDeclineIsANoOp(t *testing.T) {
	run := &fakeRunner{}
	confirm := &fakeConfirm{ok: false}
	v := newViewer(run, confirm, &bytes.Buffer{})
	job := testJob(t, "02-output-123-1.out")

	err := v.Open(context.Background(), job, viewer.Options{Interactive: true})
	require.NoError(t, err)
	assert.Equal(t, 1, confirm.calls)
	assert.Empty(t, run.attached)
}

func TestInteractiveAcceptUsesPager(t *testing.T) {
	run := &fakeRunner{}
	var out bytes.Buffer
	v := newViewer(run, &fakeConfirm{ok: true}, &out)
	job := testJob(t, "02-output-123-1.out")

	require.NoError(t, v.Open(context.Background(), job, viewer.Options{Interactive: true}))
	require.Len(t, run.attached, 1)
	assert.Equal(t, "less", run.attached[0][0])
	// The pager handles its own screen; no trailing newline.
	assert.Empty(t, out.String())
}

func TestInteractiveExplicitCommandHonored(t *testing.T) {
	run := &fakeRunner{}
	v := newViewer(run, &fakeConfirm{ok: true}, &bytes.Buffer{})
	job := testJob(t, "02-output-123-1.out")

	opts := viewer.Options{Interactive: true, Command: "vim"}
	require.NoError(t, v.Open(context.Background(), job, opts))
	require.Len(t, run.attached, 1)
	assert.Equal(t, "vim", run.attached[0][0])
}

func TestEndToEndNonInteractivePrint(t *testing.T) {
	run := &fakeRunner{}
	var out bytes.Buffer
	v := newViewer(run, &fakeConfirm{}, &out)
	job := testJob(t, "02-output-123-1.out")

	require.NoError(t, v.Open(context.Background(), job, viewer.Options{Task: 1}))

	want := filepath.Join(job.Dir(), "02-output-123-1.out")
	require.Len(t, run.attached, 1)
	assert.Equal(t, []string{"cat", want}, run.attached[0])
	assert.Contains(t, out.String(), want)
	assert.True(t, strings.HasSuffix(out.String(), "\n\n"), "want trailing newline after notice line, got %q", out.String())
}

func TestTrailingNewlineSurvivesFailedInvocation(t *testing.T) {
	run := &fakeRunner{attachErr: errors.New("exit status 1")}
	var out bytes.Buffer
	v := newViewer(run, &fakeConfirm{}, &out)
	job := testJob(t, "02-output-123-1.out")

	err := v.Open(context.Background(), job, viewer.Options{Task: 1})
	assert.Error(t, err)
	assert.True(t, strings.HasSuffix(out.String(), "\n\n"), "trailing newline must run even when the viewer fails, got %q", out.String())
}

func TestResolve(t *testing.T) {
	job := testJob(t, "02-output-123-1.out", "02-output-123-2.out")

	path, err := viewer.Resolve(job, 2)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(job.Dir(), "02-output-123-2.out"), path)

	path, err = viewer.Resolve(job, 0)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(job.Dir(), "02-output-123-1.out"), path)

	_, err = viewer.Resolve(job, 7)
	assert.ErrorIs(t, err, viewer.ErrInvalidTask)
}
