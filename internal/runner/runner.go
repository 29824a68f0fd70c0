package runner

import (
	"context"
	"io"
	"os"
	"os/exec"
)

// Runner abstracts child-process execution so callers can substitute a
// fake instead of spawning real executables.
type Runner interface {
	// Run executes the command and discards its output. Only the exit
	// status matters to the caller.
	Run(ctx context.Context, name string, args ...string) error

	// Output executes the command and returns its standard output.
	Output(ctx context.Context, name string, args ...string) ([]byte, error)

	// RunAttached executes the command wired to the caller's stdio,
	// blocking until it exits. Interactive programs need the terminal.
	RunAttached(ctx context.Context, name string, args ...string) error
}

// ExecRunner runs commands as real subprocesses.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard
	return cmd.Run()
}

func (ExecRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stderr = io.Discard
	return cmd.Output()
}

func (ExecRunner) RunAttached(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
