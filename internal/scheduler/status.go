package scheduler

import (
	"bufio"
	"bytes"
	"context"
	"log/slog"
	"strings"

	"github.com/openbatch/joblog/internal/runner"
)

// Client queries job status by running the cluster's status command
// (qstat-compatible) and reading the job_state attribute from its full
// display output.
type Client struct {
	cmd string
	run runner.Runner
}

func New(cmd string, run runner.Runner) *Client {
	return &Client{cmd: cmd, run: run}
}

// State returns the scheduler's view of the job. A status command that
// cannot be run or produces no job_state line yields StateUnknown
// rather than an error.
func (c *Client) State(ctx context.Context, jobID string) State {
	// -t expands array sub-jobs so the reported state covers them.
	out, err := c.run.Output(ctx, c.cmd, "-f", "-t", jobID)
	if err != nil {
		slog.Debug("status query failed", "cmd", c.cmd, "job_id", jobID, "error", err)
		return StateUnknown
	}
	return parseJobState(out)
}

// parseJobState scans qstat -f output for the first job_state
// attribute line, e.g. "    job_state = R".
func parseJobState(out []byte) State {
	sc := bufio.NewScanner(bytes.NewReader(out))
	for sc.Scan() {
		key, value, ok := strings.Cut(sc.Text(), "=")
		if !ok || strings.TrimSpace(key) != "job_state" {
			continue
		}
		switch strings.TrimSpace(value) {
		case "Q", "W":
			return StateQueued
		case "H":
			return StateHeld
		case "R", "T":
			return StateRunning
		case "E":
			return StateExiting
		case "C":
			return StateComplete
		}
		return StateUnknown
	}
	return StateUnknown
}
