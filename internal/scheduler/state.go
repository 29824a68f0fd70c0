package scheduler

// State is the scheduler's view of a job, mapped from the single-letter
// job_state attribute PBS-style servers report.
type State int

const (
	StateUnknown State = iota
	StateQueued
	StateHeld
	StateRunning
	StateExiting
	StateComplete
)

func (s State) String() string {
	switch s {
	case StateQueued:
		return "queued"
	case StateHeld:
		return "held"
	case StateRunning:
		return "running"
	case StateExiting:
		return "exiting"
	case StateComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Started reports whether the job has begun producing output. Unknown
// counts as started: once log files exist they are the source of truth,
// and an unreachable scheduler should not block reading them.
func (s State) Started() bool {
	switch s {
	case StateQueued, StateHeld:
		return false
	default:
		return true
	}
}
