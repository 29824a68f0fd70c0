package viewer

import "errors"

// Every failure mode is a distinct sentinel so callers can test for the
// specific condition with errors.Is.
var (
	ErrInvalidJob        = errors.New("invalid job handle")
	ErrNotStarted        = errors.New("job has not started")
	ErrMissingJobDir     = errors.New("job directory does not exist")
	ErrNoLogsYet         = errors.New("no log files yet")
	ErrInvalidTask       = errors.New("invalid task index")
	ErrLogNotFound       = errors.New("log file not found")
	ErrViewerUnavailable = errors.New("viewer command unavailable")
)
