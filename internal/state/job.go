package state

import (
	"fmt"
	"path/filepath"
	"time"
)

// TaskLogPrefix is the filename prefix the array runner uses for task
// output files. A full name is 02-output-{jobID}-{index}.out.
const TaskLogPrefix = "02-output"

// ArrayJob is the handle for a submitted job array. Records are written
// by the submitter and read back here; joblog never mutates them beyond
// assigning a record id on first save.
type ArrayJob struct {
	RecordID   string    `yaml:"record_id,omitempty"`
	JobID      string    `yaml:"job_id"`
	Name       string    `yaml:"name"`
	TmpPath    string    `yaml:"tmp_path"`
	TaskCount  int       `yaml:"task_count"`
	Queue      string    `yaml:"queue,omitempty"`
	Owner      string    `yaml:"owner,omitempty"`
	SubmitTime time.Time `yaml:"submit_time,omitempty"`
}

// Validate checks that the handle describes a usable job array.
func (j *ArrayJob) Validate() error {
	if j == nil {
		return fmt.Errorf("nil job handle")
	}
	if j.JobID == "" {
		return fmt.Errorf("job id is empty")
	}
	if j.Name == "" {
		return fmt.Errorf("job name is empty")
	}
	if j.TmpPath == "" {
		return fmt.Errorf("tmp path is empty")
	}
	if j.TaskCount < 1 {
		return fmt.Errorf("task count %d, want >= 1", j.TaskCount)
	}
	return nil
}

// Dir returns the per-job directory holding the task output files.
func (j *ArrayJob) Dir() string {
	return filepath.Join(j.TmpPath, j.Name)
}

// TaskLogName returns the output filename for a 1-based task index.
func (j *ArrayJob) TaskLogName(index int) string {
	return fmt.Sprintf("%s-%s-%d.out", TaskLogPrefix, j.JobID, index)
}
