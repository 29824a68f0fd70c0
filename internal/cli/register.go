package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/openbatch/joblog/internal/state"
)

// RegisterAction records an already-submitted job array so its logs can
// be found later. It never talks to the scheduler; submission happened
// elsewhere.
func RegisterAction(ctx context.Context, cmd *cli.Command) error {
	app, err := newApp(cmd.String("env"))
	if err != nil {
		return err
	}

	tmp := cmd.String("tmp")
	if tmp == "" {
		tmp = app.Config.TmpDir
	}

	job := &state.ArrayJob{
		JobID:      cmd.String("id"),
		Name:       cmd.String("name"),
		TmpPath:    tmp,
		TaskCount:  cmd.Int("tasks"),
		Queue:      cmd.String("queue"),
		Owner:      cmd.String("owner"),
		SubmitTime: time.Now(),
	}
	if err := app.Registry.Save(job); err != nil {
		return err
	}
	fmt.Printf("registered %s (job id %s, %d tasks)\n", job.Name, job.JobID, job.TaskCount)
	return nil
}

// RmAction removes a job record from the registry. The job itself and
// its log files are untouched.
func RmAction(ctx context.Context, cmd *cli.Command) error {
	app, err := newApp(cmd.String("env"))
	if err != nil {
		return err
	}

	job, err := jobArg(app, cmd)
	if err != nil {
		return err
	}
	if err := app.Registry.Delete(job.Name); err != nil {
		return err
	}
	fmt.Printf("removed %s\n", job.Name)
	return nil
}
