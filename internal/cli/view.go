package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/openbatch/joblog/internal/prompt"
	"github.com/openbatch/joblog/internal/runner"
	"github.com/openbatch/joblog/internal/scheduler"
	"github.com/openbatch/joblog/internal/viewer"
)

// ViewAction opens one task log of a registered job array in a pager,
// or prints it when the session is not interactive.
func ViewAction(ctx context.Context, cmd *cli.Command) error {
	app, err := newApp(cmd.String("env"))
	if err != nil {
		return err
	}

	job, err := jobArg(app, cmd)
	if err != nil {
		return err
	}

	run := runner.ExecRunner{}
	v := &viewer.Viewer{
		Runner:  run,
		Status:  scheduler.New(app.Config.StatusCmd, run).State,
		Confirm: prompt.Terminal{},
		Pager:   app.Config.Pager,
		Printer: app.Config.Printer,
	}

	return v.Open(ctx, job, viewer.Options{
		Task:        cmd.Int("task"),
		Command:     cmd.String("cmd"),
		Interactive: interactive(cmd),
	})
}
