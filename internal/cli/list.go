package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"
)

// ListAction renders the registered job arrays as a table.
func ListAction(ctx context.Context, cmd *cli.Command) error {
	app, err := newApp(cmd.String("env"))
	if err != nil {
		return err
	}

	jobs, err := app.Registry.List()
	if err != nil {
		return err
	}
	if len(jobs) == 0 {
		fmt.Println("no registered jobs")
		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Job ID", "Name", "Tasks", "Queue", "Owner", "Submitted")
	for _, job := range jobs {
		submitted := ""
		if !job.SubmitTime.IsZero() {
			submitted = job.SubmitTime.Format("2006-01-02 15:04")
		}
		table.Append(
			job.JobID,
			job.Name,
			strconv.Itoa(job.TaskCount),
			job.Queue,
			job.Owner,
			submitted,
		)
	}
	table.Render()
	return nil
}
