package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/openbatch/joblog/internal/viewer"
)

// PathAction prints the resolved log path without opening a viewer.
// Useful from scripts: joblog path myjob --task 3 | xargs grep ERROR.
func PathAction(ctx context.Context, cmd *cli.Command) error {
	app, err := newApp(cmd.String("env"))
	if err != nil {
		return err
	}

	job, err := jobArg(app, cmd)
	if err != nil {
		return err
	}

	path, err := viewer.Resolve(job, cmd.Int("task"))
	if err != nil {
		return err
	}
	fmt.Println(path)
	return nil
}
