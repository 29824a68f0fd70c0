package cli

import "github.com/urfave/cli/v3"

// Commands returns the joblog subcommand tree.
func Commands() []*cli.Command {
	return []*cli.Command{
		{
			Name:      "view",
			Usage:     "open one task log in a pager",
			ArgsUsage: "<job name or id>",
			Flags: []cli.Flag{
				envFlag(),
				taskFlag(),
				&cli.StringFlag{
					Name:  "cmd",
					Usage: "viewer command (interactive sessions only)",
				},
				&cli.BoolFlag{
					Name:  "no-input",
					Usage: "never prompt, behave as a non-interactive session",
				},
			},
			Action: ViewAction,
		},
		{
			Name:      "path",
			Usage:     "print the resolved task log path",
			ArgsUsage: "<job name or id>",
			Flags:     []cli.Flag{envFlag(), taskFlag()},
			Action:    PathAction,
		},
		{
			Name:   "list",
			Usage:  "list registered job arrays",
			Flags:  []cli.Flag{envFlag()},
			Action: ListAction,
		},
		{
			Name:  "register",
			Usage: "record an already-submitted job array",
			Flags: []cli.Flag{
				envFlag(),
				&cli.StringFlag{
					Name:     "id",
					Usage:    "scheduler job id",
					Required: true,
				},
				&cli.StringFlag{
					Name:     "name",
					Usage:    "job name, also the record name",
					Required: true,
				},
				&cli.StringFlag{
					Name:  "tmp",
					Usage: "temp root the submitter wrote output under (default: JOBLOG_TMPDIR)",
				},
				&cli.IntFlag{
					Name:     "tasks",
					Usage:    "number of array tasks",
					Required: true,
				},
				&cli.StringFlag{
					Name:  "queue",
					Usage: "queue the job was submitted to",
				},
				&cli.StringFlag{
					Name:  "owner",
					Usage: "submitting user",
				},
			},
			Action: RegisterAction,
		},
		{
			Name:      "rm",
			Usage:     "forget a job record (logs and the job itself are left alone)",
			ArgsUsage: "<job name or id>",
			Flags:     []cli.Flag{envFlag()},
			Action:    RmAction,
		},
	}
}

func envFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:  "env",
		Usage: "dotenv file to seed the environment",
		Value: ".env",
	}
}

func taskFlag() *cli.IntFlag {
	return &cli.IntFlag{
		Name:  "task",
		Usage: "1-based array task index (default: first available log)",
	}
}
