// Command joblog inspects the output logs of submitted job arrays.
//
// Usage:
//
//	joblog view <job> [--task N] [--cmd PAGER]
//	joblog path <job> [--task N]
//	joblog list
//	joblog register --id ID --name NAME --tasks N [--tmp DIR]
//	joblog rm <job>
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	jobcli "github.com/openbatch/joblog/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := &cli.Command{
		Name:     "joblog",
		Usage:    "inspect the output logs of submitted job arrays",
		Commands: jobcli.Commands(),
	}

	if err := app.Run(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}
