// Package cli holds the joblog subcommand actions.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/openbatch/joblog/internal/config"
	"github.com/openbatch/joblog/internal/state"
)

// App carries what every subcommand needs.
type App struct {
	Config   *config.Config
	Registry *state.Registry
}

func newApp(envFile string) (*App, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	configureLogging(cfg.LogLevel)
	reg := state.NewRegistry(cfg.Spool)
	reg.TmpDir = cfg.TmpDir
	return &App{
		Config:   cfg,
		Registry: reg,
	}, nil
}

func configureLogging(level string) {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))
}

// interactive reports whether both ends of the session are terminals.
// Piped or batch invocations must never block on a prompt.
func interactive(cmd *cli.Command) bool {
	if cmd.Bool("no-input") {
		return false
	}
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// jobArg resolves the positional job reference through the registry.
func jobArg(app *App, cmd *cli.Command) (*state.ArrayJob, error) {
	ref := cmd.Args().First()
	if ref == "" {
		return nil, fmt.Errorf("missing job reference (name or id)")
	}
	return app.Registry.Get(ref)
}
