package main

import (
	"log/slog"

	"github.com/aretw0/statenav"
	"github.com/aretw0/statenav/internal/cli"
	"github.com/aretw0/statenav/pkg/domain"
	"github.com/aretw0/statenav/pkg/session"
	"github.com/spf13/cobra"
)

// app is what most commands need: an engine and its session storage.
type app struct {
	opts        cli.Options
	logger      *slog.Logger
	engine      *statenav.Engine
	persistence *cli.Persistence
	manager     *session.Manager
}

func newApp(cmd *cobra.Command, hooks domain.LifecycleHooks) (*app, error) {
	opts := options(cmd)
	logger, err := cli.CreateLogger(opts)
	if err != nil {
		return nil, err
	}
	engine, err := cli.CreateEngine(opts, logger, hooks)
	if err != nil {
		return nil, err
	}
	persistence, err := cli.CreatePersistence(opts, logger)
	if err != nil {
		return nil, err
	}
	return &app{
		opts:        opts,
		logger:      logger,
		engine:      engine,
		persistence: persistence,
		manager:     persistence.Manager(engine, logger),
	}, nil
}

func (a *app) Close() error {
	return a.persistence.Close()
}

// session loads the named session, or starts an unsaved one on the start
// states when id is empty.
func (a *app) session(cmd *cobra.Command, id string) (*statenav.Session, error) {
	if id == "" {
		return a.engine.Start("scratch")
	}
	snap, err := a.manager.Load(cmd.Context(), id)
	if err != nil {
		return nil, err
	}
	return a.engine.Restore(snap), nil
}
