package root

import (
	"context"

	"github.com/pathtonaja-debug/naja-sub002/internal/config"
	"github.com/pathtonaja-debug/naja-sub002/internal/content"
	"github.com/pathtonaja-debug/naja-sub002/internal/engine"
	"github.com/pathtonaja-debug/naja-sub002/internal/store"
)

// app wires the stores every command works against.
type app struct {
	cfg      config.Config
	db       *store.DB
	profiles *engine.ProfileStore
	goals    *engine.GoalTracker
	content  *content.Client
}

func openApp(ctx context.Context) (*app, func(), error) {
	cfgPath, err := config.DefaultConfigPath()
	if err != nil {
		return nil, nil, err
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, nil, err
	}

	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath, err = store.DefaultDBPath()
		if err != nil {
			return nil, nil, err
		}
	}
	db, err := store.Open(ctx, dbPath)
	if err != nil {
		return nil, nil, err
	}

	a := &app{
		cfg:      cfg,
		db:       db,
		profiles: engine.NewProfileStore(db),
		goals:    engine.NewGoalTracker(db),
		content:  content.NewClient(cfg.Content, engine.NewContentCache(db)),
	}
	cleanup := func() {
		_ = db.Close()
	}
	return a, cleanup, nil
}
