package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/italianiroberto75-cyber/FRIGO/internal/config"
	"github.com/italianiroberto75-cyber/FRIGO/internal/engine"
	"github.com/italianiroberto75-cyber/FRIGO/internal/inventory"
	"github.com/italianiroberto75-cyber/FRIGO/internal/llm"
	"github.com/italianiroberto75-cyber/FRIGO/internal/service"
	"github.com/italianiroberto75-cyber/FRIGO/internal/storage"
)

// app bundles what a command needs.
type app struct {
	db     *storage.SQLiteStorage
	store  *inventory.Store
	engine *engine.Engine
}

// initStorage opens and migrates the database.
func initStorage(ctx context.Context) (*storage.SQLiteStorage, string, error) {
	cfg, err := config.LoadStorageConfig(nil)
	if err != nil {
		return nil, "", err
	}

	db, err := storage.NewSQLiteStorage(cfg.DatabasePath)
	if err != nil {
		return nil, "", err
	}

	if err := db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, "", fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, cfg.Key, nil
}

// openApp loads the inventory. Commands that never add items pass a nil
// suggester.
func openApp(ctx context.Context, suggester service.Suggester) (*app, error) {
	db, key, err := initStorage(ctx)
	if err != nil {
		return nil, err
	}

	store := inventory.New(db, key, slog.Default())
	store.Load(ctx)

	if suggester == nil {
		suggester = llm.NewGateway(nil)
	}

	return &app{
		db:     db,
		store:  store,
		engine: engine.New(store, suggester, engine.WithLogger(slog.Default())),
	}, nil
}

// close flushes the snapshot and closes the database. Mutations already
// persisted synchronously, so a failing flush is only logged.
func (a *app) close() {
	if err := a.store.Close(context.Background()); err != nil {
		slog.Warn("Failed to flush inventory on exit", "error", err)
	}
	if err := a.db.Close(); err != nil {
		slog.Warn("Failed to close database", "error", err)
	}
}
