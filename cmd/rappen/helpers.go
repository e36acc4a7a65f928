package main

import (
	"context"
	"fmt"

	"github.com/rappen-dev/rappen/internal/config"
	"github.com/rappen-dev/rappen/internal/rules"
	"github.com/rappen-dev/rappen/internal/storage"
	"github.com/spf13/viper"
)

// initStore opens the configured database and runs migrations.
func initStore(ctx context.Context) (*storage.SQLiteStore, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDBPath()
	}
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStore(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

func newCategorizer() *rules.Categorizer {
	return rules.NewCategorizer(rules.DefaultRules())
}
