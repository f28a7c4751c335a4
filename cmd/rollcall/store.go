package main

import (
	"github.com/alfredjeanlab/rollcall/internal/config"
	"github.com/alfredjeanlab/rollcall/internal/store"
	"github.com/alfredjeanlab/rollcall/internal/store/postgres"
	"github.com/alfredjeanlab/rollcall/internal/store/snapshot"
)

// openStore selects the roster store: Postgres when a database URL is
// configured, the local snapshot file otherwise.
func openStore(cfg *config.Config) (store.RosterStore, error) {
	if cfg.DatabaseURL != "" {
		return postgres.New(cfg.DatabaseURL)
	}
	return snapshot.New(cfg.DataFile), nil
}
