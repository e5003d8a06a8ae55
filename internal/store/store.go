// Package store opens the configured backend and hands out its repositories.
package store

import (
	"context"
	"log/slog"

	"github.com/baharkarakas/placeholder-api/internal/config"
	"github.com/baharkarakas/placeholder-api/internal/db"
	repo "github.com/baharkarakas/placeholder-api/internal/repository"
	"github.com/baharkarakas/placeholder-api/internal/repository/postgres"
	"github.com/baharkarakas/placeholder-api/internal/repository/sqlite"
)

type Store struct {
	Repos   repo.Repositories
	Backend string
	close   func()
}

// Open connects to Postgres when DatabaseURL is set and to the SQLite file
// otherwise, and makes sure the tables exist.
func Open(ctx context.Context, cfg config.Config, log *slog.Logger) (*Store, error) {
	if cfg.Backend() == "postgres" {
		pool, err := db.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if err := db.EnsurePostgresSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		log.Info("database ready", "backend", "postgres")
		return &Store{Repos: postgres.NewRepositories(pool), Backend: "postgres", close: pool.Close}, nil
	}

	conn, err := db.OpenSQLite(ctx, cfg.DBFile)
	if err != nil {
		return nil, err
	}
	if err := db.EnsureSQLiteSchema(ctx, conn); err != nil {
		_ = conn.Close()
		return nil, err
	}
	log.Info("database ready", "backend", "sqlite", "file", cfg.DBFile)
	return &Store{
		Repos:   sqlite.NewRepositories(conn),
		Backend: "sqlite",
		close: func() {
			if err := conn.Close(); err != nil {
				log.Error("close database", "err", err)
			}
		},
	}, nil
}

func (s *Store) Close() { s.close() }
