package store

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baharkarakas/placeholder-api/internal/config"
	"github.com/baharkarakas/placeholder-api/internal/models"
)

func TestOpen_SQLiteByDefault(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "store.sqlite")
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	s, err := Open(ctx, config.Config{DBFile: path}, log)
	require.NoError(t, err)
	assert.Equal(t, "sqlite", s.Backend)

	_, err = s.Repos.Users.Create(ctx, models.NewUser{Name: "A", Username: "a", Email: "a@x.io", PasswordHash: "h"})
	require.NoError(t, err)
	s.Close()

	// reopening keeps the data and does not fail on existing tables
	s, err = Open(ctx, config.Config{DBFile: path}, log)
	require.NoError(t, err)
	defer s.Close()
	n, err := s.Repos.Users.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestOpen_BadPostgresURL(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	_, err := Open(context.Background(), config.Config{DatabaseURL: "://not a url"}, log)
	assert.Error(t, err)
}
