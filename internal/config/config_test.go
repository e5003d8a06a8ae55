package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"APP_ENV", "PORT", "DB_FILE", "DATABASE_URL", "BCRYPT_COST", "SEED_USERS", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}
	cfg := Load()

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "3080", cfg.Port)
	assert.Equal(t, "./database.sqlite", cfg.DBFile)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, 20, cfg.SeedUsers)
	assert.Equal(t, "sqlite", cfg.Backend())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://localhost/placeholder")
	t.Setenv("SEED_USERS", "5")
	t.Setenv("BCRYPT_COST", "not-a-number")

	cfg := Load()
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "postgres", cfg.Backend())
	assert.Equal(t, 5, cfg.SeedUsers)
	assert.Equal(t, 10, cfg.BcryptCost)
}
