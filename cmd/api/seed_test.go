package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestSeedCommand(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("BCRYPT_COST", "4")
	t.Setenv("LOG_LEVEL", "error")
	db := filepath.Join(t.TempDir(), "cli.sqlite")

	out := runCLI(t, "seed", "--db", db, "--count", "3")
	assert.Equal(t, "users: 3, posts: 3, failures: 0\n", out)

	out = runCLI(t, "seed", "--db", db, "--count", "3")
	assert.Contains(t, out, "already has users")
}
