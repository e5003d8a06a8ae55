package seed

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"sync/atomic"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/baharkarakas/placeholder-api/internal/db"
	"github.com/baharkarakas/placeholder-api/internal/models"
	repo "github.com/baharkarakas/placeholder-api/internal/repository"
	sqliterepo "github.com/baharkarakas/placeholder-api/internal/repository/sqlite"
)

func newRepos(t *testing.T) repo.Repositories {
	t.Helper()
	ctx := context.Background()
	conn, err := db.OpenSQLite(ctx, filepath.Join(t.TempDir(), "seed.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	require.NoError(t, db.EnsureSQLiteSchema(ctx, conn))
	return sqliterepo.NewRepositories(conn)
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRun_DefaultCountOnePostEach(t *testing.T) {
	repos := newRepos(t)
	ctx := context.Background()

	res := New(repos, Options{HashCost: bcrypt.MinCost, Seed: 42}, quietLogger()).Run(ctx)
	assert.Equal(t, Result{UsersCreated: 20, PostsCreated: 20}, res)

	n, err := repos.Users.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 20, n)

	users, err := repos.Users.List(ctx, models.Page{Page: 1, Limit: 100})
	require.NoError(t, err)
	posts, err := repos.Posts.List(ctx, models.Page{Page: 1, Limit: 100})
	require.NoError(t, err)
	require.Len(t, posts, 20)

	perUser := map[int64]int{}
	for _, p := range posts {
		perUser[p.UserID]++
		assert.LessOrEqual(t, utf8.RuneCountInString(p.Title), 50)
		assert.LessOrEqual(t, utf8.RuneCountInString(p.Body), 300)
	}
	for _, u := range users {
		assert.Equal(t, 1, perUser[u.ID], "user %d", u.ID)
		assert.LessOrEqual(t, utf8.RuneCountInString(u.Name), 30)
		assert.LessOrEqual(t, utf8.RuneCountInString(u.Website), 30)
		assert.LessOrEqual(t, utf8.RuneCountInString(u.Phone), 20)
		require.NotNil(t, u.Address.Geo)
	}
}

func TestRun_SeededUsersCanLogIn(t *testing.T) {
	repos := newRepos(t)
	ctx := context.Background()
	New(repos, Options{Count: 2, HashCost: bcrypt.MinCost, Seed: 7}, quietLogger()).Run(ctx)

	users, err := repos.Users.List(ctx, models.Page{Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, users, 2)

	cred, err := repos.Users.GetCredentials(ctx, users[0].Email)
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(Password)))
}

// flakyUsers fails every other Create.
type flakyUsers struct {
	repo.Users
	calls atomic.Int64
}

func (f *flakyUsers) Create(ctx context.Context, u models.NewUser) (models.User, error) {
	if f.calls.Add(1)%2 == 0 {
		return models.User{}, errors.New("disk full")
	}
	return f.Users.Create(ctx, u)
}

func TestRun_FailuresDoNotAbortBatch(t *testing.T) {
	store := newRepos(t)
	repos := repo.Repositories{Users: &flakyUsers{Users: store.Users}, Posts: store.Posts}

	res := New(repos, Options{Count: 6, HashCost: bcrypt.MinCost, Seed: 1}, quietLogger()).Run(context.Background())
	assert.Equal(t, 3, res.UsersCreated)
	assert.Equal(t, 3, res.PostsCreated)
	assert.Equal(t, 3, res.Failures)
}

func TestEnsureSeeded_OnlyWhenEmpty(t *testing.T) {
	repos := newRepos(t)
	ctx := context.Background()
	opts := Options{Count: 3, HashCost: bcrypt.MinCost}

	ran, res, err := EnsureSeeded(ctx, repos, opts, quietLogger())
	require.NoError(t, err)
	assert.True(t, ran)
	assert.Equal(t, 3, res.UsersCreated)

	ran, _, err = EnsureSeeded(ctx, repos, opts, quietLogger())
	require.NoError(t, err)
	assert.False(t, ran)

	n, err := repos.Users.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestGenerate_UniqueLogins(t *testing.T) {
	g := New(repo.Repositories{}, Options{Count: 200, Seed: 3}, quietLogger())
	users := map[string]bool{}
	emails := map[string]bool{}
	for _, r := range g.generate() {
		assert.False(t, users[r.user.Username], r.user.Username)
		assert.False(t, emails[r.user.Email], r.user.Email)
		users[r.user.Username] = true
		emails[r.user.Email] = true
		assert.LessOrEqual(t, utf8.RuneCountInString(r.user.Username), 30)
		assert.LessOrEqual(t, utf8.RuneCountInString(r.user.Email), 50)
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab", truncate("abc", 2))
	assert.Equal(t, "çğ", truncate("çğü", 2))
}
