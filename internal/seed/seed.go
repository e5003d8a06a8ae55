// Package seed fills an empty store with fake users, one post each.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync/atomic"
	"unicode/utf8"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/baharkarakas/placeholder-api/internal/auth"
	"github.com/baharkarakas/placeholder-api/internal/metrics"
	"github.com/baharkarakas/placeholder-api/internal/models"
	repo "github.com/baharkarakas/placeholder-api/internal/repository"
	"github.com/baharkarakas/placeholder-api/internal/worker"
)

// Password is the plain-text password of every seeded user.
const Password = "password"

const (
	DefaultCount   = 20
	DefaultWorkers = 4
)

type Options struct {
	Count    int
	Workers  int
	HashCost int
	// Seed fixes the fake data; 0 picks a random one.
	Seed int64
}

type Result struct {
	UsersCreated int
	PostsCreated int
	Failures     int
}

type Generator struct {
	repos repo.Repositories
	opts  Options
	log   *slog.Logger
}

func New(repos repo.Repositories, opts Options, log *slog.Logger) *Generator {
	if opts.Count <= 0 {
		opts.Count = DefaultCount
	}
	if opts.Workers <= 0 {
		opts.Workers = DefaultWorkers
	}
	if log == nil {
		log = slog.Default()
	}
	return &Generator{repos: repos, opts: opts, log: log}
}

type record struct {
	user  models.NewUser
	title string
	body  string
}

// Run inserts the users and their posts on a worker pool and returns once
// every job has finished. A failed insert is logged and counted; the rest of
// the batch carries on.
func (g *Generator) Run(ctx context.Context) Result {
	records := g.generate()

	var users, posts, failures atomic.Int64
	pool := worker.NewPool(g.opts.Workers)
	for _, rec := range records {
		rec := rec
		pool.Submit(func() {
			created, err := g.insert(ctx, rec)
			if created.users > 0 {
				users.Add(1)
			}
			if created.posts > 0 {
				posts.Add(1)
			}
			if err != nil {
				failures.Add(1)
				g.log.Warn("seed insert failed", "username", rec.user.Username, "err", err)
			}
		})
	}
	pool.Stop()

	res := Result{
		UsersCreated: int(users.Load()),
		PostsCreated: int(posts.Load()),
		Failures:     int(failures.Load()),
	}
	g.log.Info("seed finished",
		"users", res.UsersCreated, "posts", res.PostsCreated, "failures", res.Failures)
	return res
}

type created struct{ users, posts int }

func (g *Generator) insert(ctx context.Context, rec record) (created, error) {
	var c created
	hash, err := auth.HashPassword(Password, g.opts.HashCost)
	if err != nil {
		metrics.SeedInserts.WithLabelValues("user", "error").Inc()
		return c, fmt.Errorf("hash password: %w", err)
	}
	rec.user.PasswordHash = hash

	u, err := g.repos.Users.Create(ctx, rec.user)
	if err != nil {
		metrics.SeedInserts.WithLabelValues("user", "error").Inc()
		return c, err
	}
	c.users++
	metrics.SeedInserts.WithLabelValues("user", "ok").Inc()

	_, err = g.repos.Posts.Create(ctx, models.NewPost{UserID: u.ID, Title: rec.title, Body: rec.body})
	if err != nil {
		metrics.SeedInserts.WithLabelValues("post", "error").Inc()
		return c, err
	}
	c.posts++
	metrics.SeedInserts.WithLabelValues("post", "ok").Inc()
	return c, nil
}

// generate builds every record up front on one faker. Usernames and emails
// are kept unique within the batch so the unique constraints never fire.
func (g *Generator) generate() []record {
	f := gofakeit.New(g.opts.Seed)
	seenUser := map[string]bool{}
	seenEmail := map[string]bool{}

	out := make([]record, 0, g.opts.Count)
	for i := 0; i < g.opts.Count; i++ {
		username := unique(seenUser, truncate(f.Username(), 30), 30, i)
		email := unique(seenEmail, truncate(f.Email(), 50), 50, i)

		out = append(out, record{
			user: models.NewUser{
				Name:     truncate(f.Name(), 30),
				Username: username,
				Email:    email,
				Address: models.Address{
					Street:  models.Ptr(f.Street()),
					Suite:   models.Ptr(fmt.Sprintf("Apt. %d", f.Number(100, 999))),
					City:    models.Ptr(f.City()),
					Zipcode: models.Ptr(f.Zip()),
					Geo: &models.Geo{
						Lat: models.Ptr(models.Degrees(f.Latitude())),
						Lng: models.Ptr(models.Degrees(f.Longitude())),
					},
				},
				Phone:   truncate(f.Phone(), 20),
				Website: truncate(f.DomainName(), 30),
				Company: models.Company{
					Name:        models.Ptr(f.Company()),
					CatchPhrase: models.Ptr(f.HackerPhrase()),
					BS:          models.Ptr(f.BS()),
				},
			},
			title: truncate(f.Sentence(f.Number(3, 7)), 50),
			body:  truncate(f.Paragraph(1, 3, 12, " "), 300),
		})
	}
	return out
}

// unique returns v, or v with the index appended when it was already used.
func unique(seen map[string]bool, v string, max, i int) string {
	if seen[v] {
		suffix := strconv.Itoa(i)
		v = truncate(v, max-len(suffix)) + suffix
	}
	seen[v] = true
	return v
}

func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	r := []rune(s)
	return string(r[:max])
}

// EnsureSeeded runs the generator when the store has no users. It reports
// whether seeding ran.
func EnsureSeeded(ctx context.Context, repos repo.Repositories, opts Options, log *slog.Logger) (bool, Result, error) {
	n, err := repos.Users.Count(ctx)
	if err != nil {
		return false, Result{}, fmt.Errorf("count users: %w", err)
	}
	if n > 0 {
		return false, Result{}, nil
	}
	return true, New(repos, opts, log).Run(ctx), nil
}
