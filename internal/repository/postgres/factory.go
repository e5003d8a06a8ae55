// Package postgres implements the repositories on a pgx connection pool.
package postgres

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	repo "github.com/baharkarakas/placeholder-api/internal/repository"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

func NewRepositories(pool *pgxpool.Pool) repo.Repositories {
	return repo.Repositories{
		Users: &usersRepo{pool},
		Posts: &postsRepo{pool},
	}
}

func placeholder(n int) string { return "$" + strconv.Itoa(n) }

func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return repo.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation:
			return fmt.Errorf("%s: %w: %v", op, repo.ErrDuplicate, err)
		case foreignKeyViolation:
			return fmt.Errorf("%s: %w: %v", op, repo.ErrMissingReference, err)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
