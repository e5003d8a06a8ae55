// Package sqlite implements the repositories on a single SQLite file.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	repo "github.com/baharkarakas/placeholder-api/internal/repository"
)

func NewRepositories(db *sql.DB) repo.Repositories {
	return repo.Repositories{
		Users: &usersRepo{db},
		Posts: &postsRepo{db},
	}
}

func placeholder(int) string { return "?" }

// classify maps driver errors onto the repository sentinels, keeping the
// driver message for logs.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return repo.ErrNotFound
	}
	var se *sqlite.Error
	if errors.As(err, &se) {
		switch se.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return fmt.Errorf("%s: %w: %v", op, repo.ErrDuplicate, err)
		case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
			return fmt.Errorf("%s: %w: %v", op, repo.ErrMissingReference, err)
		}
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return fmt.Errorf("%s: %w: %v", op, repo.ErrDuplicate, err)
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return fmt.Errorf("%s: %w: %v", op, repo.ErrMissingReference, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
