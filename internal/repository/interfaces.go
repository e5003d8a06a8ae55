package repository

import (
	"context"
	"errors"

	"github.com/baharkarakas/placeholder-api/internal/models"
)

var (
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is a unique constraint violation (email or username).
	ErrDuplicate = errors.New("duplicate value")
	// ErrMissingReference is a foreign key violation: the post's user is gone.
	ErrMissingReference = errors.New("referenced record missing")
)

type Users interface {
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, u models.NewUser) (models.User, error)
	GetByID(ctx context.Context, id int64) (models.User, error)
	GetCredentials(ctx context.Context, email string) (models.Credentials, error)
	List(ctx context.Context, page models.Page) ([]models.User, error)
	Exists(ctx context.Context, id int64) (bool, error)
	// Update applies the present fields of p and returns the re-read user.
	Update(ctx context.Context, id int64, p models.UserPatch) (models.User, error)
	Delete(ctx context.Context, id int64) error
}

type Posts interface {
	Create(ctx context.Context, p models.NewPost) (models.Post, error)
	GetByID(ctx context.Context, id int64) (models.Post, error)
	List(ctx context.Context, page models.Page) ([]models.Post, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Update(ctx context.Context, id int64, p models.PostPatch) (models.Post, error)
	Delete(ctx context.Context, id int64) error
	DeleteByUser(ctx context.Context, userID int64) (int64, error)
}

// Repositories bundles the repositories of one backend.
type Repositories struct {
	Users Users
	Posts Posts
}
