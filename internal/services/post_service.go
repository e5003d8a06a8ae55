package services

import (
	"context"
	"errors"

	"github.com/baharkarakas/placeholder-api/internal/metrics"
	"github.com/baharkarakas/placeholder-api/internal/models"
	repo "github.com/baharkarakas/placeholder-api/internal/repository"
)

type PostService struct {
	posts repo.Posts
	users repo.Users
}

func NewPostService(posts repo.Posts, users repo.Users) *PostService {
	return &PostService{posts: posts, users: users}
}

func (s *PostService) List(ctx context.Context, page models.Page) ([]models.Post, error) {
	return s.posts.List(ctx, page)
}

func (s *PostService) Get(ctx context.Context, id int64) (models.Post, error) {
	p, err := s.posts.GetByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return models.Post{}, ErrPostNotFound
	}
	return p, err
}

// Create checks the owner exists, inserts, and returns the post re-read with
// its user. If the owner disappears between the check and the insert the
// store's foreign key rejects the row and the caller still sees
// ErrOwnerNotFound.
func (s *PostService) Create(ctx context.Context, in models.NewPost) (models.Post, error) {
	ok, err := s.users.Exists(ctx, in.UserID)
	if err != nil {
		return models.Post{}, err
	}
	if !ok {
		return models.Post{}, ErrOwnerNotFound
	}
	p, err := s.posts.Create(ctx, in)
	if errors.Is(err, repo.ErrMissingReference) {
		return models.Post{}, ErrOwnerNotFound
	}
	if err != nil {
		return models.Post{}, err
	}
	metrics.RecordsCreated.WithLabelValues("post").Inc()
	return p, nil
}

func (s *PostService) Update(ctx context.Context, id int64, p models.PostPatch) (models.Post, error) {
	ok, err := s.posts.Exists(ctx, id)
	if err != nil {
		return models.Post{}, err
	}
	if !ok {
		return models.Post{}, ErrPostNotFound
	}
	if p.UserID != nil {
		ok, err := s.users.Exists(ctx, *p.UserID)
		if err != nil {
			return models.Post{}, err
		}
		if !ok {
			return models.Post{}, ErrOwnerNotFound
		}
	}
	if p.Empty() {
		return models.Post{}, ErrNoFields
	}

	post, err := s.posts.Update(ctx, id, p)
	switch {
	case errors.Is(err, repo.ErrMissingReference):
		return models.Post{}, ErrOwnerNotFound
	case errors.Is(err, repo.ErrNotFound):
		return models.Post{}, ErrPostNotFound
	}
	return post, err
}

func (s *PostService) Delete(ctx context.Context, id int64) error {
	ok, err := s.posts.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrPostNotFound
	}
	if err := s.posts.Delete(ctx, id); err != nil {
		return err
	}
	metrics.RecordsDeleted.WithLabelValues("post").Inc()
	return nil
}
