package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/baharkarakas/placeholder-api/internal/auth"
	"github.com/baharkarakas/placeholder-api/internal/metrics"
	"github.com/baharkarakas/placeholder-api/internal/models"
	repo "github.com/baharkarakas/placeholder-api/internal/repository"
)

type UserService struct {
	users    repo.Users
	posts    repo.Posts
	hashCost int
}

func NewUserService(users repo.Users, posts repo.Posts, hashCost int) *UserService {
	return &UserService{users: users, posts: posts, hashCost: hashCost}
}

// CreateUserInput is a validated registration or creation request.
type CreateUserInput struct {
	Name     string
	Username string
	Email    string
	Password string
	Address  *models.Address
	Phone    string
	Website  string
	Company  *models.Company
}

// Login returns the user whose email and password match. Unknown email and
// wrong password both give ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, email, password string) (models.User, error) {
	cred, err := s.users.GetCredentials(ctx, email)
	if errors.Is(err, repo.ErrNotFound) {
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.User{}, err
	}
	if err := auth.VerifyPassword(password, cred.PasswordHash); err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return cred.User, nil
}

// Create hashes the password and inserts the user. Missing address or
// company are stored as empty objects.
func (s *UserService) Create(ctx context.Context, in CreateUserInput) (models.User, error) {
	hash, err := auth.HashPassword(in.Password, s.hashCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}
	nu := models.NewUser{
		Name:         in.Name,
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		Phone:        in.Phone,
		Website:      in.Website,
	}
	if in.Address != nil {
		nu.Address = *in.Address
	}
	if in.Company != nil {
		nu.Company = *in.Company
	}

	u, err := s.users.Create(ctx, nu)
	if errors.Is(err, repo.ErrDuplicate) {
		return models.User{}, ErrDuplicateUser
	}
	if err != nil {
		return models.User{}, err
	}
	metrics.RecordsCreated.WithLabelValues("user").Inc()
	return u, nil
}

func (s *UserService) List(ctx context.Context, page models.Page) ([]models.User, error) {
	return s.users.List(ctx, page)
}

func (s *UserService) Get(ctx context.Context, id int64) (models.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return models.User{}, ErrUserNotFound
	}
	return u, err
}

// Update applies the supplied fields. The existence check comes before the
// empty-patch check, so an unknown id is a 404 even for an empty body.
func (s *UserService) Update(ctx context.Context, id int64, p models.UserPatch) (models.User, error) {
	ok, err := s.users.Exists(ctx, id)
	if err != nil {
		return models.User{}, err
	}
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	if p.Empty() {
		return models.User{}, ErrNoFields
	}

	u, err := s.users.Update(ctx, id, p)
	switch {
	case errors.Is(err, repo.ErrDuplicate):
		return models.User{}, ErrDuplicateUser
	case errors.Is(err, repo.ErrNotFound):
		return models.User{}, ErrUserNotFound
	}
	return u, err
}

// Delete removes the user's posts and then the user. The two statements are
// not wrapped in a transaction.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	ok, err := s.users.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrUserNotFound
	}
	n, err := s.posts.DeleteByUser(ctx, id)
	if err != nil {
		return err
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	metrics.RecordsDeleted.WithLabelValues("post").Add(float64(n))
	metrics.RecordsDeleted.WithLabelValues("user").Inc()
	return nil
}
