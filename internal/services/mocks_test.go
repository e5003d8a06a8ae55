package services

import (
	"context"
	"errors"

	"github.com/baharkarakas/placeholder-api/internal/models"
)

// =============================================================================
// Mock repositories
// =============================================================================

type mockUsers struct {
	countFunc          func(ctx context.Context) (int, error)
	createFunc         func(ctx context.Context, u models.NewUser) (models.User, error)
	getByIDFunc        func(ctx context.Context, id int64) (models.User, error)
	getCredentialsFunc func(ctx context.Context, email string) (models.Credentials, error)
	listFunc           func(ctx context.Context, page models.Page) ([]models.User, error)
	existsFunc         func(ctx context.Context, id int64) (bool, error)
	updateFunc         func(ctx context.Context, id int64, p models.UserPatch) (models.User, error)
	deleteFunc         func(ctx context.Context, id int64) error
}

var errNotImplemented = errors.New("not implemented")

func (m *mockUsers) Count(ctx context.Context) (int, error) {
	if m.countFunc != nil {
		return m.countFunc(ctx)
	}
	return 0, errNotImplemented
}

func (m *mockUsers) Create(ctx context.Context, u models.NewUser) (models.User, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, u)
	}
	return models.User{}, errNotImplemented
}

func (m *mockUsers) GetByID(ctx context.Context, id int64) (models.User, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return models.User{}, errNotImplemented
}

func (m *mockUsers) GetCredentials(ctx context.Context, email string) (models.Credentials, error) {
	if m.getCredentialsFunc != nil {
		return m.getCredentialsFunc(ctx, email)
	}
	return models.Credentials{}, errNotImplemented
}

func (m *mockUsers) List(ctx context.Context, page models.Page) ([]models.User, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, page)
	}
	return nil, errNotImplemented
}

func (m *mockUsers) Exists(ctx context.Context, id int64) (bool, error) {
	if m.existsFunc != nil {
		return m.existsFunc(ctx, id)
	}
	return false, errNotImplemented
}

func (m *mockUsers) Update(ctx context.Context, id int64, p models.UserPatch) (models.User, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, p)
	}
	return models.User{}, errNotImplemented
}

func (m *mockUsers) Delete(ctx context.Context, id int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return errNotImplemented
}

type mockPosts struct {
	createFunc       func(ctx context.Context, p models.NewPost) (models.Post, error)
	getByIDFunc      func(ctx context.Context, id int64) (models.Post, error)
	listFunc         func(ctx context.Context, page models.Page) ([]models.Post, error)
	existsFunc       func(ctx context.Context, id int64) (bool, error)
	updateFunc       func(ctx context.Context, id int64, p models.PostPatch) (models.Post, error)
	deleteFunc       func(ctx context.Context, id int64) error
	deleteByUserFunc func(ctx context.Context, userID int64) (int64, error)
}

func (m *mockPosts) Create(ctx context.Context, p models.NewPost) (models.Post, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, p)
	}
	return models.Post{}, errNotImplemented
}

func (m *mockPosts) GetByID(ctx context.Context, id int64) (models.Post, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return models.Post{}, errNotImplemented
}

func (m *mockPosts) List(ctx context.Context, page models.Page) ([]models.Post, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, page)
	}
	return nil, errNotImplemented
}

func (m *mockPosts) Exists(ctx context.Context, id int64) (bool, error) {
	if m.existsFunc != nil {
		return m.existsFunc(ctx, id)
	}
	return false, errNotImplemented
}

func (m *mockPosts) Update(ctx context.Context, id int64, p models.PostPatch) (models.Post, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, p)
	}
	return models.Post{}, errNotImplemented
}

func (m *mockPosts) Delete(ctx context.Context, id int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return errNotImplemented
}

func (m *mockPosts) DeleteByUser(ctx context.Context, userID int64) (int64, error) {
	if m.deleteByUserFunc != nil {
		return m.deleteByUserFunc(ctx, userID)
	}
	return 0, errNotImplemented
}

func exists(ids ...int64) func(context.Context, int64) (bool, error) {
	return func(_ context.Context, id int64) (bool, error) {
		for _, v := range ids {
			if v == id {
				return true, nil
			}
		}
		return false, nil
	}
}

func ptr[T any](v T) *T { return &v }
