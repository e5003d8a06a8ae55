package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/baharkarakas/placeholder-api/internal/models"
	repo "github.com/baharkarakas/placeholder-api/internal/repository"
)

type postsRepo struct{ pool *pgxpool.Pool }

func (r *postsRepo) Create(ctx context.Context, p models.NewPost) (models.Post, error) {
	var id int64
	err := r.pool.QueryRow(ctx,
		`INSERT INTO posts (userId, title, body) VALUES ($1, $2, $3) RETURNING id`,
		p.UserID, p.Title, p.Body,
	).Scan(&id)
	if err != nil {
		return models.Post{}, classify("create post", err)
	}
	return r.GetByID(ctx, id)
}

func (r *postsRepo) GetByID(ctx context.Context, id int64) (models.Post, error) {
	p, err := repo.ScanPost(r.pool.QueryRow(ctx,
		`SELECT `+repo.PostWithUserColumns+` FROM `+repo.PostsJoinUsers+` WHERE p.id = $1`, id))
	return p, classify("get post", err)
}

func (r *postsRepo) List(ctx context.Context, page models.Page) ([]models.Post, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+repo.PostWithUserColumns+` FROM `+repo.PostsJoinUsers+` ORDER BY p.id LIMIT $1 OFFSET $2`,
		page.Limit, page.Offset())
	if err != nil {
		return nil, classify("list posts", err)
	}
	defer rows.Close()

	out := make([]models.Post, 0, page.Capacity())
	for rows.Next() {
		p, err := repo.ScanPost(rows)
		if err != nil {
			return nil, classify("scan post", err)
		}
		out = append(out, p)
	}
	return out, classify("list posts", rows.Err())
}

func (r *postsRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM posts WHERE id = $1)`, id).Scan(&exists)
	return exists, classify("post exists", err)
}

func (r *postsRepo) Update(ctx context.Context, id int64, p models.PostPatch) (models.Post, error) {
	if as := repo.PostAssignments(p); len(as) > 0 {
		set, args := repo.SetClause(as, placeholder)
		args = append(args, id)
		q := `UPDATE posts SET ` + set + ` WHERE id = ` + placeholder(len(args))
		if _, err := r.pool.Exec(ctx, q, args...); err != nil {
			return models.Post{}, classify("update post", err)
		}
	}
	return r.GetByID(ctx, id)
}

func (r *postsRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	return classify("delete post", err)
}

func (r *postsRepo) DeleteByUser(ctx context.Context, userID int64) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE userId = $1`, userID)
	if err != nil {
		return 0, classify("delete posts of user", err)
	}
	return tag.RowsAffected(), nil
}
