package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/baharkarakas/placeholder-api/internal/codec"
	"github.com/baharkarakas/placeholder-api/internal/models"
	repo "github.com/baharkarakas/placeholder-api/internal/repository"
)

type usersRepo struct{ pool *pgxpool.Pool }

func (r *usersRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&n)
	return n, classify("count users", err)
}

func (r *usersRepo) Create(ctx context.Context, u models.NewUser) (models.User, error) {
	address, err := codec.EncodeAddress(u.Address)
	if err != nil {
		return models.User{}, err
	}
	company, err := codec.EncodeCompany(u.Company)
	if err != nil {
		return models.User{}, err
	}
	created, err := repo.ScanUser(r.pool.QueryRow(ctx,
		`INSERT INTO users (name, username, email, password, address, phone, website, company)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING `+repo.UserColumns,
		u.Name, u.Username, u.Email, u.PasswordHash, address, u.Phone, u.Website, company,
	))
	return created, classify("create user", err)
}

func (r *usersRepo) GetByID(ctx context.Context, id int64) (models.User, error) {
	u, err := repo.ScanUser(r.pool.QueryRow(ctx,
		`SELECT `+repo.UserColumns+` FROM users WHERE id = $1`, id))
	return u, classify("get user", err)
}

func (r *usersRepo) GetCredentials(ctx context.Context, email string) (models.Credentials, error) {
	row, err := repo.ScanUserRow(r.pool.QueryRow(ctx,
		`SELECT `+repo.UserColumns+` FROM users WHERE email = $1`, email))
	if err != nil {
		return models.Credentials{}, classify("get user by email", err)
	}
	u, err := codec.ToAPIUser(&row)
	if err != nil {
		return models.Credentials{}, err
	}
	return models.Credentials{User: *u, PasswordHash: row.Password}, nil
}

func (r *usersRepo) List(ctx context.Context, page models.Page) ([]models.User, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+repo.UserColumns+` FROM users ORDER BY id LIMIT $1 OFFSET $2`,
		page.Limit, page.Offset())
	if err != nil {
		return nil, classify("list users", err)
	}
	defer rows.Close()

	out := make([]models.User, 0, page.Capacity())
	for rows.Next() {
		u, err := repo.ScanUser(rows)
		if err != nil {
			return nil, classify("scan user", err)
		}
		out = append(out, u)
	}
	return out, classify("list users", rows.Err())
}

func (r *usersRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, id).Scan(&exists)
	return exists, classify("user exists", err)
}

func (r *usersRepo) Update(ctx context.Context, id int64, p models.UserPatch) (models.User, error) {
	as, err := repo.UserAssignments(p)
	if err != nil {
		return models.User{}, err
	}
	if len(as) > 0 {
		set, args := repo.SetClause(as, placeholder)
		args = append(args, id)
		q := `UPDATE users SET ` + set + ` WHERE id = ` + placeholder(len(args))
		if _, err := r.pool.Exec(ctx, q, args...); err != nil {
			return models.User{}, classify("update user", err)
		}
	}
	return r.GetByID(ctx, id)
}

func (r *usersRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	return classify("delete user", err)
}
