package sqlite

import (
	"context"
	"database/sql"

	"github.com/baharkarakas/placeholder-api/internal/codec"
	"github.com/baharkarakas/placeholder-api/internal/models"
	repo "github.com/baharkarakas/placeholder-api/internal/repository"
)

type usersRepo struct{ db *sql.DB }

func (r *usersRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n)
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
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO users (name, username, email, password, address, phone, website, company)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		u.Name, u.Username, u.Email, u.PasswordHash, address, u.Phone, u.Website, company,
	)
	if err != nil {
		return models.User{}, classify("create user", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.User{}, classify("create user", err)
	}
	return r.GetByID(ctx, id)
}

func (r *usersRepo) GetByID(ctx context.Context, id int64) (models.User, error) {
	u, err := repo.ScanUser(r.db.QueryRowContext(ctx,
		`SELECT `+repo.UserColumns+` FROM users WHERE id = ?`, id))
	return u, classify("get user", err)
}

func (r *usersRepo) GetCredentials(ctx context.Context, email string) (models.Credentials, error) {
	row, err := repo.ScanUserRow(r.db.QueryRowContext(ctx,
		`SELECT `+repo.UserColumns+` FROM users WHERE email = ?`, email))
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
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+repo.UserColumns+` FROM users ORDER BY id LIMIT ? OFFSET ?`,
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
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE id = ?)`, id).Scan(&exists)
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
		if _, err := r.db.ExecContext(ctx, `UPDATE users SET `+set+` WHERE id = ?`, args...); err != nil {
			return models.User{}, classify("update user", err)
		}
	}
	return r.GetByID(ctx, id)
}

func (r *usersRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	return classify("delete user", err)
}
