package repository

import (
	"github.com/baharkarakas/placeholder-api/internal/codec"
	"github.com/baharkarakas/placeholder-api/internal/models"
)

// Column lists shared by every backend. Both SQLite and Postgres accept them
// verbatim; only the placeholder syntax differs between the dialects.
const (
	UserColumns = `id, name, username, email, password, address, COALESCE(phone, ''), COALESCE(website, ''), company`

	PostWithUserColumns = `p.id, p.userId, p.title, p.body,
	u.id, u.name, u.username, u.email, u.address, COALESCE(u.phone, ''), COALESCE(u.website, ''), u.company`

	PostsJoinUsers = `posts p INNER JOIN users u ON p.userId = u.id`
)

// Scanner is satisfied by *sql.Row, *sql.Rows, pgx.Row and pgx.Rows.
type Scanner interface {
	Scan(dest ...any) error
}

func ScanUserRow(s Scanner) (codec.UserRow, error) {
	var r codec.UserRow
	err := s.Scan(&r.ID, &r.Name, &r.Username, &r.Email, &r.Password, &r.Address, &r.Phone, &r.Website, &r.Company)
	return r, err
}

// ScanUser reads a row selected with UserColumns.
func ScanUser(s Scanner) (models.User, error) {
	row, err := ScanUserRow(s)
	if err != nil {
		return models.User{}, err
	}
	u, err := codec.ToAPIUser(&row)
	if err != nil {
		return models.User{}, err
	}
	return *u, nil
}

// ScanPost reads a row selected with PostWithUserColumns.
func ScanPost(s Scanner) (models.Post, error) {
	var p codec.PostRow
	var u codec.UserRow
	err := s.Scan(&p.ID, &p.UserID, &p.Title, &p.Body,
		&u.ID, &u.Name, &u.Username, &u.Email, &u.Address, &u.Phone, &u.Website, &u.Company)
	if err != nil {
		return models.Post{}, err
	}
	post, err := codec.ToAPIPost(p, &u)
	if err != nil {
		return models.Post{}, err
	}
	return *post, nil
}
