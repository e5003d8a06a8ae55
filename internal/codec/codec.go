// Package codec converts between stored rows and the API representation.
// Address and company live in the store as JSON text; they are decoded here
// and nowhere else.
package codec

import (
	"encoding/json"
	"fmt"

	"github.com/baharkarakas/placeholder-api/internal/models"
)

// UserRow mirrors the users table.
type UserRow struct {
	ID       int64
	Name     string
	Username string
	Email    string
	Password string
	Address  string
	Phone    string
	Website  string
	Company  string
}

// PostRow mirrors the posts table.
type PostRow struct {
	ID     int64
	UserID int64
	Title  string
	Body   string
}

// ToAPIUser decodes the nested blobs and drops the password. A nil row gives
// a nil user.
func ToAPIUser(row *UserRow) (*models.User, error) {
	if row == nil {
		return nil, nil
	}
	u := &models.User{
		ID:       row.ID,
		Name:     row.Name,
		Username: row.Username,
		Email:    row.Email,
		Phone:    row.Phone,
		Website:  row.Website,
	}
	if err := decodeBlob(row.Address, &u.Address); err != nil {
		return nil, fmt.Errorf("decode address of user %d: %w", row.ID, err)
	}
	if err := decodeBlob(row.Company, &u.Company); err != nil {
		return nil, fmt.Errorf("decode company of user %d: %w", row.ID, err)
	}
	return u, nil
}

// ToAPIPost attaches the owning user to the post scalars.
func ToAPIPost(row PostRow, owner *UserRow) (*models.Post, error) {
	u, err := ToAPIUser(owner)
	if err != nil {
		return nil, err
	}
	return &models.Post{
		ID:     row.ID,
		UserID: row.UserID,
		Title:  row.Title,
		Body:   row.Body,
		User:   u,
	}, nil
}

func EncodeAddress(a models.Address) (string, error) {
	b, err := json.Marshal(a)
	if err != nil {
		return "", fmt.Errorf("encode address: %w", err)
	}
	return string(b), nil
}

func EncodeCompany(c models.Company) (string, error) {
	b, err := json.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("encode company: %w", err)
	}
	return string(b), nil
}

func decodeBlob(blob string, v any) error {
	if blob == "" {
		return nil
	}
	return json.Unmarshal([]byte(blob), v)
}
