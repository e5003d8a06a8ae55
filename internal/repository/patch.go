package repository

import (
	"strings"

	"github.com/baharkarakas/placeholder-api/internal/codec"
	"github.com/baharkarakas/placeholder-api/internal/models"
)

// Assignment is one "column = value" pair of an UPDATE.
type Assignment struct {
	Column string
	Value  any
}

// UserAssignments lists the supplied fields in the fixed column order
// name, username, email, address, phone, website, company.
func UserAssignments(p models.UserPatch) ([]Assignment, error) {
	var out []Assignment
	if p.Name != nil {
		out = append(out, Assignment{"name", *p.Name})
	}
	if p.Username != nil {
		out = append(out, Assignment{"username", *p.Username})
	}
	if p.Email != nil {
		out = append(out, Assignment{"email", *p.Email})
	}
	if p.Address != nil {
		s, err := codec.EncodeAddress(*p.Address)
		if err != nil {
			return nil, err
		}
		out = append(out, Assignment{"address", s})
	}
	if p.Phone != nil {
		out = append(out, Assignment{"phone", *p.Phone})
	}
	if p.Website != nil {
		out = append(out, Assignment{"website", *p.Website})
	}
	if p.Company != nil {
		s, err := codec.EncodeCompany(*p.Company)
		if err != nil {
			return nil, err
		}
		out = append(out, Assignment{"company", s})
	}
	return out, nil
}

// PostAssignments lists the supplied fields in the order title, body, userId.
func PostAssignments(p models.PostPatch) []Assignment {
	var out []Assignment
	if p.Title != nil {
		out = append(out, Assignment{"title", *p.Title})
	}
	if p.Body != nil {
		out = append(out, Assignment{"body", *p.Body})
	}
	if p.UserID != nil {
		out = append(out, Assignment{"userId", *p.UserID})
	}
	return out
}

// SetClause renders assignments as "a = ?, b = ?" using placeholder(n) for
// the n-th (1-based) parameter.
func SetClause(as []Assignment, placeholder func(n int) string) (string, []any) {
	parts := make([]string, 0, len(as))
	args := make([]any, 0, len(as))
	for i, a := range as {
		parts = append(parts, a.Column+" = "+placeholder(i+1))
		args = append(args, a.Value)
	}
	return strings.Join(parts, ", "), args
}
