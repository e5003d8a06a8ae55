package repository

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baharkarakas/placeholder-api/internal/models"
)

func ptr[T any](v T) *T { return &v }

func TestUserAssignments_FixedOrder(t *testing.T) {
	p := models.UserPatch{
		Company: &models.Company{Name: ptr("Acme")},
		Website: ptr("acme.io"),
		Email:   ptr("a@acme.io"),
		Name:    ptr("Ann"),
	}
	as, err := UserAssignments(p)
	require.NoError(t, err)

	cols := make([]string, 0, len(as))
	for _, a := range as {
		cols = append(cols, a.Column)
	}
	assert.Equal(t, []string{"name", "email", "website", "company"}, cols)
	assert.Equal(t, `{"name":"Acme"}`, as[3].Value)
}

func TestUserAssignments_Empty(t *testing.T) {
	as, err := UserAssignments(models.UserPatch{})
	require.NoError(t, err)
	assert.Empty(t, as)
}

func TestPostAssignments_FixedOrder(t *testing.T) {
	as := PostAssignments(models.PostPatch{UserID: ptr(int64(4)), Title: ptr("hi")})
	require.Len(t, as, 2)
	assert.Equal(t, "title", as[0].Column)
	assert.Equal(t, "userId", as[1].Column)
	assert.Equal(t, int64(4), as[1].Value)
}

func TestSetClause_Placeholders(t *testing.T) {
	as := []Assignment{{"title", "x"}, {"body", "y"}}

	set, args := SetClause(as, func(int) string { return "?" })
	assert.Equal(t, "title = ?, body = ?", set)
	assert.Equal(t, []any{"x", "y"}, args)

	set, _ = SetClause(as, func(n int) string { return "$" + strconv.Itoa(n) })
	assert.Equal(t, "title = $1, body = $2", set)
}
