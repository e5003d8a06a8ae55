package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPage_Offset(t *testing.T) {
	tests := []struct {
		name string
		page Page
		want int
	}{
		{"first page", Page{Page: 1, Limit: 10}, 0},
		{"third page", Page{Page: 3, Limit: 10}, 20},
		{"overflowing page saturates", Page{Page: math.MaxInt, Limit: 10}, math.MaxInt},
		{"just past the edge saturates", Page{Page: math.MaxInt/10 + 2, Limit: 10}, math.MaxInt},
		{"huge limit", Page{Page: 2, Limit: math.MaxInt}, math.MaxInt},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.page.Offset()
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 0)
		})
	}
}

func TestPage_Capacity(t *testing.T) {
	assert.Equal(t, 10, Page{Limit: 10}.Capacity())
	assert.Equal(t, 100, Page{Limit: math.MaxInt}.Capacity())
}
