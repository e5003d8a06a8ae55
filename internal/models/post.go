package models

import "math"

type Post struct {
	ID     int64  `json:"id"`
	UserID int64  `json:"userId"`
	Title  string `json:"title"`
	Body   string `json:"body"`
	User   *User  `json:"user"`
}

type NewPost struct {
	UserID int64
	Title  string
	Body   string
}

type PostPatch struct {
	Title  *string `json:"title"`
	Body   *string `json:"body"`
	UserID *int64  `json:"userId"`
}

func (p PostPatch) Empty() bool {
	return p.Title == nil && p.Body == nil && p.UserID == nil
}

// Page is a LIMIT/OFFSET window over an id-ordered listing.
type Page struct {
	Page  int
	Limit int
}

// Offset is (Page-1)*Limit, saturating at math.MaxInt so a page past the
// end of the data is empty rather than wrapping around.
func (p Page) Offset() int {
	if p.Page <= 1 || p.Limit <= 0 {
		return 0
	}
	if p.Page-1 > math.MaxInt/p.Limit {
		return math.MaxInt
	}
	return (p.Page - 1) * p.Limit
}

// Capacity is a preallocation hint for one page of results.
func (p Page) Capacity() int {
	return min(max(p.Limit, 0), 100)
}
