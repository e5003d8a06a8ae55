// Package validate applies (field, max length, required) rules to request input.
package validate

import (
	"fmt"
	"unicode/utf8"
)

// Rule is one field constraint. Max is measured in characters.
type Rule struct {
	Field    string
	Max      int
	Required bool
}

// Value is a field value as received; an empty Text counts as absent.
type Value struct {
	Field string
	Text  string
}

// Error is a client input error; its message is safe to return to callers.
type Error struct {
	Field string
	Msg   string
}

func (e *Error) Error() string { return e.Msg }

// UserRules is shared by registration, user creation and user update.
var UserRules = []Rule{
	{Field: "name", Max: 30, Required: true},
	{Field: "username", Max: 30, Required: true},
	{Field: "email", Max: 50, Required: true},
	{Field: "phone", Max: 20},
	{Field: "website", Max: 30},
}

// Check evaluates required-ness for every rule first, then length, both in
// rule order, and returns the first failure. With optional set, required
// flags are ignored.
func Check(rules []Rule, values []Value, optional bool) error {
	byField := make(map[string]Value, len(values))
	for _, v := range values {
		byField[v.Field] = v
	}
	if !optional {
		for _, r := range rules {
			if !r.Required {
				continue
			}
			if err := required(r.Field, byField[r.Field].Text); err != nil {
				return err
			}
		}
	}
	for _, r := range rules {
		v := byField[r.Field]
		if v.Text == "" {
			continue
		}
		if err := MaxLen(r.Field, v.Text, r.Max); err != nil {
			return err
		}
	}
	return nil
}

func required(field, value string) *Error {
	if value == "" {
		return &Error{Field: field, Msg: field + " is required"}
	}
	return nil
}

// MaxLen fails when value is longer than max characters. A max of zero
// disables the check.
func MaxLen(field, value string, max int) *Error {
	if max > 0 && utf8.RuneCountInString(value) > max {
		return &Error{Field: field, Msg: fmt.Sprintf("%s must be less than %d characters", field, max)}
	}
	return nil
}

// TooLong reports whether value exceeds max characters.
func TooLong(value string, max int) bool {
	return utf8.RuneCountInString(value) > max
}

const (
	TitleMax = 50
	BodyMax  = 300
)

// NewUser checks a registration or user creation request.
func NewUser(name, username, email, password, phone, website string) error {
	if name == "" || username == "" || email == "" || password == "" {
		return &Error{Msg: "Name, username, email and password are required"}
	}
	return Check(UserRules, []Value{
		{Field: "name", Text: name},
		{Field: "username", Text: username},
		{Field: "email", Text: email},
		{Field: "phone", Text: phone},
		{Field: "website", Text: website},
	}, false)
}

// UserPatch checks the lengths of the supplied fields only.
func UserPatch(name, username, email, phone, website *string) error {
	return Check(UserRules, []Value{
		{Field: "name", Text: deref(name)},
		{Field: "username", Text: deref(username)},
		{Field: "email", Text: deref(email)},
		{Field: "phone", Text: deref(phone)},
		{Field: "website", Text: deref(website)},
	}, true)
}

// NewPost checks title, body and owner in that order. A zero userID counts
// as missing.
func NewPost(title, body string, userID *int64) error {
	if title == "" || TooLong(title, TitleMax) {
		return &Error{Field: "title", Msg: "Title is required and must be less than 50 characters"}
	}
	if body == "" || TooLong(body, BodyMax) {
		return &Error{Field: "body", Msg: "Body is required and must be less than 300 characters"}
	}
	if userID == nil || *userID == 0 {
		return &Error{Field: "userId", Msg: "userId is required"}
	}
	return nil
}

// PostPatch checks the lengths of a supplied title and body.
func PostPatch(title, body *string) error {
	if title != nil && TooLong(*title, TitleMax) {
		return &Error{Field: "title", Msg: "Title must be less than 50 characters"}
	}
	if body != nil && TooLong(*body, BodyMax) {
		return &Error{Field: "body", Msg: "Body must be less than 300 characters"}
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
