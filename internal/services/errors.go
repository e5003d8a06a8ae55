package services

import "errors"

// Client-facing errors. Their text is returned in the response body as-is.
var (
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrUserNotFound       = errors.New("User not found")
	ErrPostNotFound       = errors.New("Post not found")
	// ErrOwnerNotFound is a post referencing a user that does not exist.
	ErrOwnerNotFound = errors.New("User not found")
	ErrNoFields      = errors.New("No fields to update")
	ErrDuplicateUser = errors.New("User with this email or username already exists")
)
