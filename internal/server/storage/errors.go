package storage

import "errors"

// Common storage errors
var (
	// ErrUserNotFound indicates that the user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameTaken indicates that a user with this username already exists
	ErrUsernameTaken = errors.New("username already taken")

	// ErrEmailTaken indicates that a user with this email already exists
	ErrEmailTaken = errors.New("email already taken")
)
