// Package usecase implements the business logic for the users feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned by repositories when a user cannot be found.
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateUser is returned by repositories when a unique index rejects a write.
	ErrDuplicateUser = errors.New("username or email already exists")
)
