// Package services defines the business logic for scan dispatch and the
// user directory. This file centralizes common service-level error values
// so that they can be consistently returned by service methods and checked
// by callers.
//
// These errors are intended for internal use by the service layer and
// translation into user-facing messages or HTTP status codes should be
// performed at the handler layer.
package services

import "errors"

var (
	// ErrUserNotFound indicates that the requested directory user does
	// not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmptyName is returned when a user is created with a blank name.
	ErrEmptyName = errors.New("name is empty")

	// ErrInvalidEmail is returned when a user is created with an address
	// that does not look like an email.
	ErrInvalidEmail = errors.New("email is invalid")

	// ErrDuplicateEmail is returned when a user is created with an email
	// already present in the directory.
	ErrDuplicateEmail = errors.New("email already registered")
)
