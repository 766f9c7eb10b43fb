// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Inventory errors.
	ErrNotFound        = errors.New("not found")
	ErrEmptyName       = errors.New("food name cannot be empty")
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidEntry    = errors.New("invalid food entry")
	ErrDuplicateID     = errors.New("duplicate id")

	// Classification errors.
	ErrClassificationFailed = errors.New("classification failed")
	ErrNoClient             = errors.New("no classifier client configured")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// UserMessage extracts the message meant for the user, falling back to the
// error text.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var userErr *UserError
	if errors.As(err, &userErr) {
		return userErr.UserMessage
	}
	return err.Error()
}
