package model

import (
	"errors"
	"fmt"
)

// Common errors used across the application
var (
	// User errors
	ErrUserNotFound   = errors.New("user not found")
	ErrUsernameExists = errors.New("username already exists")

	// Score errors
	ErrScoreNotFound = errors.New("score not found")
)

// ValidationError reports a request field that failed validation.
// It is raised before any state is touched.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
