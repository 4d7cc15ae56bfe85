// Package usecase implements the business logic for the auth feature.
package usecase

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrUserNotFound is returned when a user cannot be found by username.
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameTaken is returned when attempting to register a username that already exists.
	ErrUsernameTaken = errors.New("username already registered")

	// ErrPhoneTaken is returned when the phone digest collides with an existing user.
	ErrPhoneTaken = errors.New("phone already registered")

	// ErrInvalidCredentials is returned on login when the username or password is wrong.
	// It deliberately does not distinguish an unknown user from a bad password.
	ErrInvalidCredentials = errors.New("incorrect username or password")
)

// ValidationError carries per-field validation messages for a rejected registration.
type ValidationError struct {
	Fields map[string]string
}

// Error renders the field messages in a stable order.
func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return strings.Join(parts, "; ")
}
