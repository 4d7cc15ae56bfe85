// Package usecase implements the business logic for the location feature.
package usecase

import "errors"

var (
	// ErrLocationNotFound is returned when a location cannot be found by ID.
	ErrLocationNotFound = errors.New("location not found")

	// ErrForbidden is returned when the actor lacks the rights for an operation,
	// such as editing a location created by someone else.
	ErrForbidden = errors.New("not enough permissions")
)
