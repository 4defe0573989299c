package repository

import "github.com/pkg/errors"

// Domain-specific errors for persistence lookups.
var (
	// ErrNotificationNotFound is returned when a business notification is not found.
	ErrNotificationNotFound = errors.New("business notification not found")
	// ErrBusinessNotFound is returned when a business profile is not found.
	ErrBusinessNotFound = errors.New("business not found")
	// ErrBusinessLocationNotFound is returned when a business has no pinned location.
	ErrBusinessLocationNotFound = errors.New("business location not found")
)
