package store

import "errors"

var (
	// ErrNotFound is returned when an operation references an
	// unregistered user or a missing record.
	ErrNotFound = errors.New("not found")

	// ErrExists is returned when creating a profile that already exists.
	ErrExists = errors.New("already exists")

	// ErrInvalidHour is returned when a reminder hour is outside [0,23].
	ErrInvalidHour = errors.New("reminder hour must be in [0,23]")
)
