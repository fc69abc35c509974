package store

import "errors"

// Sentinel errors returned by Store methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrInvalidName is returned when an entry name normalizes to a path
	// that would escape the store root: a ".." segment, an absolute path,
	// or a drive-letter prefix.
	ErrInvalidName = errors.New("invalid entry name")

	// ErrAlreadyExists is returned by Create when an entry with the same
	// name is already present and overwrite was not requested.
	ErrAlreadyExists = errors.New("entry already exists")

	// ErrNotFound is returned by Read and Delete when no entry with the
	// given name exists.
	ErrNotFound = errors.New("entry not found")

	// ErrCaseCollision is returned when creating an entry would collide
	// with an existing entry that differs only in case, on a filesystem
	// that cannot itself tell them apart.
	ErrCaseCollision = errors.New("entry name collides case-insensitively with an existing entry")
)
