package session

import "errors"

// ErrNoRuntimeDir is returned when no per-user ephemeral directory could
// be resolved for the current OS and environment.
var ErrNoRuntimeDir = errors.New("no per-user runtime directory available")
