package exitcode

import (
	"errors"

	"github.com/avdushin/pm/internal/crypto"
	"github.com/avdushin/pm/internal/keyring"
	"github.com/avdushin/pm/internal/store"
	"github.com/avdushin/pm/internal/totp"
	"github.com/avdushin/pm/internal/unlock"
	"github.com/avdushin/pm/internal/vault"
)

const (
	// Success means the command completed without error.
	Success = 0
	// GenericFailure covers any error not mapped to a more specific code.
	GenericFailure = 1
	// BadPassphrase means Unlock exhausted its retry budget.
	BadPassphrase = 2
	// InvalidArgument means a name or flag failed validation.
	InvalidArgument = 3
	// NotFound means the named entry does not exist.
	NotFound = 4
	// IntegrityFailure means an envelope failed AEAD verification.
	IntegrityFailure = 5
)

// For reports the exit code that corresponds to err. A nil err maps to
// Success. Unrecognized errors map to GenericFailure, never leaking
// which internal step produced them.
func For(err error) int {
	if err == nil {
		return Success
	}

	switch {
	case errors.Is(err, unlock.ErrAborted), errors.Is(err, keyring.ErrBadPassphrase):
		return BadPassphrase
	case errors.Is(err, store.ErrInvalidName),
		errors.Is(err, store.ErrAlreadyExists),
		errors.Is(err, store.ErrCaseCollision),
		errors.Is(err, vault.ErrTitleRequired),
		errors.Is(err, vault.ErrInvalidTimestamps),
		errors.Is(err, vault.ErrBadOTPSecret),
		errors.Is(err, totp.ErrBadSecret),
		errors.Is(err, totp.ErrBadURI):
		return InvalidArgument
	case errors.Is(err, store.ErrNotFound):
		return NotFound
	case errors.Is(err, crypto.ErrDecryptFailure):
		return IntegrityFailure
	default:
		return GenericFailure
	}
}
