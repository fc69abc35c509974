package keyring

import "errors"

var (
	// ErrBadPassphrase is returned by [Unwrap] and [Rewrap] when the MK
	// cannot be recovered from the supplied passphrase. It is returned for
	// every internal failure mode (wrong passphrase, corrupted ciphertext,
	// bit-flipped nonce) alike, by design — see the package doc on error
	// funneling in SPEC_FULL.md §7.
	ErrBadPassphrase = errors.New("bad passphrase")

	// ErrCorruptConfig is returned when a config record is missing
	// required fields, carries an unsupported version, or has
	// malformed base64 fields. It is fatal: the caller must re-initialize
	// or restore a backup.
	ErrCorruptConfig = errors.New("corrupt config")
)
