package crypto

import "errors"

// ErrDecryptFailure is returned by [Open] when the AEAD authentication tag
// does not verify. It is deliberately uninformative about which internal
// check failed, the same way internal/keyring.Unwrap funnels its failures.
var ErrDecryptFailure = errors.New("decrypt failure")

// ErrInvalidKeyLength is returned when a key passed to [Seal] or [Open] is
// not exactly [KeySize] bytes.
var ErrInvalidKeyLength = errors.New("invalid key length")
