package totp

import "errors"

var (
	// ErrBadSecret is returned when a raw secret fails base32 decoding.
	ErrBadSecret = errors.New("bad otp secret")

	// ErrBadURI is returned when an otpauth:// URI is malformed or missing
	// its secret parameter.
	ErrBadURI = errors.New("bad otpauth uri")
)
