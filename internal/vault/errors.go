package vault

import "errors"

var (
	// ErrTitleRequired is returned when an entry is serialized without a title.
	ErrTitleRequired = errors.New("entry title is required")

	// ErrInvalidTimestamps is returned when updated_at precedes created_at.
	ErrInvalidTimestamps = errors.New("updated_at precedes created_at")

	// ErrBadOTPSecret is returned by OTP.Validate when an OTP sub-record
	// has digits outside 6-10, a period below 1, an unknown algorithm, or
	// an empty secret.
	ErrBadOTPSecret = errors.New("bad otp secret")
)
