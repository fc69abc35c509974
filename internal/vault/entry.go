package vault

import (
	"encoding/json"
	"fmt"
	"time"
)

// Algorithm names the HMAC hash backing an OTP sub-record.
type Algorithm string

const (
	AlgorithmSHA1   Algorithm = "SHA1"
	AlgorithmSHA256 Algorithm = "SHA256"
	AlgorithmSHA512 Algorithm = "SHA512"
)

// DefaultDigits and DefaultPeriod match the values common authenticator
// apps assume when an otpauth:// URI omits them.
const (
	DefaultDigits    = 6
	DefaultPeriod    = 30
	DefaultAlgorithm = AlgorithmSHA1
)

// OTP is the optional TOTP sub-record attached to an Entry.
type OTP struct {
	Secret        []byte    `json:"secret"`
	Digits        int       `json:"digits"`
	PeriodSeconds int       `json:"period_seconds"`
	Algorithm     Algorithm `json:"algorithm"`
	Issuer        string    `json:"issuer,omitempty"`
	Label         string    `json:"label,omitempty"`
}

// Entry is the plaintext record sealed inside one envelope file. Title is
// the only required field and doubles as the path used to address the
// entry in the store; everything else defaults to its zero value.
type Entry struct {
	Title     string    `json:"title"`
	Username  string    `json:"username,omitempty"`
	Password  string    `json:"password,omitempty"`
	URL       string    `json:"url,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	OTP *OTP `json:"otp,omitempty"`

	// CustomFields holds free-form user-defined metadata beyond the fixed
	// set above. Nil and empty are treated the same on the wire.
	CustomFields map[string]string `json:"custom_fields,omitempty"`
}

// New builds an Entry with created_at and updated_at set to now (UTC).
func New(title string) Entry {
	now := time.Now().UTC()
	return Entry{
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Touch advances UpdatedAt to now. Callers must invoke it on every
// mutation so the updated_at >= created_at invariant keeps holding.
func (e *Entry) Touch() {
	e.UpdatedAt = time.Now().UTC()
}

// Validate checks the invariants spec.md §3 requires of an Entry: a
// non-empty title and updated_at no earlier than created_at.
func (e Entry) Validate() error {
	if e.Title == "" {
		return ErrTitleRequired
	}
	if e.UpdatedAt.Before(e.CreatedAt) {
		return ErrInvalidTimestamps
	}
	if e.OTP != nil {
		if err := e.OTP.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks the OTP sub-record's bounds per spec.md §4.7: digits in
// 6..10, period >= 1, algorithm one of SHA1/SHA256/SHA512.
func (o OTP) Validate() error {
	if o.Digits < 6 || o.Digits > 10 {
		return fmt.Errorf("%w: digits must be 6-10, got %d", ErrBadOTPSecret, o.Digits)
	}
	if o.PeriodSeconds < 1 {
		return fmt.Errorf("%w: period_seconds must be positive, got %d", ErrBadOTPSecret, o.PeriodSeconds)
	}
	switch o.Algorithm {
	case AlgorithmSHA1, AlgorithmSHA256, AlgorithmSHA512:
	default:
		return fmt.Errorf("%w: unknown algorithm %q", ErrBadOTPSecret, o.Algorithm)
	}
	if len(o.Secret) == 0 {
		return fmt.Errorf("%w: empty secret", ErrBadOTPSecret)
	}
	return nil
}

// Marshal serializes e to the compact JSON form that is encrypted and
// stored as one envelope file. Validate is called first so a malformed
// entry never reaches the encryption layer.
func Marshal(e Entry) ([]byte, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(e)
}

// Unmarshal parses the plaintext produced by opening an envelope back
// into an Entry and validates it.
func Unmarshal(data []byte) (Entry, error) {
	var e Entry
	if err := json.Unmarshal(data, &e); err != nil {
		return Entry{}, err
	}
	if err := e.Validate(); err != nil {
		return Entry{}, err
	}
	return e, nil
}
