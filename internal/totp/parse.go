package totp

import (
	"encoding/base32"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/avdushin/pm/internal/vault"
)

// DecodeSecret decodes a base32 OTP secret. Decoding is case-insensitive
// and tolerates a missing '=' padding, matching what authenticator apps
// commonly hand out.
func DecodeSecret(s string) ([]byte, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "")
	if n := len(s) % 8; n != 0 {
		s += strings.Repeat("=", 8-n)
	}
	secret, err := base32.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadSecret, err)
	}
	return secret, nil
}

// ParseSecret builds an OTP sub-record from a raw base32 secret using
// spec.md §3 defaults: 6 digits, 30 second period, SHA1.
func ParseSecret(raw string) (vault.OTP, error) {
	secret, err := DecodeSecret(raw)
	if err != nil {
		return vault.OTP{}, err
	}
	return vault.OTP{
		Secret:        secret,
		Digits:        vault.DefaultDigits,
		PeriodSeconds: vault.DefaultPeriod,
		Algorithm:     vault.DefaultAlgorithm,
	}, nil
}

// ParseURI parses an otpauth://totp/<label>?secret=...&issuer=...&... URI.
// Unknown query parameters are ignored rather than rejected.
func ParseURI(raw string) (vault.OTP, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return vault.OTP{}, fmt.Errorf("%w: %w", ErrBadURI, err)
	}
	if u.Scheme != "otpauth" || u.Host != "totp" {
		return vault.OTP{}, fmt.Errorf("%w: not an otpauth totp uri", ErrBadURI)
	}

	q := u.Query()
	rawSecret := q.Get("secret")
	if rawSecret == "" {
		return vault.OTP{}, fmt.Errorf("%w: missing secret parameter", ErrBadURI)
	}
	secret, err := DecodeSecret(rawSecret)
	if err != nil {
		return vault.OTP{}, err
	}

	digits := vault.DefaultDigits
	if v := q.Get("digits"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return vault.OTP{}, fmt.Errorf("%w: malformed digits", ErrBadURI)
		}
		digits = n
	}

	period := vault.DefaultPeriod
	if v := q.Get("period"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return vault.OTP{}, fmt.Errorf("%w: malformed period", ErrBadURI)
		}
		period = n
	}

	algo := vault.DefaultAlgorithm
	if v := q.Get("algorithm"); v != "" {
		algo = vault.Algorithm(strings.ToUpper(v))
	}

	label := strings.TrimPrefix(u.Path, "/")
	label, _ = url.PathUnescape(label)

	o := vault.OTP{
		Secret:        secret,
		Digits:        digits,
		PeriodSeconds: period,
		Algorithm:     algo,
		Issuer:        q.Get("issuer"),
		Label:         label,
	}
	if err := o.Validate(); err != nil {
		return vault.OTP{}, err
	}
	return o, nil
}
