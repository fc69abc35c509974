package totp

import (
	"time"

	"github.com/avdushin/pm/internal/vault"
)

// Code is the current OTP code together with the seconds remaining before
// it rolls over, so the CLI can display a countdown.
type Code struct {
	Value            string
	RemainingSeconds int
}

// Generate computes the TOTP code for o at instant t per RFC 6238: the
// HOTP counter is floor(unix_time / period).
func Generate(o vault.OTP, t time.Time) (Code, error) {
	digits := o.Digits
	if digits == 0 {
		digits = vault.DefaultDigits
	}
	period := o.PeriodSeconds
	if period == 0 {
		period = vault.DefaultPeriod
	}
	algo := o.Algorithm
	if algo == "" {
		algo = vault.DefaultAlgorithm
	}

	unix := t.Unix()
	counter := uint64(unix) / uint64(period)

	code, err := HOTP(o.Secret, counter, digits, algo)
	if err != nil {
		return Code{}, err
	}

	remaining := period - int(unix%int64(period))
	return Code{Value: code, RemainingSeconds: remaining}, nil
}
