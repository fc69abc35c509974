package totp

import (
	"crypto/hmac"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/binary"
	"fmt"
	"hash"
	"strconv"

	"github.com/avdushin/pm/internal/vault"
)

func newHash(algo vault.Algorithm) (func() hash.Hash, error) {
	switch algo {
	case vault.AlgorithmSHA1, "":
		return sha1.New, nil
	case vault.AlgorithmSHA256:
		return sha256.New, nil
	case vault.AlgorithmSHA512:
		return sha512.New, nil
	default:
		return nil, fmt.Errorf("%w: unknown algorithm %q", ErrBadSecret, algo)
	}
}

// HOTP computes the RFC 4226 one-time password for secret at counter,
// truncated to digits decimal digits and left-padded with zeros.
func HOTP(secret []byte, counter uint64, digits int, algo vault.Algorithm) (string, error) {
	if digits < 6 || digits > 10 {
		return "", fmt.Errorf("%w: digits must be 6-10, got %d", ErrBadSecret, digits)
	}
	newH, err := newHash(algo)
	if err != nil {
		return "", err
	}

	var counterBytes [8]byte
	binary.BigEndian.PutUint64(counterBytes[:], counter)

	mac := hmac.New(newH, secret)
	mac.Write(counterBytes[:])
	sum := mac.Sum(nil)

	offset := sum[len(sum)-1] & 0x0f
	code := (uint32(sum[offset])&0x7f)<<24 |
		uint32(sum[offset+1])<<16 |
		uint32(sum[offset+2])<<8 |
		uint32(sum[offset+3])

	mod := uint32(1)
	for i := 0; i < digits; i++ {
		mod *= 10
	}
	code %= mod

	out := strconv.FormatUint(uint64(code), 10)
	for len(out) < digits {
		out = "0" + out
	}
	return out, nil
}
