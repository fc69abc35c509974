package keyring

import (
	"crypto/rand"
	"io"
	"time"

	"github.com/avdushin/pm/internal/crypto"
	"github.com/avdushin/pm/internal/secret"
)

// MKSize is the size, in bytes, of the Master Key.
const MKSize = crypto.KeySize

// Initialize draws a fresh Master Key and wraps it under a KEK derived from
// passphrase, producing a [Config] ready to be persisted. It is called
// exactly once, by `pm init`.
//
// The returned *secret.Bytes holds the plaintext MK; the caller must Close
// it as soon as it has been handed to the session cache or consumed.
func Initialize(passphrase []byte, params crypto.KDFParams) (Config, *secret.Bytes, error) {
	salt, err := crypto.GenerateSalt()
	if err != nil {
		return Config{}, nil, err
	}

	mkBytes := make([]byte, MKSize)
	if _, err := io.ReadFull(rand.Reader, mkBytes); err != nil {
		return Config{}, nil, err
	}
	mk := secret.Take(mkBytes)

	kek := secret.Take(crypto.DeriveKEK(passphrase, salt, params))
	defer kek.Close()

	sealed, err := crypto.Seal(kek.Bytes(), mk.Bytes())
	if err != nil {
		mk.Close()
		return Config{}, nil, err
	}

	cfg := Config{
		Version:      ConfigVersion,
		KDFAlgorithm: KDFAlgorithmArgon2id,
		KDFParams:    params,
		KDFSalt:      salt,
		MKNonce:      sealed.Nonce,
		MKCiphertext: sealed.Ciphertext,
		CreatedAt:    time.Now().UTC(),
	}
	return cfg, mk, nil
}

// Unwrap recovers the Master Key from cfg using passphrase. Every internal
// failure — wrong passphrase, corrupted ciphertext, truncated nonce —
// surfaces uniformly as [ErrBadPassphrase], so a caller cannot distinguish
// which check failed.
func Unwrap(cfg Config, passphrase []byte) (*secret.Bytes, error) {
	kek := secret.Take(crypto.DeriveKEK(passphrase, cfg.KDFSalt, cfg.KDFParams))
	defer kek.Close()

	plaintext, err := crypto.Open(kek.Bytes(), cfg.MKNonce, cfg.MKCiphertext)
	if err != nil {
		return nil, ErrBadPassphrase
	}
	if len(plaintext) != MKSize {
		secret.Wipe(plaintext)
		return nil, ErrBadPassphrase
	}
	return secret.Take(plaintext), nil
}

// Rewrap changes the passphrase protecting cfg's Master Key without
// touching any entry file. It unwraps under oldPassphrase, then re-wraps
// the same MK under a freshly derived KEK with a new random nonce.
// KDFSalt, KDFParams, and the MK itself are preserved, so every entry
// written before rotation stays readable afterward.
func Rewrap(cfg Config, oldPassphrase, newPassphrase []byte) (Config, error) {
	mk, err := Unwrap(cfg, oldPassphrase)
	if err != nil {
		return Config{}, err
	}
	defer mk.Close()

	newKEK := secret.Take(crypto.DeriveKEK(newPassphrase, cfg.KDFSalt, cfg.KDFParams))
	defer newKEK.Close()

	sealed, err := crypto.Seal(newKEK.Bytes(), mk.Bytes())
	if err != nil {
		return Config{}, err
	}

	next := cfg
	next.MKNonce = sealed.Nonce
	next.MKCiphertext = sealed.Ciphertext
	return next, nil
}
