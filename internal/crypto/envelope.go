package crypto

import (
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20poly1305"
)

const (
	// KeySize is the size, in bytes, of every key used by the envelope
	// codec: the KEK and the MK are both [KeySize] bytes.
	KeySize = chacha20poly1305.KeySize

	// NonceSize is the size, in bytes, of the extended nonce used by
	// XChaCha20-Poly1305.
	NonceSize = chacha20poly1305.NonceSizeX

	// TagSize is the size, in bytes, of the Poly1305 authentication tag
	// appended to every ciphertext.
	TagSize = chacha20poly1305.Overhead
)

// Sealed is the result of [Seal]: a freshly generated nonce and the opaque
// ciphertext‖tag blob produced for it. Both fields are safe to persist
// directly; neither is a secret on its own.
type Sealed struct {
	Nonce      []byte
	Ciphertext []byte
}

// Seal encrypts plaintext under key using XChaCha20-Poly1305 with an
// empty associated-data field (version 1 of the envelope format binds no
// AAD). A fresh
// random [NonceSize]-byte nonce is drawn for this call and returned
// alongside the ciphertext so that (nonce, key) is never reused across
// calls.
//
// Returns [ErrInvalidKeyLength] if key is not [KeySize] bytes.
func Seal(key, plaintext []byte) (Sealed, error) {
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return Sealed{}, fmt.Errorf("%w: %w", ErrInvalidKeyLength, err)
	}

	nonce := make([]byte, NonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return Sealed{}, fmt.Errorf("generate nonce: %w", err)
	}

	ciphertext := aead.Seal(nil, nonce, plaintext, nil)
	return Sealed{Nonce: nonce, Ciphertext: ciphertext}, nil
}

// Open decrypts ciphertext under key and nonce using XChaCha20-Poly1305,
// verifying the trailing authentication tag.
//
// Returns [ErrDecryptFailure] if nonce is not [NonceSize] bytes or the tag
// does not verify — the caller cannot distinguish a wrong key from
// corrupted ciphertext, which is intentional (internal/keyring.Unwrap
// funnels every such failure into one error the same way).
// Returns [ErrInvalidKeyLength] if key is not [KeySize] bytes.
func Open(key, nonce, ciphertext []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKeyLength, err)
	}

	if len(nonce) != NonceSize {
		return nil, ErrDecryptFailure
	}
	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrDecryptFailure
	}
	return plaintext, nil
}
