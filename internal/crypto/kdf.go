package crypto

import (
	"crypto/rand"
	"io"

	"golang.org/x/crypto/argon2"
)

// SaltSize is the size, in bytes, of the Argon2id salt drawn at store
// initialization.
const SaltSize = 16

// KDFParams holds the Argon2id cost parameters used to derive a KEK. These
// are generated once at `init` time and persisted in the config record so
// that a later pm binary with different recommended defaults can still
// recover the same KEK for an existing store.
type KDFParams struct {
	// TimeCost is the number of Argon2id iterations.
	TimeCost uint32
	// MemoryCost is the memory parameter, in KiB.
	MemoryCost uint32
	// Parallelism is the number of parallel Argon2id lanes.
	Parallelism uint8
}

// DefaultKDFParams returns the recommended Argon2id parameters for new
// stores: 1 iteration, 64 MiB of memory, 4 lanes. These are the OWASP
// (2024) recommended defaults for Argon2id when memory-hardness is the
// primary defense.
func DefaultKDFParams() KDFParams {
	return KDFParams{
		TimeCost:    1,
		MemoryCost:  64 * 1024,
		Parallelism: 4,
	}
}

// GenerateSalt draws a fresh [SaltSize]-byte random salt for a new store.
// It is drawn exactly once at initialization and never regenerated —
// regenerating it would make every existing ciphertext unrecoverable.
func GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// DeriveKEK derives a [KeySize]-byte key-encryption key from passphrase and
// salt using Argon2id with the given parameters. The result lives only on
// the caller's stack/heap for the duration of an unwrap or rewrap; callers
// must wrap the result in a secret.Bytes and Close it promptly.
func DeriveKEK(passphrase, salt []byte, params KDFParams) []byte {
	return argon2.IDKey(passphrase, salt, params.TimeCost, params.MemoryCost, params.Parallelism, KeySize)
}
