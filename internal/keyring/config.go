package keyring

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"github.com/avdushin/pm/internal/crypto"
)

// ConfigVersion is the current on-disk version of the config record.
const ConfigVersion = 1

// KDFAlgorithmArgon2id is the only kdf_algorithm tag pm currently writes or
// accepts. Keeping it as a named constant (rather than a bare literal)
// leaves room for a future KDF without touching every call site.
const KDFAlgorithmArgon2id = "argon2id"

// Config is the cleartext config record described in SPEC_FULL.md §3. It is
// sufficient, together with the passphrase, to recover the MK; it contains
// no plaintext key material of its own.
type Config struct {
	Version      int
	KDFAlgorithm string
	KDFParams    crypto.KDFParams
	KDFSalt      []byte
	MKNonce      []byte
	MKCiphertext []byte
	CreatedAt    time.Time
}

// configJSON is the wire representation of [Config]: binary fields are
// base64, matching the envelope file's own encoding.
type configJSON struct {
	Version      int    `json:"version"`
	KDFAlgorithm string `json:"kdf_algorithm"`
	KDFParams    struct {
		Time        uint32 `json:"time"`
		MemoryKiB   uint32 `json:"memory_kib"`
		Parallelism uint8  `json:"parallelism"`
	} `json:"kdf_params"`
	KDFSalt      string    `json:"kdf_salt"`
	MKNonce      string    `json:"mk_nonce"`
	MKCiphertext string    `json:"mk_ciphertext"`
	CreatedAt    time.Time `json:"created_at"`
}

// MarshalJSON implements [json.Marshaler], encoding binary fields as
// base64 so the config record is plain, readable JSON on disk.
func (c Config) MarshalJSON() ([]byte, error) {
	w := configJSON{
		Version:      c.Version,
		KDFAlgorithm: c.KDFAlgorithm,
		KDFSalt:      base64.StdEncoding.EncodeToString(c.KDFSalt),
		MKNonce:      base64.StdEncoding.EncodeToString(c.MKNonce),
		MKCiphertext: base64.StdEncoding.EncodeToString(c.MKCiphertext),
		CreatedAt:    c.CreatedAt,
	}
	w.KDFParams.Time = c.KDFParams.TimeCost
	w.KDFParams.MemoryKiB = c.KDFParams.MemoryCost
	w.KDFParams.Parallelism = c.KDFParams.Parallelism
	return json.MarshalIndent(w, "", "  ")
}

// UnmarshalJSON implements [json.Unmarshaler]. Returns [ErrCorruptConfig]
// if a required field is missing, has the wrong version, or fails base64
// decoding. created_at is optional and not checked.
func (c *Config) UnmarshalJSON(data []byte) error {
	var w configJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("%w: %w", ErrCorruptConfig, err)
	}

	if w.Version != ConfigVersion {
		return fmt.Errorf("%w: unsupported version %d", ErrCorruptConfig, w.Version)
	}
	if w.KDFAlgorithm != KDFAlgorithmArgon2id {
		return fmt.Errorf("%w: unknown kdf_algorithm %q", ErrCorruptConfig, w.KDFAlgorithm)
	}
	if w.KDFParams.Time == 0 || w.KDFParams.MemoryKiB == 0 || w.KDFParams.Parallelism == 0 {
		return fmt.Errorf("%w: missing kdf_params", ErrCorruptConfig)
	}

	salt, err := base64.StdEncoding.DecodeString(w.KDFSalt)
	if err != nil || len(salt) != crypto.SaltSize {
		return fmt.Errorf("%w: malformed kdf_salt", ErrCorruptConfig)
	}
	nonce, err := base64.StdEncoding.DecodeString(w.MKNonce)
	if err != nil || len(nonce) != crypto.NonceSize {
		return fmt.Errorf("%w: malformed mk_nonce", ErrCorruptConfig)
	}
	ciphertext, err := base64.StdEncoding.DecodeString(w.MKCiphertext)
	if err != nil || len(ciphertext) != crypto.KeySize+crypto.TagSize {
		return fmt.Errorf("%w: malformed mk_ciphertext", ErrCorruptConfig)
	}

	c.Version = w.Version
	c.KDFAlgorithm = w.KDFAlgorithm
	c.KDFParams = crypto.KDFParams{
		TimeCost:    w.KDFParams.Time,
		MemoryCost:  w.KDFParams.MemoryKiB,
		Parallelism: w.KDFParams.Parallelism,
	}
	c.KDFSalt = salt
	c.MKNonce = nonce
	c.MKCiphertext = ciphertext
	c.CreatedAt = w.CreatedAt
	return nil
}
