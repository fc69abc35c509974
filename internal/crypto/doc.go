// Package crypto implements the envelope codec (C1) and the key-derivation
// function (C2) used throughout pm's key hierarchy.
//
// # Envelope codec
//
// [Seal] and [Open] implement extended-nonce authenticated encryption with
// associated data using XChaCha20-Poly1305 (256-bit key, 192-bit nonce,
// 128-bit tag). The codec is pure: it never touches the filesystem. A fresh
// random nonce is drawn on every [Seal] call so that (nonce, key) is never
// reused.
//
// # KDF
//
// [DeriveKEK] derives a 32-byte key-encryption key from a passphrase and a
// salt using Argon2id. Cost parameters are passed explicitly rather than
// hard-coded so they can be read back from a config record, which is what
// allows future hardening without breaking existing stores.
package crypto
