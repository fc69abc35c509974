// Package keyring implements pm's key hierarchy (C3): generation and
// protection of the long-lived Master Key (MK), and the cleartext config
// record that makes it recoverable from a passphrase alone.
//
// # Key hierarchy
//
//  1. MK (master key) — 32 random bytes, generated once at [Initialize].
//     It encrypts and decrypts every entry file and never changes except
//     through an explicit re-encrypt-all (out of scope for this package,
//     but [Config] carries enough information to support one later).
//  2. KEK (key-encryption key) — derived from the user's passphrase and
//     [Config.KDFSalt] via [crypto.DeriveKEK]. It exists only on the stack
//     for the duration of [Initialize], [Unwrap], or [Rewrap] and is never
//     persisted.
//
// The expensive Argon2id step this implies happens at most once per
// unlock, not once per entry read — see internal/session and
// internal/unlock for how the derived MK is cached between commands.
package keyring
