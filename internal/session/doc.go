// Package session caches the unwrapped Master Key for a short TTL in a
// per-user, OS-designated ephemeral directory, so a command sequence
// issued within a few minutes doesn't re-prompt for the passphrase.
package session
