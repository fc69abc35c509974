// Package vault defines the Entry record that pm stores one per envelope
// file: a title-addressed bundle of credentials, notes, and an optional
// OTP sub-record, serialized to JSON before encryption by internal/crypto.
package vault
