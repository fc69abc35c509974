// Package totp implements HOTP (RFC 4226) and TOTP (RFC 6238) code
// generation, plus parsing of otpauth:// URIs and raw base32 secrets into
// an internal/vault.OTP sub-record.
package totp
