// Package clip copies a secret to the system clipboard and clears it
// again after a timeout, so a password or OTP code left in `pm clip`'s
// wake doesn't sit there indefinitely.
package clip
