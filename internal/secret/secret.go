// Package secret provides a scoped-acquisition wrapper for byte material
// that must never outlive its use: passphrases, KEKs, MKs, and decrypted
// entry plaintext. Every component that touches such material holds it in
// a *Bytes and releases it with a defer, so zeroization happens on every
// exit path, including error paths.
package secret

import (
	"crypto/subtle"
	"runtime"
)

// Bytes holds sensitive byte material and zeroizes it exactly once on Close.
// The zero value is not usable; construct with New or Take.
type Bytes struct {
	b        []byte
	released bool
}

// New copies b into a new *Bytes. The caller's original slice is left
// untouched; zero it separately if it also needs clearing.
func New(b []byte) *Bytes {
	cp := make([]byte, len(b))
	copy(cp, b)
	return &Bytes{b: cp}
}

// Take wraps b directly, without copying. Use when the caller already owns
// a freshly allocated slice (e.g. straight from crypto/rand or an AEAD Open)
// and wants Bytes to own its zeroization from here on.
func Take(b []byte) *Bytes {
	return &Bytes{b: b}
}

// Bytes returns the underlying byte slice. The slice is only valid until
// Close is called; callers must not retain it past the scope that owns
// this *Bytes.
func (s *Bytes) Bytes() []byte {
	if s == nil {
		return nil
	}
	return s.b
}

// Len returns the length of the underlying byte slice.
func (s *Bytes) Len() int {
	if s == nil {
		return 0
	}
	return len(s.b)
}

// Close overwrites the underlying bytes with zeros. Safe to call more than
// once and on a nil receiver. Intended to be deferred immediately after
// construction:
//
//	kek := secret.Take(derived)
//	defer kek.Close()
func (s *Bytes) Close() {
	if s == nil || s.released {
		return
	}
	wipe(s.b)
	s.released = true
}

// wipe overwrites data with zeros using a constant-time XOR that the
// compiler cannot optimize away, then pins data alive through the wipe via
// runtime.KeepAlive.
func wipe(data []byte) {
	if len(data) == 0 {
		return
	}
	subtle.XORBytes(data, data, data)
	runtime.KeepAlive(data)
}

// Wipe zeroizes an arbitrary byte slice in place. Exposed for call sites
// that hold bare []byte (e.g. a passphrase read from a prompt) rather than
// a *Bytes.
func Wipe(data []byte) {
	wipe(data)
}
