// Package genpass generates passwords from a cryptographically secure
// random source using rejection sampling, with a bounded retry loop that
// guarantees character-class coverage under the default policy.
package genpass
