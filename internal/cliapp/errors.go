package cliapp

import "errors"

// ErrNotInitialized is returned when a command that needs an unlocked
// vault runs against a store root with no config.json.
var ErrNotInitialized = errors.New("vault is not initialized, run `pm init` first")

// ErrPassphraseMismatch is returned by `pm init` when the two passphrase
// prompts disagree.
var ErrPassphraseMismatch = errors.New("passphrases do not match")
