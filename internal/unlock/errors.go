package unlock

import "errors"

// ErrAborted is returned after MaxAttempts consecutive wrong passphrases.
// No information about which attempt produced which error is retained.
var ErrAborted = errors.New("unlock aborted: too many failed attempts")

// MaxAttempts is the number of passphrase prompts allowed before Unlock
// gives up, per spec.md §4.9.
const MaxAttempts = 3
