package prompt

import "errors"

// ErrCancelled is returned when the user aborts a prompt with esc or
// ctrl+c instead of submitting a value.
var ErrCancelled = errors.New("prompt cancelled")
