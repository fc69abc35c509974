// Package unlock implements the finite state machine that turns a
// passphrase prompt, the session cache, and the key hierarchy into a
// ready Master Key for one command invocation: try the cache, and on a
// miss prompt for the passphrase up to three times before aborting.
package unlock
