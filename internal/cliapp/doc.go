// Package cliapp builds the urfave/cli/v3 command tree external callers
// invoke: init, add, show, ls, rm, clip, otp, backup, and lock. Every
// command is a few dozen lines of glue delegating into the core
// components; no business logic lives here.
package cliapp
