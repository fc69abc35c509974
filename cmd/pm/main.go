// Command pm is a local, single-user password and TOTP vault.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/avdushin/pm/internal/cliapp"
	"github.com/avdushin/pm/internal/config"
	"github.com/avdushin/pm/internal/exitcode"
)

func main() {
	cfg, rest, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "pm:", err)
		os.Exit(exitcode.GenericFailure)
	}

	app := cliapp.New(cfg)
	cmd := app.Command()

	args := append([]string{"pm"}, rest...)
	if err := cmd.Run(context.Background(), args); err != nil {
		fmt.Fprintln(os.Stderr, "pm:", err)
		os.Exit(exitcode.For(err))
	}
}
