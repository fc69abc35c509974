package cliapp

import (
	"github.com/urfave/cli/v3"

	"github.com/avdushin/pm/internal/config"
)

// App wires pm's configuration into a runnable command tree.
type App struct {
	cfg *config.Config
}

// New returns an App bound to cfg.
func New(cfg *config.Config) *App {
	return &App{cfg: cfg}
}

// Command builds the root "pm" command and its full subcommand tree.
func (a *App) Command() *cli.Command {
	return &cli.Command{
		Name:  "pm",
		Usage: "a local password and TOTP vault",
		Commands: []*cli.Command{
			a.initCommand(),
			a.addCommand(),
			a.showCommand(),
			a.lsCommand(),
			a.rmCommand(),
			a.clipCommand(),
			a.otpCommand(),
			a.backupCommand(),
			a.lockCommand(),
		},
	}
}
