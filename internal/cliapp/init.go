package cliapp

import (
	"bytes"
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/avdushin/pm/internal/keyring"
	"github.com/avdushin/pm/internal/logger"
	"github.com/avdushin/pm/internal/prompt"
	"github.com/avdushin/pm/internal/secret"
)

func (a *App) initCommand() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "initialize a new vault",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log := logger.New("init")

			s, err := a.openStore()
			if err != nil {
				return err
			}
			if s.HasConfig() {
				return fmt.Errorf("vault already initialized at %s", s.Root())
			}

			p1, err := prompt.Passphrase("Passphrase")
			if err != nil {
				return err
			}
			p2, err := prompt.Passphrase("Confirm passphrase")
			if err != nil {
				secret.Wipe(p1)
				return err
			}
			if !bytes.Equal(p1, p2) {
				secret.Wipe(p1)
				secret.Wipe(p2)
				return ErrPassphraseMismatch
			}
			secret.Wipe(p2)

			cfg, mk, err := keyring.Initialize(p1, a.cfg.KDFParams())
			secret.Wipe(p1)
			if err != nil {
				return err
			}
			defer mk.Close()

			if err := keyring.WriteConfigFile(s.ConfigPath(), cfg); err != nil {
				return err
			}

			log.Info().Str("root", s.Root()).Msg("vault initialized")
			fmt.Println("vault initialized at", s.Root())
			return nil
		},
	}
}
