package cliapp

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/avdushin/pm/internal/archive"
	"github.com/avdushin/pm/internal/logger"
)

func (a *App) backupCommand() *cli.Command {
	return &cli.Command{
		Name:  "backup",
		Usage: "archive or lock the vault",
		Commands: []*cli.Command{
			a.backupCreateCommand(),
			a.lockCommand(),
		},
	}
}

func (a *App) backupCreateCommand() *cli.Command {
	return &cli.Command{
		Name:      "create",
		Usage:     "archive the store root into a zip or tar.gz file",
		ArgsUsage: "[name[.zip|.tar.gz]]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dest := cmd.Args().First()
			if dest == "" {
				dest = "pm-backup.zip"
			}

			s, err := a.openStore()
			if err != nil {
				return err
			}

			manifest, err := archive.Create(s, dest)
			if err != nil {
				return err
			}

			logger.New("backup create").Info().
				Str("id", manifest.ID).
				Int("files", len(manifest.Files)).
				Msg("backup created")
			fmt.Println("backup written to", dest)
			return nil
		},
	}
}
