package cliapp

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/avdushin/pm/internal/store"
)

func (a *App) clipCommand() *cli.Command {
	return &cli.Command{
		Name:      "clip",
		Usage:     "copy an entry field to the clipboard",
		ArgsUsage: "<name>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "field", Value: "password", Usage: "username or password"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			name := cmd.Args().First()
			if name == "" {
				return store.ErrInvalidName
			}

			s, err := a.openStore()
			if err != nil {
				return err
			}
			mk, err := a.unlockMK(s)
			if err != nil {
				return err
			}
			defer mk.Close()

			e, err := s.Read(mk.Bytes(), name)
			if err != nil {
				return err
			}

			field := cmd.String("field")
			value := e.Password
			if field == "username" {
				value = e.Username
			} else if field != "password" {
				return fmt.Errorf("unknown field %q: use username or password", field)
			}

			if err := a.clipper().Copy(value); err != nil {
				return err
			}
			fmt.Printf("%s copied to clipboard\n", field)
			return nil
		},
	}
}
