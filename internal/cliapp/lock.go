package cliapp

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/avdushin/pm/internal/session"
)

func (a *App) lockCommand() *cli.Command {
	return &cli.Command{
		Name:  "lock",
		Usage: "invalidate the session cache",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cache, err := session.NewFileCache()
			if err != nil {
				return err
			}
			if err := cache.Invalidate(); err != nil {
				return err
			}
			fmt.Println("vault locked")
			return nil
		},
	}
}
