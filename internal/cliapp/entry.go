package cliapp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/avdushin/pm/internal/genpass"
	"github.com/avdushin/pm/internal/logger"
	"github.com/avdushin/pm/internal/prompt"
	"github.com/avdushin/pm/internal/store"
	"github.com/avdushin/pm/internal/treeprint"
	"github.com/avdushin/pm/internal/vault"
)

func (a *App) addCommand() *cli.Command {
	return &cli.Command{
		Name:      "add",
		Usage:     "add a new entry",
		ArgsUsage: "<name>",
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

			e := vault.New(name)

			e.Username, err = prompt.TextOptional("Username")
			if err != nil {
				return err
			}
			e.Password, err = prompt.TextOptional("Password (leave blank to generate)")
			if err != nil {
				return err
			}
			if e.Password == "" {
				policy := genpass.DefaultPolicy()
				if a.cfg.Generator.Length > 0 {
					policy.Length = a.cfg.Generator.Length
				}
				e.Password, err = genpass.Generate(policy)
				if err != nil {
					return err
				}
			}
			e.URL, err = prompt.TextOptional("URL")
			if err != nil {
				return err
			}
			e.Notes, err = prompt.TextOptional("Notes")
			if err != nil {
				return err
			}

			if err := s.Create(mk.Bytes(), e, false); err != nil {
				return err
			}

			logger.New("add").Info().Str("name", name).Msg("entry created")
			fmt.Println("added", name)
			return nil
		},
	}
}

func (a *App) showCommand() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "decrypt and display an entry",
		ArgsUsage: "<name>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "password-only"},
			&cli.BoolFlag{Name: "json"},
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

			if cmd.Bool("password-only") {
				fmt.Println(e.Password)
				return nil
			}
			if cmd.Bool("json") {
				data, err := json.MarshalIndent(e, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(data))
				return nil
			}

			fmt.Printf("title:    %s\n", e.Title)
			fmt.Printf("username: %s\n", e.Username)
			fmt.Printf("password: %s\n", e.Password)
			if e.URL != "" {
				fmt.Printf("url:      %s\n", e.URL)
			}
			if e.Notes != "" {
				fmt.Printf("notes:    %s\n", e.Notes)
			}
			return nil
		},
	}
}

func (a *App) lsCommand() *cli.Command {
	return &cli.Command{
		Name:      "ls",
		Usage:     "list entry names as a tree",
		ArgsUsage: "[prefix]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			prefix := cmd.Args().First()

			s, err := a.openStore()
			if err != nil {
				return err
			}
			names, err := s.List(prefix)
			if err != nil {
				return err
			}

			fmt.Println(treeprint.Render(names))
			return nil
		},
	}
}

func (a *App) rmCommand() *cli.Command {
	return &cli.Command{
		Name:      "rm",
		Usage:     "delete an entry",
		ArgsUsage: "<name>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			name := cmd.Args().First()
			if name == "" {
				return store.ErrInvalidName
			}

			s, err := a.openStore()
			if err != nil {
				return err
			}
			if err := s.Delete(name); err != nil {
				return err
			}

			logger.New("rm").Info().Str("name", name).Msg("entry deleted")
			fmt.Println("removed", name)
			return nil
		},
	}
}
