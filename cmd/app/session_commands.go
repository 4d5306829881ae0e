package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/mediport/cmd/app/commands"
	"github.com/allisson/mediport/internal/app"
	"github.com/allisson/mediport/internal/config"
)

func getSessionCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "login",
			Usage: "Log in against the remote API and save the session locally",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "username",
					Aliases:  []string{"u"},
					Required: true,
					Usage:    "Operator login name",
				},
				&cli.StringFlag{
					Name:    "password",
					Aliases: []string{"p"},
					Sources: cli.EnvVars("MEDIPORT_PASSWORD"),
					Usage:   "Operator password (omit to be prompted)",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				client, err := container.APIClient()
				if err != nil {
					return err
				}
				sessionStore, err := container.SessionStore()
				if err != nil {
					return err
				}

				return commands.RunLogin(
					ctx,
					client,
					container.Policy(),
					sessionStore,
					container.Logger(),
					commands.DefaultIO(),
					cmd.String("username"),
					cmd.String("password"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "logout",
			Usage: "Forget the locally saved session",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				sessionStore, err := container.SessionStore()
				if err != nil {
					return err
				}

				return commands.RunLogout(ctx, sessionStore, commands.DefaultIO().Writer)
			},
		},
		{
			Name:  "whoami",
			Usage: "Print the operator of the saved session and their capabilities",
			Flags: []cli.Flag{formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				sessionStore, err := container.SessionStore()
				if err != nil {
					return err
				}

				return commands.RunWhoAmI(
					ctx,
					sessionStore,
					container.Policy(),
					commands.DefaultIO().Writer,
					cmd.String("format"),
				)
			},
		},
	}
}
