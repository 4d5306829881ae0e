package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/mediport/cmd/app/commands"
	"github.com/allisson/mediport/internal/app"
	"github.com/allisson/mediport/internal/config"
)

func getRecordsCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "patients",
			Usage: "List patients using the saved session",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "search",
					Aliases: []string{"s"},
					Usage:   "Match last name, first name, bed or state",
				},
				&cli.StringFlag{
					Name:    "tab",
					Aliases: []string{"t"},
					Value:   "all",
					Usage:   "Patient group: all, critical or stable",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				patientUseCase, err := container.PatientUseCase()
				if err != nil {
					return err
				}
				sessionStore, err := container.SessionStore()
				if err != nil {
					return err
				}
				client, err := container.APIClient()
				if err != nil {
					return err
				}

				return commands.RunPatients(
					ctx,
					patientUseCase,
					sessionStore,
					client,
					commands.DefaultIO().Writer,
					cmd.String("search"),
					cmd.String("tab"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "medications",
			Usage: "List the medication inventory using the saved session",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "search",
					Aliases: []string{"s"},
					Usage:   "Match code or name",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				medicationUseCase, err := container.MedicationUseCase()
				if err != nil {
					return err
				}
				sessionStore, err := container.SessionStore()
				if err != nil {
					return err
				}
				client, err := container.APIClient()
				if err != nil {
					return err
				}

				return commands.RunMedications(
					ctx,
					medicationUseCase,
					sessionStore,
					client,
					commands.DefaultIO().Writer,
					cmd.String("search"),
					cmd.String("format"),
				)
			},
		},
	}
}
