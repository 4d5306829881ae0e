package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/mediport/cmd/app/commands"
	rbacDomain "github.com/allisson/mediport/internal/rbac/domain"
)

func getRBACCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "roles",
			Usage: "Print the role to capability table",
			Flags: []cli.Flag{formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunRoles(rbacDomain.DefaultPolicy(), commands.DefaultIO().Writer, cmd.String("format"))
			},
		},
		{
			Name:  "check-permission",
			Usage: "Evaluate a capability requirement against a role",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "role",
					Aliases:  []string{"r"},
					Required: true,
					Usage:    "Role to evaluate (e.g., Nurse)",
				},
				&cli.StringSliceFlag{
					Name:    "capability",
					Aliases: []string{"c"},
					Usage:   "Capability to require, repeatable",
				},
				&cli.StringFlag{
					Name:    "mode",
					Aliases: []string{"m"},
					Value:   "single",
					Usage:   "How capabilities combine: single, any or all",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunCheckPermission(
					rbacDomain.DefaultPolicy(),
					commands.DefaultIO().Writer,
					cmd.String("role"),
					cmd.StringSlice("capability"),
					cmd.String("mode"),
					cmd.String("format"),
				)
			},
		},
	}
}
