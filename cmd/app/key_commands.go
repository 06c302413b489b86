package main

import (
	"context"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/allisson/legacyvault/cmd/app/commands"
	"github.com/allisson/legacyvault/internal/app"
	"github.com/allisson/legacyvault/internal/config"
)

func getKeyCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "create-device-key",
			Usage: "Create the offline vault device key, wrapped by VAULT_KEY_KEEPER_URI",
			Flags: []cli.Flag{formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				keyStore, err := container.DeviceKeyStore()
				if err != nil {
					return err
				}

				return commands.RunCreateDeviceKey(
					ctx,
					keyStore,
					container.Logger(),
					commands.DefaultIO().Writer,
					cfg.VaultKeyPath,
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "issue-token",
			Usage: "Issue a bearer token for the key API",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "user-id",
					Aliases:  []string{"u"},
					Required: true,
					Usage:    "User id placed in the token subject",
				},
				&cli.DurationFlag{
					Name:    "ttl",
					Aliases: []string{"t"},
					Value:   time.Hour,
					Usage:   "Token lifetime (e.g., 15m, 24h)",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				tokenService, err := container.TokenService()
				if err != nil {
					return err
				}

				return commands.RunIssueToken(
					tokenService,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("user-id"),
					cmd.Duration("ttl"),
					cmd.String("format"),
				)
			},
		},
	}
}
