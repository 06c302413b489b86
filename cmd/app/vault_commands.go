package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/legacyvault/cmd/app/commands"
	"github.com/allisson/legacyvault/internal/app"
	"github.com/allisson/legacyvault/internal/config"
)

// vaultAction builds the container, resolves the vault dependencies and runs fn.
func vaultAction(
	fn func(ctx context.Context, cmd *cli.Command, deps commands.VaultDeps) error,
) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		cfg := config.Load()
		container := app.NewContainer(cfg)
		defer func() { _ = container.Shutdown(ctx) }()

		keyStore, err := container.DeviceKeyStore()
		if err != nil {
			return err
		}

		stdio := commands.DefaultIO()
		return fn(ctx, cmd, commands.VaultDeps{
			Vault:    container.Vault(),
			KeyStore: keyStore,
			Logger:   container.Logger(),
			Writer:   stdio.Writer,
			Reader:   stdio.Reader,
		})
	}
}

func idFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "id",
		Aliases:  []string{"i"},
		Required: true,
		Usage:    "Document id",
	}
}

func getVaultCommand() *cli.Command {
	return &cli.Command{
		Name:  "vault",
		Usage: "Manage the offline document vault on this device",
		Commands: []*cli.Command{
			{
				Name:  "add",
				Usage: "Encrypt a file into the vault",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "file",
						Required: true,
						Usage:    "Path of the file to store, or - to read stdin",
					},
					&cli.StringFlag{
						Name:    "id",
						Aliases: []string{"i"},
						Usage:   "Document id (generated when omitted; an existing id is replaced)",
					},
					&cli.StringFlag{
						Name:  "type",
						Usage: "Document type (e.g., legal, medical)",
					},
					&cli.StringSliceFlag{
						Name:  "tag",
						Usage: "Tag to attach, repeatable",
					},
					formatFlag(),
				},
				Action: vaultAction(func(ctx context.Context, cmd *cli.Command, deps commands.VaultDeps) error {
					return commands.RunVaultAdd(
						ctx,
						deps,
						cmd.String("file"),
						cmd.String("id"),
						cmd.String("type"),
						cmd.StringSlice("tag"),
						cmd.String("format"),
					)
				}),
			},
			{
				Name:  "get",
				Usage: "Decrypt a document",
				Flags: []cli.Flag{
					idFlag(),
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Write the content to this file instead of stdout",
					},
					formatFlag(),
				},
				Action: vaultAction(func(ctx context.Context, cmd *cli.Command, deps commands.VaultDeps) error {
					return commands.RunVaultGet(ctx, deps, cmd.String("id"), cmd.String("output"), cmd.String("format"))
				}),
			},
			{
				Name:  "list",
				Usage: "List documents without their content",
				Flags: []cli.Flag{formatFlag()},
				Action: vaultAction(func(ctx context.Context, cmd *cli.Command, deps commands.VaultDeps) error {
					return commands.RunVaultList(ctx, deps, cmd.String("format"))
				}),
			},
			{
				Name:  "remove",
				Usage: "Remove a document",
				Flags: []cli.Flag{idFlag(), formatFlag()},
				Action: vaultAction(func(ctx context.Context, cmd *cli.Command, deps commands.VaultDeps) error {
					return commands.RunVaultRemove(ctx, deps, cmd.String("id"), cmd.String("format"))
				}),
			},
			{
				Name:  "clear",
				Usage: "Remove every document",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "yes",
						Usage: "Confirm removal of every document",
					},
					formatFlag(),
				},
				Action: vaultAction(func(ctx context.Context, cmd *cli.Command, deps commands.VaultDeps) error {
					return commands.RunVaultClear(ctx, deps, cmd.Bool("yes"), cmd.String("format"))
				}),
			},
			{
				Name:  "stats",
				Usage: "Show the document count and total size",
				Flags: []cli.Flag{formatFlag()},
				Action: vaultAction(func(ctx context.Context, cmd *cli.Command, deps commands.VaultDeps) error {
					return commands.RunVaultStats(ctx, deps, cmd.String("format"))
				}),
			},
		},
	}
}
