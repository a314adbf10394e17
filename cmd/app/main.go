// Package main provides the entry point for the application with CLI commands.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/allisson/fieldvault/cmd/app/commands"
	"github.com/allisson/fieldvault/internal/app"
	"github.com/allisson/fieldvault/internal/config"
)

func main() {
	cfg := config.Load()
	container := app.NewContainer(cfg)
	logger := container.Logger()

	cmd := &cli.Command{
		Name:    "fieldvault",
		Usage:   "Field-level encryption vault for sensitive record fields",
		Version: "1.0.0",
		Commands: []*cli.Command{
			{
				Name:  "keygen",
				Usage: "Generate a new master key for field encryption",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunKeygen(os.Stdout, cfg.VaultKeyEnvName)
				},
			},
			{
				Name:  "migrate",
				Usage: "Run database migrations",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunMigrations(logger, cfg.DBDriver, cfg.DBConnectionString)
				},
			},
			{
				Name:  "protect",
				Usage: "Encrypt the protected fields of a JSON record",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "input",
						Aliases: []string{"i"},
						Value:   "-",
						Usage:   "Path to the JSON record ('-' for stdin)",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					protector, err := container.FieldProtector()
					if err != nil {
						return err
					}
					return commands.RunProtect(protector, commands.DefaultIO(), cmd.String("input"))
				},
			},
			{
				Name:  "reveal",
				Usage: "Decrypt the protected fields of a JSON record",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "input",
						Aliases: []string{"i"},
						Value:   "-",
						Usage:   "Path to the JSON record ('-' for stdin)",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					protector, err := container.FieldProtector()
					if err != nil {
						return err
					}
					return commands.RunReveal(protector, commands.DefaultIO(), cmd.String("input"))
				},
			},
			{
				Name:  "store",
				Usage: "Seal a JSON record's protected fields and store it under a name",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "name",
						Aliases:  []string{"n"},
						Required: true,
						Usage:    "Record name (unique among active records)",
					},
					&cli.StringFlag{
						Name:    "input",
						Aliases: []string{"i"},
						Value:   "-",
						Usage:   "Path to the JSON record ('-' for stdin)",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					useCase, err := container.RecordUseCase()
					if err != nil {
						return err
					}
					return commands.RunStoreRecord(
						ctx,
						useCase,
						logger,
						commands.DefaultIO(),
						cmd.String("name"),
						cmd.String("input"),
					)
				},
			},
			{
				Name:  "get",
				Usage: "Retrieve a stored record by name",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "name",
						Aliases:  []string{"n"},
						Required: true,
						Usage:    "Record name",
					},
					&cli.BoolFlag{
						Name:    "sealed",
						Aliases: []string{"s"},
						Value:   false,
						Usage:   "Output protected fields as stored envelopes instead of decrypting",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					useCase, err := container.RecordUseCase()
					if err != nil {
						return err
					}
					return commands.RunGetRecord(
						ctx,
						useCase,
						commands.DefaultIO(),
						cmd.String("name"),
						cmd.Bool("sealed"),
					)
				},
			},
			{
				Name:  "delete",
				Usage: "Soft delete a stored record by name",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "name",
						Aliases:  []string{"n"},
						Required: true,
						Usage:    "Record name",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					useCase, err := container.RecordUseCase()
					if err != nil {
						return err
					}
					return commands.RunDeleteRecord(ctx, useCase, logger, cmd.String("name"))
				},
			},
		},
	}

	err := cmd.Run(context.Background(), os.Args)

	if shutdownErr := container.Shutdown(context.Background()); shutdownErr != nil {
		logger.Error("failed to shutdown container", slog.Any("error", shutdownErr))
	}

	if err != nil {
		logger.Error("application error", slog.Any("error", err))
		os.Exit(1)
	}
}
