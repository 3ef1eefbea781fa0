package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/sealbox/cmd/app/commands"
	"github.com/allisson/sealbox/internal/app"
	"github.com/allisson/sealbox/internal/config"
)

func getRecordCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "encrypt",
			Usage: "Encrypt a JSON payload into a secure record using MASTER_KEY",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "party-id",
					Aliases:  []string{"p"},
					Required: true,
					Usage:    "Party identifier stored with the record",
				},
				&cli.StringFlag{
					Name:    "payload",
					Aliases: []string{"d"},
					Usage:   "JSON payload to encrypt (read from stdin when omitted)",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				envelope, err := container.Envelope()
				if err != nil {
					return err
				}

				return commands.RunEncrypt(
					ctx,
					envelope,
					container.Logger(),
					commands.DefaultIO(),
					cmd.String("party-id"),
					cmd.String("payload"),
				)
			},
		},
		{
			Name:  "decrypt",
			Usage: "Decrypt a secure record and print its JSON payload",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "record",
					Aliases: []string{"r"},
					Usage:   "Secure record JSON (read from stdin when omitted)",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				envelope, err := container.Envelope()
				if err != nil {
					return err
				}

				return commands.RunDecrypt(
					ctx,
					envelope,
					container.Logger(),
					commands.DefaultIO(),
					cmd.String("record"),
				)
			},
		},
	}
}
