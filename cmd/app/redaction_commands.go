package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/redactor/cmd/app/commands"
	"github.com/allisson/redactor/internal/app"
	"github.com/allisson/redactor/internal/config"
)

func getRedactionCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "redact",
			Usage: "Redact PII from a document",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "path",
					Aliases:  []string{"p"},
					Required: true,
					Usage:    "Path of the document to redact",
				},
				&cli.BoolFlag{
					Name:  "deep-scan",
					Usage: "Run the detection service's deep-scan language model pass",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				useCase, err := container.RedactionUseCase()
				if err != nil {
					return err
				}

				monitor, err := container.HealthMonitor()
				if err != nil {
					return err
				}

				deepScan := cfg.DeepScanEnabled || cmd.Bool("deep-scan")

				return commands.RunRedact(
					ctx,
					useCase,
					monitor,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("path"),
					deepScan,
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "restore",
			Usage: "Restore a redacted document to its original values",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "document",
					Aliases:  []string{"d"},
					Required: true,
					Usage:    "Name of the redacted document to restore",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				useCase, err := container.RestorationUseCase()
				if err != nil {
					return err
				}

				monitor, err := container.HealthMonitor()
				if err != nil {
					return err
				}

				return commands.RunRestore(
					ctx,
					useCase,
					monitor,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("document"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "redact-inline",
			Usage: "Redact a text fragment and merge its tokens into a document's map",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "document",
					Aliases:  []string{"d"},
					Required: true,
					Usage:    "Name of the document the fragment belongs to",
				},
				&cli.StringFlag{
					Name:    "text",
					Aliases: []string{"t"},
					Usage:   "Fragment text to redact (omit to read from stdin)",
				},
				&cli.BoolFlag{
					Name:  "deep-scan",
					Usage: "Run the detection service's deep-scan language model pass",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				useCase, err := container.InlineUseCase()
				if err != nil {
					return err
				}

				monitor, err := container.HealthMonitor()
				if err != nil {
					return err
				}

				deepScan := cfg.DeepScanEnabled || cmd.Bool("deep-scan")
				io := commands.DefaultIO()

				return commands.RunRedactInline(
					ctx,
					useCase,
					monitor,
					container.Logger(),
					io.Reader,
					io.Writer,
					cmd.String("document"),
					cmd.String("text"),
					deepScan,
					cmd.String("format"),
				)
			},
		},
	}
}
