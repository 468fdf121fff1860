package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/allisson/paymentfields/cmd/app/commands"
	"github.com/allisson/paymentfields/internal/app"
	"github.com/allisson/paymentfields/internal/config"
	"github.com/allisson/paymentfields/internal/field/usecase"
)

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   "text",
		Usage:   "Output format: 'text' or 'json'",
	}
}

func fieldFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "kind",
			Aliases:  []string{"k"},
			Required: true,
			Usage:    "Field kind: card_number, expiry, cvc, bsb, postal_code or phone",
		},
		&cli.StringFlag{
			Name:    "brand",
			Aliases: []string{"b"},
			Usage:   "Card brand for CVC rules (e.g., visa, amex)",
		},
		&cli.StringFlag{
			Name:    "country",
			Aliases: []string{"c"},
			Usage:   "ISO 3166-1 alpha-2 country for postal code and phone rules (defaults to DEFAULT_COUNTRY)",
		},
		formatFlag(),
	}
}

// withFieldUseCase runs fn with the field use case of a fresh container.
func withFieldUseCase(
	ctx context.Context,
	fn func(fieldUseCase usecase.FieldUseCase, container *app.Container) error,
) error {
	cfg := config.Load()
	container := app.NewContainer(cfg)
	defer func() { _ = container.Shutdown(ctx) }()

	fieldUseCase, err := container.FieldUseCase()
	if err != nil {
		return fmt.Errorf("failed to initialize field use case: %w", err)
	}
	return fn(fieldUseCase, container)
}

func getFieldCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:      "format",
			Usage:     "Print the display form of a field value",
			ArgsUsage: "<value>",
			Flags:     fieldFlags(),
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withFieldUseCase(ctx, func(fieldUseCase usecase.FieldUseCase, container *app.Container) error {
					return commands.RunFormat(
						ctx,
						fieldUseCase,
						container.Logger(),
						commands.DefaultIO().Writer,
						cmd.String("kind"),
						cmd.Args().First(),
						cmd.String("brand"),
						cmd.String("country"),
						cmd.String("format"),
					)
				})
			},
		},
		{
			Name:      "validate",
			Usage:     "Print the display form and validation state of a field value",
			ArgsUsage: "<value>",
			Flags:     fieldFlags(),
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withFieldUseCase(ctx, func(fieldUseCase usecase.FieldUseCase, container *app.Container) error {
					return commands.RunValidate(
						ctx,
						fieldUseCase,
						container.Logger(),
						commands.DefaultIO().Writer,
						cmd.String("kind"),
						cmd.Args().First(),
						cmd.String("brand"),
						cmd.String("country"),
						cmd.String("format"),
					)
				})
			},
		},
		{
			Name:      "simulate",
			Usage:     "Type keys into an empty field one at a time ('<' is backspace)",
			ArgsUsage: "<keys>",
			Flags:     fieldFlags(),
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withFieldUseCase(ctx, func(fieldUseCase usecase.FieldUseCase, container *app.Container) error {
					return commands.RunSimulate(
						ctx,
						fieldUseCase,
						container.Logger(),
						commands.DefaultIO().Writer,
						cmd.String("kind"),
						cmd.Args().First(),
						cmd.String("brand"),
						cmd.String("country"),
						cmd.String("format"),
					)
				})
			},
		},
		{
			Name:  "brands",
			Usage: "List the supported card brands",
			Flags: []cli.Flag{formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withFieldUseCase(ctx, func(fieldUseCase usecase.FieldUseCase, container *app.Container) error {
					return commands.RunListBrands(
						ctx,
						fieldUseCase,
						container.Logger(),
						commands.DefaultIO().Writer,
						cmd.String("format"),
					)
				})
			},
		},
		{
			Name:  "countries",
			Usage: "List the countries with postal code and phone rules",
			Flags: []cli.Flag{formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withFieldUseCase(ctx, func(fieldUseCase usecase.FieldUseCase, container *app.Container) error {
					return commands.RunListCountries(
						ctx,
						fieldUseCase,
						container.Logger(),
						commands.DefaultIO().Writer,
						cmd.String("format"),
					)
				})
			},
		},
	}
}
