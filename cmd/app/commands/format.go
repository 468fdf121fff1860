package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/allisson/paymentfields/internal/field/domain"
	"github.com/allisson/paymentfields/internal/field/usecase"
)

// FieldOutput is the result of formatting or validating one value from the command line.
type FieldOutput struct {
	Kind      domain.Kind            `json:"kind"`
	Formatted string                 `json:"formatted"`
	State     domain.ValidationState `json:"state"`
}

// RunFormat prints the display form of text for a field kind.
func RunFormat(
	ctx context.Context,
	useCase usecase.FieldUseCase,
	logger *slog.Logger,
	writer io.Writer,
	kind, text, brand, country, format string,
) error {
	return runField(ctx, useCase, logger, writer, "format", kind, text, brand, country, format)
}

// RunValidate prints the display form of text together with its validation state.
func RunValidate(
	ctx context.Context,
	useCase usecase.FieldUseCase,
	logger *slog.Logger,
	writer io.Writer,
	kind, text, brand, country, format string,
) error {
	return runField(ctx, useCase, logger, writer, "validate", kind, text, brand, country, format)
}

func runField(
	ctx context.Context,
	useCase usecase.FieldUseCase,
	logger *slog.Logger,
	writer io.Writer,
	action, kind, text, brand, country, format string,
) error {
	if err := validateOutputFormat(format); err != nil {
		return err
	}
	k, err := parseKind(kind)
	if err != nil {
		return err
	}
	rules, err := parseRules(brand, country)
	if err != nil {
		return err
	}

	formatted, err := useCase.Format(ctx, k, text, rules)
	if err != nil {
		return fmt.Errorf("failed to format %s: %w", k, err)
	}

	output := FieldOutput{Kind: k, Formatted: formatted.Text}
	if action == "validate" {
		state, err := useCase.Validate(ctx, k, formatted.Text, rules)
		if err != nil {
			return fmt.Errorf("failed to validate %s: %w", k, err)
		}
		output.State = state
	}

	logger.Debug("field processed", slog.String("action", action), slog.String("kind", string(k)))

	if format == "json" {
		if action == "format" {
			return writeJSON(writer, struct {
				Kind      domain.Kind `json:"kind"`
				Formatted string      `json:"formatted"`
			}{k, output.Formatted})
		}
		return writeJSON(writer, output)
	}

	_, _ = fmt.Fprintf(writer, "Formatted: %s\n", output.Formatted)
	if action == "validate" {
		_, _ = fmt.Fprintf(writer, "State: %s\n", output.State)
	}
	return nil
}
