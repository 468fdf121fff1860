// Package commands contains CLI command implementations for the application.
package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	validation "github.com/jellydator/validation"

	"github.com/allisson/paymentfields/internal/app"
	"github.com/allisson/paymentfields/internal/field/domain"
	customValidation "github.com/allisson/paymentfields/internal/validation"
)

// IOTuple holds reader and writer for commands, allowing for testing.
type IOTuple struct {
	Reader io.Reader
	Writer io.Writer
}

// DefaultIO returns an IOTuple with os.Stdin and os.Stdout.
func DefaultIO() IOTuple {
	return IOTuple{
		Reader: os.Stdin,
		Writer: os.Stdout,
	}
}

// closeContainer closes all resources in the container and logs any errors.
func closeContainer(container *app.Container, logger *slog.Logger) {
	if err := container.Shutdown(context.Background()); err != nil {
		logger.Error("failed to shutdown container", slog.Any("error", err))
	}
}

// validateOutputFormat rejects anything other than text or json.
func validateOutputFormat(format string) error {
	if format != "text" && format != "json" {
		return fmt.Errorf("invalid output format: %s (valid options: text, json)", format)
	}
	return nil
}

// parseKind converts a kind flag into a field kind.
func parseKind(kind string) (domain.Kind, error) {
	if err := validation.Validate(kind, validation.Required, customValidation.FieldKind); err != nil {
		return "", fmt.Errorf(
			"invalid field kind: %q (valid options: card_number, expiry, cvc, bsb, postal_code, phone)",
			kind,
		)
	}
	return domain.Kind(kind), nil
}

// parseRules builds the rules in force from the brand and country flags. Empty flags leave
// the use case defaults in place.
func parseRules(brand, country string) (domain.Rules, error) {
	if err := validation.Validate(brand, customValidation.CardBrand); err != nil {
		return domain.Rules{}, fmt.Errorf("invalid brand: %w", err)
	}
	if err := validation.Validate(country, customValidation.CountryCode); err != nil {
		return domain.Rules{}, fmt.Errorf("invalid country: %w", err)
	}

	b, err := domain.ParseBrand(brand)
	if err != nil {
		return domain.Rules{}, err
	}
	return domain.Rules{Brand: b, Country: domain.NormalizeCountryCode(country)}, nil
}

// writeJSON writes v as indented JSON followed by a newline.
func writeJSON(writer io.Writer, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, _ = fmt.Fprintln(writer, string(jsonBytes))
	return nil
}
