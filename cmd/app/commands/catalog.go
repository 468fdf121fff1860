package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/allisson/paymentfields/internal/field/usecase"
)

// RunListBrands prints every card brand the engine recognizes.
func RunListBrands(
	ctx context.Context,
	useCase usecase.FieldUseCase,
	logger *slog.Logger,
	writer io.Writer,
	format string,
) error {
	if err := validateOutputFormat(format); err != nil {
		return err
	}

	brands, err := useCase.ListBrands(ctx)
	if err != nil {
		return fmt.Errorf("failed to list brands: %w", err)
	}
	logger.Debug("brands listed", slog.Int("count", len(brands)))

	if format == "json" {
		return writeJSON(writer, brands)
	}

	for _, b := range brands {
		_, _ = fmt.Fprintf(writer, "%-12s %-18s lengths=%s cvc=%d\n",
			b.Brand, b.DisplayName, joinInts(b.Lengths), b.CVCLength)
	}
	return nil
}

// RunListCountries prints the postal code and phone rules of every catalog country.
func RunListCountries(
	ctx context.Context,
	useCase usecase.FieldUseCase,
	logger *slog.Logger,
	writer io.Writer,
	format string,
) error {
	if err := validateOutputFormat(format); err != nil {
		return err
	}

	countries, err := useCase.ListCountries(ctx)
	if err != nil {
		return fmt.Errorf("failed to list countries: %w", err)
	}
	logger.Debug("countries listed", slog.Int("count", len(countries)))

	if format == "json" {
		return writeJSON(writer, countries)
	}

	for _, c := range countries {
		postal := strings.Join(c.PostalCode.Shapes, ",")
		if postal == "" {
			postal = "-"
		}
		phone := c.Phone.Template
		if phone == "" {
			phone = "-"
		}
		_, _ = fmt.Fprintf(writer, "%-3s %-24s postal=%s phone=%s\n", c.Code, c.Name, postal, phone)
	}
	return nil
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, ",")
}
