package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/allisson/paymentfields/internal/field/domain"
	"github.com/allisson/paymentfields/internal/field/usecase"
)

// BackspaceKey is the keystroke that deletes the last character during a simulation.
const BackspaceKey = '<'

// SimulationStep is the field after one keystroke.
type SimulationStep struct {
	Key       string                 `json:"key"`
	Allowed   bool                   `json:"allowed"`
	Formatted string                 `json:"formatted"`
	State     domain.ValidationState `json:"state"`
	Brand     domain.Brand           `json:"brand,omitempty"`
	Caption   string                 `json:"caption,omitempty"`
}

// RunSimulate types keys into an editing session one at a time, the way a user at a
// keyboard would, and prints what the field shows after each keystroke. Rejected
// keystrokes leave the text unchanged.
func RunSimulate(
	ctx context.Context,
	useCase usecase.FieldUseCase,
	logger *slog.Logger,
	writer io.Writer,
	kind, keys, brand, country, format string,
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

	session, err := useCase.NewSession(ctx, k, rules)
	if err != nil {
		return fmt.Errorf("failed to open %s session: %w", k, err)
	}

	var steps []SimulationStep
	for _, key := range keys {
		label := string(key)
		var allowed bool
		if key == BackspaceKey {
			if session.Text() == "" {
				continue
			}
			label = "backspace"
			allowed = session.Backspace()
		} else {
			allowed = session.Type(label)
		}

		steps = append(steps, SimulationStep{
			Key:       label,
			Allowed:   allowed,
			Formatted: session.Text(),
			State:     session.State(),
			Brand:     session.Brand(),
			Caption:   session.Caption(),
		})
	}

	logger.Debug("simulation completed", slog.String("kind", string(k)), slog.Int("steps", len(steps)))

	if format == "json" {
		if steps == nil {
			steps = []SimulationStep{}
		}
		return writeJSON(writer, steps)
	}

	for i, step := range steps {
		mark := "+"
		if !step.Allowed {
			mark = "x"
		}
		_, _ = fmt.Fprintf(writer, "%3d %s %-10s %-24q %s", i+1, mark, step.Key, step.Formatted, step.State)
		if step.Caption != "" {
			_, _ = fmt.Fprintf(writer, " [%s]", step.Caption)
		}
		_, _ = fmt.Fprintln(writer)
	}
	return nil
}
