// Package service implements the per-field sanitizers, formatters and validators of the
// payment field engine. Every operation is a pure function of its inputs and the shared
// read-only catalog; none of them fail, malformed input yields a rejected edit, an
// unformatted pass-through or an invalid state.
package service

import (
	"github.com/allisson/paymentfields/internal/field/domain"
)

// Field formats and validates one kind of payment form field.
type Field interface {
	// Kind returns the field kind handled.
	Kind() domain.Kind

	// IsAllowedInput decides whether the edit may be committed under the rules.
	// Deletions are always allowed.
	IsAllowedInput(edit domain.Edit, rules domain.Rules) bool

	// Format returns the display form of text with separators and style hints.
	// Text that cannot be interpreted is returned unchanged.
	Format(text string, rules domain.Rules) domain.FormattedText

	// ValidationState classifies text under the rules.
	ValidationState(text string, rules domain.Rules) domain.ValidationState
}
