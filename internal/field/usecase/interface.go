// Package usecase orchestrates the field engine: it selects the rules in force for a call
// (detected brand, requested or default country), runs the per-kind field implementation
// and evaluates whole checkout forms.
package usecase

import (
	"context"

	"github.com/allisson/paymentfields/internal/field/domain"
	"github.com/allisson/paymentfields/internal/field/service"
)

// FieldUseCase defines the operations exposed by the payment field engine.
type FieldUseCase interface {
	// ApplyEdit decides whether an edit may be committed and returns the resulting display
	// text and validation state. Card numbers always use the brand detected from their own
	// digits; other kinds use the brand and country in rules.
	ApplyEdit(ctx context.Context, kind domain.Kind, edit domain.Edit, rules domain.Rules) (*domain.EditResult, error)

	// NewSession opens an editing session on an empty field. The session keeps the
	// displayed text between edits and applies them the way ApplyEdit does.
	NewSession(ctx context.Context, kind domain.Kind, rules domain.Rules) (*service.Session, error)

	// Format returns the display form of text.
	Format(ctx context.Context, kind domain.Kind, text string, rules domain.Rules) (domain.FormattedText, error)

	// Validate classifies text under the rules.
	Validate(ctx context.Context, kind domain.Kind, text string, rules domain.Rules) (domain.ValidationState, error)

	// ValidateForm validates every field of a checkout form against the brand detected
	// from the card number and the form's country, and decides whether it can be submitted.
	ValidateForm(ctx context.Context, form *domain.Form) (*domain.FormResult, error)

	// DetectBrand returns the rule of the brand owning a (possibly partial) card number.
	DetectBrand(ctx context.Context, number string) (domain.BrandRule, error)

	// ListBrands returns every known brand rule.
	ListBrands(ctx context.Context) ([]domain.BrandRule, error)

	// ListCountries returns every country rule of the catalog.
	ListCountries(ctx context.Context) ([]domain.CountryRule, error)

	// GetCountry returns the rule of one country code or alias.
	GetCountry(ctx context.Context, code string) (domain.CountryRule, error)
}
