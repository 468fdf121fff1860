package usecase

import (
	"context"
	"time"

	"github.com/allisson/paymentfields/internal/field/domain"
	"github.com/allisson/paymentfields/internal/field/metadata"
	"github.com/allisson/paymentfields/internal/field/service"
)

// fieldUseCase implements FieldUseCase on top of a FieldSet sharing one catalog.
type fieldUseCase struct {
	fields         service.FieldSet
	catalog        *metadata.Catalog
	defaultCountry string
	now            func() time.Time
}

// NewFieldUseCase creates a FieldUseCase. defaultCountry applies to calls that do not
// name a country.
func NewFieldUseCase(catalog *metadata.Catalog, defaultCountry string) FieldUseCase {
	return &fieldUseCase{
		fields:         service.NewFieldSet(catalog),
		catalog:        catalog,
		defaultCountry: domain.NormalizeCountryCode(defaultCountry),
		now:            time.Now,
	}
}

// rulesFor completes the rules of a call. Card numbers govern their own brand.
func (f *fieldUseCase) rulesFor(kind domain.Kind, text string, rules domain.Rules) domain.Rules {
	if rules.Country == "" {
		rules.Country = f.defaultCountry
	} else {
		rules.Country = domain.NormalizeCountryCode(rules.Country)
	}
	if rules.Now.IsZero() {
		rules.Now = f.now()
	}
	if kind == domain.KindCardNumber {
		rules.Brand = f.catalog.DetectBrand(service.Digits(text))
	}
	return rules
}

// ApplyEdit resolves separator deletions, checks the edit and reformats the committed text.
func (f *fieldUseCase) ApplyEdit(
	ctx context.Context,
	kind domain.Kind,
	edit domain.Edit,
	rules domain.Rules,
) (*domain.EditResult, error) {
	field, err := f.fields.Get(kind)
	if err != nil {
		return nil, err
	}

	edit = service.ResolveEdit(edit)
	proposedRules := f.rulesFor(kind, edit.Proposed(), rules)

	text := edit.Existing
	allowed := field.IsAllowedInput(edit, proposedRules)
	if allowed {
		text = edit.Proposed()
	}

	rules = f.rulesFor(kind, text, rules)
	formatted := field.Format(text, rules)
	_, caption := service.Describe(f.catalog, kind, formatted.Text, rules)

	return &domain.EditResult{
		Kind:      kind,
		Allowed:   allowed,
		Formatted: formatted,
		State:     field.ValidationState(formatted.Text, rules),
		Brand:     rules.Brand,
		Caption:   caption,
	}, nil
}

// NewSession opens an editing session on an empty field with the rules of the call
// completed as ApplyEdit completes them.
func (f *fieldUseCase) NewSession(ctx context.Context, kind domain.Kind, rules domain.Rules) (*service.Session, error) {
	return service.NewCatalogSession(kind, f.catalog, f.rulesFor(kind, "", rules))
}

// Format returns the display form of text.
func (f *fieldUseCase) Format(
	ctx context.Context,
	kind domain.Kind,
	text string,
	rules domain.Rules,
) (domain.FormattedText, error) {
	field, err := f.fields.Get(kind)
	if err != nil {
		return domain.FormattedText{}, err
	}
	return field.Format(text, f.rulesFor(kind, text, rules)), nil
}

// Validate classifies text under the rules.
func (f *fieldUseCase) Validate(
	ctx context.Context,
	kind domain.Kind,
	text string,
	rules domain.Rules,
) (domain.ValidationState, error) {
	field, err := f.fields.Get(kind)
	if err != nil {
		return domain.ValidationState{}, err
	}
	return field.ValidationState(text, f.rulesFor(kind, text, rules)), nil
}

// ValidateForm validates all fields of a form. Card number, expiry and CVC are always
// required; the postal code is required when the country uses one; BSB and phone only
// block submission when filled in incorrectly.
func (f *fieldUseCase) ValidateForm(ctx context.Context, form *domain.Form) (*domain.FormResult, error) {
	if form == nil {
		return nil, domain.ErrInvalidForm
	}

	rules := f.rulesFor(domain.KindCardNumber, form.CardNumber, domain.Rules{Country: form.Country})
	country, _ := f.catalog.Country(rules.Country)

	values := map[domain.Kind]string{
		domain.KindCardNumber: form.CardNumber,
		domain.KindExpiry:     form.Expiry,
		domain.KindCVC:        form.CVC,
		domain.KindPostalCode: form.PostalCode,
		domain.KindBSB:        form.BSB,
		domain.KindPhone:      form.Phone,
	}

	result := &domain.FormResult{
		Brand:   rules.Brand,
		Country: rules.Country,
		States:  make(map[domain.Kind]domain.ValidationState, len(values)),
		Required: map[domain.Kind]bool{
			domain.KindCardNumber: true,
			domain.KindExpiry:     true,
			domain.KindCVC:        true,
			domain.KindPostalCode: country.PostalCode.Required,
		},
	}
	for kind, text := range values {
		field, err := f.fields.Get(kind)
		if err != nil {
			return nil, err
		}
		result.States[kind] = field.ValidationState(text, rules)
	}
	result.CanSubmit = len(result.Blocking(result.Required)) == 0

	return result, nil
}

// DetectBrand returns the rule of the brand owning number.
func (f *fieldUseCase) DetectBrand(ctx context.Context, number string) (domain.BrandRule, error) {
	digits := service.StripSeparators(number)
	if !service.IsDigits(digits) {
		return domain.BrandRule{}, domain.ErrInvalidCardNumber
	}
	return f.catalog.BrandRule(f.catalog.DetectBrand(digits)), nil
}

// ListBrands returns every known brand rule.
func (f *fieldUseCase) ListBrands(ctx context.Context) ([]domain.BrandRule, error) {
	return f.catalog.Brands(), nil
}

// ListCountries returns every country rule of the catalog.
func (f *fieldUseCase) ListCountries(ctx context.Context) ([]domain.CountryRule, error) {
	return f.catalog.Countries(), nil
}

// GetCountry returns the rule of one country code or alias.
func (f *fieldUseCase) GetCountry(ctx context.Context, code string) (domain.CountryRule, error) {
	rule, ok := f.catalog.Country(code)
	if !ok {
		return domain.CountryRule{}, domain.ErrUnknownCountry
	}
	return rule, nil
}
