package usecase

import (
	"context"
	"time"

	"github.com/allisson/paymentfields/internal/field/domain"
	"github.com/allisson/paymentfields/internal/field/service"
	"github.com/allisson/paymentfields/internal/metrics"
)

const (
	statusSuccess  = "success"
	statusError    = "error"
	statusRejected = "rejected"
)

// fieldUseCaseWithMetrics decorates FieldUseCase with metrics instrumentation.
type fieldUseCaseWithMetrics struct {
	next    FieldUseCase
	metrics metrics.FieldMetrics
}

// NewFieldUseCaseWithMetrics wraps a FieldUseCase with metrics recording.
func NewFieldUseCaseWithMetrics(useCase FieldUseCase, m metrics.FieldMetrics) FieldUseCase {
	return &fieldUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (f *fieldUseCaseWithMetrics) record(ctx context.Context, operation, kind, status string, start time.Time) {
	f.metrics.RecordOperation(ctx, operation, kind, status)
	f.metrics.RecordDuration(ctx, operation, kind, time.Since(start), status)
}

// ApplyEdit records the resulting state, or "rejected" when the edit was refused.
func (f *fieldUseCaseWithMetrics) ApplyEdit(
	ctx context.Context,
	kind domain.Kind,
	edit domain.Edit,
	rules domain.Rules,
) (*domain.EditResult, error) {
	start := time.Now()
	result, err := f.next.ApplyEdit(ctx, kind, edit, rules)

	status := statusError
	if err == nil {
		status = string(result.State.Status)
		if !result.Allowed {
			status = statusRejected
		}
	}

	f.record(ctx, "apply_edit", kind.String(), status, start)
	return result, err
}

// NewSession records the opening of the session only; edits made through it run
// in-process and are not recorded.
func (f *fieldUseCaseWithMetrics) NewSession(
	ctx context.Context,
	kind domain.Kind,
	rules domain.Rules,
) (*service.Session, error) {
	start := time.Now()
	session, err := f.next.NewSession(ctx, kind, rules)

	status := statusSuccess
	if err != nil {
		status = statusError
	}

	f.record(ctx, "new_session", kind.String(), status, start)
	return session, err
}

func (f *fieldUseCaseWithMetrics) Format(
	ctx context.Context,
	kind domain.Kind,
	text string,
	rules domain.Rules,
) (domain.FormattedText, error) {
	start := time.Now()
	formatted, err := f.next.Format(ctx, kind, text, rules)

	status := statusSuccess
	if err != nil {
		status = statusError
	}

	f.record(ctx, "format", kind.String(), status, start)
	return formatted, err
}

// Validate records the validation status as the operation status.
func (f *fieldUseCaseWithMetrics) Validate(
	ctx context.Context,
	kind domain.Kind,
	text string,
	rules domain.Rules,
) (domain.ValidationState, error) {
	start := time.Now()
	state, err := f.next.Validate(ctx, kind, text, rules)

	status := string(state.Status)
	if err != nil {
		status = statusError
	}

	f.record(ctx, "validate", kind.String(), status, start)
	return state, err
}

// ValidateForm records "valid" for submittable forms and "invalid" otherwise.
func (f *fieldUseCaseWithMetrics) ValidateForm(ctx context.Context, form *domain.Form) (*domain.FormResult, error) {
	start := time.Now()
	result, err := f.next.ValidateForm(ctx, form)

	status := statusError
	if err == nil {
		status = string(domain.StatusInvalid)
		if result.CanSubmit {
			status = string(domain.StatusValid)
		}
	}

	f.record(ctx, "validate_form", "form", status, start)
	return result, err
}

func (f *fieldUseCaseWithMetrics) DetectBrand(ctx context.Context, number string) (domain.BrandRule, error) {
	start := time.Now()
	rule, err := f.next.DetectBrand(ctx, number)

	status := statusSuccess
	if err != nil {
		status = statusError
	}

	f.record(ctx, "detect_brand", domain.KindCardNumber.String(), status, start)
	return rule, err
}

func (f *fieldUseCaseWithMetrics) ListBrands(ctx context.Context) ([]domain.BrandRule, error) {
	start := time.Now()
	brands, err := f.next.ListBrands(ctx)

	status := statusSuccess
	if err != nil {
		status = statusError
	}

	f.record(ctx, "list_brands", "brand", status, start)
	return brands, err
}

func (f *fieldUseCaseWithMetrics) ListCountries(ctx context.Context) ([]domain.CountryRule, error) {
	start := time.Now()
	countries, err := f.next.ListCountries(ctx)

	status := statusSuccess
	if err != nil {
		status = statusError
	}

	f.record(ctx, "list_countries", "country", status, start)
	return countries, err
}

func (f *fieldUseCaseWithMetrics) GetCountry(ctx context.Context, code string) (domain.CountryRule, error) {
	start := time.Now()
	country, err := f.next.GetCountry(ctx, code)

	status := statusSuccess
	if err != nil {
		status = statusError
	}

	f.record(ctx, "get_country", "country", status, start)
	return country, err
}
