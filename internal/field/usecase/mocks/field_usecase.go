// Package mocks provides testify mocks of the field use case interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/allisson/paymentfields/internal/field/domain"
	"github.com/allisson/paymentfields/internal/field/service"
)

// MockFieldUseCase is a mock implementation of usecase.FieldUseCase.
type MockFieldUseCase struct {
	mock.Mock
}

// NewMockFieldUseCase creates a MockFieldUseCase whose expectations are asserted when the
// test ends.
func NewMockFieldUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockFieldUseCase {
	m := &MockFieldUseCase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockFieldUseCase) ApplyEdit(
	ctx context.Context,
	kind domain.Kind,
	edit domain.Edit,
	rules domain.Rules,
) (*domain.EditResult, error) {
	args := m.Called(ctx, kind, edit, rules)
	var result *domain.EditResult
	if v := args.Get(0); v != nil {
		result = v.(*domain.EditResult)
	}
	return result, args.Error(1)
}

func (m *MockFieldUseCase) NewSession(
	ctx context.Context,
	kind domain.Kind,
	rules domain.Rules,
) (*service.Session, error) {
	args := m.Called(ctx, kind, rules)
	var session *service.Session
	if v := args.Get(0); v != nil {
		session = v.(*service.Session)
	}
	return session, args.Error(1)
}

func (m *MockFieldUseCase) Format(
	ctx context.Context,
	kind domain.Kind,
	text string,
	rules domain.Rules,
) (domain.FormattedText, error) {
	args := m.Called(ctx, kind, text, rules)
	return args.Get(0).(domain.FormattedText), args.Error(1)
}

func (m *MockFieldUseCase) Validate(
	ctx context.Context,
	kind domain.Kind,
	text string,
	rules domain.Rules,
) (domain.ValidationState, error) {
	args := m.Called(ctx, kind, text, rules)
	return args.Get(0).(domain.ValidationState), args.Error(1)
}

func (m *MockFieldUseCase) ValidateForm(ctx context.Context, form *domain.Form) (*domain.FormResult, error) {
	args := m.Called(ctx, form)
	var result *domain.FormResult
	if v := args.Get(0); v != nil {
		result = v.(*domain.FormResult)
	}
	return result, args.Error(1)
}

func (m *MockFieldUseCase) DetectBrand(ctx context.Context, number string) (domain.BrandRule, error) {
	args := m.Called(ctx, number)
	return args.Get(0).(domain.BrandRule), args.Error(1)
}

func (m *MockFieldUseCase) ListBrands(ctx context.Context) ([]domain.BrandRule, error) {
	args := m.Called(ctx)
	var brands []domain.BrandRule
	if v := args.Get(0); v != nil {
		brands = v.([]domain.BrandRule)
	}
	return brands, args.Error(1)
}

func (m *MockFieldUseCase) ListCountries(ctx context.Context) ([]domain.CountryRule, error) {
	args := m.Called(ctx)
	var countries []domain.CountryRule
	if v := args.Get(0); v != nil {
		countries = v.([]domain.CountryRule)
	}
	return countries, args.Error(1)
}

func (m *MockFieldUseCase) GetCountry(ctx context.Context, code string) (domain.CountryRule, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(domain.CountryRule), args.Error(1)
}
