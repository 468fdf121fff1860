package dto

import (
	"github.com/allisson/paymentfields/internal/field/domain"
)

// EditResponse contains the outcome of an edit.
type EditResponse struct {
	Kind      string                 `json:"kind"`
	Allowed   bool                   `json:"allowed"`
	Formatted domain.FormattedText   `json:"formatted"`
	State     domain.ValidationState `json:"state"`
	Brand     string                 `json:"brand,omitempty"`
	Caption   string                 `json:"caption,omitempty"`
}

// MapEditResultToResponse converts a domain edit result to an API response.
func MapEditResultToResponse(result *domain.EditResult) EditResponse {
	return EditResponse{
		Kind:      result.Kind.String(),
		Allowed:   result.Allowed,
		Formatted: result.Formatted,
		State:     result.State,
		Brand:     string(result.Brand),
		Caption:   result.Caption,
	}
}

// FormatResponse contains the display form of a value.
type FormatResponse struct {
	Kind      string               `json:"kind"`
	Formatted domain.FormattedText `json:"formatted"`
}

// ValidateResponse contains the validation state of a value.
type ValidateResponse struct {
	Kind  string                 `json:"kind"`
	State domain.ValidationState `json:"state"`
}

// FormResponse contains the evaluation of a checkout form.
type FormResponse struct {
	Brand     string                            `json:"brand"`
	Country   string                            `json:"country"`
	States    map[string]domain.ValidationState `json:"states"`
	Blocking  []string                          `json:"blocking"`
	CanSubmit bool                              `json:"can_submit"`
}

// MapFormResultToResponse converts a domain form result to an API response.
func MapFormResultToResponse(result *domain.FormResult) FormResponse {
	states := make(map[string]domain.ValidationState, len(result.States))
	for kind, state := range result.States {
		states[kind.String()] = state
	}

	blocking := make([]string, 0)
	for _, kind := range result.Blocking(result.Required) {
		blocking = append(blocking, kind.String())
	}

	return FormResponse{
		Brand:     string(result.Brand),
		Country:   result.Country,
		States:    states,
		Blocking:  blocking,
		CanSubmit: result.CanSubmit,
	}
}

// BrandResponse represents a card brand in API responses.
type BrandResponse struct {
	domain.BrandRule
	MinLength int `json:"min_length"`
	MaxLength int `json:"max_length"`
}

// MapBrandToResponse converts a brand rule to an API response.
func MapBrandToResponse(rule domain.BrandRule) BrandResponse {
	return BrandResponse{
		BrandRule: rule,
		MinLength: rule.MinLength(),
		MaxLength: rule.MaxLength(),
	}
}

// ListBrandsResponse contains every known brand.
type ListBrandsResponse struct {
	Data []BrandResponse `json:"data"`
}

// MapBrandsToListResponse converts brand rules to a list response.
func MapBrandsToListResponse(rules []domain.BrandRule) ListBrandsResponse {
	data := make([]BrandResponse, 0, len(rules))
	for _, rule := range rules {
		data = append(data, MapBrandToResponse(rule))
	}
	return ListBrandsResponse{Data: data}
}

// ListCountriesResponse contains every catalog country.
type ListCountriesResponse struct {
	Data []domain.CountryRule `json:"data"`
}

// MapCountriesToListResponse converts country rules to a list response.
func MapCountriesToListResponse(rules []domain.CountryRule) ListCountriesResponse {
	data := make([]domain.CountryRule, 0, len(rules))
	data = append(data, rules...)
	return ListCountriesResponse{Data: data}
}
