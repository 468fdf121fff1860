// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	"github.com/allisson/paymentfields/internal/field/domain"
	customValidation "github.com/allisson/paymentfields/internal/validation"
)

// RulesRequest carries the optional rule context shared by field requests. Card numbers
// ignore Brand and use the brand detected from their own digits.
type RulesRequest struct {
	Brand   string `json:"brand"`
	Country string `json:"country"`
}

// ToRules converts the request to domain rules. It must only be called after validation.
func (r RulesRequest) ToRules() domain.Rules {
	brand, _ := domain.ParseBrand(r.Brand)
	return domain.Rules{Brand: brand, Country: domain.NormalizeCountryCode(r.Country)}
}

func (r *RulesRequest) fieldRules() []*validation.FieldRules {
	return []*validation.FieldRules{
		validation.Field(&r.Brand, customValidation.CardBrand),
		validation.Field(&r.Country, customValidation.NoWhitespace, customValidation.CountryCode),
	}
}

// EditRequest proposes replacing Range of Existing with Replacement.
type EditRequest struct {
	Kind        string       `json:"-"` // Taken from the URL
	Existing    string       `json:"existing"`
	Range       domain.Range `json:"range"`
	Replacement string       `json:"replacement"`
	RulesRequest
}

// Validate checks if the edit request is valid.
func (r *EditRequest) Validate() error {
	rules := []*validation.FieldRules{
		validation.Field(&r.Kind, validation.Required, customValidation.FieldKind),
		validation.Field(&r.Range, validation.By(validateRange)),
	}
	return validation.ValidateStruct(r, append(rules, r.RulesRequest.fieldRules()...)...)
}

// ToEdit converts the request to a domain edit.
func (r *EditRequest) ToEdit() domain.Edit {
	return domain.Edit{Existing: r.Existing, Range: r.Range, Replacement: r.Replacement}
}

func validateRange(value interface{}) error {
	rng, ok := value.(domain.Range)
	if !ok {
		return validation.NewError("validation_range_type", "must be a range")
	}
	if rng.Location < 0 || rng.Length < 0 {
		return validation.NewError("validation_range", "location and length must not be negative")
	}
	return nil
}

// TextRequest asks to format or validate a whole value.
type TextRequest struct {
	Kind string `json:"-"` // Taken from the URL
	Text string `json:"text"`
	RulesRequest
}

// Validate checks if the text request is valid.
func (r *TextRequest) Validate() error {
	rules := []*validation.FieldRules{
		validation.Field(&r.Kind, validation.Required, customValidation.FieldKind),
	}
	return validation.ValidateStruct(r, append(rules, r.RulesRequest.fieldRules()...)...)
}

// FormRequest contains the raw values of a checkout form.
type FormRequest struct {
	CardNumber string `json:"card_number"`
	Expiry     string `json:"expiry"`
	CVC        string `json:"cvc"`
	PostalCode string `json:"postal_code"`
	BSB        string `json:"bsb"`
	Phone      string `json:"phone"`
	Country    string `json:"country"`
}

// Validate checks if the form request is valid.
func (r *FormRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Country, customValidation.NoWhitespace, customValidation.CountryCode),
	)
}

// ToForm converts the request to a domain form.
func (r *FormRequest) ToForm() *domain.Form {
	return &domain.Form{
		CardNumber: r.CardNumber,
		Expiry:     r.Expiry,
		CVC:        r.CVC,
		PostalCode: r.PostalCode,
		BSB:        r.BSB,
		Phone:      r.Phone,
		Country:    domain.NormalizeCountryCode(r.Country),
	}
}

// DetectBrandRequest holds the query of a brand detection.
type DetectBrandRequest struct {
	Number string `form:"number"`
}

// Validate checks if the detect brand request is valid.
func (r *DetectBrandRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Number, validation.Required, customValidation.NotBlank, validation.Length(1, 64)),
	)
}
