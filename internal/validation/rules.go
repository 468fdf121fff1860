// Package validation provides custom validation rules for request payloads and CLI flags.
package validation

import (
	"strings"
	"unicode"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/paymentfields/internal/errors"
	"github.com/allisson/paymentfields/internal/field/domain"
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// NoWhitespace validates that a string has no leading or trailing whitespace
var NoWhitespace = validation.NewStringRuleWithError(
	func(s string) bool {
		return s == strings.TrimSpace(s)
	},
	validation.NewError("validation_no_whitespace", "must not contain leading or trailing whitespace"),
)

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

// CountryCode validates a two letter ISO 3166-1 alpha-2 code, in any case.
var CountryCode = validation.NewStringRuleWithError(
	func(s string) bool {
		if len(s) != 2 {
			return false
		}
		for _, c := range s {
			if c > unicode.MaxASCII || !unicode.IsLetter(c) {
				return false
			}
		}
		return true
	},
	validation.NewError("validation_country_code", "must be a two letter country code"),
)

// FieldKind validates that a string names a supported field kind.
var FieldKind = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_field_kind_type", "must be a string")
	}
	if s == "" {
		return nil // Let Required handle empty strings
	}
	if err := domain.Kind(s).Validate(); err != nil {
		return validation.NewError("validation_field_kind", "must be one of card_number, expiry, cvc, bsb, postal_code, phone")
	}
	return nil
})

// CardBrand validates that a string names a known card brand.
var CardBrand = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_card_brand_type", "must be a string")
	}
	if _, err := domain.ParseBrand(s); err != nil {
		return validation.NewError("validation_card_brand", "must be a known card brand")
	}
	return nil
})
