package service

import (
	"strings"
	"unicode"

	"github.com/allisson/paymentfields/internal/field/domain"
	"github.com/allisson/paymentfields/internal/field/metadata"
)

type cardNumberField struct {
	catalog *metadata.Catalog
}

// NewCardNumberField creates the card number field. The governing brand is always
// detected from the number itself.
func NewCardNumberField(catalog *metadata.Catalog) Field {
	return &cardNumberField{catalog: catalog}
}

func (f *cardNumberField) Kind() domain.Kind {
	return domain.KindCardNumber
}

func (f *cardNumberField) brandRule(digits string) domain.BrandRule {
	return f.catalog.BrandRule(f.catalog.DetectBrand(digits))
}

// IsAllowedInput accepts digits up to the detected brand's maximum length. A typed space
// is only accepted right after a group boundary of the brand's grouping.
func (f *cardNumberField) IsAllowedInput(edit domain.Edit, rules domain.Rules) bool {
	if edit.IsDeletion() {
		return true
	}

	if strings.TrimSpace(edit.Replacement) == "" {
		typed := Digits(edit.Prefix())
		rule := f.brandRule(Digits(edit.Existing))
		return typed != "" && rule.IsGroupBoundary(len(typed))
	}

	stripped := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, edit.Proposed())
	if !IsDigits(stripped) {
		return false
	}

	return len(stripped) <= f.brandRule(stripped).MaxLength()
}

// Format groups the digits by the detected brand (4-4-4-4 by default, 4-6-5 for Amex).
func (f *cardNumberField) Format(text string, rules domain.Rules) domain.FormattedText {
	digits := StripSeparators(text)
	if !IsDigits(digits) {
		return domain.Unformatted(text)
	}
	return domain.Grouped(digits, f.brandRule(digits).Grouping, " ")
}

func (f *cardNumberField) ValidationState(text string, rules domain.Rules) domain.ValidationState {
	digits := StripSeparators(text)
	if digits == "" {
		return domain.Empty()
	}
	if !IsDigits(digits) {
		return domain.Invalid(domain.ReasonInvalidCharacters)
	}

	if !f.catalog.IsValidCardPrefix(digits) {
		return domain.Invalid(domain.ReasonUnknownBrand)
	}
	possible := f.catalog.PossibleBrands(digits)

	n := len(digits)
	if len(possible) > 1 {
		longest := 0
		for _, b := range possible {
			if l := f.catalog.BrandRule(b).MaxLength(); l > longest {
				longest = l
			}
		}
		if n > longest {
			return domain.Invalid(domain.ReasonTooLong)
		}
		return domain.Incomplete(domain.ReasonTooShort)
	}

	rule := f.catalog.BrandRule(possible[0])
	switch {
	case n > rule.MaxLength():
		return domain.Invalid(domain.ReasonTooLong)
	case !rule.HasLength(n):
		return domain.Incomplete(domain.ReasonTooShort)
	case IsLuhnValid(digits):
		return domain.Valid()
	case n < rule.MaxLength():
		// a longer number of the same brand may still pass
		return domain.Incomplete(domain.ReasonLuhnFailed)
	default:
		return domain.Invalid(domain.ReasonLuhnFailed)
	}
}
