package service

import (
	"unicode"

	"github.com/allisson/paymentfields/internal/field/domain"
	"github.com/allisson/paymentfields/internal/field/metadata"
)

type bsbField struct {
	catalog *metadata.Catalog
}

// NewBSBField creates the Australian BSB number field (NNN-NNN).
func NewBSBField(catalog *metadata.Catalog) Field {
	return &bsbField{catalog: catalog}
}

func (f *bsbField) Kind() domain.Kind {
	return domain.KindBSB
}

func (f *bsbField) IsAllowedInput(edit domain.Edit, rules domain.Rules) bool {
	if edit.IsDeletion() {
		return true
	}
	proposed := edit.Proposed()
	if !onlyRunes(proposed, func(c rune) bool { return isDigit(c) || c == '-' || unicode.IsSpace(c) }) {
		return false
	}
	return len(Digits(proposed)) <= domain.BSBLength
}

func (f *bsbField) Format(text string, rules domain.Rules) domain.FormattedText {
	digits := StripSeparators(text)
	if !IsDigits(digits) {
		return domain.Unformatted(text)
	}
	return domain.Grouped(digits, []int{domain.BSBSeparatorAt, domain.BSBLength - domain.BSBSeparatorAt}, "-")
}

// ValidationState checks the leading digits against the known bank prefixes; a number
// whose prefix matches no bank is invalid as soon as the prefix is complete.
func (f *bsbField) ValidationState(text string, rules domain.Rules) domain.ValidationState {
	digits := StripSeparators(text)
	switch {
	case digits == "":
		return domain.Empty()
	case !IsDigits(digits):
		return domain.Invalid(domain.ReasonInvalidCharacters)
	case len(digits) > domain.BSBLength:
		return domain.Invalid(domain.ReasonTooLong)
	}

	_, match := f.catalog.BSBBank(digits)
	switch {
	case match == metadata.PrefixNone:
		return domain.Invalid(domain.ReasonUnknownBank)
	case match == metadata.PrefixPartial, len(digits) < domain.BSBLength:
		return domain.Incomplete(domain.ReasonTooShort)
	default:
		return domain.Valid()
	}
}

// Describe returns the brand in force for text together with its caption: the brand
// display name for card numbers, the bank name for BSB numbers. Card numbers always report
// the brand detected from their own digits.
func Describe(catalog *metadata.Catalog, kind domain.Kind, text string, rules domain.Rules) (domain.Brand, string) {
	switch kind {
	case domain.KindCardNumber:
		brand := catalog.DetectBrand(Digits(text))
		if !brand.IsKnown() {
			return brand, ""
		}
		return brand, catalog.BrandRule(brand).DisplayName
	case domain.KindBSB:
		return rules.Brand, BankName(catalog, text)
	default:
		return rules.Brand, ""
	}
}

// BankName returns the institution owning a BSB number, or "" when it is not known yet.
func BankName(catalog *metadata.Catalog, text string) string {
	bank, match := catalog.BSBBank(Digits(text))
	if match != metadata.PrefixFull {
		return ""
	}
	return bank
}
