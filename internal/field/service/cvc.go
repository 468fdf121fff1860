package service

import (
	"github.com/allisson/paymentfields/internal/field/domain"
	"github.com/allisson/paymentfields/internal/field/metadata"
)

type cvcField struct {
	catalog *metadata.Catalog
}

// NewCVCField creates the CVC field. Its maximum length follows rules.Brand; an unset
// brand allows the longest CVC of any brand.
func NewCVCField(catalog *metadata.Catalog) Field {
	return &cvcField{catalog: catalog}
}

func (f *cvcField) Kind() domain.Kind {
	return domain.KindCVC
}

func (f *cvcField) maxLength(rules domain.Rules) int {
	return f.catalog.BrandRule(rules.Brand).MaxCVCLength()
}

func (f *cvcField) IsAllowedInput(edit domain.Edit, rules domain.Rules) bool {
	if edit.IsDeletion() {
		return true
	}
	proposed := edit.Proposed()
	return IsDigits(proposed) && len(proposed) <= f.maxLength(rules)
}

func (f *cvcField) Format(text string, rules domain.Rules) domain.FormattedText {
	return domain.Unformatted(text)
}

func (f *cvcField) ValidationState(text string, rules domain.Rules) domain.ValidationState {
	switch {
	case text == "":
		return domain.Empty()
	case !IsDigits(text):
		return domain.Invalid(domain.ReasonInvalidCharacters)
	case len(text) > f.maxLength(rules):
		return domain.Invalid(domain.ReasonTooLong)
	case len(text) < domain.MinCVCLength:
		return domain.Incomplete(domain.ReasonTooShort)
	default:
		return domain.Valid()
	}
}
