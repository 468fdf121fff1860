package service

import (
	"strings"
	"unicode"

	"github.com/allisson/paymentfields/internal/field/domain"
	"github.com/allisson/paymentfields/internal/field/metadata"
)

type postalCodeField struct {
	catalog *metadata.Catalog
}

// NewPostalCodeField creates the postal code field. Its format follows the country in
// rules.Country; unknown countries fall back to a lenient alphanumeric rule.
func NewPostalCodeField(catalog *metadata.Catalog) Field {
	return &postalCodeField{catalog: catalog}
}

func (f *postalCodeField) Kind() domain.Kind {
	return domain.KindPostalCode
}

func (f *postalCodeField) rule(rules domain.Rules) domain.PostalCodeRule {
	country, _ := f.catalog.Country(rules.Country)
	return country.PostalCode
}

func isPostalRune(c rune) bool {
	return isDigit(c) || isLetter(c) || c == '-' || unicode.IsSpace(c)
}

func (f *postalCodeField) IsAllowedInput(edit domain.Edit, rules domain.Rules) bool {
	if edit.IsDeletion() {
		return true
	}

	rule := f.rule(rules)
	if rule.IsUnused() {
		return false
	}

	proposed := edit.Proposed()
	if rule.IsNumeric() {
		digits, ok := numericPostalDigits(proposed, rule)
		return ok && len(digits) <= rule.Bound()
	}

	if !onlyRunes(proposed, isPostalRune) {
		return false
	}
	return len(Alphanumeric(proposed)) <= rule.Bound()
}

// numericPostalDigits extracts the digits of a numeric postal code. The only accepted
// non-digit is the rule's separator, once, right where the rule places it.
func numericPostalDigits(text string, rule domain.PostalCodeRule) (string, bool) {
	var (
		digits strings.Builder
		count  int
		seen   bool
	)
	for _, c := range text {
		switch {
		case isDigit(c):
			digits.WriteRune(c)
			count++
		case rule.Separator != "" && string(c) == rule.Separator:
			if seen || rule.SeparatorAt <= 0 || count != rule.SeparatorAt || rule.Bound() <= rule.SeparatorAt {
				return "", false
			}
			seen = true
		default:
			return "", false
		}
	}
	return digits.String(), true
}

func (f *postalCodeField) Format(text string, rules domain.Rules) domain.FormattedText {
	rule := f.rule(rules)
	if !onlyRunes(text, isPostalRune) {
		return domain.Unformatted(text)
	}

	normalized := Alphanumeric(text)
	if rule.IsNumeric() && !IsDigits(normalized) {
		return domain.Unformatted(text)
	}

	at := separatorIndex(rule, len(normalized))
	if at < 0 {
		return domain.FormattedText{Text: normalized}
	}
	return domain.Grouped(normalized, []int{at, len(normalized) - at}, rule.Separator)
}

// separatorIndex returns where the separator goes in an n-character code, or -1. Positions
// counted from the end only apply once the code is long enough to be complete.
func separatorIndex(rule domain.PostalCodeRule, n int) int {
	if rule.SeparatorAt < 0 {
		shortest := 0
		for _, s := range rule.Shapes {
			if shortest == 0 || len(s) < shortest {
				shortest = len(s)
			}
		}
		if n < shortest {
			return -1
		}
	}
	return rule.SeparatorIndex(n)
}

func (f *postalCodeField) ValidationState(text string, rules domain.Rules) domain.ValidationState {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.Empty()
	}

	rule := f.rule(rules)
	if rule.IsUnused() {
		return domain.Invalid(domain.ReasonNotApplicable)
	}

	if rule.IsNumeric() {
		if !onlyRunes(text, func(c rune) bool { return isDigit(c) || string(c) == rule.Separator }) {
			return domain.Invalid(domain.ReasonInvalidCharacters)
		}
		digits, ok := numericPostalDigits(text, rule)
		if !ok {
			return domain.Invalid(domain.ReasonInvalidFormat)
		}
		if rule.Separator != "" && strings.HasSuffix(text, rule.Separator) {
			// separator typed, extension still to come
			if matchShapes(digits+"0", rule.Shapes) == shapeNone {
				return domain.Invalid(domain.ReasonInvalidFormat)
			}
			return domain.Incomplete(domain.ReasonTooShort)
		}
		return shapeState(digits, rule)
	}

	if !onlyRunes(text, isPostalRune) {
		return domain.Invalid(domain.ReasonInvalidCharacters)
	}
	normalized := Alphanumeric(text)
	if rule.Lenient {
		if len(normalized) > rule.Bound() {
			return domain.Invalid(domain.ReasonTooLong)
		}
		return domain.Valid()
	}
	return shapeState(normalized, rule)
}

func shapeState(code string, rule domain.PostalCodeRule) domain.ValidationState {
	switch matchShapes(code, rule.Shapes) {
	case shapeFull:
		return domain.Valid()
	case shapePartial:
		return domain.Incomplete(domain.ReasonTooShort)
	}
	if len(code) > rule.Bound() {
		return domain.Invalid(domain.ReasonTooLong)
	}
	return domain.Invalid(domain.ReasonInvalidFormat)
}

type shapeMatch int

const (
	shapeNone shapeMatch = iota
	shapePartial
	shapeFull
)

// matchShapes compares a normalized code against shape patterns. A full match on any
// shape wins over a partial one.
func matchShapes(code string, shapes []string) shapeMatch {
	best := shapeNone
	for _, shape := range shapes {
		if len(code) > len(shape) {
			continue
		}
		if !fitsShape(code, shape[:len(code)]) {
			continue
		}
		if len(code) == len(shape) {
			return shapeFull
		}
		best = shapePartial
	}
	return best
}

func fitsShape(code, shape string) bool {
	for i := 0; i < len(code); i++ {
		c := rune(code[i])
		switch shape[i] {
		case domain.ShapeDigit:
			if !isDigit(c) {
				return false
			}
		case domain.ShapeLetter:
			if !isLetter(c) {
				return false
			}
		case domain.ShapeAlnum:
			if !isDigit(c) && !isLetter(c) {
				return false
			}
		}
	}
	return true
}
