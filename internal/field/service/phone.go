package service

import (
	"strings"
	"unicode"

	"github.com/allisson/paymentfields/internal/field/domain"
	"github.com/allisson/paymentfields/internal/field/metadata"
)

// E.164 bounds on the digits following the plus sign.
const (
	minPhoneDigits = 7
	maxPhoneDigits = 15
)

type phoneField struct {
	catalog *metadata.Catalog
}

// NewPhoneField creates the phone number field. Numbers starting with + are handled as
// international E.164 numbers; anything else follows the national template of
// rules.Country when one exists.
func NewPhoneField(catalog *metadata.Catalog) Field {
	return &phoneField{catalog: catalog}
}

func (f *phoneField) Kind() domain.Kind {
	return domain.KindPhone
}

func (f *phoneField) template(rules domain.Rules) string {
	country, _ := f.catalog.Country(rules.Country)
	return country.Phone.Template
}

func isInternational(text string) bool {
	return strings.HasPrefix(strings.TrimLeftFunc(text, unicode.IsSpace), "+")
}

// internationalBody returns what follows the leading plus sign.
func internationalBody(text string) string {
	return strings.TrimPrefix(strings.TrimLeftFunc(text, unicode.IsSpace), "+")
}

func (f *phoneField) maxDigits(text string, rules domain.Rules) int {
	tmpl := f.template(rules)
	if isInternational(text) || tmpl == "" {
		return maxPhoneDigits
	}
	return strings.Count(tmpl, "#")
}

func isPhoneRune(c rune) bool {
	return isDigit(c) || isSeparator(c)
}

func (f *phoneField) IsAllowedInput(edit domain.Edit, rules domain.Rules) bool {
	if edit.IsDeletion() {
		return true
	}

	proposed := edit.Proposed()
	body := proposed
	if isInternational(proposed) {
		body = internationalBody(proposed)
	}
	if !onlyRunes(body, isPhoneRune) {
		return false
	}
	return len(Digits(body)) <= f.maxDigits(proposed, rules)
}

// Format fills the national template digit by digit. Template literals are only emitted
// once a digit follows them, so a partial number never ends in a dangling separator.
func (f *phoneField) Format(text string, rules domain.Rules) domain.FormattedText {
	if isInternational(text) {
		body := StripSeparators(internationalBody(text))
		if !IsDigits(body) {
			return domain.Unformatted(text)
		}
		return domain.FormattedText{Text: "+" + body}
	}

	digits := StripSeparators(text)
	if !IsDigits(digits) {
		return domain.Unformatted(text)
	}

	tmpl := f.template(rules)
	if tmpl == "" || len(digits) > strings.Count(tmpl, "#") {
		return domain.FormattedText{Text: digits}
	}
	return fillTemplate(digits, tmpl)
}

func fillTemplate(digits, tmpl string) domain.FormattedText {
	var (
		out     []rune
		styles  []domain.Style
		next    int
		literal bool
	)
	for _, c := range tmpl {
		if next >= len(digits) {
			break
		}
		if c != '#' {
			if !literal && len(out) > 0 {
				styles = append(styles, domain.Style{
					Range: domain.Range{Location: len(out) - 1, Length: 1},
					Hint:  domain.StyleKern,
					Value: domain.DefaultKern,
				})
			}
			literal = true
			out = append(out, c)
			continue
		}
		literal = false
		out = append(out, rune(digits[next]))
		next++
	}
	return domain.FormattedText{Text: string(out), Styles: styles}
}

func (f *phoneField) ValidationState(text string, rules domain.Rules) domain.ValidationState {
	if strings.TrimSpace(text) == "" {
		return domain.Empty()
	}

	if isInternational(text) {
		body := StripSeparators(internationalBody(text))
		switch {
		case !IsDigits(body):
			return domain.Invalid(domain.ReasonInvalidCharacters)
		case body == "":
			return domain.Incomplete(domain.ReasonTooShort)
		case body[0] == '0':
			return domain.Invalid(domain.ReasonInvalidFormat)
		}
		return lengthState(len(body), minPhoneDigits, maxPhoneDigits)
	}

	digits := StripSeparators(text)
	if !IsDigits(digits) {
		return domain.Invalid(domain.ReasonInvalidCharacters)
	}
	if tmpl := f.template(rules); tmpl != "" {
		n := strings.Count(tmpl, "#")
		return lengthState(len(digits), n, n)
	}
	return lengthState(len(digits), minPhoneDigits, maxPhoneDigits)
}

func lengthState(n, shortest, longest int) domain.ValidationState {
	switch {
	case n > longest:
		return domain.Invalid(domain.ReasonTooLong)
	case n < shortest:
		return domain.Incomplete(domain.ReasonTooShort)
	default:
		return domain.Valid()
	}
}
