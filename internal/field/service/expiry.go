package service

import (
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/allisson/paymentfields/internal/field/domain"
)

type expiryField struct{}

// NewExpiryField creates the MM/YY expiry field.
func NewExpiryField() Field {
	return &expiryField{}
}

func (f *expiryField) Kind() domain.Kind {
	return domain.KindExpiry
}

// NormalizeExpiry returns the MMYY digits of an expiry, padding one-digit months: a leading
// 2-9 can only be a month (4 is April) and a single digit before a slash is the whole
// month ("4/26"). Characters other than digits and separators are kept so callers can
// reject them.
func NormalizeExpiry(text string) string {
	compact := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, text)

	if i := strings.IndexAny(compact, "/-."); i >= 0 {
		month := compact[:i]
		if len(month) == 1 && isDigit(rune(month[0])) {
			month = "0" + month
		}
		compact = month + compact[i+1:]
	}
	compact = StripSeparators(compact)

	if compact != "" && compact[0] >= '2' && compact[0] <= '9' {
		compact = "0" + compact
	}
	return compact
}

// IsAllowedInput accepts up to four month and year digits with an optional literal slash.
// Month and year ranges are left to the validator.
func (f *expiryField) IsAllowedInput(edit domain.Edit, rules domain.Rules) bool {
	if edit.IsDeletion() {
		return true
	}
	proposed := edit.Proposed()
	if strings.Count(proposed, "/") > 1 {
		return false
	}
	if !onlyRunes(proposed, func(c rune) bool { return isDigit(c) || c == '/' || unicode.IsSpace(c) }) {
		return false
	}
	return len(NormalizeExpiry(proposed)) <= domain.ExpiryDigits
}

// Format displays MM/YY. One-digit months are shown with their leading zero as soon as
// they are unambiguous.
func (f *expiryField) Format(text string, rules domain.Rules) domain.FormattedText {
	digits := NormalizeExpiry(text)
	if !IsDigits(digits) {
		return domain.Unformatted(text)
	}
	return domain.Grouped(digits, []int{2, 2}, "/")
}

func (f *expiryField) ValidationState(text string, rules domain.Rules) domain.ValidationState {
	digits := NormalizeExpiry(text)
	switch {
	case digits == "":
		return domain.Empty()
	case !IsDigits(digits):
		return domain.Invalid(domain.ReasonInvalidCharacters)
	case len(digits) > domain.ExpiryDigits:
		return domain.Invalid(domain.ReasonTooLong)
	case len(digits) == 1:
		// 0 or 1, a second month digit is still to come
		return domain.Incomplete(domain.ReasonTooShort)
	}

	month, _ := strconv.Atoi(digits[:2])
	if month < 1 || month > 12 {
		return domain.Invalid(domain.ReasonInvalidMonth)
	}

	now := rules.Clock()
	switch len(digits) {
	case 2:
		return domain.Incomplete(domain.ReasonMissingYear)
	case 3:
		decade := 2000 + int(digits[2]-'0')*10
		if isExpired(month, decade+9, now) {
			return domain.Invalid(domain.ReasonExpired)
		}
		return domain.Incomplete(domain.ReasonMissingYear)
	}

	month, year, _ := ParseExpiry(digits)
	if isExpired(month, year, now) {
		return domain.Invalid(domain.ReasonExpired)
	}
	return domain.Valid()
}

// ParseExpiry extracts month and four-digit year from a complete expiry such as "12/26"
// or "4/26".
func ParseExpiry(text string) (month, year int, ok bool) {
	digits := NormalizeExpiry(text)
	if len(digits) != domain.ExpiryDigits || !IsDigits(digits) {
		return 0, 0, false
	}
	month, _ = strconv.Atoi(digits[:2])
	year, _ = strconv.Atoi(digits[2:])
	if month < 1 || month > 12 {
		return 0, 0, false
	}
	return month, 2000 + year, true
}

// isExpired reports whether the card expiring at the end of month/year is no longer
// valid at now.
func isExpired(month, year int, now time.Time) bool {
	return year*12+month < now.Year()*12+int(now.Month())
}
