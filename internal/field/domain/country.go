package domain

import "strings"

// Postal code shape classes.
const (
	ShapeDigit  = '9'
	ShapeLetter = 'A'
	ShapeAlnum  = '*'
)

// PostalCodeRule describes the postal code format of a country. Shapes are written with
// the classes 9 (digit), A (letter) and * (letter or digit), without separators.
type PostalCodeRule struct {
	Required bool     `yaml:"required" json:"required"`
	Shapes   []string `yaml:"shapes" json:"shapes,omitempty"`
	// Separator is displayed (and accepted) between the first SeparatorAt characters
	// and the rest. A negative SeparatorAt counts from the end of the code.
	Separator   string `yaml:"separator" json:"separator,omitempty"`
	SeparatorAt int    `yaml:"separator_at" json:"separator_at,omitempty"`
	// Lenient rules accept any alphanumeric code up to MaxLength.
	Lenient   bool `yaml:"lenient" json:"lenient"`
	MaxLength int  `yaml:"max_length" json:"max_length,omitempty"`
}

// IsNumeric reports whether every shape of the rule is made of digits only.
func (r PostalCodeRule) IsNumeric() bool {
	if r.Lenient || len(r.Shapes) == 0 {
		return false
	}
	for _, s := range r.Shapes {
		for _, c := range s {
			if c != ShapeDigit {
				return false
			}
		}
	}
	return true
}

// IsUnused reports whether the country has no postal codes at all.
func (r PostalCodeRule) IsUnused() bool {
	return !r.Lenient && len(r.Shapes) == 0
}

// Bound returns the maximum number of significant characters of a code.
func (r PostalCodeRule) Bound() int {
	if r.Lenient {
		if r.MaxLength > 0 {
			return r.MaxLength
		}
		return LenientPostalCodeMaxLength
	}
	longest := 0
	for _, s := range r.Shapes {
		if len(s) > longest {
			longest = len(s)
		}
	}
	return longest
}

// SeparatorIndex returns after how many characters of an n-character code the separator
// belongs, or -1 when no separator applies.
func (r PostalCodeRule) SeparatorIndex(n int) int {
	if r.Separator == "" || r.SeparatorAt == 0 {
		return -1
	}
	at := r.SeparatorAt
	if at < 0 {
		at = n + at
	}
	if at <= 0 || at >= n {
		return -1
	}
	return at
}

// PhoneRule describes how a national phone number is displayed. Template uses # for
// digits; an empty template means international E.164 input.
type PhoneRule struct {
	Template string `yaml:"template" json:"template,omitempty"`
}

// Digits returns the number of digits the template holds.
func (r PhoneRule) Digits() int {
	return strings.Count(r.Template, "#")
}

// CountryRule holds the country-specific field rules.
type CountryRule struct {
	Code       string         `yaml:"code" json:"code"`
	Name       string         `yaml:"name" json:"name"`
	PostalCode PostalCodeRule `yaml:"postal_code" json:"postal_code"`
	Phone      PhoneRule      `yaml:"phone" json:"phone"`
}

// NormalizeCountryCode upper-cases and trims a country code.
func NormalizeCountryCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
