// Package domain defines the core models of the payment field input engine: field kinds,
// validation states, edits, formatted text with style hints, and the brand/country rules
// that govern formatting and validation.
package domain

// Kind identifies a payment form field handled by the engine.
type Kind string

const (
	KindCardNumber Kind = "card_number"
	KindExpiry     Kind = "expiry"
	KindCVC        Kind = "cvc"
	KindBSB        Kind = "bsb"
	KindPostalCode Kind = "postal_code"
	KindPhone      Kind = "phone"
)

// Kinds lists every supported field kind in display order.
var Kinds = []Kind{KindCardNumber, KindExpiry, KindCVC, KindBSB, KindPostalCode, KindPhone}

// Validate checks if the field kind is supported.
func (k Kind) Validate() error {
	switch k {
	case KindCardNumber, KindExpiry, KindCVC, KindBSB, KindPostalCode, KindPhone:
		return nil
	default:
		return ErrUnknownKind
	}
}

// String returns the string representation of the field kind.
func (k Kind) String() string {
	return string(k)
}

// Length limits shared by formatters and validators.
const (
	// DefaultMaxCardNumberLength bounds card numbers whose brand is not yet known.
	DefaultMaxCardNumberLength = 19

	// MinCVCLength is the shortest CVC accepted for any brand.
	MinCVCLength = 3

	// DefaultCVCLength is the CVC length of most brands.
	DefaultCVCLength = 3

	// BSBLength is the number of digits of an Australian BSB number.
	BSBLength = 6

	// BSBSeparatorAt is the digit count after which the BSB separator is displayed.
	BSBSeparatorAt = 3

	// ExpiryDigits is the maximum number of digits of an MM/YY expiry.
	ExpiryDigits = 4

	// LenientPostalCodeMaxLength bounds postal codes of countries without a known format.
	LenientPostalCodeMaxLength = 10

	// DefaultKern is the letter-spacing applied before an inserted separator.
	DefaultKern = 5.0
)

// Validation reasons returned alongside incomplete and invalid states.
const (
	ReasonInvalidCharacters = "invalid_characters"
	ReasonTooLong           = "too_long"
	ReasonTooShort          = "too_short"
	ReasonUnknownBrand      = "unknown_brand"
	ReasonLuhnFailed        = "luhn_failed"
	ReasonInvalidMonth      = "invalid_month"
	ReasonMissingYear       = "missing_year"
	ReasonExpired           = "expired"
	ReasonUnknownBank       = "unknown_bank"
	ReasonInvalidFormat     = "invalid_format"
	ReasonNotApplicable     = "not_applicable"
)
