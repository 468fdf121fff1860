package domain

import "strings"

// Brand is a card network.
type Brand string

const (
	BrandUnknown    Brand = "unknown"
	BrandVisa       Brand = "visa"
	BrandMastercard Brand = "mastercard"
	BrandAmex       Brand = "amex"
	BrandDiscover   Brand = "discover"
	BrandDinersClub Brand = "diners_club"
	BrandJCB        Brand = "jcb"
	BrandUnionPay   Brand = "unionpay"
)

// ParseBrand converts a brand name to a Brand. An empty name is the unknown brand.
func ParseBrand(name string) (Brand, error) {
	b := Brand(strings.ToLower(strings.TrimSpace(name)))
	switch b {
	case "":
		return BrandUnknown, nil
	case BrandUnknown, BrandVisa, BrandMastercard, BrandAmex, BrandDiscover,
		BrandDinersClub, BrandJCB, BrandUnionPay:
		return b, nil
	case "american_express":
		return BrandAmex, nil
	default:
		return BrandUnknown, ErrUnknownBrand
	}
}

// IsKnown reports whether the brand is a concrete network.
func (b Brand) IsKnown() bool {
	return b != "" && b != BrandUnknown
}

// PrefixRange is an inclusive IIN range whose bounds have the same number of digits.
type PrefixRange struct {
	Low  string `yaml:"low" json:"low"`
	High string `yaml:"high" json:"high"`
}

// Matches reports whether digits may belong to the range. A number shorter than the
// bounds matches when it lies within the bounds truncated to its length.
func (r PrefixRange) Matches(digits string) bool {
	if digits == "" {
		return false
	}
	n := len(r.Low)
	if len(digits) < n {
		n = len(digits)
	}
	head := digits[:n]
	return head >= r.Low[:n] && head <= r.High[:n]
}

// BrandRule holds the number and CVC constraints of a card brand.
type BrandRule struct {
	Brand       Brand         `yaml:"brand" json:"brand"`
	DisplayName string        `yaml:"display_name" json:"display_name"`
	Prefixes    []PrefixRange `yaml:"prefixes" json:"prefixes"`
	Lengths     []int         `yaml:"lengths" json:"lengths"`
	CVCLength   int           `yaml:"cvc_length" json:"cvc_length"`
	Grouping    []int         `yaml:"grouping" json:"grouping"`
}

// MaxLength returns the longest card number of the brand.
func (r BrandRule) MaxLength() int {
	longest := 0
	for _, l := range r.Lengths {
		if l > longest {
			longest = l
		}
	}
	if longest == 0 {
		return DefaultMaxCardNumberLength
	}
	return longest
}

// MinLength returns the shortest card number of the brand.
func (r BrandRule) MinLength() int {
	shortest := 0
	for _, l := range r.Lengths {
		if shortest == 0 || l < shortest {
			shortest = l
		}
	}
	return shortest
}

// HasLength reports whether n is a complete card number length for the brand.
func (r BrandRule) HasLength(n int) bool {
	for _, l := range r.Lengths {
		if l == n {
			return true
		}
	}
	return false
}

// MaxCVCLength returns the longest CVC accepted for the brand.
func (r BrandRule) MaxCVCLength() int {
	if r.CVCLength == 0 {
		return DefaultCVCLength
	}
	return r.CVCLength
}

// IsGroupBoundary reports whether a separator may follow the n-th digit.
func (r BrandRule) IsGroupBoundary(n int) bool {
	pos := 0
	for _, size := range r.Grouping {
		pos += size
		if pos == n {
			return true
		}
		if pos > n {
			return false
		}
	}
	return false
}
