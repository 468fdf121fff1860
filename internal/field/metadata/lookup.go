package metadata

import (
	"github.com/allisson/paymentfields/internal/field/domain"
)

// PrefixMatch is the outcome of matching leading digits against a prefix table.
type PrefixMatch int

const (
	// PrefixNone means no entry starts with, or is a prefix of, the digits.
	PrefixNone PrefixMatch = iota
	// PrefixPartial means the digits are a proper prefix of at least one entry.
	PrefixPartial
	// PrefixFull means an entry is a prefix of the digits.
	PrefixFull
)

// Brands returns the rules of every known brand in catalog order.
func (c *Catalog) Brands() []domain.BrandRule {
	out := make([]domain.BrandRule, len(c.brands))
	copy(out, c.brands)
	return out
}

// BrandRule returns the rule of a brand. Unknown brands get the permissive default rule.
func (c *Catalog) BrandRule(b domain.Brand) domain.BrandRule {
	if i, ok := c.brandIndex[b]; ok {
		return c.brands[i]
	}
	return c.unknownBrand
}

// PossibleBrands returns every brand whose prefix ranges admit the digits typed so far.
func (c *Catalog) PossibleBrands(digits string) []domain.Brand {
	if digits == "" {
		return nil
	}
	var out []domain.Brand
	for _, rule := range c.brands {
		for _, p := range rule.Prefixes {
			if p.Matches(digits) {
				out = append(out, rule.Brand)
				break
			}
		}
	}
	return out
}

// DetectBrand returns the brand of a (possibly partial) card number. The brand is only
// reported once every matching range agrees on it.
func (c *Catalog) DetectBrand(digits string) domain.Brand {
	possible := c.PossibleBrands(digits)
	if len(possible) == 1 {
		return possible[0]
	}
	return domain.BrandUnknown
}

// IsValidCardPrefix reports whether any brand admits the digits typed so far.
func (c *Catalog) IsValidCardPrefix(digits string) bool {
	return digits == "" || len(c.PossibleBrands(digits)) > 0
}

// Countries returns the rules of every catalog country ordered by code.
func (c *Catalog) Countries() []domain.CountryRule {
	out := make([]domain.CountryRule, 0, len(c.countryCodes))
	for _, code := range c.countryCodes {
		out = append(out, c.countries[code])
	}
	return out
}

// Country returns the rule of a country code, resolving aliases. The second result is
// false when the code is unknown, in which case the lenient fallback rule is returned.
func (c *Catalog) Country(code string) (domain.CountryRule, bool) {
	code = domain.NormalizeCountryCode(code)
	if canonical, ok := c.aliases[code]; ok {
		code = canonical
	}
	if rule, ok := c.countries[code]; ok {
		return rule, true
	}
	fallback := c.fallback
	fallback.Code = code
	return fallback, false
}

// HasCountry reports whether the code (or an alias of it) is in the catalog.
func (c *Catalog) HasCountry(code string) bool {
	_, ok := c.Country(code)
	return ok
}

// BSBBank returns the financial institution owning the leading digits of a BSB number.
func (c *Catalog) BSBBank(digits string) (string, PrefixMatch) {
	partial := false
	for prefix, bank := range c.bsbBanks {
		if len(digits) >= len(prefix) {
			if digits[:len(prefix)] == prefix {
				return bank, PrefixFull
			}
			continue
		}
		if prefix[:len(digits)] == digits {
			partial = true
		}
	}
	if partial {
		return "", PrefixPartial
	}
	return "", PrefixNone
}
