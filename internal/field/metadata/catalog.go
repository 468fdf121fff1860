// Package metadata provides the read-only brand, country and BSB tables consulted by
// the field formatters and validators. Tables are decoded from YAML once and shared by
// reference afterwards; a Catalog is never mutated after construction, so concurrent
// readers need no locking.
package metadata

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/allisson/paymentfields/internal/errors"
	"github.com/allisson/paymentfields/internal/field/domain"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

var (
	defaultCatalog *Catalog
	defaultOnce    sync.Once
)

// Default returns the catalog embedded in the binary. It panics if the embedded tables
// are malformed, which the package tests rule out.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Load(embeddedCatalog)
		if err != nil {
			panic(fmt.Sprintf("embedded catalog: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// catalogDocument mirrors the YAML layout of a catalog file.
type catalogDocument struct {
	UnknownBrand    domain.BrandRule     `yaml:"unknown_brand"`
	Brands          []domain.BrandRule   `yaml:"brands"`
	FallbackCountry domain.CountryRule   `yaml:"fallback_country"`
	CountryAliases  map[string]string    `yaml:"country_aliases"`
	Countries       []domain.CountryRule `yaml:"countries"`
	BSBBanks        map[string]string    `yaml:"bsb_banks"`
}

// Catalog is the immutable set of brand, country and bank rules.
type Catalog struct {
	unknownBrand domain.BrandRule
	brands       []domain.BrandRule
	brandIndex   map[domain.Brand]int
	fallback     domain.CountryRule
	aliases      map[string]string
	countries    map[string]domain.CountryRule
	countryCodes []string
	bsbBanks     map[string]string
}

// Load decodes and validates a catalog from YAML.
func Load(data []byte) (*Catalog, error) {
	var doc catalogDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(domain.ErrInvalidCatalog, err.Error())
	}
	return build(doc)
}

// LoadFile decodes and validates a catalog from a YAML file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from trusted configuration
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return Load(data)
}

func build(doc catalogDocument) (*Catalog, error) {
	if len(doc.Brands) == 0 {
		return nil, errors.Wrap(domain.ErrInvalidCatalog, "no brands defined")
	}

	c := &Catalog{
		unknownBrand: doc.UnknownBrand,
		brands:       make([]domain.BrandRule, 0, len(doc.Brands)),
		brandIndex:   make(map[domain.Brand]int, len(doc.Brands)),
		fallback:     doc.FallbackCountry,
		aliases:      make(map[string]string, len(doc.CountryAliases)),
		countries:    make(map[string]domain.CountryRule, len(doc.Countries)),
		bsbBanks:     make(map[string]string, len(doc.BSBBanks)),
	}
	c.unknownBrand.Brand = domain.BrandUnknown
	if len(c.unknownBrand.Grouping) == 0 {
		c.unknownBrand.Grouping = []int{4, 4, 4, 4, 3}
	}
	if c.unknownBrand.CVCLength == 0 {
		c.unknownBrand.CVCLength = 4
	}

	for _, rule := range doc.Brands {
		brand, err := domain.ParseBrand(string(rule.Brand))
		if err != nil {
			return nil, errors.Wrap(domain.ErrInvalidCatalog, fmt.Sprintf("invalid brand %q", rule.Brand))
		}
		rule.Brand = brand
		if err := validateBrandRule(rule); err != nil {
			return nil, err
		}
		if _, exists := c.brandIndex[rule.Brand]; exists {
			return nil, errors.Wrap(domain.ErrInvalidCatalog, fmt.Sprintf("duplicate brand %q", rule.Brand))
		}
		c.brandIndex[rule.Brand] = len(c.brands)
		c.brands = append(c.brands, rule)
	}

	if !c.fallback.PostalCode.Lenient && len(c.fallback.PostalCode.Shapes) == 0 {
		c.fallback.PostalCode.Lenient = true
	}

	for _, rule := range doc.Countries {
		rule.Code = domain.NormalizeCountryCode(rule.Code)
		if rule.Code == "" {
			return nil, errors.Wrap(domain.ErrInvalidCatalog, "country without code")
		}
		if err := validatePostalCodeRule(rule.Code, rule.PostalCode); err != nil {
			return nil, err
		}
		if _, exists := c.countries[rule.Code]; exists {
			return nil, errors.Wrap(domain.ErrInvalidCatalog, fmt.Sprintf("duplicate country %q", rule.Code))
		}
		c.countries[rule.Code] = rule
		c.countryCodes = append(c.countryCodes, rule.Code)
	}
	sort.Strings(c.countryCodes)

	for alias, code := range doc.CountryAliases {
		code = domain.NormalizeCountryCode(code)
		if _, ok := c.countries[code]; !ok {
			return nil, errors.Wrap(
				domain.ErrInvalidCatalog,
				fmt.Sprintf("alias %q points to unknown country %q", alias, code),
			)
		}
		c.aliases[domain.NormalizeCountryCode(alias)] = code
	}

	for prefix, bank := range doc.BSBBanks {
		if prefix == "" || !isDigits(prefix) {
			return nil, errors.Wrap(domain.ErrInvalidCatalog, fmt.Sprintf("invalid bsb prefix %q", prefix))
		}
		c.bsbBanks[prefix] = bank
	}
	for prefix := range c.bsbBanks {
		for other := range c.bsbBanks {
			if prefix != other && strings.HasPrefix(other, prefix) {
				return nil, errors.Wrap(
					domain.ErrInvalidCatalog,
					fmt.Sprintf("bsb prefix %q overlaps %q", prefix, other),
				)
			}
		}
	}

	return c, nil
}

func validateBrandRule(rule domain.BrandRule) error {
	switch {
	case !rule.Brand.IsKnown():
		return errors.Wrap(domain.ErrInvalidCatalog, fmt.Sprintf("invalid brand %q", rule.Brand))
	case len(rule.Prefixes) == 0:
		return errors.Wrap(domain.ErrInvalidCatalog, fmt.Sprintf("brand %q has no prefixes", rule.Brand))
	case len(rule.Lengths) == 0:
		return errors.Wrap(domain.ErrInvalidCatalog, fmt.Sprintf("brand %q has no lengths", rule.Brand))
	case rule.CVCLength < domain.MinCVCLength:
		return errors.Wrap(domain.ErrInvalidCatalog, fmt.Sprintf("brand %q has invalid cvc length", rule.Brand))
	case len(rule.Grouping) == 0:
		return errors.Wrap(domain.ErrInvalidCatalog, fmt.Sprintf("brand %q has no grouping", rule.Brand))
	}
	for _, p := range rule.Prefixes {
		if p.Low == "" || len(p.Low) != len(p.High) || !isDigits(p.Low) || !isDigits(p.High) || p.Low > p.High {
			return errors.Wrap(
				domain.ErrInvalidCatalog,
				fmt.Sprintf("brand %q has invalid prefix range %s-%s", rule.Brand, p.Low, p.High),
			)
		}
	}
	return nil
}

func validatePostalCodeRule(code string, rule domain.PostalCodeRule) error {
	for _, shape := range rule.Shapes {
		if shape == "" {
			return errors.Wrap(domain.ErrInvalidCatalog, fmt.Sprintf("country %q has an empty shape", code))
		}
		for _, c := range shape {
			if c != domain.ShapeDigit && c != domain.ShapeLetter && c != domain.ShapeAlnum {
				return errors.Wrap(
					domain.ErrInvalidCatalog,
					fmt.Sprintf("country %q shape %q uses unknown class %q", code, shape, c),
				)
			}
		}
	}
	if rule.Lenient && len(rule.Shapes) > 0 {
		return errors.Wrap(domain.ErrInvalidCatalog, fmt.Sprintf("country %q is lenient but has shapes", code))
	}
	return nil
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
