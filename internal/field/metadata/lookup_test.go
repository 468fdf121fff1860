package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/allisson/paymentfields/internal/field/domain"
)

func TestCatalog_DetectBrand(t *testing.T) {
	c := Default()

	tests := []struct {
		digits string
		want   domain.Brand
	}{
		{digits: "", want: domain.BrandUnknown},
		{digits: "3", want: domain.BrandUnknown},
		{digits: "34", want: domain.BrandAmex},
		{digits: "37", want: domain.BrandAmex},
		{digits: "4", want: domain.BrandVisa},
		{digits: "5", want: domain.BrandMastercard},
		{digits: "2", want: domain.BrandMastercard},
		{digits: "2720", want: domain.BrandMastercard},
		{digits: "2721", want: domain.BrandUnknown},
		{digits: "6", want: domain.BrandUnknown},
		{digits: "6011", want: domain.BrandDiscover},
		{digits: "62", want: domain.BrandUnionPay},
		{digits: "36", want: domain.BrandDinersClub},
		{digits: "35", want: domain.BrandJCB},
		{digits: "9", want: domain.BrandUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.digits, func(t *testing.T) {
			assert.Equal(t, tt.want, c.DetectBrand(tt.digits))
		})
	}
}

func TestCatalog_PossibleBrands(t *testing.T) {
	c := Default()

	assert.ElementsMatch(
		t,
		[]domain.Brand{domain.BrandAmex, domain.BrandDinersClub, domain.BrandJCB},
		c.PossibleBrands("3"),
	)
	assert.Empty(t, c.PossibleBrands("9"))
	assert.True(t, c.IsValidCardPrefix(""))
	assert.True(t, c.IsValidCardPrefix("4"))
	assert.False(t, c.IsValidCardPrefix("9"))
}

func TestCatalog_BrandRule(t *testing.T) {
	c := Default()

	visa := c.BrandRule(domain.BrandVisa)
	assert.Equal(t, "Visa", visa.DisplayName)
	assert.Equal(t, 3, visa.MaxCVCLength())

	amex := c.BrandRule(domain.BrandAmex)
	assert.Equal(t, 4, amex.MaxCVCLength())
	assert.Equal(t, []int{4, 6, 5}, amex.Grouping)

	unknown := c.BrandRule(domain.BrandUnknown)
	assert.Equal(t, domain.BrandUnknown, unknown.Brand)
	assert.Equal(t, 19, unknown.MaxLength())
	assert.Equal(t, 4, unknown.MaxCVCLength())
}

func TestCatalog_Country(t *testing.T) {
	c := Default()

	gb, ok := c.Country("gb")
	assert.True(t, ok)
	assert.Equal(t, "GB", gb.Code)

	uk, ok := c.Country("UK")
	assert.True(t, ok)
	assert.Equal(t, gb, uk)

	zz, ok := c.Country("ZZ")
	assert.False(t, ok)
	assert.Equal(t, "ZZ", zz.Code)
	assert.True(t, zz.PostalCode.Lenient)

	assert.True(t, c.HasCountry("US"))
	assert.False(t, c.HasCountry("ZZ"))

	codes := make([]string, 0)
	for _, rule := range c.Countries() {
		codes = append(codes, rule.Code)
	}
	assert.IsNonDecreasing(t, codes)
}

func TestCatalog_BSBBank(t *testing.T) {
	c := Default()

	tests := []struct {
		digits    string
		wantBank  string
		wantMatch PrefixMatch
	}{
		{digits: "0", wantMatch: PrefixPartial},
		{digits: "00", wantMatch: PrefixNone},
		{digits: "01", wantBank: "ANZ", wantMatch: PrefixFull},
		{digits: "012345", wantBank: "ANZ", wantMatch: PrefixFull},
		{digits: "63", wantMatch: PrefixPartial},
		{digits: "633", wantBank: "Bendigo Bank", wantMatch: PrefixFull},
		{digits: "631", wantMatch: PrefixNone},
	}

	for _, tt := range tests {
		t.Run(tt.digits, func(t *testing.T) {
			bank, match := c.BSBBank(tt.digits)
			assert.Equal(t, tt.wantBank, bank)
			assert.Equal(t, tt.wantMatch, match)
		})
	}
}
