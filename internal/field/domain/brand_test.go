package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBrand(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		want        Brand
		expectError bool
	}{
		{name: "Empty", input: "", want: BrandUnknown},
		{name: "Unknown", input: "unknown", want: BrandUnknown},
		{name: "Visa", input: "visa", want: BrandVisa},
		{name: "MixedCase", input: " MasterCard ", want: BrandMastercard},
		{name: "AmexAlias", input: "american_express", want: BrandAmex},
		{name: "UnionPay", input: "unionpay", want: BrandUnionPay},
		{name: "Invalid", input: "maestro", want: BrandUnknown, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBrand(tt.input)
			if tt.expectError {
				assert.ErrorIs(t, err, ErrUnknownBrand)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBrand_IsKnown(t *testing.T) {
	assert.True(t, BrandVisa.IsKnown())
	assert.False(t, BrandUnknown.IsKnown())
	assert.False(t, Brand("").IsKnown())
}

func TestPrefixRange_Matches(t *testing.T) {
	mastercard := PrefixRange{Low: "2221", High: "2720"}

	tests := []struct {
		digits string
		want   bool
	}{
		{digits: "", want: false},
		{digits: "2", want: true},
		{digits: "22", want: true},
		{digits: "222", want: true},
		{digits: "2220", want: false},
		{digits: "2221", want: true},
		{digits: "2720999", want: true},
		{digits: "2721", want: false},
		{digits: "28", want: false},
		{digits: "3", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.digits, func(t *testing.T) {
			assert.Equal(t, tt.want, mastercard.Matches(tt.digits))
		})
	}
}

func TestBrandRule_Lengths(t *testing.T) {
	discover := BrandRule{Lengths: []int{16, 19}, Grouping: []int{4, 4, 4, 4, 3}}

	assert.Equal(t, 19, discover.MaxLength())
	assert.Equal(t, 16, discover.MinLength())
	assert.True(t, discover.HasLength(16))
	assert.False(t, discover.HasLength(17))
	assert.Equal(t, DefaultCVCLength, discover.MaxCVCLength())

	unknown := BrandRule{CVCLength: 4}
	assert.Equal(t, DefaultMaxCardNumberLength, unknown.MaxLength())
	assert.Equal(t, 0, unknown.MinLength())
	assert.Equal(t, 4, unknown.MaxCVCLength())
}

func TestBrandRule_IsGroupBoundary(t *testing.T) {
	amex := BrandRule{Grouping: []int{4, 6, 5}}

	assert.True(t, amex.IsGroupBoundary(4))
	assert.True(t, amex.IsGroupBoundary(10))
	assert.True(t, amex.IsGroupBoundary(15))
	assert.False(t, amex.IsGroupBoundary(8))
	assert.False(t, amex.IsGroupBoundary(0))
	assert.False(t, amex.IsGroupBoundary(16))
}
