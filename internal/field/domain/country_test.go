package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPostalCodeRule(t *testing.T) {
	us := PostalCodeRule{Required: true, Shapes: []string{"99999", "999999999"}, Separator: "-", SeparatorAt: 5}
	gb := PostalCodeRule{Required: true, Shapes: []string{"A99AA", "AA9A9AA"}, Separator: " ", SeparatorAt: -3}
	lenient := PostalCodeRule{Lenient: true}
	unused := PostalCodeRule{}

	assert.True(t, us.IsNumeric())
	assert.False(t, gb.IsNumeric())
	assert.False(t, lenient.IsNumeric())

	assert.False(t, us.IsUnused())
	assert.False(t, lenient.IsUnused())
	assert.True(t, unused.IsUnused())

	assert.Equal(t, 9, us.Bound())
	assert.Equal(t, 7, gb.Bound())
	assert.Equal(t, LenientPostalCodeMaxLength, lenient.Bound())
	assert.Equal(t, 6, PostalCodeRule{Lenient: true, MaxLength: 6}.Bound())

	assert.Equal(t, -1, us.SeparatorIndex(5))
	assert.Equal(t, 5, us.SeparatorIndex(9))
	assert.Equal(t, 4, gb.SeparatorIndex(7))
	assert.Equal(t, 2, gb.SeparatorIndex(5))
	assert.Equal(t, -1, gb.SeparatorIndex(3))
	assert.Equal(t, -1, lenient.SeparatorIndex(8))
}

func TestPhoneRule_Digits(t *testing.T) {
	assert.Equal(t, 10, PhoneRule{Template: "(###) ###-####"}.Digits())
	assert.Equal(t, 0, PhoneRule{}.Digits())
}

func TestNormalizeCountryCode(t *testing.T) {
	assert.Equal(t, "US", NormalizeCountryCode(" us "))
	assert.Equal(t, "", NormalizeCountryCode(""))
}

func TestRules(t *testing.T) {
	r := Rules{}.WithBrand(BrandAmex).WithCountry("gb")
	assert.Equal(t, BrandAmex, r.Brand)
	assert.Equal(t, "GB", r.Country)
	assert.False(t, r.Clock().IsZero())
}
