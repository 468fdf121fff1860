package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsLuhnValid(t *testing.T) {
	tests := []struct {
		name   string
		digits string
		want   bool
	}{
		{name: "Valid_Visa", digits: "4242424242424242", want: true},
		{name: "Valid_Amex", digits: "378282246310005", want: true},
		{name: "Valid_Mastercard", digits: "5555555555554444", want: true},
		{name: "Invalid_CheckDigit", digits: "4242424242424241", want: false},
		{name: "Invalid_SingleDigit", digits: "0", want: false},
		{name: "Invalid_Empty", digits: "", want: false},
		{name: "Invalid_NonDigit", digits: "42424242424242a2", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsLuhnValid(tt.digits))
		})
	}
}

func TestLuhnCheckDigit(t *testing.T) {
	payloads := []string{"424242424242424", "37828224631000", "555555555555444", "7992739871"}

	for _, payload := range payloads {
		t.Run(payload, func(t *testing.T) {
			check := LuhnCheckDigit(payload)
			assert.True(t, IsLuhnValid(payload+string(rune('0'+check))))
		})
	}
}
