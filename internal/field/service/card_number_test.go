package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/allisson/paymentfields/internal/field/domain"
	"github.com/allisson/paymentfields/internal/field/metadata"
)

func TestCardNumberField_IsAllowedInput(t *testing.T) {
	field := NewCardNumberField(metadata.Default())

	tests := []struct {
		name string
		edit domain.Edit
		want bool
	}{
		{name: "Allowed_FirstDigit", edit: domain.Append("", "4"), want: true},
		{name: "Allowed_UpToVisaLength", edit: domain.Append("424242424242424", "2"), want: true},
		{name: "Allowed_FormattedExisting", edit: domain.Append("4242 4242 4242 424", "2"), want: true},
		{name: "Allowed_Paste", edit: domain.Append("", "4242 4242 4242 4242"), want: true},
		{name: "Allowed_SpaceAfterGroup", edit: domain.Append("4242", " "), want: true},
		{name: "Allowed_SpaceAfterAmexSecondGroup", edit: domain.Append("3782822463", " "), want: true},
		{name: "Rejected_BeyondDinersLength", edit: domain.Append("3000000000000000", "0"), want: false},
		{name: "Allowed_Deletion", edit: domain.Backspace("4242"), want: true},
		{name: "Rejected_BeyondVisaLength", edit: domain.Append("4242424242424242", "4"), want: false},
		{name: "Rejected_BeyondAmexLength", edit: domain.Append("378282246310005", "1"), want: false},
		{name: "Rejected_Letter", edit: domain.Append("4242", "a"), want: false},
		{name: "Rejected_Dash", edit: domain.Append("4242", "-"), want: false},
		{name: "Rejected_SpaceMidGroup", edit: domain.Append("424", " "), want: false},
		{name: "Rejected_LeadingSpace", edit: domain.Append("", " "), want: false},
		{name: "Rejected_SpaceAfterAmexFirstDigits", edit: domain.Append("37828224", " "), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, field.IsAllowedInput(tt.edit, testRules()))
		})
	}
}

func TestCardNumberField_AllowedAtEveryDigit(t *testing.T) {
	field := NewCardNumberField(metadata.Default())
	number := "4242424242424242"

	for i := 0; i < len(number); i++ {
		assert.True(t, field.IsAllowedInput(domain.Append(number[:i], number[i:i+1]), testRules()), "digit %d", i)
	}
}

func TestCardNumberField_Format(t *testing.T) {
	field := NewCardNumberField(metadata.Default())

	tests := []struct {
		name string
		text string
		want domain.FormattedText
	}{
		{
			name: "Visa",
			text: "4242424242424242",
			want: domain.FormattedText{Text: "4242 4242 4242 4242", Styles: kernAt(3, 8, 13)},
		},
		{
			name: "VisaPartial",
			text: "424242",
			want: domain.FormattedText{Text: "4242 42", Styles: kernAt(3)},
		},
		{
			name: "Amex",
			text: "378282246310005",
			want: domain.FormattedText{Text: "3782 822463 10005", Styles: kernAt(3, 10)},
		},
		{
			name: "AlreadyFormatted",
			text: "4242 4242 4242 4242",
			want: domain.FormattedText{Text: "4242 4242 4242 4242", Styles: kernAt(3, 8, 13)},
		},
		{
			name: "ShortNumber",
			text: "42",
			want: domain.FormattedText{Text: "42"},
		},
		{
			name: "Empty",
			text: "",
			want: domain.FormattedText{Text: ""},
		},
		{
			name: "PassThroughLetters",
			text: "4242abcd",
			want: domain.FormattedText{Text: "4242abcd"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, field.Format(tt.text, testRules()))
		})
	}
}

func TestCardNumberField_ValidationState(t *testing.T) {
	field := NewCardNumberField(metadata.Default())

	tests := []struct {
		name string
		text string
		want domain.ValidationState
	}{
		{name: "Empty", text: "", want: domain.Empty()},
		{name: "Valid_Visa", text: "4242424242424242", want: domain.Valid()},
		{name: "Valid_VisaFormatted", text: "4242 4242 4242 4242", want: domain.Valid()},
		{name: "Valid_Amex", text: "378282246310005", want: domain.Valid()},
		{name: "Valid_Mastercard", text: "5555555555554444", want: domain.Valid()},
		{name: "Valid_Mastercard2Series", text: "2223003122003222", want: domain.Valid()},
		{name: "Valid_Discover", text: "6011111111111117", want: domain.Valid()},
		{name: "Valid_DinersClub14", text: "30569309025904", want: domain.Valid()},
		{name: "Valid_JCB", text: "3530111333300000", want: domain.Valid()},
		{name: "Valid_UnionPay", text: "6200000000000005", want: domain.Valid()},
		{name: "Incomplete_Partial", text: "424242", want: domain.Incomplete(domain.ReasonTooShort)},
		{name: "Incomplete_AmbiguousPrefix", text: "3", want: domain.Incomplete(domain.ReasonTooShort)},
		{
			name: "Incomplete_LuhnFailureWithLongerLength",
			text: "6011111111111118",
			want: domain.Incomplete(domain.ReasonLuhnFailed),
		},
		{name: "Invalid_LuhnFailure", text: "4242424242424241", want: domain.Invalid(domain.ReasonLuhnFailed)},
		{name: "Invalid_TooLong", text: "42424242424242424", want: domain.Invalid(domain.ReasonTooLong)},
		{name: "Invalid_UnknownBrand", text: "9", want: domain.Invalid(domain.ReasonUnknownBrand)},
		{name: "Invalid_Letters", text: "4242a", want: domain.Invalid(domain.ReasonInvalidCharacters)},
		{
			name: "Invalid_AmexTooLong",
			text: "3782822463100051",
			want: domain.Invalid(domain.ReasonTooLong),
		},
		{
			name: "Invalid_UnknownBrandBeyond19",
			text: strings.Repeat("3", 20),
			want: domain.Invalid(domain.ReasonUnknownBrand),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, field.ValidationState(tt.text, testRules()))
		})
	}
}
