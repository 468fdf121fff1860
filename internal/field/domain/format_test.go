package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func kern(loc int) Style {
	return Style{Range: Range{Location: loc, Length: 1}, Hint: StyleKern, Value: DefaultKern}
}

func TestGrouped(t *testing.T) {
	tests := []struct {
		name      string
		chars     string
		groups    []int
		separator string
		want      FormattedText
	}{
		{
			name:      "EmptyInput",
			chars:     "",
			groups:    []int{4, 4},
			separator: " ",
			want:      FormattedText{Text: ""},
		},
		{
			name:      "SingleGroup",
			chars:     "424",
			groups:    []int{4, 4},
			separator: " ",
			want:      FormattedText{Text: "424"},
		},
		{
			name:      "ExactBoundaryHasNoTrailingSeparator",
			chars:     "4242",
			groups:    []int{4, 4},
			separator: " ",
			want:      FormattedText{Text: "4242"},
		},
		{
			name:      "TwoGroups",
			chars:     "424242",
			groups:    []int{4, 4},
			separator: " ",
			want:      FormattedText{Text: "4242 42", Styles: []Style{kern(3)}},
		},
		{
			name:      "RemainderJoinsLastGroup",
			chars:     "1234567",
			groups:    []int{2, 2},
			separator: "/",
			want:      FormattedText{Text: "12/34567", Styles: []Style{kern(1)}},
		},
		{
			name:      "MultiCharacterSeparator",
			chars:     "123456",
			groups:    []int{3, 3},
			separator: " - ",
			want:      FormattedText{Text: "123 - 456", Styles: []Style{kern(2)}},
		},
		{
			name:      "AmexGrouping",
			chars:     "378282246310005",
			groups:    []int{4, 6, 5},
			separator: " ",
			want:      FormattedText{Text: "3782 822463 10005", Styles: []Style{kern(3), kern(10)}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Grouped(tt.chars, tt.groups, tt.separator))
		})
	}
}

func TestUnformatted(t *testing.T) {
	assert.Equal(t, FormattedText{Text: "abc"}, Unformatted("abc"))
}
