package domain

// StyleHint names a presentational attribute the rendering layer applies to a range.
type StyleHint string

const (
	// StyleKern adds letter-spacing after the styled character.
	StyleKern StyleHint = "kern"
)

// Style attaches a hint to a range of the formatted text.
type Style struct {
	Range Range     `json:"range"`
	Hint  StyleHint `json:"hint"`
	Value float64   `json:"value"`
}

// FormattedText is the display form of a field value. Sanitizing Text reproduces the
// value it was derived from; Styles only decorate it.
type FormattedText struct {
	Text   string  `json:"text"`
	Styles []Style `json:"styles,omitempty"`
}

// Unformatted returns text passed through without separators or styles.
func Unformatted(text string) FormattedText {
	return FormattedText{Text: text}
}

// Grouped inserts separator between groups of chars whose sizes are given by groups.
// Characters beyond the sum of groups are appended to the last group. A kern style is
// attached to the character immediately before each inserted separator.
func Grouped(chars string, groups []int, separator string) FormattedText {
	runes := []rune(chars)

	var (
		out    []rune
		styles []Style
		pos    int
	)
	for i, size := range groups {
		if pos >= len(runes) {
			break
		}
		end := pos + size
		if end > len(runes) || i == len(groups)-1 {
			end = len(runes)
		}
		if pos > 0 {
			styles = append(styles, Style{
				Range: Range{Location: len(out) - 1, Length: 1},
				Hint:  StyleKern,
				Value: DefaultKern,
			})
			out = append(out, []rune(separator)...)
		}
		out = append(out, runes[pos:end]...)
		pos = end
	}
	if pos < len(runes) {
		out = append(out, runes[pos:]...)
	}

	return FormattedText{Text: string(out), Styles: styles}
}
