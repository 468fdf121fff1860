package domain

// Range addresses a span of characters by rune offset.
type Range struct {
	Location int `json:"location"`
	Length   int `json:"length"`
}

// End returns the offset just past the range.
func (r Range) End() int {
	return r.Location + r.Length
}

// Edit is a pending change to a field: replace Range of Existing with Replacement.
type Edit struct {
	Existing    string
	Range       Range
	Replacement string
}

// Append builds the edit that types replacement at the end of existing.
func Append(existing, replacement string) Edit {
	return Edit{
		Existing:    existing,
		Range:       Range{Location: len([]rune(existing))},
		Replacement: replacement,
	}
}

// Backspace builds the edit that deletes the last character of existing.
func Backspace(existing string) Edit {
	n := len([]rune(existing))
	if n == 0 {
		return Edit{}
	}
	return Edit{Existing: existing, Range: Range{Location: n - 1, Length: 1}}
}

// IsDeletion reports whether the edit only removes characters.
func (e Edit) IsDeletion() bool {
	return e.Replacement == ""
}

// Bounds returns the edit range clamped to the existing text.
func (e Edit) Bounds() (start, end int) {
	n := len([]rune(e.Existing))
	start = clamp(e.Range.Location, 0, n)
	end = clamp(e.Range.End(), start, n)
	return start, end
}

// Removed returns the characters the edit replaces.
func (e Edit) Removed() string {
	start, end := e.Bounds()
	return string([]rune(e.Existing)[start:end])
}

// Proposed returns the text the field would hold if the edit were committed.
func (e Edit) Proposed() string {
	runes := []rune(e.Existing)
	start, end := e.Bounds()

	out := make([]rune, 0, len(runes)-(end-start)+len(e.Replacement))
	out = append(out, runes[:start]...)
	out = append(out, []rune(e.Replacement)...)
	out = append(out, runes[end:]...)
	return string(out)
}

// Prefix returns the existing text before the edit range.
func (e Edit) Prefix() string {
	start, _ := e.Bounds()
	return string([]rune(e.Existing)[:start])
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
