package domain

// EditResult is the outcome of proposing an edit to a field.
type EditResult struct {
	Kind Kind
	// Allowed reports whether the edit was committed. A rejected edit leaves the existing
	// text in place, reformatted and revalidated.
	Allowed   bool
	Formatted FormattedText
	State     ValidationState
	Brand     Brand
	// Caption is a short label for the value: the card brand name or the BSB bank name.
	Caption string
}
