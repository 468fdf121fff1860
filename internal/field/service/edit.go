package service

import (
	"github.com/allisson/paymentfields/internal/field/domain"
)

// ResolveEdit widens a deletion that only removes formatting characters so that it also
// removes the significant character before them. Without it a backspace over an inserted
// separator would be undone by the next format pass. Separators with nothing significant
// before them are simply removed.
func ResolveEdit(edit domain.Edit) domain.Edit {
	if !edit.IsDeletion() {
		return edit
	}
	start, end := edit.Bounds()
	if start == end || !onlyRunes(edit.Removed(), isSeparator) {
		return edit
	}

	runes := []rune(edit.Existing)
	i := start - 1
	for i >= 0 && isSeparator(runes[i]) {
		i--
	}
	if i < 0 {
		return edit
	}
	edit.Range = domain.Range{Location: i, Length: end - i}
	return edit
}
