package service

import (
	"github.com/allisson/paymentfields/internal/field/domain"
	"github.com/allisson/paymentfields/internal/field/metadata"
)

// Session holds the state of a single field being edited: its display text, the rules in
// force and the validation state derived from both. A Session is not safe for concurrent
// use; edits to one field are serialized by its owner.
type Session struct {
	field     Field
	catalog   *metadata.Catalog
	rules     domain.Rules
	formatted domain.FormattedText
	state     domain.ValidationState
}

// NewSession creates an empty session for field under rules.
func NewSession(field Field, rules domain.Rules) *Session {
	s := &Session{field: field, rules: rules}
	s.revalidate()
	return s
}

// NewCatalogSession creates an empty session for a field kind of catalog. Unlike
// NewSession it can also report the brand and caption of the text.
func NewCatalogSession(kind domain.Kind, catalog *metadata.Catalog, rules domain.Rules) (*Session, error) {
	field, err := NewField(kind, catalog)
	if err != nil {
		return nil, err
	}
	s := NewSession(field, rules)
	s.catalog = catalog
	return s, nil
}

// Kind returns the kind of the edited field.
func (s *Session) Kind() domain.Kind {
	return s.field.Kind()
}

// Apply replaces r of the current text with replacement. The edit is committed only when
// the field allows it; the result reports whether it was.
func (s *Session) Apply(r domain.Range, replacement string) bool {
	edit := ResolveEdit(domain.Edit{Existing: s.formatted.Text, Range: r, Replacement: replacement})
	if !s.field.IsAllowedInput(edit, s.rules) {
		return false
	}
	s.formatted = s.field.Format(edit.Proposed(), s.rules)
	s.revalidate()
	return true
}

// Type appends text at the end of the field.
func (s *Session) Type(text string) bool {
	e := domain.Append(s.formatted.Text, text)
	return s.Apply(e.Range, e.Replacement)
}

// Backspace deletes the last character of the field.
func (s *Session) Backspace() bool {
	if s.formatted.Text == "" {
		return false
	}
	e := domain.Backspace(s.formatted.Text)
	return s.Apply(e.Range, e.Replacement)
}

// SetText replaces the whole text without the input checks, as a paste of a stored value.
func (s *Session) SetText(text string) {
	s.formatted = s.field.Format(text, s.rules)
	s.revalidate()
}

// SetRules switches the rules in force. Text is reformatted and the state is always
// recomputed; text longer than the new rule allows is kept and reported as invalid.
func (s *Session) SetRules(rules domain.Rules) {
	s.rules = rules
	s.formatted = s.field.Format(s.formatted.Text, rules)
	s.revalidate()
}

// Rules returns the rules in force.
func (s *Session) Rules() domain.Rules {
	return s.rules
}

// Text returns the display text.
func (s *Session) Text() string {
	return s.formatted.Text
}

// Formatted returns the display text with its style hints.
func (s *Session) Formatted() domain.FormattedText {
	return s.formatted
}

// State returns the validation state of the current text under the current rules.
func (s *Session) State() domain.ValidationState {
	return s.state
}

// Brand returns the brand in force: for card numbers the one detected from the text.
func (s *Session) Brand() domain.Brand {
	brand, _ := s.describe()
	return brand
}

// Caption returns the brand display name of a card number or the bank of a BSB number.
func (s *Session) Caption() string {
	_, caption := s.describe()
	return caption
}

func (s *Session) describe() (domain.Brand, string) {
	if s.catalog == nil {
		return s.rules.Brand, ""
	}
	return Describe(s.catalog, s.Kind(), s.formatted.Text, s.rules)
}

func (s *Session) revalidate() {
	s.state = s.field.ValidationState(s.formatted.Text, s.rules)
}
