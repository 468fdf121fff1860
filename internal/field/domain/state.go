package domain

// Status is the outcome class of validating a field's current text.
type Status string

const (
	StatusEmpty      Status = "empty"
	StatusIncomplete Status = "incomplete"
	StatusValid      Status = "valid"
	StatusInvalid    Status = "invalid"
)

// ValidationState is the result of validating a field's text under the rule in force.
// It is a pure function of (text, rule) and carries no history.
type ValidationState struct {
	Status Status `json:"status"`
	Reason string `json:"reason,omitempty"`
}

// Empty returns the state of a field without text.
func Empty() ValidationState {
	return ValidationState{Status: StatusEmpty}
}

// Incomplete returns the state of a proper prefix of some valid value.
func Incomplete(reason string) ValidationState {
	return ValidationState{Status: StatusIncomplete, Reason: reason}
}

// Valid returns the state of text that fully satisfies the rule.
func Valid() ValidationState {
	return ValidationState{Status: StatusValid}
}

// Invalid returns the state of text that cannot become valid by appending characters.
func Invalid(reason string) ValidationState {
	return ValidationState{Status: StatusInvalid, Reason: reason}
}

// IsValid reports whether the state is valid.
func (s ValidationState) IsValid() bool {
	return s.Status == StatusValid
}

// IsEmpty reports whether the state is empty.
func (s ValidationState) IsEmpty() bool {
	return s.Status == StatusEmpty
}

// String returns "status" or "status(reason)".
func (s ValidationState) String() string {
	if s.Reason == "" {
		return string(s.Status)
	}
	return string(s.Status) + "(" + s.Reason + ")"
}
