package domain

// Form holds the raw values of a checkout form.
type Form struct {
	CardNumber string
	Expiry     string
	CVC        string
	PostalCode string
	BSB        string
	Phone      string
	Country    string
}

// FormResult is the evaluation of a Form.
type FormResult struct {
	Brand     Brand
	Country   string
	States    map[Kind]ValidationState
	Required  map[Kind]bool
	CanSubmit bool
}

// Blocking returns the kinds that prevent submission: every field that is not valid,
// except optional fields left empty.
func (r *FormResult) Blocking(required map[Kind]bool) []Kind {
	var blocking []Kind
	for _, k := range Kinds {
		state, ok := r.States[k]
		if !ok {
			continue
		}
		if state.IsValid() {
			continue
		}
		if state.IsEmpty() && !required[k] {
			continue
		}
		blocking = append(blocking, k)
	}
	return blocking
}
