package domain

import "time"

// Rules is the rule context in force for one evaluation. The caller owns it and must
// re-run validation whenever it changes.
type Rules struct {
	Brand   Brand
	Country string
	Now     time.Time
}

// WithBrand returns a copy of the rules with the brand replaced.
func (r Rules) WithBrand(b Brand) Rules {
	r.Brand = b
	return r
}

// WithCountry returns a copy of the rules with the country replaced.
func (r Rules) WithCountry(code string) Rules {
	r.Country = NormalizeCountryCode(code)
	return r
}

// Clock returns the evaluation time, defaulting to the current time.
func (r Rules) Clock() time.Time {
	if r.Now.IsZero() {
		return time.Now()
	}
	return r.Now
}
