package domain

import "strings"

// Mask hides a card number for logs, keeping the first six and last four digits.
// Values too short to carry a full number are masked entirely.
func Mask(digits string) string {
	n := len(digits)
	if n < 13 {
		return strings.Repeat("*", n)
	}
	return digits[:6] + strings.Repeat("*", n-10) + digits[n-4:]
}
