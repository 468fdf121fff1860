package service

// LuhnCheckDigit calculates the Luhn check digit for a digit string that does NOT include
// the check digit position.
func LuhnCheckDigit(payload string) int {
	sum := 0
	length := len(payload)

	// Process digits from right to left (excluding the check digit position)
	for i := 0; i < length; i++ {
		digit := int(payload[length-1-i] - '0')

		// Double every second digit from the right
		if i%2 == 0 {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}

		sum += digit
	}

	return (10 - (sum % 10)) % 10
}

// IsLuhnValid reports whether the last digit of a complete card number is the check digit
// of the digits before it. Strings shorter than two digits never pass.
func IsLuhnValid(digits string) bool {
	if len(digits) < 2 || !IsDigits(digits) {
		return false
	}
	last := len(digits) - 1
	return LuhnCheckDigit(digits[:last]) == int(digits[last]-'0')
}
