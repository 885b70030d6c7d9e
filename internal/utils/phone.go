package utils

import "strings"

// StripPhone removes everything that is not a digit.
func StripPhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidPhone accepts Brazilian numbers: area code plus 8 or 9 digits.
func ValidPhone(phone string) bool {
	n := len(StripPhone(phone))
	return n >= 10 && n <= 11
}

// FormatPhone applies the (00) 00000-0000 mask, truncating past 11 digits.
// Already formatted values pass through unchanged.
func FormatPhone(phone string) string {
	if strings.Contains(phone, "(") && strings.Contains(phone, ")") {
		return phone
	}
	digits := StripPhone(phone)
	switch {
	case len(digits) <= 2:
		return "(" + digits
	case len(digits) <= 7:
		return "(" + digits[:2] + ") " + digits[2:]
	case len(digits) <= 11:
		return "(" + digits[:2] + ") " + digits[2:7] + "-" + digits[7:]
	default:
		return "(" + digits[:2] + ") " + digits[2:7] + "-" + digits[7:11]
	}
}
