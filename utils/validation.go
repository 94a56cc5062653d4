// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

// ValidatePhone checks if a phone number is in a valid international format
func ValidatePhone(phone string) bool {
	// Clean the phone number
	cleaned := strings.ReplaceAll(phone, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	cleaned = strings.ReplaceAll(cleaned, "(", "")
	cleaned = strings.ReplaceAll(cleaned, ")", "")

	// Regular expression for international phone numbers
	// Allows + prefix followed by 7-15 digits
	regex := `^\+?[1-9]\d{1,14}$`
	match, _ := regexp.MatchString(regex, cleaned)
	return match
}

// ValidateBookingContact checks the presence of the required client contact
// fields on a booking. Whitespace-only values count as missing. No email
// format check happens at this stage.
func ValidateBookingContact(name, email, phone string) (string, bool) {
	if strings.TrimSpace(name) == "" {
		return "Client name is required", false
	}
	if strings.TrimSpace(email) == "" {
		return "Client email is required", false
	}
	if strings.TrimSpace(phone) == "" {
		return "Client phone is required", false
	}
	return "", true
}
