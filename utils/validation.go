// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

// Egyptian mobile numbers: optional +20 / 0020 / 0 country prefix, then a
// mobile prefix 10/11/12/15, then eight digits.
var phoneRegex = regexp.MustCompile(`^(\+20|0020|0)?1[0125]\d{8}$`)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidatePhone checks if a phone number is a valid Egyptian mobile number
func ValidatePhone(phone string) bool {
	cleaned := strings.ReplaceAll(phone, " ", "")
	return phoneRegex.MatchString(cleaned)
}

// ValidateEmail checks if an email address is plausibly formed
func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}
