package services

import (
	"regexp"
	"time"
	"unicode"
)

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// Sri Lankan mobile numbers, with or without country code.
	phoneRe = regexp.MustCompile(`^(?:\+?94|0)?(?:77\d{7})$`)
)

func isValidEmail(email string) bool { return emailRe.MatchString(email) }

func isValidPhone(phone string) bool { return phoneRe.MatchString(phone) }

// isStrongPassword requires at least 8 characters with an upper-case letter,
// a lower-case letter and a digit.
func isStrongPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	var upper, lower, digit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return upper && lower && digit
}

func parseDOB(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
