package services

import (
	"errors"
	"unicode"
)

var ErrWeakPassword = errors.New("weak password")

// ValidatePasswordStrength requires at least 8 runes mixing letters and digits.
func ValidatePasswordStrength(password string) error {
	if len([]rune(password)) < 8 {
		return ErrWeakPassword
	}

	hasLetter := false
	hasDigit := false
	for _, char := range password {
		switch {
		case unicode.IsLetter(char):
			hasLetter = true
		case unicode.IsDigit(char):
			hasDigit = true
		}
	}

	if hasLetter && hasDigit {
		return nil
	}
	return ErrWeakPassword
}
