package validation

import (
	"strings"
)

// ValidatePassword enforces a 12 character minimum and bcrypt's 72 byte ceiling
func ValidatePassword(password string) error {
	if len(password) < 12 {
		return Invalid("password", "must be at least 12 characters")
	}

	// bcrypt silently truncates anything longer
	if len(password) > 72 {
		return Invalid("password", "must not exceed 72 bytes")
	}

	lower := strings.ToLower(password)
	commonPatterns := []string{
		"password", "123456", "qwerty", "admin", "letmein",
		"welcome", "monkey", "dragon", "master", "sunshine",
	}

	for _, pattern := range commonPatterns {
		if strings.Contains(lower, pattern) {
			return Invalid("password", "is too common, please choose a stronger one")
		}
	}

	return nil
}
