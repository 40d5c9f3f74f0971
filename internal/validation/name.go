package validation

import (
	"strings"
)

// ValidateName validates a profile display name
func ValidateName(name string) error {
	trimmed := strings.TrimSpace(name)

	if trimmed == "" {
		return Invalid("display_name", "is required")
	}

	return MaxLength("display_name", trimmed, 100)
}
