package service

const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

// clampLimit maps a missing or non-positive limit to the default and caps
// large ones.
func clampLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	return min(limit, MaxListLimit)
}
