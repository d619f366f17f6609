package keygen

import "strings"

// ValidateLength rejects lengths too short to hold one character of every
// enabled category.
func ValidateLength(opts PasswordOptions) error {
	minLength := len(opts.EnabledCategories())
	if opts.Length < minLength {
		return newError(CodeInvalidPasswordLength, map[string]any{
			"length": opts.Length,
			"min":    minLength,
		})
	}
	return nil
}

// MeetsRequirements reports whether candidate holds at least one character
// of every enabled category. Membership uses the unfiltered sets.
func MeetsRequirements(candidate string, opts PasswordOptions) bool {
	for _, c := range opts.EnabledCategories() {
		if !strings.ContainsAny(candidate, c.Chars()) {
			return false
		}
	}
	return true
}
