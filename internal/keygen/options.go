// Package keygen generates random passwords and memorable passphrases under
// caller-supplied composition rules.
package keygen

// Customization narrows the characters a password may contain.
type Customization struct {
	Exclude       string
	SkipAmbiguous bool
}

// PasswordOptions configures a single password generation.
type PasswordOptions struct {
	Lowercase     bool
	Uppercase     bool
	Numbers       bool
	Symbols       bool
	Length        int
	Customization Customization
}

// Enabled reports whether c is switched on.
func (o PasswordOptions) Enabled(c Category) bool {
	switch c {
	case Lowercase:
		return o.Lowercase
	case Uppercase:
		return o.Uppercase
	case Digit:
		return o.Numbers
	case Symbol:
		return o.Symbols
	}
	return false
}

// EnabledCategories returns the enabled categories in generation order.
func (o PasswordOptions) EnabledCategories() []Category {
	var out []Category
	for _, c := range categories {
		if o.Enabled(c) {
			out = append(out, c)
		}
	}
	return out
}

// InitialPasswordOptions returns the defaults: 24 characters of letters and digits.
func InitialPasswordOptions() PasswordOptions {
	return PasswordOptions{
		Lowercase: true,
		Uppercase: true,
		Numbers:   true,
		Symbols:   false,
		Length:    24,
	}
}

// PassphraseOptions configures a single passphrase generation.
type PassphraseOptions struct {
	WordCount     int
	Separator     string
	Style         Style
	IncludeNumber bool
}

// InitialPassphraseOptions returns the defaults: four lowercase words joined by "-".
func InitialPassphraseOptions() PassphraseOptions {
	return PassphraseOptions{
		WordCount: 4,
		Separator: "-",
		Style:     StyleLowercase,
	}
}
