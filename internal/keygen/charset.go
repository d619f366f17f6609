package keygen

import (
	"strings"

	"github.com/vaultpass/passgen-go/internal/random"
)

// Category is a character class a password can draw from.
type Category int

const (
	Lowercase Category = iota
	Uppercase
	Digit
	Symbol
)

const (
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars     = "0123456789"
	symbolChars    = "!@#$%^&*"

	// AmbiguousChars are removed from every pool when SkipAmbiguous is set.
	AmbiguousChars = "lI1|`O0"
)

var categories = [...]Category{Lowercase, Uppercase, Digit, Symbol}

// Categories returns every category in generation order.
func Categories() []Category {
	return categories[:]
}

// Chars returns the unfiltered character set of c.
func (c Category) Chars() string {
	switch c {
	case Lowercase:
		return lowercaseChars
	case Uppercase:
		return uppercaseChars
	case Digit:
		return digitChars
	case Symbol:
		return symbolChars
	}
	return ""
}

func (c Category) String() string {
	switch c {
	case Lowercase:
		return "lowercase"
	case Uppercase:
		return "uppercase"
	case Digit:
		return "numbers"
	case Symbol:
		return "symbols"
	}
	return "unknown"
}

// filter strips ambiguous and excluded characters from set. Exclusions are
// matched literally, one character at a time.
func filter(set string, c Customization) string {
	return strings.Map(func(r rune) rune {
		if c.SkipAmbiguous && strings.ContainsRune(AmbiguousChars, r) {
			return -1
		}
		if strings.ContainsRune(c.Exclude, r) {
			return -1
		}
		return r
	}, set)
}

// BuildPool returns the filtered characters of every enabled category.
func BuildPool(opts PasswordOptions) (string, error) {
	enabled := opts.EnabledCategories()
	if len(enabled) == 0 {
		return "", newError(CodeEmptyCharacterPool, nil)
	}

	var sb strings.Builder
	for _, c := range enabled {
		sb.WriteString(c.Chars())
	}

	pool := filter(sb.String(), opts.Customization)
	if pool == "" {
		return "", newError(CodeEmptyPoolAfterExclusion, map[string]any{
			"exclude":       opts.Customization.Exclude,
			"skipAmbiguous": opts.Customization.SkipAmbiguous,
		})
	}
	return pool, nil
}

// RequiredChars draws one character from each enabled category after the
// same filtering BuildPool applies. A category whose filtered set is empty
// contributes nothing.
func RequiredChars(src random.Source, opts PasswordOptions) ([]byte, error) {
	chars := make([]byte, 0, len(categories))
	for _, c := range opts.EnabledCategories() {
		set := filter(c.Chars(), opts.Customization)
		if set == "" {
			continue
		}
		i, err := src.Uniform(len(set))
		if err != nil {
			return nil, err
		}
		chars = append(chars, set[i])
	}
	return chars, nil
}
