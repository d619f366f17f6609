package keygen

import "strings"

// Style is the letter case applied to passphrase words.
type Style string

const (
	StyleLowercase  Style = "lowercase"
	StyleUppercase  Style = "uppercase"
	StyleCapitalize Style = "capitalize"
)

// Valid reports whether s is a known style.
func (s Style) Valid() bool {
	switch s {
	case StyleLowercase, StyleUppercase, StyleCapitalize:
		return true
	}
	return false
}

// ParseStyle converts a user-supplied name to a Style.
func ParseStyle(name string) (Style, error) {
	s := Style(strings.ToLower(strings.TrimSpace(name)))
	if !s.Valid() {
		return "", newError(CodeInvalidWordStyle, map[string]any{"style": name})
	}
	return s, nil
}

// FormatWord applies style to an ASCII word. Unknown styles leave the word as is.
func FormatWord(word string, style Style) string {
	switch style {
	case StyleLowercase:
		return strings.ToLower(word)
	case StyleUppercase:
		return strings.ToUpper(word)
	case StyleCapitalize:
		if word == "" {
			return word
		}
		return strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}
	return word
}
