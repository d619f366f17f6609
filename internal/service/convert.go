package service

import (
	"github.com/vaultpass/passgen-go/internal/keygen"
	"github.com/vaultpass/passgen-go/internal/model"
)

func toPasswordOptions(o model.PasswordOptions) keygen.PasswordOptions {
	return keygen.PasswordOptions{
		Lowercase: o.Lowercase,
		Uppercase: o.Uppercase,
		Numbers:   o.Numbers,
		Symbols:   o.Symbols,
		Length:    o.Length,
		Customization: keygen.Customization{
			Exclude:       o.Customization.Exclude,
			SkipAmbiguous: o.Customization.SkipAmbiguous,
		},
	}
}

func fromPasswordOptions(o keygen.PasswordOptions) model.PasswordOptions {
	return model.PasswordOptions{
		Lowercase: o.Lowercase,
		Uppercase: o.Uppercase,
		Numbers:   o.Numbers,
		Symbols:   o.Symbols,
		Length:    o.Length,
		Customization: model.Customization{
			Exclude:       o.Customization.Exclude,
			SkipAmbiguous: o.Customization.SkipAmbiguous,
		},
	}
}

// toPassphraseOptions keeps an unknown style as is; the engine rejects it.
func toPassphraseOptions(o model.PassphraseOptions) keygen.PassphraseOptions {
	style := keygen.Style(o.Style)
	if parsed, err := keygen.ParseStyle(o.Style); err == nil {
		style = parsed
	}
	return keygen.PassphraseOptions{
		WordCount:     o.WordCount,
		Separator:     o.Separator,
		Style:         style,
		IncludeNumber: o.IncludeNumber,
	}
}

func fromPassphraseOptions(o keygen.PassphraseOptions) model.PassphraseOptions {
	return model.PassphraseOptions{
		WordCount:     o.WordCount,
		Separator:     o.Separator,
		Style:         string(o.Style),
		IncludeNumber: o.IncludeNumber,
	}
}
