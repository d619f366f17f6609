package model

import "github.com/vaultpass/passgen-go/internal/strength"

// Generation modes.
const (
	ModePassword   = "password"
	ModePassphrase = "passphrase"
)

// Customization narrows the characters a password may contain.
type Customization struct {
	Exclude       string `json:"exclude" yaml:"exclude"`
	SkipAmbiguous bool   `json:"skipAmbiguous" yaml:"skipAmbiguous"`
}

// PasswordOptions is the wire form of password generation options.
type PasswordOptions struct {
	Lowercase     bool          `json:"lowercase" yaml:"lowercase"`
	Uppercase     bool          `json:"uppercase" yaml:"uppercase"`
	Numbers       bool          `json:"numbers" yaml:"numbers"`
	Symbols       bool          `json:"symbols" yaml:"symbols"`
	Length        int           `json:"length" yaml:"length"`
	Customization Customization `json:"customization" yaml:"customization"`
}

// PassphraseOptions is the wire form of passphrase generation options.
type PassphraseOptions struct {
	WordCount     int    `json:"wordCount" yaml:"wordCount"`
	Separator     string `json:"separator" yaml:"separator"`
	Style         string `json:"style" yaml:"style"`
	IncludeNumber bool   `json:"includeNumber" yaml:"includeNumber"`
}

// Output controls what a generation call returns besides the secrets.
type Output struct {
	Count    int    `json:"count,omitempty"`
	Hash     string `json:"hash,omitempty"`
	Strength bool   `json:"strength,omitempty"`
}

// PasswordRequest represents a password generation request. Fields missing
// from the JSON body keep the values the request was initialised with.
type PasswordRequest struct {
	PasswordOptions
	Output
}

// PassphraseRequest represents a passphrase generation request.
type PassphraseRequest struct {
	PassphraseOptions
	Output
}

// GenerateRequest selects a mode and carries the options for it.
type GenerateRequest struct {
	Mode       string            `json:"mode"`
	Password   PasswordRequest   `json:"password"`
	Passphrase PassphraseRequest `json:"passphrase"`
}

// Secret is one generated value.
type Secret struct {
	Value    string           `json:"value"`
	Length   int              `json:"length"`
	Hash     string           `json:"hash,omitempty"`
	Strength *strength.Result `json:"strength,omitempty"`
}

// GenerateResponse represents a generation response.
type GenerateResponse struct {
	Mode    string   `json:"mode"`
	Secrets []Secret `json:"secrets"`
}

// OptionsResponse lists the initial options of both modes.
type OptionsResponse struct {
	Password   PasswordOptions   `json:"password"`
	Passphrase PassphraseOptions `json:"passphrase"`
}
