package model

import (
	"encoding/json"
	"time"
)

// Preset is a named set of generation options saved by an API client.
type Preset struct {
	ID        string
	ClientID  string
	Name      string
	Kind      string
	Options   json.RawMessage
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PresetRequest represents a preset creation request. Exactly the options
// matching Kind are used.
type PresetRequest struct {
	Name       string             `json:"name"`
	Kind       string             `json:"kind"`
	Password   *PasswordOptions   `json:"password,omitempty"`
	Passphrase *PassphraseOptions `json:"passphrase,omitempty"`
}

// PresetResponse represents a preset in API responses.
type PresetResponse struct {
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	Kind       string             `json:"kind"`
	Password   *PasswordOptions   `json:"password,omitempty"`
	Passphrase *PassphraseOptions `json:"passphrase,omitempty"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}
