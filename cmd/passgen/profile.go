package main

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vaultpass/passgen-go/internal/model"
)

// profile holds per-user defaults read from a YAML file. Either section may
// be omitted.
type profile struct {
	Password   *model.PasswordOptions   `yaml:"password"`
	Passphrase *model.PassphraseOptions `yaml:"passphrase"`
}

func loadProfile(path string) (profile, error) {
	var p profile
	if path == "" {
		return p, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("reading profile: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return profile{}, fmt.Errorf("parsing profile %s: %w", path, err)
	}
	return p, nil
}
