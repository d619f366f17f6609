package crypto

import (
	"errors"
	"strings"
	"testing"
)

// fastParams keeps argon2 cheap in tests.
func fastParams() HashParams {
	return HashParams{Memory: 1024, Iterations: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32}
}

func TestHasherHashFormat(t *testing.T) {
	hash, err := NewHasher(DefaultHashParams()).Hash("Tr0ub4dor&3xkcdHorseBattery")
	if err != nil {
		t.Fatalf("Hash() unexpected error: %v", err)
	}

	parts := strings.Split(hash, "$")
	if len(parts) != 6 {
		t.Fatalf("Hash() expected 6 parts, got %d: %q", len(parts), hash)
	}
	if parts[1] != "argon2id" {
		t.Errorf("Hash() algorithm = %q, want %q", parts[1], "argon2id")
	}
	if parts[2] != "v=19" {
		t.Errorf("Hash() version = %q, want %q", parts[2], "v=19")
	}
	if parts[3] != "m=65536,t=3,p=2" {
		t.Errorf("Hash() params = %q, want %q", parts[3], "m=65536,t=3,p=2")
	}
}

func TestHasherVerify(t *testing.T) {
	h := NewHasher(fastParams())
	hash, err := h.Hash("correct-horse-battery-staple")
	if err != nil {
		t.Fatalf("Hash() unexpected error: %v", err)
	}

	tests := []struct {
		secret string
		want   bool
	}{
		{"correct-horse-battery-staple", true},
		{"correct-horse-battery-stapl", false},
		{"", false},
	}
	for _, tt := range tests {
		got, err := h.Verify(tt.secret, hash)
		if err != nil {
			t.Fatalf("Verify(%q) unexpected error: %v", tt.secret, err)
		}
		if got != tt.want {
			t.Errorf("Verify(%q) = %v, want %v", tt.secret, got, tt.want)
		}
	}
}

func TestHasherSaltsEachHash(t *testing.T) {
	h := NewHasher(fastParams())
	a, err := h.Hash("same-secret")
	if err != nil {
		t.Fatalf("Hash() unexpected error: %v", err)
	}
	b, err := h.Hash("same-secret")
	if err != nil {
		t.Fatalf("Hash() unexpected error: %v", err)
	}
	if a == b {
		t.Error("Hash() produced identical hashes for the same secret")
	}
}

func TestHasherVerifyRejectsMalformed(t *testing.T) {
	h := NewHasher(fastParams())
	tests := []struct {
		name    string
		encoded string
		wantErr error
	}{
		{name: "not phc", encoded: "invalid-hash-format", wantErr: ErrInvalidHashFormat},
		{name: "other algorithm", encoded: "$bcrypt$v=19$m=1,t=1,p=1$c2FsdA$a2V5", wantErr: ErrInvalidHashFormat},
		{name: "old version", encoded: "$argon2id$v=16$m=1024,t=1,p=1$c2FsdA$a2V5", wantErr: ErrIncompatibleVersion},
		{name: "bad params", encoded: "$argon2id$v=19$memory$c2FsdA$a2V5", wantErr: ErrInvalidHashFormat},
		{name: "bad salt", encoded: "$argon2id$v=19$m=1024,t=1,p=1$!!!$a2V5", wantErr: ErrInvalidHashFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := h.Verify("secret", tt.encoded); !errors.Is(err, tt.wantErr) {
				t.Errorf("Verify() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
