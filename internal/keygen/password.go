package keygen

import (
	"github.com/vaultpass/passgen-go/internal/random"
)

// DefaultMaxAttempts bounds how many candidates Generate tries before giving up.
const DefaultMaxAttempts = 1000

// PasswordEngine generates passwords that satisfy PasswordOptions.
type PasswordEngine struct {
	src         random.Source
	maxAttempts int
}

// EngineOption configures a PasswordEngine.
type EngineOption func(*PasswordEngine)

// WithMaxAttempts overrides DefaultMaxAttempts.
func WithMaxAttempts(n int) EngineOption {
	return func(e *PasswordEngine) {
		e.maxAttempts = n
	}
}

// NewPasswordEngine creates a PasswordEngine drawing from src.
func NewPasswordEngine(src random.Source, opts ...EngineOption) (*PasswordEngine, error) {
	e := &PasswordEngine{
		src:         src,
		maxAttempts: DefaultMaxAttempts,
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.maxAttempts <= 0 {
		return nil, newError(CodeInvalidMaxAttempts, map[string]any{"maxAttempts": e.maxAttempts})
	}
	return e, nil
}

// InitialOptions returns InitialPasswordOptions.
func (e *PasswordEngine) InitialOptions() PasswordOptions {
	return InitialPasswordOptions()
}

// Generate creates a password of opts.Length characters containing every
// enabled category. Options are validated before any randomness is drawn.
func (e *PasswordEngine) Generate(opts PasswordOptions) (string, error) {
	if err := ValidateLength(opts); err != nil {
		return "", err
	}

	pool, err := BuildPool(opts)
	if err != nil {
		return "", err
	}

	for attempt := 0; attempt < e.maxAttempts; attempt++ {
		candidate, err := e.attempt(opts, pool)
		if err != nil {
			return "", err
		}
		if MeetsRequirements(string(candidate), opts) {
			return string(candidate), nil
		}
	}

	return "", newError(CodeMaxAttemptsExceeded, map[string]any{"attempts": e.maxAttempts})
}

// attempt seeds one character per category, fills the rest from pool and
// shuffles the result so the seeded positions are not predictable.
func (e *PasswordEngine) attempt(opts PasswordOptions, pool string) ([]byte, error) {
	required, err := RequiredChars(e.src, opts)
	if err != nil {
		return nil, err
	}

	chars := make([]byte, 0, opts.Length)
	chars = append(chars, required...)

	for len(chars) < opts.Length {
		i, err := e.src.Uniform(len(pool))
		if err != nil {
			return nil, err
		}
		chars = append(chars, pool[i])
	}

	if err := shuffle(e.src, chars); err != nil {
		return nil, err
	}
	return chars, nil
}

// shuffle performs an in-place Fisher-Yates shuffle.
func shuffle(src random.Source, data []byte) error {
	for i := len(data) - 1; i > 0; i-- {
		j, err := src.Uniform(i + 1)
		if err != nil {
			return err
		}
		data[i], data[j] = data[j], data[i]
	}
	return nil
}
