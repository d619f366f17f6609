package service

import (
	"errors"
	"fmt"

	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/keygen"
	"github.com/vaultpass/passgen-go/internal/model"
	"github.com/vaultpass/passgen-go/internal/strength"
)

const (
	MaxPasswordLength = 1024
	MaxWordCount      = 64
	MaxCount          = 50
)

var (
	ErrLengthTooLong      = fmt.Errorf("password length must be at most %d", MaxPasswordLength)
	ErrTooManyWords       = fmt.Errorf("word count must be at most %d", MaxWordCount)
	ErrCountOutOfRange    = fmt.Errorf("count must be between 1 and %d", MaxCount)
	ErrUnsupportedHash    = errors.New("hash must be empty or argon2id")
	ErrInvalidMode        = errors.New("mode must be password or passphrase")
	ErrStrengthNotEnabled = errors.New("strength scoring is not available")
)

// GeneratorService handles secret generation business logic.
type GeneratorService struct {
	passwords   *keygen.PasswordEngine
	passphrases *keygen.PassphraseEngine
	hasher      *crypto.Hasher
	scorer      strength.Scorer
}

// NewGeneratorService creates a new GeneratorService. The engines must share
// a random source that is safe for concurrent use. scorer may be nil.
func NewGeneratorService(passwords *keygen.PasswordEngine, passphrases *keygen.PassphraseEngine, hasher *crypto.Hasher, scorer strength.Scorer) *GeneratorService {
	return &GeneratorService{
		passwords:   passwords,
		passphrases: passphrases,
		hasher:      hasher,
		scorer:      scorer,
	}
}

// InitialOptions returns the default options of both modes.
func (s *GeneratorService) InitialOptions() model.OptionsResponse {
	return model.OptionsResponse{
		Password:   fromPasswordOptions(s.passwords.InitialOptions()),
		Passphrase: fromPassphraseOptions(s.passphrases.InitialOptions()),
	}
}

// NewPasswordRequest returns a request pre-filled with the initial options.
func (s *GeneratorService) NewPasswordRequest() model.PasswordRequest {
	return model.PasswordRequest{PasswordOptions: fromPasswordOptions(s.passwords.InitialOptions())}
}

// NewPassphraseRequest returns a request pre-filled with the initial options.
func (s *GeneratorService) NewPassphraseRequest() model.PassphraseRequest {
	return model.PassphraseRequest{PassphraseOptions: fromPassphraseOptions(s.passphrases.InitialOptions())}
}

// NewGenerateRequest returns a password-mode request with both option sets pre-filled.
func (s *GeneratorService) NewGenerateRequest() model.GenerateRequest {
	return model.GenerateRequest{
		Mode:       model.ModePassword,
		Password:   s.NewPasswordRequest(),
		Passphrase: s.NewPassphraseRequest(),
	}
}

// Generate dispatches on req.Mode.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	switch req.Mode {
	case model.ModePassword:
		return s.GeneratePassword(req.Password)
	case model.ModePassphrase:
		return s.GeneratePassphrase(req.Passphrase)
	}
	return model.GenerateResponse{}, ErrInvalidMode
}

// GeneratePassword produces req.Count passwords.
func (s *GeneratorService) GeneratePassword(req model.PasswordRequest) (model.GenerateResponse, error) {
	if req.Length > MaxPasswordLength {
		return model.GenerateResponse{}, ErrLengthTooLong
	}
	opts := toPasswordOptions(req.PasswordOptions)

	return s.generate(model.ModePassword, req.Output, func() (string, error) {
		return s.passwords.Generate(opts)
	})
}

// GeneratePassphrase produces req.Count passphrases.
func (s *GeneratorService) GeneratePassphrase(req model.PassphraseRequest) (model.GenerateResponse, error) {
	if req.WordCount > MaxWordCount {
		return model.GenerateResponse{}, ErrTooManyWords
	}
	opts := toPassphraseOptions(req.PassphraseOptions)

	return s.generate(model.ModePassphrase, req.Output, func() (string, error) {
		return s.passphrases.Generate(opts)
	})
}

func (s *GeneratorService) generate(mode string, out model.Output, next func() (string, error)) (model.GenerateResponse, error) {
	count := out.Count
	if count == 0 {
		count = 1
	}
	if count < 1 || count > MaxCount {
		return model.GenerateResponse{}, ErrCountOutOfRange
	}
	if out.Hash != "" && out.Hash != crypto.HashArgon2id {
		return model.GenerateResponse{}, ErrUnsupportedHash
	}
	if out.Strength && s.scorer == nil {
		return model.GenerateResponse{}, ErrStrengthNotEnabled
	}

	secrets := make([]model.Secret, 0, count)
	for i := 0; i < count; i++ {
		value, err := next()
		if err != nil {
			return model.GenerateResponse{}, err
		}

		secret := model.Secret{Value: value, Length: len(value)}
		if out.Hash != "" {
			if secret.Hash, err = s.hasher.Hash(value); err != nil {
				return model.GenerateResponse{}, fmt.Errorf("hashing secret: %w", err)
			}
		}
		if out.Strength {
			r := s.scorer.Score(value)
			secret.Strength = &r
		}
		secrets = append(secrets, secret)
	}

	return model.GenerateResponse{Mode: mode, Secrets: secrets}, nil
}

// IsValidationError reports whether err was caused by the request rather
// than by the server.
func IsValidationError(err error) bool {
	switch keygen.CodeOf(err) {
	case keygen.CodeEmptyCharacterPool,
		keygen.CodeEmptyPoolAfterExclusion,
		keygen.CodeInvalidPasswordLength,
		keygen.CodeInvalidWordCount,
		keygen.CodeInvalidWordStyle:
		return true
	}
	return errors.Is(err, ErrLengthTooLong) ||
		errors.Is(err, ErrTooManyWords) ||
		errors.Is(err, ErrCountOutOfRange) ||
		errors.Is(err, ErrUnsupportedHash) ||
		errors.Is(err, ErrInvalidMode) ||
		errors.Is(err, ErrStrengthNotEnabled)
}
