package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/vaultpass/passgen-go/internal/model"
	"github.com/vaultpass/passgen-go/internal/repository"
)

const maxPresetName = 64

var (
	ErrPresetNameRequired = errors.New("name is required")
	ErrPresetNameTooLong  = fmt.Errorf("name must be at most %d characters", maxPresetName)
	ErrInvalidKind        = errors.New("kind must be password or passphrase")
	ErrPresetOptions      = errors.New("options for the preset kind are required")
	ErrPresetNotFound     = errors.New("preset not found")
	ErrPresetExists       = errors.New("a preset with this name already exists")
)

// PresetStore persists presets. *repository.PresetRepository implements it.
type PresetStore interface {
	Create(ctx context.Context, p *model.Preset) error
	GetByID(ctx context.Context, clientID, id string) (*model.Preset, error)
	ListByClient(ctx context.Context, clientID string) ([]model.Preset, error)
	Delete(ctx context.Context, clientID, id string) error
}

// PresetService handles saved option presets. Presets hold options only,
// never generated secrets.
type PresetService struct {
	store     PresetStore
	generator *GeneratorService
}

// NewPresetService creates a new PresetService.
func NewPresetService(store PresetStore, generator *GeneratorService) *PresetService {
	return &PresetService{store: store, generator: generator}
}

// Create validates req by generating one secret from it, then stores it.
func (s *PresetService) Create(ctx context.Context, clientID string, req model.PresetRequest) (model.PresetResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return model.PresetResponse{}, ErrPresetNameRequired
	}
	if len(name) > maxPresetName {
		return model.PresetResponse{}, ErrPresetNameTooLong
	}

	var options any
	switch req.Kind {
	case model.ModePassword:
		if req.Password == nil {
			return model.PresetResponse{}, ErrPresetOptions
		}
		if _, err := s.generator.GeneratePassword(model.PasswordRequest{PasswordOptions: *req.Password}); err != nil {
			return model.PresetResponse{}, err
		}
		options = req.Password
	case model.ModePassphrase:
		if req.Passphrase == nil {
			return model.PresetResponse{}, ErrPresetOptions
		}
		if _, err := s.generator.GeneratePassphrase(model.PassphraseRequest{PassphraseOptions: *req.Passphrase}); err != nil {
			return model.PresetResponse{}, err
		}
		options = req.Passphrase
	default:
		return model.PresetResponse{}, ErrInvalidKind
	}

	raw, err := json.Marshal(options)
	if err != nil {
		return model.PresetResponse{}, fmt.Errorf("encoding preset options: %w", err)
	}

	p := model.Preset{
		ID:       uuid.NewString(),
		ClientID: clientID,
		Name:     name,
		Kind:     req.Kind,
		Options:  raw,
	}
	if err := s.store.Create(ctx, &p); err != nil {
		if errors.Is(err, repository.ErrDuplicatePreset) {
			return model.PresetResponse{}, ErrPresetExists
		}
		return model.PresetResponse{}, err
	}

	slog.Info("preset created", "client_id", clientID, "preset_id", p.ID, "kind", p.Kind)

	// Re-read for the database timestamps.
	return s.Get(ctx, clientID, p.ID)
}

// Get returns one preset owned by clientID.
func (s *PresetService) Get(ctx context.Context, clientID, id string) (model.PresetResponse, error) {
	p, err := s.find(ctx, clientID, id)
	if err != nil {
		return model.PresetResponse{}, err
	}
	return toPresetResponse(p)
}

// List returns every preset owned by clientID.
func (s *PresetService) List(ctx context.Context, clientID string) ([]model.PresetResponse, error) {
	presets, err := s.store.ListByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	resp := make([]model.PresetResponse, 0, len(presets))
	for i := range presets {
		r, err := toPresetResponse(&presets[i])
		if err != nil {
			return nil, err
		}
		resp = append(resp, r)
	}
	return resp, nil
}

// Delete removes a preset owned by clientID.
func (s *PresetService) Delete(ctx context.Context, clientID, id string) error {
	if err := s.store.Delete(ctx, clientID, id); err != nil {
		if errors.Is(err, repository.ErrPresetNotFound) {
			return ErrPresetNotFound
		}
		return err
	}
	slog.Info("preset deleted", "client_id", clientID, "preset_id", id)
	return nil
}

// Generate produces secrets from a stored preset. Only the output settings
// come from the caller.
func (s *PresetService) Generate(ctx context.Context, clientID, id string, out model.Output) (model.GenerateResponse, error) {
	p, err := s.find(ctx, clientID, id)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	switch p.Kind {
	case model.ModePassword:
		var opts model.PasswordOptions
		if err := json.Unmarshal(p.Options, &opts); err != nil {
			return model.GenerateResponse{}, fmt.Errorf("decoding preset %s: %w", p.ID, err)
		}
		return s.generator.GeneratePassword(model.PasswordRequest{PasswordOptions: opts, Output: out})
	case model.ModePassphrase:
		var opts model.PassphraseOptions
		if err := json.Unmarshal(p.Options, &opts); err != nil {
			return model.GenerateResponse{}, fmt.Errorf("decoding preset %s: %w", p.ID, err)
		}
		return s.generator.GeneratePassphrase(model.PassphraseRequest{PassphraseOptions: opts, Output: out})
	}
	return model.GenerateResponse{}, fmt.Errorf("preset %s has unknown kind %q", p.ID, p.Kind)
}

func (s *PresetService) find(ctx context.Context, clientID, id string) (*model.Preset, error) {
	p, err := s.store.GetByID(ctx, clientID, id)
	if err != nil {
		if errors.Is(err, repository.ErrPresetNotFound) {
			return nil, ErrPresetNotFound
		}
		return nil, err
	}
	return p, nil
}

func toPresetResponse(p *model.Preset) (model.PresetResponse, error) {
	resp := model.PresetResponse{
		ID:        p.ID,
		Name:      p.Name,
		Kind:      p.Kind,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}

	var target any
	switch p.Kind {
	case model.ModePassword:
		resp.Password = &model.PasswordOptions{}
		target = resp.Password
	case model.ModePassphrase:
		resp.Passphrase = &model.PassphraseOptions{}
		target = resp.Passphrase
	default:
		return resp, nil
	}
	if err := json.Unmarshal(p.Options, target); err != nil {
		return model.PresetResponse{}, fmt.Errorf("decoding preset %s: %w", p.ID, err)
	}
	return resp, nil
}

// IsPresetValidationError reports whether err was caused by a bad preset
// request.
func IsPresetValidationError(err error) bool {
	return errors.Is(err, ErrPresetNameRequired) ||
		errors.Is(err, ErrPresetNameTooLong) ||
		errors.Is(err, ErrInvalidKind) ||
		errors.Is(err, ErrPresetOptions) ||
		IsValidationError(err)
}
