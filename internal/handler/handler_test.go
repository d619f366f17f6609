package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/keygen"
	"github.com/vaultpass/passgen-go/internal/middleware"
	"github.com/vaultpass/passgen-go/internal/model"
	"github.com/vaultpass/passgen-go/internal/random"
	"github.com/vaultpass/passgen-go/internal/repository"
	"github.com/vaultpass/passgen-go/internal/service"
)

func newTestGeneratorService(t *testing.T, opts ...keygen.EngineOption) *service.GeneratorService {
	t.Helper()
	src := random.Locked(random.NewCryptoSource())
	passwords, err := keygen.NewPasswordEngine(src, opts...)
	if err != nil {
		t.Fatalf("NewPasswordEngine() unexpected error: %v", err)
	}
	passphrases := keygen.NewPassphraseEngine(src, keygen.DefaultCorpus())
	hasher := crypto.NewHasher(crypto.HashParams{Memory: 1024, Iterations: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32})
	return service.NewGeneratorService(passwords, passphrases, hasher, nil)
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	return v
}

func TestHandleOptions(t *testing.T) {
	h := NewGeneratorHandler(newTestGeneratorService(t))
	rec := do(t, http.HandlerFunc(h.HandleOptions), http.MethodGet, "/api/v1/options", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	got := decodeBody[model.OptionsResponse](t, rec)
	if got.Password.Length != 24 || got.Passphrase.WordCount != 4 || got.Passphrase.Separator != "-" {
		t.Errorf("unexpected initial options: %+v", got)
	}
}

func TestHandlePassword(t *testing.T) {
	h := http.HandlerFunc(NewGeneratorHandler(newTestGeneratorService(t)).HandlePassword)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCode   string
		wantLen    int
	}{
		{name: "empty body uses defaults", body: "", wantStatus: http.StatusOK, wantLen: 24},
		{name: "partial body keeps defaults", body: `{"length": 40}`, wantStatus: http.StatusOK, wantLen: 40},
		{name: "too short", body: `{"length": 2}`, wantStatus: http.StatusBadRequest, wantCode: "INVALID_PASSWORD_LENGTH"},
		{name: "empty pool", body: `{"lowercase":false,"uppercase":false,"numbers":false}`, wantStatus: http.StatusBadRequest, wantCode: "EMPTY_CHARACTER_POOL"},
		{name: "all excluded", body: `{"uppercase":false,"numbers":false,"customization":{"exclude":"abcdefghijklmnopqrstuvwxyz"}}`, wantStatus: http.StatusBadRequest, wantCode: "EMPTY_POOL_AFTER_EXCLUSION"},
		{name: "too long", body: `{"length": 5000}`, wantStatus: http.StatusBadRequest},
		{name: "bad count", body: `{"count": 51}`, wantStatus: http.StatusBadRequest},
		{name: "malformed json", body: `{"length":`, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/api/v1/password", tt.body)
			if rec.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.wantStatus, rec.Code, rec.Body)
			}
			if tt.wantStatus != http.StatusOK {
				body := decodeBody[errorBody](t, rec)
				if body.Error == "" {
					t.Error("expected error message")
				}
				if body.Code != tt.wantCode {
					t.Errorf("expected code %q, got %q", tt.wantCode, body.Code)
				}
				return
			}
			resp := decodeBody[model.GenerateResponse](t, rec)
			if len(resp.Secrets) != 1 || len(resp.Secrets[0].Value) != tt.wantLen {
				t.Errorf("expected one secret of length %d, got %+v", tt.wantLen, resp.Secrets)
			}
		})
	}
}

func TestHandlePassword_MaxAttempts(t *testing.T) {
	// Every digit is excluded, so the numbers requirement can never be met.
	h := http.HandlerFunc(NewGeneratorHandler(newTestGeneratorService(t, keygen.WithMaxAttempts(1))).HandlePassword)

	rec := do(t, h, http.MethodPost, "/api/v1/password",
		`{"lowercase":true,"uppercase":false,"numbers":true,"length":8,"customization":{"exclude":"0123456789"}}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", rec.Code, rec.Body)
	}
	if body := decodeBody[errorBody](t, rec); body.Code != "MAX_ATTEMPTS_EXCEEDED" {
		t.Errorf("expected MAX_ATTEMPTS_EXCEEDED, got %q", body.Code)
	}
}

func TestHandlePassphrase(t *testing.T) {
	h := http.HandlerFunc(NewGeneratorHandler(newTestGeneratorService(t)).HandlePassphrase)

	rec := do(t, h, http.MethodPost, "/api/v1/passphrase", `{"wordCount":5,"separator":" ","style":"capitalize","count":2}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body)
	}
	resp := decodeBody[model.GenerateResponse](t, rec)
	if len(resp.Secrets) != 2 {
		t.Fatalf("expected 2 secrets, got %d", len(resp.Secrets))
	}
	for _, s := range resp.Secrets {
		if words := strings.Split(s.Value, " "); len(words) != 5 {
			t.Errorf("expected 5 words in %q", s.Value)
		}
	}

	rec = do(t, h, http.MethodPost, "/api/v1/passphrase", `{"wordCount":0}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if body := decodeBody[errorBody](t, rec); body.Code != "INVALID_WORD_COUNT" {
		t.Errorf("expected INVALID_WORD_COUNT, got %q", body.Code)
	}
}

func TestHandleGenerate(t *testing.T) {
	h := http.HandlerFunc(NewGeneratorHandler(newTestGeneratorService(t)).HandleGenerate)

	rec := do(t, h, http.MethodPost, "/api/v1/generate", `{"mode":"passphrase","passphrase":{"wordCount":3}}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body)
	}
	resp := decodeBody[model.GenerateResponse](t, rec)
	if resp.Mode != model.ModePassphrase || strings.Count(resp.Secrets[0].Value, "-") != 2 {
		t.Errorf("unexpected response: %+v", resp)
	}

	rec = do(t, h, http.MethodPost, "/api/v1/generate", `{"mode":"pin"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown mode, got %d", rec.Code)
	}
}

func TestDecodeJSON_TooLarge(t *testing.T) {
	h := http.HandlerFunc(NewGeneratorHandler(newTestGeneratorService(t)).HandlePassword)
	body := `{"customization":{"exclude":"` + strings.Repeat("x", maxBodyBytes) + `"}}`

	rec := do(t, h, http.MethodPost, "/api/v1/password", body)
	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d", rec.Code)
	}
}

type memStore struct {
	mu      sync.Mutex
	presets map[string]model.Preset
}

func (m *memStore) Create(_ context.Context, p *model.Preset) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.presets {
		if e.ClientID == p.ClientID && e.Name == p.Name {
			return repository.ErrDuplicatePreset
		}
	}
	m.presets[p.ID] = *p
	return nil
}

func (m *memStore) GetByID(_ context.Context, clientID, id string) (*model.Preset, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.presets[id]
	if !ok || p.ClientID != clientID {
		return nil, repository.ErrPresetNotFound
	}
	return &p, nil
}

func (m *memStore) ListByClient(_ context.Context, clientID string) ([]model.Preset, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.Preset
	for _, p := range m.presets {
		if p.ClientID == clientID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memStore) Delete(_ context.Context, clientID, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.presets[id]; !ok || p.ClientID != clientID {
		return repository.ErrPresetNotFound
	}
	delete(m.presets, id)
	return nil
}

func newPresetRouter(t *testing.T) http.Handler {
	t.Helper()
	store := &memStore{presets: make(map[string]model.Preset)}
	h := NewPresetHandler(service.NewPresetService(store, newTestGeneratorService(t)))

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if id := r.Header.Get("X-Test-Client"); id != "" {
				r = r.WithContext(middleware.WithClientID(r.Context(), id))
			}
			next.ServeHTTP(w, r)
		})
	})
	r.Get("/api/v1/presets", h.HandleList)
	r.Post("/api/v1/presets", h.HandleCreate)
	r.Get("/api/v1/presets/{id}", h.HandleGet)
	r.Delete("/api/v1/presets/{id}", h.HandleDelete)
	r.Post("/api/v1/presets/{id}/generate", h.HandleGenerate)
	return r
}

func doAs(t *testing.T, h http.Handler, client, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if client != "" {
		req.Header.Set("X-Test-Client", client)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestPresetHandlers(t *testing.T) {
	r := newPresetRouter(t)

	rec := doAs(t, r, "client-a", http.MethodPost, "/api/v1/presets",
		`{"name":"wifi","kind":"passphrase","passphrase":{"wordCount":6,"separator":"_","style":"uppercase"}}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", rec.Code, rec.Body)
	}
	created := decodeBody[model.PresetResponse](t, rec)
	if created.ID == "" || created.Passphrase == nil || created.Passphrase.WordCount != 6 {
		t.Fatalf("unexpected created preset: %+v", created)
	}

	rec = doAs(t, r, "client-a", http.MethodPost, "/api/v1/presets",
		`{"name":"wifi","kind":"passphrase","passphrase":{"wordCount":6}}`)
	if rec.Code != http.StatusConflict {
		t.Errorf("duplicate: expected 409, got %d", rec.Code)
	}

	rec = doAs(t, r, "client-a", http.MethodGet, "/api/v1/presets", "")
	if list := decodeBody[[]model.PresetResponse](t, rec); len(list) != 1 {
		t.Errorf("list: expected 1 preset, got %d", len(list))
	}

	rec = doAs(t, r, "client-a", http.MethodPost, "/api/v1/presets/"+created.ID+"/generate", `{"count":3}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("generate: expected 200, got %d: %s", rec.Code, rec.Body)
	}
	resp := decodeBody[model.GenerateResponse](t, rec)
	if len(resp.Secrets) != 3 || strings.Count(resp.Secrets[0].Value, "_") != 5 {
		t.Errorf("unexpected generated secrets: %+v", resp.Secrets)
	}

	rec = doAs(t, r, "client-b", http.MethodGet, "/api/v1/presets/"+created.ID, "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("other client: expected 404, got %d", rec.Code)
	}

	rec = doAs(t, r, "client-a", http.MethodDelete, "/api/v1/presets/"+created.ID, "")
	if rec.Code != http.StatusNoContent {
		t.Errorf("delete: expected 204, got %d", rec.Code)
	}
	rec = doAs(t, r, "client-a", http.MethodGet, "/api/v1/presets/"+created.ID, "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("get after delete: expected 404, got %d", rec.Code)
	}
}

func TestPresetHandlers_Validation(t *testing.T) {
	r := newPresetRouter(t)

	tests := []struct {
		name string
		body string
	}{
		{name: "missing name", body: `{"kind":"password","password":{"lowercase":true,"length":8}}`},
		{name: "bad kind", body: `{"name":"x","kind":"pin"}`},
		{name: "missing options", body: `{"name":"x","kind":"password"}`},
		{name: "invalid options", body: `{"name":"x","kind":"password","password":{"length":8}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doAs(t, r, "client-a", http.MethodPost, "/api/v1/presets", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body)
			}
		})
	}
}

func TestPresetHandlers_Unauthenticated(t *testing.T) {
	r := newPresetRouter(t)
	rec := doAs(t, r, "", http.MethodGet, "/api/v1/presets", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
