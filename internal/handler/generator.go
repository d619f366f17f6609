package handler

import (
	"net/http"

	"github.com/vaultpass/passgen-go/internal/service"
)

// GeneratorHandler handles HTTP requests for password and passphrase generation.
type GeneratorHandler struct {
	service *service.GeneratorService
}

// NewGeneratorHandler creates a new GeneratorHandler.
func NewGeneratorHandler(svc *service.GeneratorService) *GeneratorHandler {
	return &GeneratorHandler{service: svc}
}

// HandleOptions handles GET /api/v1/options requests.
func (h *GeneratorHandler) HandleOptions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.InitialOptions())
}

// HandlePassword handles POST /api/v1/password requests. Omitted fields
// keep their initial values.
func (h *GeneratorHandler) HandlePassword(w http.ResponseWriter, r *http.Request) {
	req := h.service.NewPasswordRequest()
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.GeneratePassword(req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// HandlePassphrase handles POST /api/v1/passphrase requests.
func (h *GeneratorHandler) HandlePassphrase(w http.ResponseWriter, r *http.Request) {
	req := h.service.NewPassphraseRequest()
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.GeneratePassphrase(req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// HandleGenerate handles POST /api/v1/generate requests.
func (h *GeneratorHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	req := h.service.NewGenerateRequest()
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Generate(req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
