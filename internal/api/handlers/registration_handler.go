package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/droplaunch/waitlist/internal/api/types"
	"github.com/droplaunch/waitlist/internal/services"
)

const maxRegisterBody = 4 << 10

type RegistrationHandler struct {
	svc services.RegistrationService
}

func NewRegistrationHandler(svc services.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{svc: svc}
}

// Register handles POST /register with a {"email": ...} body.
func (h *RegistrationHandler) Register(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRegisterBody)

	var req types.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeErrorStr(w, http.StatusBadRequest, "Richiesta non valida")
		return
	}

	msg, err := h.svc.Register(r.Context(), req.Email)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, types.MessageResponse{Message: msg})
}
