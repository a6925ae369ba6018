package handlers

import (
	"net/http"

	"github.com/droplaunch/waitlist/internal/services"
)

// AdminHandler serves the listing and export endpoints. Access is checked by
// middleware.RequireAdmin before these run.
type AdminHandler struct {
	svc services.ExportService
}

func NewAdminHandler(svc services.ExportService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *AdminHandler) ExportJSON(w http.ResponseWriter, r *http.Request) {
	body, err := h.svc.ExportJSON(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeAttachment(w, "application/json", "emails.json", body)
}

func (h *AdminHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	body, err := h.svc.ExportCSV(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeAttachment(w, "text/csv; charset=utf-8", "emails.csv", body)
}

func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.Stats(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}
