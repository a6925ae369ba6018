package handlers

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/droplaunch/waitlist/internal/api/types"
	"github.com/droplaunch/waitlist/pkg/logger"
)

// Pinger reports whether the database answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingerFunc adapts a function to Pinger.
type PingerFunc func(ctx context.Context) error

func (f PingerFunc) Ping(ctx context.Context) error { return f(ctx) }

type HealthHandler struct {
	db Pinger
}

// NewHealthHandler takes a nil Pinger when persistence is disabled.
func NewHealthHandler(db Pinger) *HealthHandler { return &HealthHandler{db: db} }

// Liveness answers as long as the process serves HTTP.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, types.HealthResponse{OK: true})
}

// Health reports storage reachability. It always answers 200: an unreachable
// database shows up as ok=false, never as a 5xx.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if h.db == nil {
		writeJSON(w, http.StatusOK, types.HealthResponse{OK: true, DB: false})
		return
	}
	if err := h.db.Ping(r.Context()); err != nil {
		logger.L().Warn("health check: database unreachable", zap.Error(err))
		writeJSON(w, http.StatusOK, types.HealthResponse{OK: false, DB: false})
		return
	}
	writeJSON(w, http.StatusOK, types.HealthResponse{OK: true, DB: true})
}
