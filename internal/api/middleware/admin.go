package middleware

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/droplaunch/waitlist/internal/api/types"
	"github.com/droplaunch/waitlist/internal/services"
	"github.com/droplaunch/waitlist/internal/telemetry"
	"github.com/droplaunch/waitlist/pkg/logger"
)

// RequireAdmin rejects requests whose secret (query "secret" or header
// X-Admin-Secret) does not match the configured admin secret.
func RequireAdmin(guard *services.AccessGuard) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := guard.Authorize(services.SecretFromRequest(r)); err != nil {
				telemetry.AdminDeniedTotal.Inc()
				logger.L().Warn("admin secret mismatch",
					zap.String("id", GetRequestID(r.Context())),
					zap.String("path", r.URL.Path),
				)
				status, body := types.FromAppError(err)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(status)
				_ = json.NewEncoder(w).Encode(body)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
