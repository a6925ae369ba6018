package services

import (
	"crypto/subtle"
	"net/http"

	appErr "github.com/droplaunch/waitlist/pkg/errors"
)

const (
	SecretQueryParam = "secret"
	SecretHeader     = "X-Admin-Secret"
)

// AccessGuard gates the admin read and export operations behind a shared
// secret configured once at startup.
type AccessGuard struct {
	secret []byte
}

func NewAccessGuard(secret string) *AccessGuard {
	return &AccessGuard{secret: []byte(secret)}
}

// Authorize fails closed: with no configured secret every caller is denied.
func (g *AccessGuard) Authorize(supplied string) error {
	if len(g.secret) == 0 || supplied == "" {
		return appErr.AccessDenied()
	}
	if subtle.ConstantTimeCompare([]byte(supplied), g.secret) != 1 {
		return appErr.AccessDenied()
	}
	return nil
}

// SecretFromRequest reads the caller's secret. A non-empty query parameter wins
// over the header; an empty one counts as absent.
func SecretFromRequest(r *http.Request) string {
	if s := r.URL.Query().Get(SecretQueryParam); s != "" {
		return s
	}
	return r.Header.Get(SecretHeader)
}
