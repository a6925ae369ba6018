package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthEndpoints(t *testing.T) {
	cases := []struct {
		name string
		db   Pinger
		want string
	}{
		{"reachable", PingerFunc(func(context.Context) error { return nil }), `{"ok":true,"db":true}`},
		{"unreachable", PingerFunc(func(context.Context) error { return errors.New("dial tcp: connection refused") }), `{"ok":false,"db":false}`},
		{"persistence disabled", nil, `{"ok":true,"db":false}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewHealthHandler(tc.db)
			rr := httptest.NewRecorder()
			h.Health(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
			assert.Equal(t, http.StatusOK, rr.Code)
			assert.JSONEq(t, tc.want, rr.Body.String())
		})
	}

	rr := httptest.NewRecorder()
	NewHealthHandler(nil).Liveness(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
}
