package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/droplaunch/waitlist/internal/models"
	"github.com/droplaunch/waitlist/internal/services"
	appErr "github.com/droplaunch/waitlist/pkg/errors"
)

type fakeRegistrations struct {
	err   error
	calls []string
}

func (f *fakeRegistrations) Register(ctx context.Context, email string) (string, error) {
	f.calls = append(f.calls, email)
	if f.err != nil {
		return "", f.err
	}
	if err := services.ValidateEmail(email); err != nil {
		return "", err
	}
	return "Grazie! Sei registrato con " + email, nil
}

type fakeExports struct {
	items []models.Registration
	err   error
}

func (f *fakeExports) List(ctx context.Context) ([]models.Registration, error) { return f.items, f.err }
func (f *fakeExports) ExportJSON(ctx context.Context) ([]byte, error) {
	return []byte(`[]`), f.err
}
func (f *fakeExports) ExportCSV(ctx context.Context) ([]byte, error) {
	return []byte("email,created_at\r\n"), f.err
}
func (f *fakeExports) Stats(ctx context.Context) (services.Stats, error) {
	return services.Stats{Total: int64(len(f.items))}, f.err
}

func postRegister(h *RegistrationHandler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.Register(rr, req)
	return rr
}

func TestRegisterHandler(t *testing.T) {
	h := NewRegistrationHandler(&fakeRegistrations{})

	rr := postRegister(h, `{"email":"a@b.com"}`)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"Grazie! Sei registrato con a@b.com"}`, rr.Body.String())

	rr = postRegister(h, `{"email":"not-an-email"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"message":"Email non valida","code":"invalid"}`, rr.Body.String())

	rr = postRegister(h, `{}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "Email richiesta")

	rr = postRegister(h, ``)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "Email richiesta")
}

func TestRegisterHandlerRejectsMalformedBody(t *testing.T) {
	f := &fakeRegistrations{}
	h := NewRegistrationHandler(f)

	for _, body := range []string{`{"email":`, `{"email":42}`, `{"email":"` + strings.Repeat("a", 5000) + `@b.com"}`} {
		rr := postRegister(h, body)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	}
	assert.Empty(t, f.calls)
}

func TestRegisterHandlerCapsBodySize(t *testing.T) {
	f := &fakeRegistrations{}
	h := NewRegistrationHandler(f)

	local := strings.Repeat("a", maxRegisterBody-64)
	rr := postRegister(h, `{"email":"`+local+`@b.com"}`)
	assert.Equal(t, http.StatusOK, rr.Code)
	require.Len(t, f.calls, 1)

	f.calls = nil
	local = strings.Repeat("a", maxRegisterBody)
	rr = postRegister(h, `{"email":"`+local+`@b.com"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"message":"Richiesta non valida","code":"invalid"}`, rr.Body.String())
	assert.Empty(t, f.calls)
}

func TestRegisterHandlerHidesStorageDetail(t *testing.T) {
	h := NewRegistrationHandler(&fakeRegistrations{
		err: appErr.StorageFault(errors.New("pq: password authentication failed"), "insert registration failed"),
	})

	rr := postRegister(h, `{"email":"a@b.com"}`)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Body.String(), "password")
}

func TestAdminHandlers(t *testing.T) {
	now := time.Date(2025, 12, 31, 12, 0, 0, 0, time.UTC)
	h := NewAdminHandler(&fakeExports{items: []models.Registration{
		{ID: 2, Email: "b@c.com", CreatedAt: now},
		{ID: 1, Email: "a@b.com", CreatedAt: now.Add(-time.Hour)},
	}})

	rr := httptest.NewRecorder()
	h.List(rr, httptest.NewRequest(http.MethodGet, "/emails", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[
		{"id":2,"email":"b@c.com","created_at":"2025-12-31T12:00:00Z"},
		{"id":1,"email":"a@b.com","created_at":"2025-12-31T11:00:00Z"}
	]`, rr.Body.String())

	rr = httptest.NewRecorder()
	h.ExportJSON(rr, httptest.NewRequest(http.MethodGet, "/export.json", nil))
	assert.Equal(t, `attachment; filename="emails.json"`, rr.Header().Get("Content-Disposition"))

	rr = httptest.NewRecorder()
	h.ExportCSV(rr, httptest.NewRequest(http.MethodGet, "/export.csv", nil))
	assert.Equal(t, "text/csv; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="emails.csv"`, rr.Header().Get("Content-Disposition"))

	rr = httptest.NewRecorder()
	h.Stats(rr, httptest.NewRequest(http.MethodGet, "/stats", nil))
	assert.JSONEq(t, `{"total":2}`, rr.Body.String())
}

func TestAdminHandlersMapStorageErrors(t *testing.T) {
	h := NewAdminHandler(&fakeExports{err: appErr.StorageUnavailable()})

	for _, fn := range []http.HandlerFunc{h.List, h.ExportJSON, h.ExportCSV, h.Stats} {
		rr := httptest.NewRecorder()
		fn(rr, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Empty(t, rr.Header().Get("Content-Disposition"))
	}
}
