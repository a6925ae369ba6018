package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"invalid", InvalidInput("Email non valida"), http.StatusBadRequest},
		{"forbidden", AccessDenied(), http.StatusForbidden},
		{"unavailable", StorageUnavailable(), http.StatusInternalServerError},
		{"fault", StorageFault(errors.New("conn reset"), "insert failed"), http.StatusInternalServerError},
		{"wrapped", fmt.Errorf("register: %w", InvalidInput("x")), http.StatusBadRequest},
		{"plain", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, HTTPStatus(tc.err))
		})
	}
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := StorageFault(cause, "list registrations failed")

	assert.ErrorIs(t, err, cause)
	assert.True(t, IsCode(err, CodeInternal))
	assert.Equal(t, "internal: list registrations failed: connection refused", err.Error())
	assert.Equal(t, CodeUnknown, CodeOf(cause))
}
