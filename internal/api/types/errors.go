package types

import (
	"errors"
	"net/http"

	appErr "github.com/droplaunch/waitlist/pkg/errors"
)

// Caller-facing messages. Storage details never leave the server.
const (
	MsgAccessDenied = "Accesso negato"
	MsgServerError  = "Errore del server, riprova più tardi"
)

// FromAppError converts err into the status and body sent to the client.
func FromAppError(err error) (int, MessageResponse) {
	status := appErr.HTTPStatus(err)
	code := string(appErr.CodeOf(err))
	switch status {
	case http.StatusBadRequest:
		var ae *appErr.AppError
		if errors.As(err, &ae) {
			return status, MessageResponse{Message: ae.Message, Code: code}
		}
		return status, MessageResponse{Message: err.Error(), Code: code}
	case http.StatusForbidden:
		return status, MessageResponse{Message: MsgAccessDenied, Code: code}
	default:
		return status, MessageResponse{Message: MsgServerError, Code: code}
	}
}
