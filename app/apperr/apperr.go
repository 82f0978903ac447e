// Package apperr defines the error taxonomy that controllers translate into
// HTTP responses. Services return these; handlers never leak anything else.
package apperr

import (
	"errors"
	"net/http"
)

// Sentinel texts double as the client-facing messages, so a few carry the
// exact wording the API promises.
var (
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthenticated    = errors.New("not authenticated")
	ErrForbidden          = errors.New("forbidden")
	ErrEmailTaken         = errors.New("Email already registered")
	ErrNotFound           = errors.New("not found")
	ErrWrongPassword      = errors.New("Current password is incorrect")
	ErrPasswordRequired   = errors.New("Current password is required to change password")
)

// Status maps a service error to its HTTP status code. Unknown errors are
// internal: the caller logs them and sends a generic 500 body.
func Status(err error) int {
	switch {
	case errors.Is(err, ErrValidation),
		errors.Is(err, ErrEmailTaken),
		errors.Is(err, ErrWrongPassword),
		errors.Is(err, ErrPasswordRequired):
		return http.StatusBadRequest
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
