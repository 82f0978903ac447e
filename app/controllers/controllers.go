// Package controllers holds the HTTP handlers. Controllers decode input,
// call a service, and translate service errors through the apperr taxonomy;
// they never touch the store directly.
package controllers

import (
	"net/http"

	"portfolio-admin/app/apperr"
	"portfolio-admin/app/dto"
	"portfolio-admin/global"
)

// fail converts a service error into an HTTP response. Unexpected errors are
// logged server-side and reach the client as a generic 500.
func fail(w http.ResponseWriter, err error) {
	status := apperr.Status(err)
	if status == http.StatusInternalServerError {
		global.Logger.Error().Err(err).Msg("internal error")
		dto.Error(w, status, "Internal server error")
		return
	}
	dto.Error(w, status, err.Error())
}
