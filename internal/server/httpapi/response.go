// Package httpapi exposes the server's HTTP/JSON API: auth, profile,
// saved scans, and presigned media uploads.
package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/beautyease/beautyease/internal/shared"
	"github.com/beautyease/beautyease/internal/wire"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps service-level sentinel errors to HTTP statuses. Anything
// unrecognized is reported as a bare 500 so internals do not leak.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	msg := "internal error"

	switch {
	case errors.Is(err, shared.ErrValidation):
		status = http.StatusBadRequest
		msg = err.Error()
	case errors.Is(err, shared.ErrEmailTaken):
		status = http.StatusConflict
		msg = err.Error()
	case errors.Is(err, shared.ErrUnauthorized),
		errors.Is(err, shared.ErrInvalidToken),
		errors.Is(err, shared.ErrTokenExpired),
		errors.Is(err, shared.ErrRefreshTokenExpired):
		status = http.StatusUnauthorized
		msg = err.Error()
	case errors.Is(err, shared.ErrNotFound):
		status = http.StatusNotFound
		msg = err.Error()
	}

	writeJSON(w, status, wire.ErrorResponse{Error: msg})
}
