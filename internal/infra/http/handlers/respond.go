package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/xavierca1/ligue-mailer/internal/usecase"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), errorResponse{Error: err.Error()})
}

// statusFor maps usecase error kinds to HTTP status codes. This mapping is
// the boundary layer's concern; the usecases only know the kinds.
func statusFor(err error) int {
	switch usecase.KindOf(err) {
	case usecase.KindValidation, usecase.KindConfiguration:
		return http.StatusBadRequest
	case usecase.KindConflict:
		return http.StatusConflict
	case usecase.KindNotFound:
		return http.StatusNotFound
	case usecase.KindTransport:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
