package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/daybookapp/daybook/internal/common"
)

// errorEnvelope is the uniform error payload: {"error": "..."}.
type errorEnvelope struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

func writeErrorMsg(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorEnvelope{Error: msg})
}

// writeError maps service sentinels onto HTTP statuses. Unrecognized errors
// become opaque 500s so internals do not leak to clients.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, common.ErrorNotFound):
		writeErrorMsg(w, http.StatusNotFound, "not found")
	case errors.Is(err, common.ErrorUnauthorized),
		errors.Is(err, common.ErrInvalidToken):
		writeErrorMsg(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, common.ErrTokenExpired):
		writeErrorMsg(w, http.StatusUnauthorized, "token expired")
	case errors.Is(err, common.ErrRefreshTokenExpired):
		writeErrorMsg(w, http.StatusUnauthorized, "refresh token expired")
	case errors.Is(err, common.ErrorConflict):
		writeErrorMsg(w, http.StatusConflict, "conflict")
	case errors.Is(err, common.ErrorAlreadyPaired):
		writeErrorMsg(w, http.StatusConflict, "already paired")
	case errors.Is(err, common.ErrorNotPaired):
		writeErrorMsg(w, http.StatusBadRequest, "not paired")
	case errors.Is(err, common.ErrorInvalidDate):
		writeErrorMsg(w, http.StatusBadRequest, common.ErrorInvalidDate.Error())
	default:
		s.logger.Error(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		writeErrorMsg(w, http.StatusInternalServerError, "internal error")
	}
}

// decodeAndValidate parses a JSON body into dst and runs struct validation.
func (s *Server) decodeAndValidate(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.New("invalid JSON body")
	}
	return s.validate.Struct(dst)
}
