package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/dom/securecart/internal/domain"
	"github.com/rs/zerolog/log"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps the error taxonomy to transport status codes. Only the
// taxonomy message reaches the client; internal causes go to the log.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var e *domain.Error
	if !errors.As(err, &e) {
		e = domain.Internal(err)
	}

	switch e.Kind {
	case domain.KindValidation:
		http.Error(w, e.Message, http.StatusBadRequest)
	case domain.KindAuthentication, domain.KindAuthorization:
		http.Error(w, e.Message, http.StatusUnauthorized)
	case domain.KindConflict:
		http.Error(w, e.Message, http.StatusConflict)
	default:
		log.Error().Err(err).Str("method", r.Method).Str("path", r.URL.Path).Msg("request failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

func parseID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil || id == 0 {
		return 0, domain.Validation("invalid id")
	}
	return uint(id), nil
}
