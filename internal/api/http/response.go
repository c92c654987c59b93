package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"taxibot-backend/internal/logger"
	"taxibot-backend/internal/service"
)

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			logger.Error("failed to encode response", "error", err)
		}
	}
}

type errorBody struct {
	Error string `json:"error"`
}

// respondError maps the service error taxonomy onto HTTP statuses. The
// conversational layer consuming this API turns these into user phrasing.
func respondError(w http.ResponseWriter, err error) {
	var status int
	switch {
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrNotVerified), errors.Is(err, service.ErrNotRideParty):
		status = http.StatusForbidden
	case errors.Is(err, service.ErrDuplicateOffer),
		errors.Is(err, service.ErrAlreadyRated),
		errors.Is(err, service.ErrOrderUnavailable):
		status = http.StatusConflict
	case errors.Is(err, service.ErrInvalidScore),
		errors.Is(err, service.ErrUnknownCategory),
		errors.Is(err, service.ErrInvalidTransition):
		status = http.StatusUnprocessableEntity
	default:
		logger.Error("internal error", "error", err)
		respondJSON(w, http.StatusInternalServerError, errorBody{Error: "internal error"})
		return
	}
	respondJSON(w, status, errorBody{Error: err.Error()})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondJSON(w, http.StatusBadRequest, errorBody{Error: "malformed request body"})
		return false
	}
	return true
}
