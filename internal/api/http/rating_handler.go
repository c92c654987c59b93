package http

import (
	"net/http"
	"strconv"

	"taxibot-backend/internal/domain"
	"taxibot-backend/internal/observability"

	"github.com/gorilla/mux"
)

type rateRideRequest struct {
	FromHandle string                 `json:"from_handle"`
	Role       domain.ParticipantRole `json:"role"`
	Score      int32                  `json:"score"`
	Comment    string                 `json:"comment,omitempty"`
}

func (s *Server) handleRateRide(w http.ResponseWriter, r *http.Request) {
	var req rateRideRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.FromHandle == "" {
		respondJSON(w, http.StatusBadRequest, errorBody{Error: "from_handle is required"})
		return
	}

	rating, err := s.ratings.RateRide(r.Context(), req.FromHandle, pathID(r), req.Role, req.Score, req.Comment)
	if err != nil {
		respondError(w, err)
		return
	}
	observability.RatingsRecorded.Inc()
	respondJSON(w, http.StatusCreated, rating)
}

func (s *Server) handleGetUserRating(w http.ResponseWriter, r *http.Request) {
	userID, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	role := domain.ParticipantRole(r.URL.Query().Get("role"))
	if role != domain.RolePassenger && role != domain.RoleDriver {
		respondJSON(w, http.StatusBadRequest, errorBody{Error: "role must be passenger or driver"})
		return
	}

	summary, err := s.ratings.GetUserRating(r.Context(), userID, role)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, summary)
}
