package http

import (
	"net/http"

	"taxibot-backend/internal/domain"

	"github.com/gorilla/mux"
)

type registerPassengerRequest struct {
	Handle string `json:"handle"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`
}

type registerDriverRequest struct {
	Handle  string         `json:"handle"`
	Name    string         `json:"name"`
	Phone   string         `json:"phone"`
	Vehicle domain.Vehicle `json:"vehicle"`
}

func (s *Server) handleRegisterPassenger(w http.ResponseWriter, r *http.Request) {
	var req registerPassengerRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Handle == "" {
		respondJSON(w, http.StatusBadRequest, errorBody{Error: "handle is required"})
		return
	}

	passenger, existing, err := s.identity.RegisterPassenger(r.Context(), req.Handle, req.Name, req.Phone)
	if err != nil {
		respondError(w, err)
		return
	}
	status := http.StatusCreated
	if existing {
		// Duplicate registration is success, not failure.
		status = http.StatusOK
	}
	respondJSON(w, status, map[string]any{"passenger": passenger, "existing": existing})
}

func (s *Server) handleRegisterDriver(w http.ResponseWriter, r *http.Request) {
	var req registerDriverRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Handle == "" {
		respondJSON(w, http.StatusBadRequest, errorBody{Error: "handle is required"})
		return
	}

	driver, existing, err := s.identity.RegisterDriver(r.Context(), req.Handle, req.Name, req.Phone, req.Vehicle)
	if err != nil {
		respondError(w, err)
		return
	}
	status := http.StatusCreated
	if existing {
		status = http.StatusOK
	}
	respondJSON(w, status, map[string]any{"driver": driver, "existing": existing})
}

func (s *Server) handleSetDriverOnline(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Online bool `json:"online"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	driver, err := s.identity.SetDriverOnline(r.Context(), mux.Vars(r)["handle"], req.Online)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, driver)
}
