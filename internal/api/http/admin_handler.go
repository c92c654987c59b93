package http

import (
	"net/http"

	"taxibot-backend/internal/logger"
	"taxibot-backend/internal/security"
)

type adminLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleAdminLogin(w http.ResponseWriter, r *http.Request) {
	var req adminLoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if req.Email != s.adminEmail || security.VerifyPassword(s.adminHash, req.Password) != nil {
		respondJSON(w, http.StatusUnauthorized, errorBody{Error: security.ErrInvalidCredentials.Error()})
		return
	}

	token, err := s.tokens.GenerateAdminToken(req.Email)
	if err != nil {
		logger.Error("failed to generate admin token", "error", err)
		respondJSON(w, http.StatusInternalServerError, errorBody{Error: "internal error"})
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"token": token})
}

type adjudicateRequest struct {
	Approve bool   `json:"approve"`
	Reason  string `json:"reason,omitempty"`
}

func (s *Server) handleAdjudicateDocument(w http.ResponseWriter, r *http.Request) {
	var req adjudicateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	doc, verified, err := s.verification.AdjudicateDocument(r.Context(), pathID(r), req.Approve, req.Reason)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"document": doc, "driver_verified": verified})
}
