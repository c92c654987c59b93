package http

import (
	"net/http"

	"taxibot-backend/internal/domain"

	"github.com/gorilla/mux"
)

type submitDocumentRequest struct {
	Category domain.DocumentCategory `json:"category"`
	Payload  string                  `json:"payload"`
}

func (s *Server) handleSubmitDocument(w http.ResponseWriter, r *http.Request) {
	var req submitDocumentRequest
	if !decodeBody(w, r, &req) {
		return
	}

	doc, err := s.verification.SubmitDocument(r.Context(), mux.Vars(r)["handle"], req.Category, req.Payload)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, doc)
}

func (s *Server) handleVerificationStatus(w http.ResponseWriter, r *http.Request) {
	status, err := s.verification.GetVerificationStatus(r.Context(), mux.Vars(r)["handle"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, status)
}
