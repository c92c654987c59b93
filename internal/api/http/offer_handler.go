package http

import (
	"net/http"

	"taxibot-backend/internal/observability"
)

type makeOfferRequest struct {
	DriverHandle string `json:"driver_handle"`
	Price        int64  `json:"price"`
	Note         string `json:"note,omitempty"`
}

func (s *Server) handleMakeOffer(w http.ResponseWriter, r *http.Request) {
	var req makeOfferRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.DriverHandle == "" {
		respondJSON(w, http.StatusBadRequest, errorBody{Error: "driver_handle is required"})
		return
	}

	offer, err := s.offers.MakeOffer(r.Context(), req.DriverHandle, pathID(r), req.Price, req.Note)
	if err != nil {
		respondError(w, err)
		return
	}
	observability.OffersMade.Inc()
	respondJSON(w, http.StatusCreated, offer)
}

func (s *Server) handleListOffers(w http.ResponseWriter, r *http.Request) {
	offers, err := s.offers.ListOffers(r.Context(), pathID(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"offers": offers})
}

type counterOfferRequest struct {
	FromHandle string `json:"from_handle"`
	ToDriverID int64  `json:"to_driver_id"`
	Price      int64  `json:"price"`
}

func (s *Server) handleMakeCounterOffer(w http.ResponseWriter, r *http.Request) {
	var req counterOfferRequest
	if !decodeBody(w, r, &req) {
		return
	}

	neg, err := s.offers.MakeCounterOffer(r.Context(), pathID(r), req.FromHandle, req.ToDriverID, req.Price)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, neg)
}

type respondNegotiationRequest struct {
	DriverHandle string `json:"driver_handle"`
	Accept       bool   `json:"accept"`
	CounterPrice *int64 `json:"counter_price,omitempty"`
}

func (s *Server) handleRespondToCounterOffer(w http.ResponseWriter, r *http.Request) {
	var req respondNegotiationRequest
	if !decodeBody(w, r, &req) {
		return
	}

	neg, err := s.offers.RespondToCounterOffer(r.Context(), req.DriverHandle, pathID(r), req.Accept, req.CounterPrice)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, neg)
}
