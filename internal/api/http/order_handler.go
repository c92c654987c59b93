package http

import (
	"errors"
	"net/http"
	"strconv"

	"taxibot-backend/internal/observability"
	"taxibot-backend/internal/service"

	"github.com/gorilla/mux"
)

func pathID(r *http.Request) int64 {
	// The route pattern restricts {id} to digits, so parse errors can't occur.
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	return id
}

type createOrderRequest struct {
	PassengerHandle string `json:"passenger_handle"`
	From            string `json:"from"`
	To              string `json:"to"`
	Price           int64  `json:"price"`
}

func (s *Server) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.PassengerHandle == "" || req.From == "" || req.To == "" {
		respondJSON(w, http.StatusBadRequest, errorBody{Error: "passenger_handle, from and to are required"})
		return
	}

	order, err := s.orders.CreateOrder(r.Context(), req.PassengerHandle, req.From, req.To, req.Price)
	if err != nil {
		respondError(w, err)
		return
	}
	observability.OrdersCreated.Inc()
	respondJSON(w, http.StatusCreated, order)
}

func (s *Server) handleListAvailableOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := s.orders.ListAvailableOrders(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"orders": orders})
}

func (s *Server) handleAcceptOffer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		OfferID int64 `json:"offer_id"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	order, err := s.orders.AcceptOffer(r.Context(), req.OfferID, pathID(r))
	if err != nil {
		if errors.Is(err, service.ErrOrderUnavailable) {
			observability.AcceptanceRaces.Inc()
		}
		respondError(w, err)
		return
	}
	observability.OrdersAccepted.Inc()
	respondJSON(w, http.StatusOK, order)
}

type rideTransitionRequest struct {
	DriverHandle    string `json:"driver_handle,omitempty"`
	PassengerHandle string `json:"passenger_handle,omitempty"`
}

func (s *Server) handleStartRide(w http.ResponseWriter, r *http.Request) {
	var req rideTransitionRequest
	if !decodeBody(w, r, &req) {
		return
	}
	order, err := s.orders.StartRide(r.Context(), req.DriverHandle, pathID(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, order)
}

func (s *Server) handleCompleteRide(w http.ResponseWriter, r *http.Request) {
	var req rideTransitionRequest
	if !decodeBody(w, r, &req) {
		return
	}
	order, err := s.orders.CompleteRide(r.Context(), req.DriverHandle, pathID(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, order)
}

func (s *Server) handleCancelOrder(w http.ResponseWriter, r *http.Request) {
	var req rideTransitionRequest
	if !decodeBody(w, r, &req) {
		return
	}
	order, err := s.orders.CancelOrder(r.Context(), req.PassengerHandle, pathID(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, order)
}
