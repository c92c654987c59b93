package http

import (
	"net/http"

	"taxibot-backend/internal/security"
	"taxibot-backend/internal/service"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server wires the marketplace services into the HTTP surface consumed by
// the conversational layer.
type Server struct {
	identity     service.IdentityService
	verification service.VerificationService
	orders       service.OrderService
	offers       service.OfferService
	ratings      service.RatingService
	tokens       security.TokenManager
	adminEmail   string
	adminHash    string
	router       *mux.Router
}

func NewServer(
	identity service.IdentityService,
	verification service.VerificationService,
	orders service.OrderService,
	offers service.OfferService,
	ratings service.RatingService,
	tokens security.TokenManager,
	adminEmail, adminHash string,
) *Server {
	s := &Server{
		identity:     identity,
		verification: verification,
		orders:       orders,
		offers:       offers,
		ratings:      ratings,
		tokens:       tokens,
		adminEmail:   adminEmail,
		adminHash:    adminHash,
		router:       mux.NewRouter(),
	}
	s.routes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { s.router.ServeHTTP(w, r) }

func (s *Server) routes() {
	s.router.Use(s.recoverMiddleware)
	s.router.Use(s.requestIDMiddleware)
	s.router.Use(s.observabilityMiddleware)

	api := s.router.PathPrefix("/api/v1").Subrouter()

	// Identity
	api.HandleFunc("/passengers/register", s.handleRegisterPassenger).Methods("POST")
	api.HandleFunc("/drivers/register", s.handleRegisterDriver).Methods("POST")
	api.HandleFunc("/drivers/{handle}/online", s.handleSetDriverOnline).Methods("PUT")

	// Verification
	api.HandleFunc("/drivers/{handle}/documents", s.handleSubmitDocument).Methods("POST")
	api.HandleFunc("/drivers/{handle}/verification", s.handleVerificationStatus).Methods("GET")

	// Orders
	api.HandleFunc("/orders", s.handleCreateOrder).Methods("POST")
	api.HandleFunc("/orders/available", s.handleListAvailableOrders).Methods("GET")
	api.HandleFunc("/orders/{id:[0-9]+}/accept", s.handleAcceptOffer).Methods("POST")
	api.HandleFunc("/orders/{id:[0-9]+}/start", s.handleStartRide).Methods("POST")
	api.HandleFunc("/orders/{id:[0-9]+}/complete", s.handleCompleteRide).Methods("POST")
	api.HandleFunc("/orders/{id:[0-9]+}/cancel", s.handleCancelOrder).Methods("POST")

	// Offers and negotiations
	api.HandleFunc("/orders/{id:[0-9]+}/offers", s.handleMakeOffer).Methods("POST")
	api.HandleFunc("/orders/{id:[0-9]+}/offers", s.handleListOffers).Methods("GET")
	api.HandleFunc("/orders/{id:[0-9]+}/negotiations", s.handleMakeCounterOffer).Methods("POST")
	api.HandleFunc("/negotiations/{id:[0-9]+}/respond", s.handleRespondToCounterOffer).Methods("POST")

	// Ratings
	api.HandleFunc("/orders/{id:[0-9]+}/ratings", s.handleRateRide).Methods("POST")
	api.HandleFunc("/users/{id:[0-9]+}/rating", s.handleGetUserRating).Methods("GET")

	// Back office
	api.HandleFunc("/admin/login", s.handleAdminLogin).Methods("POST")
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(s.adminAuthMiddleware)
	admin.HandleFunc("/documents/{id:[0-9]+}/adjudicate", s.handleAdjudicateDocument).Methods("POST")

	s.router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	}).Methods("GET")
	s.router.Handle("/metrics", promhttp.Handler())
}
