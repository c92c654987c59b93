package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	httpapi "taxibot-backend/internal/api/http"
	"taxibot-backend/internal/config"
	"taxibot-backend/internal/logger"
	"taxibot-backend/internal/repository/postgres"
	"taxibot-backend/internal/security"
	"taxibot-backend/internal/service"

	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Taxibot Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.Admin.JWTSecret)

	// Initialize Email Service
	emailSvc := service.NewEmailService(
		cfg.Email.SendGridAPIKey,
		cfg.Email.From,
		cfg.Email.AdminEmail,
	)

	// Initialize Services
	identitySvc := service.NewIdentityService(store.PassengerRepository, store.DriverRepository)
	verificationSvc := service.NewVerificationService(store.DriverRepository, store.DocumentRepository, emailSvc)
	orderSvc := service.NewOrderService(
		store.OrderRepository,
		store.OfferRepository,
		store.PassengerRepository,
		store.DriverRepository,
	)
	offerSvc := service.NewOfferService(
		store.OfferRepository,
		store.OrderRepository,
		store.NegotiationRepository,
		store.DriverRepository,
		store.PassengerRepository,
	)
	ratingSvc := service.NewRatingService(
		store.RatingRepository,
		store.OrderRepository,
		store.PassengerRepository,
		store.DriverRepository,
	)

	// Set up HTTP server
	server := httpapi.NewServer(
		identitySvc,
		verificationSvc,
		orderSvc,
		offerSvc,
		ratingSvc,
		tokenManager,
		cfg.Admin.Email,
		cfg.Admin.PasswordHash,
	)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), server); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
