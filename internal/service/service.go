package service

import (
	"context"

	"taxibot-backend/internal/domain"
)

type IdentityService interface {
	// RegisterPassenger and RegisterDriver are idempotent upserts keyed by
	// handle: re-registration returns the existing profile unchanged with
	// existing=true.
	RegisterPassenger(ctx context.Context, handle, name, phone string) (p *domain.Passenger, existing bool, err error)
	RegisterDriver(ctx context.Context, handle, name, phone string, vehicle domain.Vehicle) (d *domain.Driver, existing bool, err error)
	SetDriverOnline(ctx context.Context, handle string, online bool) (*domain.Driver, error)
}

type VerificationService interface {
	SubmitDocument(ctx context.Context, driverHandle string, category domain.DocumentCategory, payload string) (*domain.DriverDocument, error)
	GetVerificationStatus(ctx context.Context, driverHandle string) (*domain.VerificationStatus, error)
	// AdjudicateDocument approves or rejects a submission, then recomputes the
	// driver's aggregate verified flag; the returned bool is the flag after
	// recomputation.
	AdjudicateDocument(ctx context.Context, documentID int64, approve bool, reason string) (*domain.DriverDocument, bool, error)
}

type OrderService interface {
	CreateOrder(ctx context.Context, passengerHandle, from, to string, price int64) (*domain.Order, error)
	ListAvailableOrders(ctx context.Context) ([]domain.OrderSummary, error)
	// AcceptOffer finalizes the order with the offer's driver and price.
	// Exactly one acceptance can win on an order; later callers get
	// ErrOrderUnavailable.
	AcceptOffer(ctx context.Context, offerID, orderID int64) (*domain.Order, error)
	StartRide(ctx context.Context, driverHandle string, orderID int64) (*domain.Order, error)
	CompleteRide(ctx context.Context, driverHandle string, orderID int64) (*domain.Order, error)
	CancelOrder(ctx context.Context, passengerHandle string, orderID int64) (*domain.Order, error)
}

type OfferService interface {
	MakeOffer(ctx context.Context, driverHandle string, orderID, price int64, note string) (*domain.DriverOffer, error)
	ListOffers(ctx context.Context, orderID int64) ([]domain.OfferSummary, error)
	MakeCounterOffer(ctx context.Context, orderID int64, fromHandle string, toDriverID, price int64) (*domain.PriceNegotiation, error)
	// RespondToCounterOffer resolves a negotiation, or, when counterPrice is
	// set, appends a new reversed proposal leaving the original row pending.
	RespondToCounterOffer(ctx context.Context, driverHandle string, negotiationID int64, accept bool, counterPrice *int64) (*domain.PriceNegotiation, error)
}

type RatingService interface {
	RateRide(ctx context.Context, fromHandle string, orderID int64, role domain.ParticipantRole, score int32, comment string) (*domain.Rating, error)
	GetUserRating(ctx context.Context, userID int64, role domain.ParticipantRole) (*domain.RatingSummary, error)
}

type EmailService interface {
	// SendAdminNotification alerts the back-office mailbox; failures are
	// logged by callers, never propagated to the user-facing operation.
	SendAdminNotification(ctx context.Context, subject, message string) error
}
