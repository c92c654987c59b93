package repository

import (
	"context"
	"errors"
	"time"

	"taxibot-backend/internal/domain"
)

// Sentinel errors returned by repository implementations so callers can react
// without knowing the storage technology. The postgres package translates
// driver-level errors (sql.ErrNoRows, unique-violation codes) into these.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

type PassengerRepository interface {
	Create(ctx context.Context, p *domain.Passenger) error
	GetByHandle(ctx context.Context, handle string) (*domain.Passenger, error)
	GetByID(ctx context.Context, id int64) (*domain.Passenger, error)
	UpdateRating(ctx context.Context, id int64, rating float64, totalRides int32) error
}

type DriverRepository interface {
	Create(ctx context.Context, d *domain.Driver) error
	GetByHandle(ctx context.Context, handle string) (*domain.Driver, error)
	GetByID(ctx context.Context, id int64) (*domain.Driver, error)
	SetOnline(ctx context.Context, id int64, online bool) error
	UpdateRating(ctx context.Context, id int64, rating float64, totalRides int32) error
}

type DocumentRepository interface {
	// Upsert inserts a document or, when the (driver, category) pair already
	// exists, replaces its payload and resets it to pending with the
	// rejection reason cleared.
	Upsert(ctx context.Context, doc *domain.DriverDocument) error
	GetByID(ctx context.Context, id int64) (*domain.DriverDocument, error)
	ListByDriver(ctx context.Context, driverID int64) ([]domain.DriverDocument, error)
	SetStatus(ctx context.Context, id int64, status domain.DocumentStatus, reason string) error
	// RefreshDriverVerified recomputes and stores the driver's aggregate
	// verified flag from the current document statuses, returning the result.
	RefreshDriverVerified(ctx context.Context, driverID int64) (bool, error)
}

type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) error
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	// ListAvailable returns pending orders newest first, each joined with the
	// passenger's display name and rating.
	ListAvailable(ctx context.Context) ([]domain.OrderSummary, error)
	// AcceptPending conditionally finalizes an order: the update only applies
	// while the order is still pending or negotiating, so exactly one of two
	// racing acceptances can win. Returns false when the order was no longer
	// available.
	AcceptPending(ctx context.Context, orderID, driverID, finalPrice int64) (bool, error)
	// TransitionStatus moves the order to the target status only when its
	// current status is one of from. Returns false when no row matched.
	TransitionStatus(ctx context.Context, orderID int64, from []domain.OrderStatus, to domain.OrderStatus) (bool, error)
	// CancelStale cancels pending orders created before the cutoff, returning
	// the number of orders cancelled.
	CancelStale(ctx context.Context, olderThan time.Time) (int64, error)
}

type OfferRepository interface {
	Create(ctx context.Context, o *domain.DriverOffer) error
	GetByID(ctx context.Context, id int64) (*domain.DriverOffer, error)
	ListByOrder(ctx context.Context, orderID int64) ([]domain.OfferSummary, error)
	ExistsForDriver(ctx context.Context, orderID, driverID int64) (bool, error)
	SetStatus(ctx context.Context, id int64, status domain.OfferStatus) error
}

type NegotiationRepository interface {
	Create(ctx context.Context, n *domain.PriceNegotiation) error
	GetByID(ctx context.Context, id int64) (*domain.PriceNegotiation, error)
	ListByOrder(ctx context.Context, orderID int64) ([]domain.PriceNegotiation, error)
	// Resolve marks a pending negotiation accepted or rejected. Resolved rows
	// are immutable, so the update only applies while the row is pending;
	// returns false otherwise.
	Resolve(ctx context.Context, id int64, status domain.NegotiationStatus) (bool, error)
	// RejectStale rejects pending negotiations created before the cutoff,
	// returning the number of rows rejected.
	RejectStale(ctx context.Context, olderThan time.Time) (int64, error)
}

type RatingRepository interface {
	Create(ctx context.Context, r *domain.Rating) error
	// AverageFor returns the mean and count over every rating the target has
	// received in the role; count 0 when none exist.
	AverageFor(ctx context.Context, toUserID int64, toRole domain.ParticipantRole) (float64, int32, error)
	// RecentComments returns up to limit non-empty comments, newest first.
	RecentComments(ctx context.Context, toUserID int64, toRole domain.ParticipantRole, limit int32) ([]string, error)
}
