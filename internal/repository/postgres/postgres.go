package postgres

import (
	"database/sql"
	"errors"

	"taxibot-backend/internal/repository"

	"github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.PassengerRepository
	repository.DriverRepository
	repository.DocumentRepository
	repository.OrderRepository
	repository.OfferRepository
	repository.NegotiationRepository
	repository.RatingRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                    db,
		PassengerRepository:   NewPassengerRepository(db),
		DriverRepository:      NewDriverRepository(db),
		DocumentRepository:    NewDocumentRepository(db),
		OrderRepository:       NewOrderRepository(db),
		OfferRepository:       NewOfferRepository(db),
		NegotiationRepository: NewNegotiationRepository(db),
		RatingRepository:      NewRatingRepository(db),
	}
}

const uniqueViolationCode = "23505"

// translateErr maps driver-level failures onto the repository sentinels.
// Unique-constraint violations are the authoritative guard for "at most one
// offer per (order, driver)" and "at most one rating per (order, rater)".
func translateErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return repository.ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode {
		return repository.ErrDuplicate
	}
	return err
}
