package service

import (
	"context"
	"errors"

	"taxibot-backend/internal/domain"
	"taxibot-backend/internal/logger"
	"taxibot-backend/internal/repository"
)

type offerService struct {
	offerRepo     repository.OfferRepository
	orderRepo     repository.OrderRepository
	negRepo       repository.NegotiationRepository
	driverRepo    repository.DriverRepository
	passengerRepo repository.PassengerRepository
}

func NewOfferService(
	offerRepo repository.OfferRepository,
	orderRepo repository.OrderRepository,
	negRepo repository.NegotiationRepository,
	driverRepo repository.DriverRepository,
	passengerRepo repository.PassengerRepository,
) OfferService {
	return &offerService{
		offerRepo:     offerRepo,
		orderRepo:     orderRepo,
		negRepo:       negRepo,
		driverRepo:    driverRepo,
		passengerRepo: passengerRepo,
	}
}

func (s *offerService) MakeOffer(ctx context.Context, driverHandle string, orderID, price int64, note string) (*domain.DriverOffer, error) {
	driver, err := s.driverRepo.GetByHandle(ctx, driverHandle)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !driver.Verified {
		// Policy gate, not a data error: the profile exists but may not bid.
		return nil, ErrNotVerified
	}

	if _, err := s.orderRepo.GetByID(ctx, orderID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	// Pre-check is an optimization for a friendlier fast path; the unique
	// constraint on (order_id, driver_id) is the real guard.
	exists, err := s.offerRepo.ExistsForDriver(ctx, orderID, driver.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateOffer
	}

	offer := &domain.DriverOffer{
		OrderID:  orderID,
		DriverID: driver.ID,
		Price:    price,
		Status:   domain.OfferStatusPending,
		Note:     note,
	}
	if err := s.offerRepo.Create(ctx, offer); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateOffer
		}
		return nil, err
	}
	logger.Info("offer made", "order_id", orderID, "driver", driverHandle, "price", price)
	return offer, nil
}

func (s *offerService) ListOffers(ctx context.Context, orderID int64) ([]domain.OfferSummary, error) {
	return s.offerRepo.ListByOrder(ctx, orderID)
}

func (s *offerService) MakeCounterOffer(ctx context.Context, orderID int64, fromHandle string, toDriverID, price int64) (*domain.PriceNegotiation, error) {
	passenger, err := s.passengerRepo.GetByHandle(ctx, fromHandle)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if _, err := s.orderRepo.GetByID(ctx, orderID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	neg := &domain.PriceNegotiation{
		OrderID:    orderID,
		FromUserID: passenger.ID,
		FromRole:   domain.RolePassenger,
		ToUserID:   toDriverID,
		ToRole:     domain.RoleDriver,
		Price:      price,
		Status:     domain.NegotiationStatusPending,
	}
	if err := s.negRepo.Create(ctx, neg); err != nil {
		return nil, err
	}
	logger.Info("counter-offer opened", "order_id", orderID, "passenger", fromHandle, "driver_id", toDriverID, "price", price)
	return neg, nil
}

func (s *offerService) RespondToCounterOffer(ctx context.Context, driverHandle string, negotiationID int64, accept bool, counterPrice *int64) (*domain.PriceNegotiation, error) {
	driver, err := s.driverRepo.GetByHandle(ctx, driverHandle)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	neg, err := s.negRepo.GetByID(ctx, negotiationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	// Only the driver the proposal is addressed to may answer it.
	if neg.ToRole != domain.RoleDriver || neg.ToUserID != driver.ID {
		return nil, ErrNotRideParty
	}

	switch {
	case accept:
		// Accepting a price settles this thread only; finalizing the order is
		// still a separate acceptOffer call.
		return s.resolve(ctx, neg, domain.NegotiationStatusAccepted)
	case counterPrice != nil:
		// A counter grows the append-only chain: the original row stays
		// pending, the new proposal runs in the reverse direction.
		reply := &domain.PriceNegotiation{
			OrderID:    neg.OrderID,
			FromUserID: driver.ID,
			FromRole:   domain.RoleDriver,
			ToUserID:   neg.FromUserID,
			ToRole:     neg.FromRole,
			Price:      *counterPrice,
			Status:     domain.NegotiationStatusPending,
		}
		if err := s.negRepo.Create(ctx, reply); err != nil {
			return nil, err
		}
		logger.Info("counter-offer countered", "order_id", neg.OrderID, "driver", driverHandle, "price", *counterPrice)
		return reply, nil
	default:
		return s.resolve(ctx, neg, domain.NegotiationStatusRejected)
	}
}

func (s *offerService) resolve(ctx context.Context, neg *domain.PriceNegotiation, status domain.NegotiationStatus) (*domain.PriceNegotiation, error) {
	resolved, err := s.negRepo.Resolve(ctx, neg.ID, status)
	if err != nil {
		return nil, err
	}
	if !resolved {
		return nil, ErrInvalidTransition
	}
	neg.Status = status
	logger.Info("negotiation resolved", "negotiation_id", neg.ID, "status", status)
	return neg, nil
}
