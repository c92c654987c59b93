package service

import (
	"context"
	"errors"

	"taxibot-backend/internal/domain"
	"taxibot-backend/internal/logger"
	"taxibot-backend/internal/repository"
	"taxibot-backend/internal/utils"
)

const recentCommentLimit = 5

type ratingService struct {
	ratingRepo    repository.RatingRepository
	orderRepo     repository.OrderRepository
	passengerRepo repository.PassengerRepository
	driverRepo    repository.DriverRepository
}

func NewRatingService(
	ratingRepo repository.RatingRepository,
	orderRepo repository.OrderRepository,
	passengerRepo repository.PassengerRepository,
	driverRepo repository.DriverRepository,
) RatingService {
	return &ratingService{
		ratingRepo:    ratingRepo,
		orderRepo:     orderRepo,
		passengerRepo: passengerRepo,
		driverRepo:    driverRepo,
	}
}

func (s *ratingService) RateRide(ctx context.Context, fromHandle string, orderID int64, role domain.ParticipantRole, score int32, comment string) (*domain.Rating, error) {
	if score < 1 || score > 5 {
		return nil, ErrInvalidScore
	}

	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	rating := &domain.Rating{
		OrderID:  orderID,
		FromRole: role,
		Score:    score,
		Comment:  comment,
	}

	switch role {
	case domain.RolePassenger:
		passenger, err := s.passengerRepo.GetByHandle(ctx, fromHandle)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		if order.PassengerID != passenger.ID {
			return nil, ErrNotRideParty
		}
		if order.AcceptedDriverID == nil {
			return nil, ErrInvalidTransition
		}
		rating.FromUserID = passenger.ID
		rating.ToUserID = *order.AcceptedDriverID
		rating.ToRole = domain.RoleDriver
	case domain.RoleDriver:
		driver, err := s.driverRepo.GetByHandle(ctx, fromHandle)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		if order.AcceptedDriverID == nil || *order.AcceptedDriverID != driver.ID {
			return nil, ErrNotRideParty
		}
		rating.FromUserID = driver.ID
		rating.ToUserID = order.PassengerID
		rating.ToRole = domain.RolePassenger
	default:
		return nil, ErrNotRideParty
	}

	if err := s.ratingRepo.Create(ctx, rating); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAlreadyRated
		}
		return nil, err
	}

	// Synchronous recompute over the full rating history, written back to the
	// target's profile. A recompute failure is logged and leaves the stored
	// aggregate as it was; the rating itself is already durable.
	if err := s.recomputeAggregate(ctx, rating.ToUserID, rating.ToRole); err != nil {
		logger.Error("rating aggregate recompute failed", "user_id", rating.ToUserID, "role", rating.ToRole, "error", err)
	}

	logger.Info("ride rated", "order_id", orderID, "from", fromHandle, "score", score)
	return rating, nil
}

func (s *ratingService) recomputeAggregate(ctx context.Context, userID int64, role domain.ParticipantRole) error {
	avg, count, err := s.ratingRepo.AverageFor(ctx, userID, role)
	if err != nil {
		return err
	}
	avg = utils.RoundRating(avg)
	switch role {
	case domain.RoleDriver:
		return s.driverRepo.UpdateRating(ctx, userID, avg, count)
	default:
		return s.passengerRepo.UpdateRating(ctx, userID, avg, count)
	}
}

func (s *ratingService) GetUserRating(ctx context.Context, userID int64, role domain.ParticipantRole) (*domain.RatingSummary, error) {
	avg, count, err := s.ratingRepo.AverageFor(ctx, userID, role)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return &domain.RatingSummary{
			Average: domain.DefaultRating,
			Display: utils.FormatRating(domain.DefaultRating),
			Count:   0,
		}, nil
	}

	comments, err := s.ratingRepo.RecentComments(ctx, userID, role, recentCommentLimit)
	if err != nil {
		return nil, err
	}
	avg = utils.RoundRating(avg)
	return &domain.RatingSummary{
		Average:  avg,
		Display:  utils.FormatRating(avg),
		Count:    count,
		Comments: comments,
	}, nil
}
