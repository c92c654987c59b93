package service

import (
	"context"
	"errors"

	"taxibot-backend/internal/domain"
	"taxibot-backend/internal/logger"
	"taxibot-backend/internal/repository"
)

type orderService struct {
	orderRepo     repository.OrderRepository
	offerRepo     repository.OfferRepository
	passengerRepo repository.PassengerRepository
	driverRepo    repository.DriverRepository
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	offerRepo repository.OfferRepository,
	passengerRepo repository.PassengerRepository,
	driverRepo repository.DriverRepository,
) OrderService {
	return &orderService{
		orderRepo:     orderRepo,
		offerRepo:     offerRepo,
		passengerRepo: passengerRepo,
		driverRepo:    driverRepo,
	}
}

func (s *orderService) CreateOrder(ctx context.Context, passengerHandle, from, to string, price int64) (*domain.Order, error) {
	passenger, err := s.passengerRepo.GetByHandle(ctx, passengerHandle)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	order := &domain.Order{
		PassengerID:    passenger.ID,
		FromAddress:    from,
		ToAddress:      to,
		SuggestedPrice: price,
		Status:         domain.OrderStatusPending,
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}
	logger.Info("order created", "order_id", order.ID, "passenger", passengerHandle, "price", price)
	return order, nil
}

func (s *orderService) ListAvailableOrders(ctx context.Context) ([]domain.OrderSummary, error) {
	return s.orderRepo.ListAvailable(ctx)
}

// AcceptOffer stamps the offer's driver and price onto the order. Sibling
// pending offers on the order are intentionally left pending; the conditional
// update on the order already stops any of them from being accepted later.
func (s *orderService) AcceptOffer(ctx context.Context, offerID, orderID int64) (*domain.Order, error) {
	offer, err := s.offerRepo.GetByID(ctx, offerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if offer.OrderID != orderID {
		return nil, ErrNotFound
	}

	won, err := s.orderRepo.AcceptPending(ctx, orderID, offer.DriverID, offer.Price)
	if err != nil {
		return nil, err
	}
	if !won {
		return nil, ErrOrderUnavailable
	}

	if err := s.offerRepo.SetStatus(ctx, offer.ID, domain.OfferStatusAccepted); err != nil {
		// The order is already finalized; report the offer-status failure
		// without undoing the acceptance.
		logger.Error("failed to mark winning offer accepted", "offer_id", offer.ID, "error", err)
		return nil, err
	}

	logger.Info("offer accepted", "order_id", orderID, "offer_id", offerID, "driver_id", offer.DriverID, "final_price", offer.Price)
	return s.orderRepo.GetByID(ctx, orderID)
}

func (s *orderService) StartRide(ctx context.Context, driverHandle string, orderID int64) (*domain.Order, error) {
	order, driver, err := s.resolveDriverOrder(ctx, driverHandle, orderID)
	if err != nil {
		return nil, err
	}
	if order.AcceptedDriverID == nil || *order.AcceptedDriverID != driver.ID {
		return nil, ErrNotRideParty
	}
	moved, err := s.orderRepo.TransitionStatus(ctx, orderID, []domain.OrderStatus{domain.OrderStatusAccepted}, domain.OrderStatusInProgress)
	if err != nil {
		return nil, err
	}
	if !moved {
		return nil, ErrInvalidTransition
	}
	return s.orderRepo.GetByID(ctx, orderID)
}

func (s *orderService) CompleteRide(ctx context.Context, driverHandle string, orderID int64) (*domain.Order, error) {
	order, driver, err := s.resolveDriverOrder(ctx, driverHandle, orderID)
	if err != nil {
		return nil, err
	}
	if order.AcceptedDriverID == nil || *order.AcceptedDriverID != driver.ID {
		return nil, ErrNotRideParty
	}
	moved, err := s.orderRepo.TransitionStatus(ctx, orderID, []domain.OrderStatus{domain.OrderStatusInProgress}, domain.OrderStatusCompleted)
	if err != nil {
		return nil, err
	}
	if !moved {
		return nil, ErrInvalidTransition
	}
	logger.Info("ride completed", "order_id", orderID, "driver", driverHandle)
	return s.orderRepo.GetByID(ctx, orderID)
}

// CancelOrder is reachable from any non-terminal state.
func (s *orderService) CancelOrder(ctx context.Context, passengerHandle string, orderID int64) (*domain.Order, error) {
	passenger, err := s.passengerRepo.GetByHandle(ctx, passengerHandle)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if order.PassengerID != passenger.ID {
		return nil, ErrNotRideParty
	}

	nonTerminal := []domain.OrderStatus{
		domain.OrderStatusPending,
		domain.OrderStatusNegotiating,
		domain.OrderStatusAccepted,
		domain.OrderStatusInProgress,
	}
	moved, err := s.orderRepo.TransitionStatus(ctx, orderID, nonTerminal, domain.OrderStatusCancelled)
	if err != nil {
		return nil, err
	}
	if !moved {
		return nil, ErrInvalidTransition
	}
	logger.Info("order cancelled", "order_id", orderID, "passenger", passengerHandle)
	return s.orderRepo.GetByID(ctx, orderID)
}

func (s *orderService) resolveDriverOrder(ctx context.Context, driverHandle string, orderID int64) (*domain.Order, *domain.Driver, error) {
	driver, err := s.driverRepo.GetByHandle(ctx, driverHandle)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}
	return order, driver, nil
}
