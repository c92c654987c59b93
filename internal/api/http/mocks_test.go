package http_test

import (
	"context"

	"taxibot-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockIdentityService
type MockIdentityService struct {
	mock.Mock
}

func (m *MockIdentityService) RegisterPassenger(ctx context.Context, handle, name, phone string) (*domain.Passenger, bool, error) {
	args := m.Called(ctx, handle, name, phone)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.Passenger), args.Bool(1), args.Error(2)
}
func (m *MockIdentityService) RegisterDriver(ctx context.Context, handle, name, phone string, vehicle domain.Vehicle) (*domain.Driver, bool, error) {
	args := m.Called(ctx, handle, name, phone, vehicle)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.Driver), args.Bool(1), args.Error(2)
}
func (m *MockIdentityService) SetDriverOnline(ctx context.Context, handle string, online bool) (*domain.Driver, error) {
	args := m.Called(ctx, handle, online)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Driver), args.Error(1)
}

// MockVerificationService
type MockVerificationService struct {
	mock.Mock
}

func (m *MockVerificationService) SubmitDocument(ctx context.Context, driverHandle string, category domain.DocumentCategory, payload string) (*domain.DriverDocument, error) {
	args := m.Called(ctx, driverHandle, category, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DriverDocument), args.Error(1)
}
func (m *MockVerificationService) GetVerificationStatus(ctx context.Context, driverHandle string) (*domain.VerificationStatus, error) {
	args := m.Called(ctx, driverHandle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VerificationStatus), args.Error(1)
}
func (m *MockVerificationService) AdjudicateDocument(ctx context.Context, documentID int64, approve bool, reason string) (*domain.DriverDocument, bool, error) {
	args := m.Called(ctx, documentID, approve, reason)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.DriverDocument), args.Bool(1), args.Error(2)
}

// MockOrderService
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) CreateOrder(ctx context.Context, passengerHandle, from, to string, price int64) (*domain.Order, error) {
	args := m.Called(ctx, passengerHandle, from, to, price)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}
func (m *MockOrderService) ListAvailableOrders(ctx context.Context) ([]domain.OrderSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OrderSummary), args.Error(1)
}
func (m *MockOrderService) AcceptOffer(ctx context.Context, offerID, orderID int64) (*domain.Order, error) {
	args := m.Called(ctx, offerID, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}
func (m *MockOrderService) StartRide(ctx context.Context, driverHandle string, orderID int64) (*domain.Order, error) {
	args := m.Called(ctx, driverHandle, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}
func (m *MockOrderService) CompleteRide(ctx context.Context, driverHandle string, orderID int64) (*domain.Order, error) {
	args := m.Called(ctx, driverHandle, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}
func (m *MockOrderService) CancelOrder(ctx context.Context, passengerHandle string, orderID int64) (*domain.Order, error) {
	args := m.Called(ctx, passengerHandle, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

// MockOfferService
type MockOfferService struct {
	mock.Mock
}

func (m *MockOfferService) MakeOffer(ctx context.Context, driverHandle string, orderID, price int64, note string) (*domain.DriverOffer, error) {
	args := m.Called(ctx, driverHandle, orderID, price, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DriverOffer), args.Error(1)
}
func (m *MockOfferService) ListOffers(ctx context.Context, orderID int64) ([]domain.OfferSummary, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OfferSummary), args.Error(1)
}
func (m *MockOfferService) MakeCounterOffer(ctx context.Context, orderID int64, fromHandle string, toDriverID, price int64) (*domain.PriceNegotiation, error) {
	args := m.Called(ctx, orderID, fromHandle, toDriverID, price)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PriceNegotiation), args.Error(1)
}
func (m *MockOfferService) RespondToCounterOffer(ctx context.Context, driverHandle string, negotiationID int64, accept bool, counterPrice *int64) (*domain.PriceNegotiation, error) {
	args := m.Called(ctx, driverHandle, negotiationID, accept, counterPrice)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PriceNegotiation), args.Error(1)
}

// MockRatingService
type MockRatingService struct {
	mock.Mock
}

func (m *MockRatingService) RateRide(ctx context.Context, fromHandle string, orderID int64, role domain.ParticipantRole, score int32, comment string) (*domain.Rating, error) {
	args := m.Called(ctx, fromHandle, orderID, role, score, comment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rating), args.Error(1)
}
func (m *MockRatingService) GetUserRating(ctx context.Context, userID int64, role domain.ParticipantRole) (*domain.RatingSummary, error) {
	args := m.Called(ctx, userID, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RatingSummary), args.Error(1)
}
