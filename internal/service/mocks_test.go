package service_test

import (
	"context"
	"time"

	"taxibot-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockPassengerRepo
type MockPassengerRepo struct {
	mock.Mock
}

func (m *MockPassengerRepo) Create(ctx context.Context, p *domain.Passenger) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockPassengerRepo) GetByHandle(ctx context.Context, handle string) (*domain.Passenger, error) {
	args := m.Called(ctx, handle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Passenger), args.Error(1)
}
func (m *MockPassengerRepo) GetByID(ctx context.Context, id int64) (*domain.Passenger, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Passenger), args.Error(1)
}
func (m *MockPassengerRepo) UpdateRating(ctx context.Context, id int64, rating float64, totalRides int32) error {
	args := m.Called(ctx, id, rating, totalRides)
	return args.Error(0)
}

// MockDriverRepo
type MockDriverRepo struct {
	mock.Mock
}

func (m *MockDriverRepo) Create(ctx context.Context, d *domain.Driver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}
func (m *MockDriverRepo) GetByHandle(ctx context.Context, handle string) (*domain.Driver, error) {
	args := m.Called(ctx, handle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Driver), args.Error(1)
}
func (m *MockDriverRepo) GetByID(ctx context.Context, id int64) (*domain.Driver, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Driver), args.Error(1)
}
func (m *MockDriverRepo) SetOnline(ctx context.Context, id int64, online bool) error {
	args := m.Called(ctx, id, online)
	return args.Error(0)
}
func (m *MockDriverRepo) UpdateRating(ctx context.Context, id int64, rating float64, totalRides int32) error {
	args := m.Called(ctx, id, rating, totalRides)
	return args.Error(0)
}

// MockDocumentRepo
type MockDocumentRepo struct {
	mock.Mock
}

func (m *MockDocumentRepo) Upsert(ctx context.Context, doc *domain.DriverDocument) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}
func (m *MockDocumentRepo) GetByID(ctx context.Context, id int64) (*domain.DriverDocument, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DriverDocument), args.Error(1)
}
func (m *MockDocumentRepo) ListByDriver(ctx context.Context, driverID int64) ([]domain.DriverDocument, error) {
	args := m.Called(ctx, driverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DriverDocument), args.Error(1)
}
func (m *MockDocumentRepo) SetStatus(ctx context.Context, id int64, status domain.DocumentStatus, reason string) error {
	args := m.Called(ctx, id, status, reason)
	return args.Error(0)
}
func (m *MockDocumentRepo) RefreshDriverVerified(ctx context.Context, driverID int64) (bool, error) {
	args := m.Called(ctx, driverID)
	return args.Bool(0), args.Error(1)
}

// MockOrderRepo
type MockOrderRepo struct {
	mock.Mock
}

func (m *MockOrderRepo) Create(ctx context.Context, o *domain.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepo) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}
func (m *MockOrderRepo) ListAvailable(ctx context.Context) ([]domain.OrderSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OrderSummary), args.Error(1)
}
func (m *MockOrderRepo) AcceptPending(ctx context.Context, orderID, driverID, finalPrice int64) (bool, error) {
	args := m.Called(ctx, orderID, driverID, finalPrice)
	return args.Bool(0), args.Error(1)
}
func (m *MockOrderRepo) TransitionStatus(ctx context.Context, orderID int64, from []domain.OrderStatus, to domain.OrderStatus) (bool, error) {
	args := m.Called(ctx, orderID, from, to)
	return args.Bool(0), args.Error(1)
}
func (m *MockOrderRepo) CancelStale(ctx context.Context, olderThan time.Time) (int64, error) {
	args := m.Called(ctx, olderThan)
	return args.Get(0).(int64), args.Error(1)
}

// MockOfferRepo
type MockOfferRepo struct {
	mock.Mock
}

func (m *MockOfferRepo) Create(ctx context.Context, o *domain.DriverOffer) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOfferRepo) GetByID(ctx context.Context, id int64) (*domain.DriverOffer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DriverOffer), args.Error(1)
}
func (m *MockOfferRepo) ListByOrder(ctx context.Context, orderID int64) ([]domain.OfferSummary, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OfferSummary), args.Error(1)
}
func (m *MockOfferRepo) ExistsForDriver(ctx context.Context, orderID, driverID int64) (bool, error) {
	args := m.Called(ctx, orderID, driverID)
	return args.Bool(0), args.Error(1)
}
func (m *MockOfferRepo) SetStatus(ctx context.Context, id int64, status domain.OfferStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

// MockNegotiationRepo
type MockNegotiationRepo struct {
	mock.Mock
}

func (m *MockNegotiationRepo) Create(ctx context.Context, n *domain.PriceNegotiation) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}
func (m *MockNegotiationRepo) GetByID(ctx context.Context, id int64) (*domain.PriceNegotiation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PriceNegotiation), args.Error(1)
}
func (m *MockNegotiationRepo) ListByOrder(ctx context.Context, orderID int64) ([]domain.PriceNegotiation, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PriceNegotiation), args.Error(1)
}
func (m *MockNegotiationRepo) Resolve(ctx context.Context, id int64, status domain.NegotiationStatus) (bool, error) {
	args := m.Called(ctx, id, status)
	return args.Bool(0), args.Error(1)
}
func (m *MockNegotiationRepo) RejectStale(ctx context.Context, olderThan time.Time) (int64, error) {
	args := m.Called(ctx, olderThan)
	return args.Get(0).(int64), args.Error(1)
}

// MockRatingRepo
type MockRatingRepo struct {
	mock.Mock
}

func (m *MockRatingRepo) Create(ctx context.Context, r *domain.Rating) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockRatingRepo) AverageFor(ctx context.Context, toUserID int64, toRole domain.ParticipantRole) (float64, int32, error) {
	args := m.Called(ctx, toUserID, toRole)
	return args.Get(0).(float64), args.Get(1).(int32), args.Error(2)
}
func (m *MockRatingRepo) RecentComments(ctx context.Context, toUserID int64, toRole domain.ParticipantRole, limit int32) ([]string, error) {
	args := m.Called(ctx, toUserID, toRole, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendAdminNotification(ctx context.Context, subject, message string) error {
	args := m.Called(ctx, subject, message)
	return args.Error(0)
}
