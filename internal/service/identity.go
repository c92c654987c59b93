package service

import (
	"context"
	"errors"

	"taxibot-backend/internal/domain"
	"taxibot-backend/internal/logger"
	"taxibot-backend/internal/repository"
)

type identityService struct {
	passengerRepo repository.PassengerRepository
	driverRepo    repository.DriverRepository
}

func NewIdentityService(passengerRepo repository.PassengerRepository, driverRepo repository.DriverRepository) IdentityService {
	return &identityService{passengerRepo: passengerRepo, driverRepo: driverRepo}
}

func (s *identityService) RegisterPassenger(ctx context.Context, handle, name, phone string) (*domain.Passenger, bool, error) {
	existing, err := s.passengerRepo.GetByHandle(ctx, handle)
	if err == nil {
		// Welcome back: the stored profile wins, name/phone are not overwritten.
		return existing, true, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, false, err
	}

	p := &domain.Passenger{
		Handle: handle,
		Name:   name,
		Phone:  phone,
		Rating: domain.DefaultRating,
	}
	if err := s.passengerRepo.Create(ctx, p); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			// Lost a registration race; the winner's profile is the answer.
			if p, err := s.passengerRepo.GetByHandle(ctx, handle); err == nil {
				return p, true, nil
			}
		}
		return nil, false, err
	}
	logger.Info("passenger registered", "handle", handle, "id", p.ID)
	return p, false, nil
}

func (s *identityService) RegisterDriver(ctx context.Context, handle, name, phone string, vehicle domain.Vehicle) (*domain.Driver, bool, error) {
	existing, err := s.driverRepo.GetByHandle(ctx, handle)
	if err == nil {
		return existing, true, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, false, err
	}

	d := &domain.Driver{
		Handle:   handle,
		Name:     name,
		Phone:    phone,
		Rating:   domain.DefaultRating,
		Verified: false,
		Vehicle:  vehicle,
	}
	if err := s.driverRepo.Create(ctx, d); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			if d, err := s.driverRepo.GetByHandle(ctx, handle); err == nil {
				return d, true, nil
			}
		}
		return nil, false, err
	}
	logger.Info("driver registered", "handle", handle, "id", d.ID)
	return d, false, nil
}

func (s *identityService) SetDriverOnline(ctx context.Context, handle string, online bool) (*domain.Driver, error) {
	d, err := s.driverRepo.GetByHandle(ctx, handle)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := s.driverRepo.SetOnline(ctx, d.ID, online); err != nil {
		return nil, err
	}
	d.Online = online
	return d, nil
}
