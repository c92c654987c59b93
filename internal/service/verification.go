package service

import (
	"context"
	"errors"
	"fmt"

	"taxibot-backend/internal/domain"
	"taxibot-backend/internal/logger"
	"taxibot-backend/internal/repository"
)

type verificationService struct {
	driverRepo repository.DriverRepository
	docRepo    repository.DocumentRepository
	emailSvc   EmailService
}

func NewVerificationService(driverRepo repository.DriverRepository, docRepo repository.DocumentRepository, emailSvc EmailService) VerificationService {
	return &verificationService{driverRepo: driverRepo, docRepo: docRepo, emailSvc: emailSvc}
}

func (s *verificationService) SubmitDocument(ctx context.Context, driverHandle string, category domain.DocumentCategory, payload string) (*domain.DriverDocument, error) {
	if !category.Known() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCategory, category)
	}
	driver, err := s.driverRepo.GetByHandle(ctx, driverHandle)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	doc := &domain.DriverDocument{
		DriverID: driver.ID,
		Category: category,
		Payload:  payload,
	}
	if err := s.docRepo.Upsert(ctx, doc); err != nil {
		return nil, err
	}

	// A resubmission resets a required category to pending, which can drop a
	// previously verified driver back to unverified.
	if _, err := s.docRepo.RefreshDriverVerified(ctx, driver.ID); err != nil {
		logger.Error("verified flag recompute failed after submission", "driver_id", driver.ID, "error", err)
	}

	if s.emailSvc != nil {
		subject := fmt.Sprintf("Document submitted: %s", category)
		message := fmt.Sprintf("Driver %s (%s) submitted a %s document awaiting review.", driver.Name, driver.Handle, category)
		if err := s.emailSvc.SendAdminNotification(ctx, subject, message); err != nil {
			logger.Warn("admin notification failed", "driver", driver.Handle, "error", err)
		}
	}

	return doc, nil
}

// GetVerificationStatus derives the aggregate from the document rows rather
// than trusting the stored flag, so a read always agrees with the latest
// status writes.
func (s *verificationService) GetVerificationStatus(ctx context.Context, driverHandle string) (*domain.VerificationStatus, error) {
	driver, err := s.driverRepo.GetByHandle(ctx, driverHandle)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	docs, err := s.docRepo.ListByDriver(ctx, driver.ID)
	if err != nil {
		return nil, err
	}

	byCategory := make(map[domain.DocumentCategory]domain.DriverDocument, len(docs))
	for _, d := range docs {
		byCategory[d.Category] = d
	}

	status := &domain.VerificationStatus{
		DriverID: driver.ID,
		Verified: domain.DeriveVerified(docs),
	}
	for _, c := range []domain.DocumentCategory{
		domain.DocumentCategoryLicense,
		domain.DocumentCategoryVehicleRegistration,
		domain.DocumentCategoryInsurance,
	} {
		cs := domain.CategoryStatus{Category: c}
		if d, ok := byCategory[c]; ok {
			cs.Submitted = true
			cs.Status = d.Status
			cs.RejectionReason = d.RejectionReason
		}
		status.Categories = append(status.Categories, cs)
	}
	return status, nil
}

func (s *verificationService) AdjudicateDocument(ctx context.Context, documentID int64, approve bool, reason string) (*domain.DriverDocument, bool, error) {
	doc, err := s.docRepo.GetByID(ctx, documentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, false, ErrNotFound
		}
		return nil, false, err
	}

	status := domain.DocumentStatusApproved
	if !approve {
		status = domain.DocumentStatusRejected
	} else {
		reason = ""
	}
	if err := s.docRepo.SetStatus(ctx, documentID, status, reason); err != nil {
		return nil, false, err
	}
	doc.Status = status
	doc.RejectionReason = reason

	// Recompute on every status change. Approval can complete the required
	// set; re-rejection of a previously approved document revokes it.
	verified, err := s.docRepo.RefreshDriverVerified(ctx, doc.DriverID)
	if err != nil {
		logger.Error("verified flag recompute failed after adjudication", "driver_id", doc.DriverID, "error", err)
		return doc, false, err
	}
	logger.Info("document adjudicated", "document_id", documentID, "status", status, "driver_verified", verified)
	return doc, verified, nil
}
