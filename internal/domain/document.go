package domain

type DocumentCategory string

const (
	DocumentCategoryLicense             DocumentCategory = "license"
	DocumentCategoryVehicleRegistration DocumentCategory = "vehicle_registration"
	DocumentCategoryInsurance           DocumentCategory = "insurance"
)

// RequiredDocumentCategories gate driver verification. Insurance is accepted
// but optional.
var RequiredDocumentCategories = []DocumentCategory{
	DocumentCategoryLicense,
	DocumentCategoryVehicleRegistration,
}

func (c DocumentCategory) Known() bool {
	switch c {
	case DocumentCategoryLicense, DocumentCategoryVehicleRegistration, DocumentCategoryInsurance:
		return true
	}
	return false
}

type DocumentStatus string

const (
	DocumentStatusPending  DocumentStatus = "pending"
	DocumentStatusApproved DocumentStatus = "approved"
	DocumentStatusRejected DocumentStatus = "rejected"
)

// DriverDocument is the single active submission for a (driver, category)
// pair. Resubmission overwrites the record rather than adding a sibling.
type DriverDocument struct {
	ID              int64            `json:"id"`
	DriverID        int64            `json:"driver_id"`
	Category        DocumentCategory `json:"category"`
	Payload         string           `json:"payload"`
	Status          DocumentStatus   `json:"status"`
	RejectionReason string           `json:"rejection_reason,omitempty"`
	CreatedOn       string           `json:"created_on"`
	UpdatedOn       string           `json:"updated_on"`
}

// CategoryStatus is one row of a driver's verification snapshot.
type CategoryStatus struct {
	Category        DocumentCategory `json:"category"`
	Status          DocumentStatus   `json:"status"`
	RejectionReason string           `json:"rejection_reason,omitempty"`
	Submitted       bool             `json:"submitted"`
}

type VerificationStatus struct {
	DriverID   int64            `json:"driver_id"`
	Verified   bool             `json:"verified"`
	Categories []CategoryStatus `json:"categories"`
}

// DeriveVerified computes the aggregate flag from a document set: true iff
// every required category has an approved document.
func DeriveVerified(docs []DriverDocument) bool {
	approved := make(map[DocumentCategory]bool, len(docs))
	for _, d := range docs {
		if d.Status == DocumentStatusApproved {
			approved[d.Category] = true
		}
	}
	for _, c := range RequiredDocumentCategories {
		if !approved[c] {
			return false
		}
	}
	return true
}
