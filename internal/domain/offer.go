package domain

type OfferStatus string

const (
	OfferStatusPending        OfferStatus = "pending"
	OfferStatusAccepted       OfferStatus = "accepted"
	OfferStatusRejected       OfferStatus = "rejected"
	OfferStatusCounterOffered OfferStatus = "counter_offered"
)

// DriverOffer is a driver's priced bid on an order. A driver holds at most
// one offer per order, whatever its status.
type DriverOffer struct {
	ID        int64       `json:"id"`
	OrderID   int64       `json:"order_id"`
	DriverID  int64       `json:"driver_id"`
	Price     int64       `json:"price"`
	Status    OfferStatus `json:"status"`
	Note      string      `json:"note,omitempty"`
	CreatedOn string      `json:"created_on"`
	UpdatedOn string      `json:"updated_on"`
}

// OfferSummary joins an offer with its driver's display data.
type OfferSummary struct {
	DriverOffer
	DriverName   string  `json:"driver_name"`
	DriverRating float64 `json:"driver_rating"`
}
