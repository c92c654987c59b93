package domain

type OrderStatus string

const (
	OrderStatusPending     OrderStatus = "pending"
	OrderStatusNegotiating OrderStatus = "negotiating"
	OrderStatusAccepted    OrderStatus = "accepted"
	OrderStatusInProgress  OrderStatus = "in_progress"
	OrderStatusCompleted   OrderStatus = "completed"
	OrderStatusCancelled   OrderStatus = "cancelled"
)

// Terminal reports whether the status admits no further transitions.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// Order is the aggregation root for its offers, negotiations and ratings.
// Cancellation is a status transition; orders are never deleted.
type Order struct {
	ID               int64       `json:"id"`
	PassengerID      int64       `json:"passenger_id"`
	FromAddress      string      `json:"from_address"`
	ToAddress        string      `json:"to_address"`
	SuggestedPrice   int64       `json:"suggested_price"`
	FinalPrice       *int64      `json:"final_price,omitempty"`
	Status           OrderStatus `json:"status"`
	AcceptedDriverID *int64      `json:"accepted_driver_id,omitempty"`
	CreatedOn        string      `json:"created_on"`
	UpdatedOn        string      `json:"updated_on"`
}

// OrderSummary joins an order with its passenger's display data for listing.
// Missing join rows fall back to "Unknown" / the default rating instead of
// failing the listing.
type OrderSummary struct {
	Order
	PassengerName   string  `json:"passenger_name"`
	PassengerRating float64 `json:"passenger_rating"`
}
