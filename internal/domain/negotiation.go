package domain

type NegotiationStatus string

const (
	NegotiationStatusPending  NegotiationStatus = "pending"
	NegotiationStatusAccepted NegotiationStatus = "accepted"
	NegotiationStatusRejected NegotiationStatus = "rejected"
)

// PriceNegotiation is one directed proposal in an order's negotiation thread.
// The thread is append-only: a counter-proposal is a new row in the reverse
// direction, never an edit, and a resolved row is immutable.
type PriceNegotiation struct {
	ID         int64             `json:"id"`
	OrderID    int64             `json:"order_id"`
	FromUserID int64             `json:"from_user_id"`
	FromRole   ParticipantRole   `json:"from_role"`
	ToUserID   int64             `json:"to_user_id"`
	ToRole     ParticipantRole   `json:"to_role"`
	Price      int64             `json:"price"`
	Status     NegotiationStatus `json:"status"`
	CreatedOn  string            `json:"created_on"`
	UpdatedOn  string            `json:"updated_on"`
}
