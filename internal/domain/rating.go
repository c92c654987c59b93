package domain

// Rating is a directed post-ride score between the two parties of an order.
// At most one rating exists per (order, rater).
type Rating struct {
	ID         int64           `json:"id"`
	OrderID    int64           `json:"order_id"`
	FromUserID int64           `json:"from_user_id"`
	FromRole   ParticipantRole `json:"from_role"`
	ToUserID   int64           `json:"to_user_id"`
	ToRole     ParticipantRole `json:"to_role"`
	Score      int32           `json:"score"`
	Comment    string          `json:"comment,omitempty"`
	CreatedOn  string          `json:"created_on"`
}

// RatingSummary reports a user's aggregate standing in one role. Display is
// the two-decimal rendering of Average, e.g. "5.00".
type RatingSummary struct {
	Average  float64  `json:"average"`
	Display  string   `json:"display"`
	Count    int32    `json:"count"`
	Comments []string `json:"comments"`
}
