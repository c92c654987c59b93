package domain

// ParticipantRole distinguishes the two sides of a ride.
type ParticipantRole string

const (
	RolePassenger ParticipantRole = "passenger"
	RoleDriver    ParticipantRole = "driver"
)

// DefaultRating is assigned to every newly registered profile and reported
// for users who have never been rated.
const DefaultRating = 5.00

type Passenger struct {
	ID         int64   `json:"id"`
	Handle     string  `json:"handle"`
	Name       string  `json:"name"`
	Phone      string  `json:"phone"`
	Rating     float64 `json:"rating"`
	TotalRides int32   `json:"total_rides"`
	CreatedOn  string  `json:"created_on"`
	UpdatedOn  string  `json:"updated_on"`
}

type Vehicle struct {
	Model string `json:"model"`
	Color string `json:"color"`
	Plate string `json:"plate"`
}

type Driver struct {
	ID         int64   `json:"id"`
	Handle     string  `json:"handle"`
	Name       string  `json:"name"`
	Phone      string  `json:"phone"`
	Rating     float64 `json:"rating"`
	TotalRides int32   `json:"total_rides"`
	Online     bool    `json:"online"`
	Verified   bool    `json:"verified"`
	Vehicle    Vehicle `json:"vehicle"`
	CreatedOn  string  `json:"created_on"`
	UpdatedOn  string  `json:"updated_on"`
}
