package service

import "errors"

// The marketplace error taxonomy. Public operations fail with one of these
// (possibly wrapped); the API layer maps them onto response codes and the
// conversational layer onto user-facing phrasing.
var (
	// Not-found family: a referenced profile, order, offer, negotiation or
	// document does not exist.
	ErrNotFound = errors.New("not found")

	// Policy family: the caller exists but is not allowed to do this.
	ErrNotVerified  = errors.New("driver is not verified")
	ErrNotRideParty = errors.New("caller is not a party to this ride")

	// Conflict family: the state already moved or the record already exists.
	ErrDuplicateOffer   = errors.New("driver already has an offer on this order")
	ErrAlreadyRated     = errors.New("ride already rated by this user")
	ErrOrderUnavailable = errors.New("order is no longer available")

	// Validation family.
	ErrInvalidScore      = errors.New("score must be between 1 and 5")
	ErrUnknownCategory   = errors.New("unknown document category")
	ErrInvalidTransition = errors.New("state does not allow this transition")
)
