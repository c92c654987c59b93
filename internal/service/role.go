package service

import "strings"

// RoleClass is the typed outcome of classifying which side of the
// marketplace a free-text message speaks for. The conversational layer calls
// this instead of scattering keyword checks through its dispatch code.
type RoleClass int

const (
	RoleClassAmbiguous RoleClass = iota
	RoleClassPassenger
	RoleClassDriver
)

func (r RoleClass) String() string {
	switch r {
	case RoleClassPassenger:
		return "passenger"
	case RoleClassDriver:
		return "driver"
	}
	return "ambiguous"
}

var passengerCues = []string{
	"need a ride", "need a taxi", "book", "pick me up", "take me",
	"i'm a passenger", "as a passenger", "order a",
}

var driverCues = []string{
	"i'm a driver", "as a driver", "my car", "available orders",
	"take orders", "go online", "start driving", "my vehicle",
}

// ClassifyRole scores the text against both cue sets and returns Ambiguous
// on a tie (including zero hits), leaving the caller to ask a clarifying
// question rather than guessing.
func ClassifyRole(text string) RoleClass {
	t := strings.ToLower(text)

	var passengerHits, driverHits int
	for _, cue := range passengerCues {
		if strings.Contains(t, cue) {
			passengerHits++
		}
	}
	for _, cue := range driverCues {
		if strings.Contains(t, cue) {
			driverHits++
		}
	}

	switch {
	case passengerHits > driverHits:
		return RoleClassPassenger
	case driverHits > passengerHits:
		return RoleClassDriver
	default:
		return RoleClassAmbiguous
	}
}
