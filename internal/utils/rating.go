package utils

import (
	"math"
	"strconv"
)

// RoundRating rounds an average rating to two decimal places. All stored and
// reported averages go through this so the same history always yields the
// same value.
func RoundRating(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatRating renders a rating with exactly two decimals, e.g. "5.00".
func FormatRating(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
