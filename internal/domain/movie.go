package domain

import (
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// MovieEntry is one (name, rating) pair in a collection.
// Name is the unique key and is compared case-sensitively as typed.
type MovieEntry struct {
	Name   string
	Rating float64
}

// CoerceRating converts raw number-field input into a rating.
// Blank input is 0, anything unparseable is NaN. No range checks.
func CoerceRating(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}
	v, err := cast.ToFloat64E(s)
	if err != nil {
		return math.NaN()
	}
	return v
}

// FormatRating renders a rating for display
func FormatRating(r float64) string {
	switch {
	case math.IsNaN(r):
		return "NaN"
	case math.IsInf(r, 1):
		return "Infinity"
	case math.IsInf(r, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}
