package utils

import (
	"math"
	"strconv"
	"strings"
)

// ParseLargeInteger parses a string to an int. On error, returns the fallback value.
func ParseLargeInteger(s string, fallback int) int {
	val, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fallback
	}
	return val
}

// ParseHits parses a hit counter. Tools emit counters as integers, floats
// ("1.0") or values that overflow int; those are clamped instead of failing.
func ParseHits(s string) int {
	s = strings.TrimSpace(s)
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) {
		return 0
	}
	if f >= math.MaxInt {
		return math.MaxInt
	}
	if f < 0 {
		return 0
	}
	return int(f)
}

// RoundTo rounds v to the given number of decimal places.
func RoundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
