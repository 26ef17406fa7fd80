package model

import (
	"strconv"
	"strings"
	"time"
)

// DecToMicro converts a decimal amount string to micro units.
// "1.5" -> 1500000, "0.000001" -> 1. Returns 0 for empty or invalid input.
func DecToMicro(dec string) int64 {
	dec = strings.TrimSpace(dec)
	if dec == "" {
		return 0
	}

	f, err := strconv.ParseFloat(dec, 64)
	if err != nil {
		return 0
	}

	return int64(f*1e6 + 0.5)
}

// ParseAmount parses an integer amount string as emitted by the contract
// (u128 serialized as a JSON string). Returns 0 for empty or invalid input.
func ParseAmount(s string) int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// ParseDec parses a decimal string to float64. Returns 0 for empty or
// invalid input.
func ParseDec(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

// ParseTimestamp parses an ISO 8601 timestamp to microseconds since epoch.
// Returns 0 for empty or invalid input.
func ParseTimestamp(iso string) int64 {
	if iso == "" {
		return 0
	}

	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		t, err = time.Parse("2006-01-02T15:04:05", iso)
		if err != nil {
			return 0
		}
	}

	return t.UnixMicro()
}

// NanosToMicro converts a nanosecond timestamp string (contract u64) to
// microseconds since epoch. Returns 0 for empty or invalid input.
func NanosToMicro(nanos string) int64 {
	n := ParseAmount(nanos)
	return n / 1000
}

// MillisToMicro converts unix milliseconds to microseconds since epoch.
func MillisToMicro(ms int64) int64 {
	return ms * 1000
}

// NowMicro returns the current time in microseconds since epoch.
func NowMicro() int64 {
	return time.Now().UnixMicro()
}

// StatusForProgress derives an order status from fill and claim progress.
// Cancellation is reported by the backends directly and never derived.
func StatusForProgress(percentFilled, percentClaimed float64) OrderStatus {
	switch {
	case percentFilled >= 1 && percentClaimed >= 1:
		return StatusFullyClaimed
	case percentFilled >= 1:
		return StatusFilled
	case percentFilled > 0:
		return StatusPartiallyFilled
	default:
		return StatusOpen
	}
}
