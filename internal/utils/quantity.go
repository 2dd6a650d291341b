package utils

import "math"

// Saturating counter arithmetic. Every quantity mutation in the collection
// and wishlist services routes through these helpers; raw addition on
// counters risks int32 wraparound when clients send extreme deltas.

// ClampInt32 returns v floored at zero.
func ClampInt32(v int32) int32 {
	if v < 0 {
		return 0
	}
	return v
}

// ClampInt64 clamps v into [0, math.MaxInt32]. Callers widen to int64 before
// adding deltas so overflow is detected here instead of wrapping.
func ClampInt64(v int64) int32 {
	if v < 0 {
		return 0
	}
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	return int32(v)
}

// ClampDelta applies a signed delta to a counter, saturating at 0 and
// math.MaxInt32 instead of wrapping.
func ClampDelta(current, delta int32) int32 {
	return ClampInt64(int64(current) + int64(delta))
}
