// Package helpers holds small numeric conversions shared by the wire codec,
// the settings store and the commands.
//
// Wire fields are fixed-width unsigned integers while Go lengths and parsed
// settings are ints, so every narrowing conversion goes through a clamp
// instead of a bare cast.
package helpers

import "math"

// ClampInt restricts v to the range [lowerLimit, upperLimit].
func ClampInt(v, lowerLimit, upperLimit int) int {
	return min(max(v, lowerLimit), upperLimit)
}

// ClampIntToUint16 narrows v to a 16-bit count or port.
// Values below 0 become 0; values above math.MaxUint16 become math.MaxUint16.
func ClampIntToUint16(v int) uint16 {
	return uint16(ClampInt(v, 0, math.MaxUint16)) //nolint:gosec // clamped to valid range
}

// ClampIntToUint32 narrows v to a 32-bit TTL.
// Values below 0 become 0; values above math.MaxUint32 become math.MaxUint32.
func ClampIntToUint32(v int64) uint32 {
	if v < 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
