// Package conv provides checked integer narrowing for the program arena.
//
// Node records store indices and payloads as int32, and quantifier bounds
// as two packed uint16 halves. Callers range-check user-controlled values
// first (an oversized arena is reported as an error, not a panic); these
// helpers then guard the conversion itself and panic on overflow, since
// reaching them with an out-of-range value is a programming error.
package conv

import "math"

// IntToInt32 converts an int to int32.
// Panics if n is outside [math.MinInt32, math.MaxInt32].
//
//go:inline
func IntToInt32(n int) int32 {
	if n < math.MinInt32 || n > math.MaxInt32 {
		panic("integer overflow: int value out of int32 range")
	}
	return int32(n)
}

// PackUint16Pair packs hi and lo into the bit pattern (hi << 16) | lo and
// returns it reinterpreted as int32, the width of a node payload.
func PackUint16Pair(hi, lo uint16) int32 {
	return int32(uint32(hi)<<16 | uint32(lo))
}

// UnpackUint16Pair reverses PackUint16Pair.
func UnpackUint16Pair(v int32) (hi, lo uint16) {
	u := uint32(v)
	return uint16(u >> 16), uint16(u)
}
