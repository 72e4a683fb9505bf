package conv

import (
	"math"
	"testing"
)

func TestIntToInt32(t *testing.T) {
	tests := []struct {
		in   int
		want int32
	}{
		{0, 0},
		{-1, -1},
		{42, 42},
		{math.MaxInt32, math.MaxInt32},
		{math.MinInt32, math.MinInt32},
	}

	for _, tt := range tests {
		if got := IntToInt32(tt.in); got != tt.want {
			t.Errorf("IntToInt32(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestIntToInt32Overflow(t *testing.T) {
	if math.MaxInt == math.MaxInt32 {
		t.Skip("int is 32 bits wide")
	}
	defer func() {
		if recover() == nil {
			t.Error("expected panic for value above MaxInt32")
		}
	}()
	IntToInt32(math.MaxInt32 + 1)
}

func TestPackUint16Pair(t *testing.T) {
	tests := []struct {
		hi, lo uint16
	}{
		{0, 0},
		{0, 0xFFFF},
		{1, 0xFFFF},
		{0, 1},
		{0xFFFF, 0xFFFF},
		{0x8000, 0x0001},
	}

	for _, tt := range tests {
		v := PackUint16Pair(tt.hi, tt.lo)
		hi, lo := UnpackUint16Pair(v)
		if hi != tt.hi || lo != tt.lo {
			t.Errorf("pack(%#x, %#x) round-tripped to (%#x, %#x)", tt.hi, tt.lo, hi, lo)
		}
	}

	if got := PackUint16Pair(1, 0xFFFF); got != 0x1FFFF {
		t.Errorf("PackUint16Pair(1, 0xFFFF) = %#x, want 0x1ffff", got)
	}
}
