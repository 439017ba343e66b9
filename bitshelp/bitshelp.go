// Package bitshelp holds the bit-by-bit (table free) building blocks of 3D interleaving.
// The lookup tables in package morton are generated from these and tested against them.
package bitshelp

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// AxisBits is the number of bits per axis that fit three times into 64 bits.
const AxisBits = 21

var (
	masks = [...]uint64{
		0b0001001001001001001001001001001001001001001001001001001001001001,
		0b0001000011000011000011000011000011000011000011000011000011000011,
		0b0001000000001111000000001111000000001111000000001111000000001111,
		0b0000000000011111000000000000000011111111000000000000000011111111,
		0b0000000000011111000000000000000000000000000000001111111111111111,
		0b0000000000000000000000000000000000000000000111111111111111111111,
	}
	powersOfTwo = [...]uint{2, 4, 8, 16, 32}
)

// Spread3 moves bit i of the low 21 bits of v to bit 3*i. Bits 21-31 are dropped.
func Spread3(v uint32) uint64 {
	x := uint64(v) & masks[5]
	for i := 4; i >= 0; i-- {
		x = (x | (x << powersOfTwo[i])) & masks[i]
	}
	return x
}

// Compact3 is the inverse of Spread3: it gathers bits 0, 3, 6, ..., 60 of v into bits 0-20.
func Compact3(v uint64) uint32 {
	x := v & masks[0]
	for i := 0; i <= 4; i++ {
		x = (x | (x >> powersOfTwo[i])) & masks[i+1]
	}
	return uint32(x)
}

// HighestSetBit returns the position of the most significant 1 bit.
// ok is false for 0.
func HighestSetBit(v uint64) (pos int, ok bool) {
	if v == 0 {
		return 0, false
	}
	return bits.Len64(v) - 1, true
}

// FitsBits reports whether v can be represented in n bits
func FitsBits[T constraints.Unsigned](v T, n uint) bool {
	return uint64(v)>>n == 0
}
