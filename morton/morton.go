// Package morton converts 3D integer coordinates to 64-bit Morton (Z-order) codes and back.
//
// Bit 3*i+a of a code is bit i of axis a (x=0, y=1, z=2), for i in [0,20].
// Only the low 21 bits of every coordinate fit into a code. Higher bits are
// silently dropped by Encode: Encode(1<<21, 0, 0) == Encode(0, 0, 0).
// Use EncodeOK to find out whether that happened.
//
// All functions are pure and safe for concurrent use. The lookup tables they
// read are package-level constants (see tables.go).
package morton

//go:generate go run .. tables --output tables.go --package morton

import (
	"github.com/pdok/morton3d/bitshelp"
)

// Code is a 3D Morton code. Bit 63 is never set by Encode.
type Code = uint64

const (
	// AxisBits is the number of meaningful bits per coordinate.
	AxisBits = bitshelp.AxisBits
	// MaxCoord is the largest coordinate that survives a round trip.
	MaxCoord uint32 = 1<<AxisBits - 1
	// MaxCode is Encode(MaxCoord, MaxCoord, MaxCoord).
	MaxCode Code = 1<<(3*AxisBits) - 1
)

const (
	chunkMask8 = 0xFF
	// the most significant encode chunk only holds bits 16-20
	topChunkMask8 = 0x1F
	chunkMask9    = 0x1FF
)

// Encode interleaves x, y and z into a Morton code.
func Encode(x, y, z uint32) Code {
	code := encodeX256[(x>>16)&topChunkMask8] |
		encodeY256[(y>>16)&topChunkMask8] |
		encodeZ256[(z>>16)&topChunkMask8]
	code = code<<24 |
		encodeX256[(x>>8)&chunkMask8] |
		encodeY256[(y>>8)&chunkMask8] |
		encodeZ256[(z>>8)&chunkMask8]
	code = code<<24 |
		encodeX256[x&chunkMask8] |
		encodeY256[y&chunkMask8] |
		encodeZ256[z&chunkMask8]
	return code
}

// EncodeOK is Encode, but also reports whether x, y and z all fitted in AxisBits.
// The returned code is the same (truncated) code either way.
func EncodeOK(x, y, z uint32) (Code, bool) {
	return Encode(x, y, z), Coord{x, y, z}.InDomain()
}

// Decode de-interleaves a Morton code into x, y and z.
// For every code made by Encode from in-domain coordinates it returns exactly those coordinates.
func Decode(code Code) (x, y, z uint32) {
	return DecodeX(code), DecodeY(code), DecodeZ(code)
}

// DecodeX returns only the x coordinate of a code.
func DecodeX(code Code) uint32 {
	return decodeX512[code&chunkMask9] |
		decodeX512[(code>>9)&chunkMask9]<<3 |
		decodeX512[(code>>18)&chunkMask9]<<6 |
		decodeX512[(code>>27)&chunkMask9]<<9 |
		decodeX512[(code>>36)&chunkMask9]<<12 |
		decodeX512[(code>>45)&chunkMask9]<<15 |
		decodeX512[(code>>54)&chunkMask9]<<18
}

// DecodeY returns only the y coordinate of a code.
func DecodeY(code Code) uint32 {
	return decodeY512[code&chunkMask9] |
		decodeY512[(code>>9)&chunkMask9]<<3 |
		decodeY512[(code>>18)&chunkMask9]<<6 |
		decodeY512[(code>>27)&chunkMask9]<<9 |
		decodeY512[(code>>36)&chunkMask9]<<12 |
		decodeY512[(code>>45)&chunkMask9]<<15 |
		decodeY512[(code>>54)&chunkMask9]<<18
}

// DecodeZ returns only the z coordinate of a code.
func DecodeZ(code Code) uint32 {
	return decodeZ512[code&chunkMask9] |
		decodeZ512[(code>>9)&chunkMask9]<<3 |
		decodeZ512[(code>>18)&chunkMask9]<<6 |
		decodeZ512[(code>>27)&chunkMask9]<<9 |
		decodeZ512[(code>>36)&chunkMask9]<<12 |
		decodeZ512[(code>>45)&chunkMask9]<<15 |
		decodeZ512[(code>>54)&chunkMask9]<<18
}
