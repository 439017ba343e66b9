package morton

import (
	"github.com/pdok/morton3d/bitshelp"
)

// chunkOffsets are the bit offsets of the seven 9-bit windows a code is decoded in.
// Window i yields bits 3i, 3i+1 and 3i+2 of every axis.
var chunkOffsets = [...]uint{0, 9, 18, 27, 36, 45, 54}

// compatChunkOffsets are the windows of the historical table decoder.
// The window at 46 is misaligned and bit 45 is never read, so axis bits 15-17 come out wrong
// unless bits 45-54 of the code are zero.
var compatChunkOffsets = [...]uint{0, 9, 18, 27, 36, 46, 54}

// DecodeEarlyExit returns the same coordinates as Decode, but stops reading
// windows once the remaining ones are known to be all zero bits.
// Small codes (points near the origin) are decoded with fewer lookups.
func DecodeEarlyExit(code Code) (x, y, z uint32) {
	highest, ok := bitshelp.HighestSetBit(code)
	if !ok {
		return 0, 0, 0
	}
	for i, offset := range chunkOffsets {
		if offset > uint(highest) {
			break
		}
		chunk := (code >> offset) & chunkMask9
		shift := 3 * uint(i)
		x |= decodeX512[chunk] << shift
		y |= decodeY512[chunk] << shift
		z |= decodeZ512[chunk] << shift
	}
	return x, y, z
}

// DecodeCompat decodes with the historical window offsets 0, 9, 18, 27, 36, 46, 54.
// Use it only to reproduce values decoded by older software: it agrees with Decode
// for every code whose bits 45-54 are zero (e.g. all coordinates < 1<<15)
// and disagrees for (some) others.
func DecodeCompat(code Code) (x, y, z uint32) {
	for i, offset := range compatChunkOffsets {
		chunk := (code >> offset) & chunkMask9
		shift := 3 * uint(i)
		x |= decodeX512[chunk] << shift
		y |= decodeY512[chunk] << shift
		z |= decodeZ512[chunk] << shift
	}
	return x, y, z
}
