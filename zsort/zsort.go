// Package zsort orders 3D coordinates along the Z-order curve,
// so that points close in space tend to end up close in the result.
package zsort

import (
	"github.com/pdok/morton3d/morton"

	"github.com/umpc/go-sortedmap"
)

type sortKey struct {
	code morton.Code
	// position in the input, breaks ties between equal codes
	index int
}

func less(i, j interface{}) bool {
	a, b := i.(sortKey), j.(sortKey)
	if a.code != b.code {
		return a.code < b.code
	}
	return a.index < b.index
}

// Sort returns the coordinates ordered by their Morton code, together with those codes.
// Coordinates with equal codes (only possible beyond morton.AxisBits) keep their input order.
func Sort(coords []morton.Coord, codec morton.Codec) ([]morton.Coord, []morton.Code) {
	sorted := sortedmap.New(len(coords), less)
	for i, c := range coords {
		sorted.Insert(i, sortKey{code: codec.Encode(c), index: i})
	}
	result := make([]morton.Coord, 0, len(coords))
	codes := make([]morton.Code, 0, len(coords))
	for _, key := range sorted.Keys() {
		val, _ := sorted.Get(key)
		result = append(result, coords[key.(int)])
		codes = append(codes, val.(sortKey).code)
	}
	return result, codes
}
