package morton

import (
	"fmt"

	"github.com/pdok/morton3d/bitshelp"
)

// Coord describes a simple 3D grid coordinate
type Coord [3]uint32

// X is the x coordinate
func (c Coord) X() uint32 { return c[0] }

// Y is the y coordinate
func (c Coord) Y() uint32 { return c[1] }

// Z is the z coordinate
func (c Coord) Z() uint32 { return c[2] }

// InDomain reports whether all three coordinates survive a round trip through a Code
func (c Coord) InDomain() bool {
	return bitshelp.FitsBits(c[0], AxisBits) && bitshelp.FitsBits(c[1], AxisBits) && bitshelp.FitsBits(c[2], AxisBits)
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d, %d)", c[0], c[1], c[2])
}

func EncodeCoord(c Coord) Code {
	return Encode(c[0], c[1], c[2])
}

func DecodeCoord(code Code) Coord {
	x, y, z := Decode(code)
	return Coord{x, y, z}
}
