package morton

import (
	"errors"
	"fmt"
)

// Strategy selects the decode implementation of a Codec.
// Encoding is the same for every strategy.
type Strategy int

const (
	// LUT decodes all seven windows unconditionally. This is what Decode does.
	LUT Strategy = iota
	// EarlyExit skips windows above the highest set bit (DecodeEarlyExit).
	EarlyExit
	// Compat uses the historical window offsets (DecodeCompat).
	Compat
)

var ErrUnknownStrategy = errors.New("unknown strategy")

var strategyNames = map[Strategy]string{
	LUT:       "lut",
	EarlyExit: "early-exit",
	Compat:    "compat",
}

func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy is the inverse of Strategy.String
func ParseStrategy(name string) (Strategy, error) {
	for s, n := range strategyNames {
		if n == name {
			return s, nil
		}
	}
	return LUT, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Axis identifies one of the three coordinates.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

var ErrUnknownAxis = errors.New("unknown axis")

// Valid reports whether a is AxisX, AxisY or AxisZ
func (a Axis) Valid() bool {
	return a >= AxisX && a <= AxisZ
}

// Codec encodes and decodes with a fixed Strategy.
// The zero value uses LUT.
type Codec struct {
	strategy Strategy
}

func NewCodec(strategy Strategy) (Codec, error) {
	if _, ok := strategyNames[strategy]; !ok {
		return Codec{}, fmt.Errorf("%w: %v", ErrUnknownStrategy, strategy)
	}
	return Codec{strategy: strategy}, nil
}

func (c Codec) Strategy() Strategy {
	return c.strategy
}

func (c Codec) Encode(coord Coord) Code {
	return EncodeCoord(coord)
}

func (c Codec) Decode(code Code) Coord {
	var x, y, z uint32
	switch c.strategy {
	case EarlyExit:
		x, y, z = DecodeEarlyExit(code)
	case Compat:
		x, y, z = DecodeCompat(code)
	default:
		x, y, z = Decode(code)
	}
	return Coord{x, y, z}
}

// DecodeAxis returns a single coordinate.
// With LUT the dedicated single-axis decoders are used, other strategies decode all three.
// An axis other than AxisX, AxisY or AxisZ gives ErrUnknownAxis.
func (c Codec) DecodeAxis(code Code, axis Axis) (uint32, error) {
	if !axis.Valid() {
		return 0, fmt.Errorf("%w: %v", ErrUnknownAxis, axis)
	}
	if c.strategy == LUT {
		switch axis {
		case AxisX:
			return DecodeX(code), nil
		case AxisY:
			return DecodeY(code), nil
		case AxisZ:
			return DecodeZ(code), nil
		}
	}
	return c.Decode(code)[axis], nil
}

// ParseAxis turns "x", "y" or "z" into an Axis
func ParseAxis(name string) (Axis, error) {
	switch name {
	case "x":
		return AxisX, nil
	case "y":
		return AxisY, nil
	case "z":
		return AxisZ, nil
	}
	return AxisX, fmt.Errorf("%w %q, expected x, y or z", ErrUnknownAxis, name)
}

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}
