package morton

import (
	"fmt"
	"math/rand"
	"reflect"
	"testing"
	"testing/quick"

	"github.com/pdok/morton3d/bitshelp"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/constraints"
)

// newInDomainCoordGenerator generates coords with every axis < 1<<AxisBits.
// Half of the axes are limited to a random bit length so small values are covered too.
func newInDomainCoordGenerator() func([]reflect.Value, *rand.Rand) {
	return func(values []reflect.Value, rand *rand.Rand) {
		var c Coord
		for a := range c {
			v := rand.Uint32() & MaxCoord
			if rand.Intn(2) == 0 {
				v &= 1<<uint(rand.Intn(AxisBits+1)) - 1
			}
			c[a] = v
		}
		for i := range values {
			values[i] = reflect.ValueOf(c)
		}
	}
}

func quickConfig() *quick.Config {
	return &quick.Config{
		MaxCount: 20000,
		Values:   newInDomainCoordGenerator(),
	}
}

// bit returns bit i of v (0 or 1)
func bit[T constraints.Unsigned](v T, i uint) T {
	return (v >> i) & 1
}

func encodeObvious(x, y, z uint32) Code {
	var code Code
	for i := uint(0); i < AxisBits; i++ {
		code |= Code(bit(x, i)) << (3 * i)
		code |= Code(bit(y, i)) << (3*i + 1)
		code |= Code(bit(z, i)) << (3*i + 2)
	}
	return code
}

func TestEncode(t *testing.T) {
	tests := []struct {
		x, y, z uint32
		code    Code
	}{
		{x: 0, y: 0, z: 0, code: 0},
		{x: 1, y: 2, z: 4, code: 0b100010001},
		{x: 1, y: 1, z: 1, code: 0b111},
		{x: 0b1, y: 0, z: 0, code: 0b001},
		{x: 0, y: 0b1, z: 0, code: 0b010},
		{x: 0, y: 0, z: 0b1, code: 0b100},
		{x: 0b10, y: 0, z: 0, code: 0b001000},
		{x: 0xFF, y: 0, z: 0, code: 0b001001001001001001001001},
		{x: 0x100, y: 0, z: 0, code: 1 << 24},
		{x: 1 << 15, y: 0, z: 0, code: 1 << 45},
		{x: 1 << 16, y: 0, z: 0, code: 1 << 48},
		{x: 1 << 20, y: 0, z: 0, code: 1 << 60},
		{x: 0, y: 1 << 20, z: 0, code: 1 << 61},
		{x: 0, y: 0, z: 1 << 20, code: 1 << 62},
		{x: MaxCoord, y: 0, z: 0, code: 0x1249249249249249},
		{x: 0, y: MaxCoord, z: 0, code: 0x2492492492492492},
		{x: 0, y: 0, z: MaxCoord, code: 0x4924924924924924},
		{x: MaxCoord, y: MaxCoord, z: MaxCoord, code: 0x7FFFFFFFFFFFFFFF},
		// bits above AxisBits are dropped
		{x: 1 << 21, y: 0, z: 0, code: 0},
		{x: 0, y: 1 << 23, z: 0, code: 0},
		{x: 0, y: 0, z: 1 << 31, code: 0},
		{x: 0xFFFFFFFF, y: 0xFFFFFFFF, z: 0xFFFFFFFF, code: 0x7FFFFFFFFFFFFFFF},
	}
	for _, tt := range tests {
		name := fmt.Sprintf(`Encode(%b, %b, %b)`, tt.x, tt.y, tt.z)
		t.Run(name, func(t *testing.T) {
			got := Encode(tt.x, tt.y, tt.z)
			require.Equalf(t, tt.code, got, `%032b, %032b and %032b should interleave into: %064b, got: %064b`, tt.x, tt.y, tt.z, tt.code, got)
		})
	}
}

func TestEncodeOK(t *testing.T) {
	code, ok := EncodeOK(MaxCoord, MaxCoord, MaxCoord)
	assert.True(t, ok)
	assert.Equal(t, MaxCode, code)

	code, ok = EncodeOK(MaxCoord+1, 0, 0)
	assert.False(t, ok)
	assert.Equal(t, Encode(0, 0, 0), code)

	_, ok = EncodeOK(0, 0, MaxCoord+1)
	assert.False(t, ok)

	f := func(x, y, z uint32) bool {
		_, ok := EncodeOK(x, y, z)
		return ok == (x <= MaxCoord && y <= MaxCoord && z <= MaxCoord) && ok == Coord{x, y, z}.InDomain()
	}
	require.NoError(t, quick.Check(f, nil))
}

func TestDecode(t *testing.T) {
	tests := []struct {
		code    Code
		x, y, z uint32
	}{
		{code: 0, x: 0, y: 0, z: 0},
		{code: 7, x: 1, y: 1, z: 1},
		{code: 0b100010001, x: 1, y: 2, z: 4},
		{code: 0b001, x: 1},
		{code: 0b010, y: 1},
		{code: 0b100, z: 1},
		{code: 1 << 45, x: 1 << 15},
		{code: 1 << 46, y: 1 << 15},
		{code: 1 << 53, z: 1 << 17},
		{code: 1 << 54, x: 1 << 18},
		{code: 1 << 62, z: 1 << 20},
		{code: 0x1249249249249249, x: MaxCoord},
		{code: 0x7FFFFFFFFFFFFFFF, x: MaxCoord, y: MaxCoord, z: MaxCoord},
		// bit 63 belongs to no axis
		{code: 1 << 63},
		{code: 0xFFFFFFFFFFFFFFFF, x: MaxCoord, y: MaxCoord, z: MaxCoord},
	}
	for _, tt := range tests {
		name := fmt.Sprintf(`Decode(%b)`, tt.code)
		t.Run(name, func(t *testing.T) {
			want := [3]uint32{tt.x, tt.y, tt.z}
			gotX, gotY, gotZ := Decode(tt.code)
			require.Equalf(t, want, [3]uint32{gotX, gotY, gotZ}, `%064b should deinterleave into: %v, got: [%d %d %d]`, tt.code, want, gotX, gotY, gotZ)

			gotX, gotY, gotZ = DecodeEarlyExit(tt.code)
			require.Equal(t, want, [3]uint32{gotX, gotY, gotZ})

			require.Equal(t, want, [3]uint32{DecodeX(tt.code), DecodeY(tt.code), DecodeZ(tt.code)})
		})
	}
}

func TestLowestBitOfEachAxis(t *testing.T) {
	require.Equal(t, Code(7), Encode(1, 1, 1))
	x, y, z := Decode(7)
	assert.Equal(t, [3]uint32{1, 1, 1}, [3]uint32{x, y, z})
	x, y, z = Decode(Encode(1, 2, 4))
	assert.Equal(t, [3]uint32{1, 2, 4}, [3]uint32{x, y, z})
}

func TestRoundTrip(t *testing.T) {
	f := func(c Coord) bool {
		x, y, z := Decode(Encode(c.X(), c.Y(), c.Z()))
		return Coord{x, y, z} == c
	}
	require.NoError(t, quick.Check(f, quickConfig()))
}

func TestRoundTripEveryBit(t *testing.T) {
	for i := uint(0); i < AxisBits; i++ {
		for a := 0; a < 3; a++ {
			var c Coord
			c[a] = 1 << i
			require.Equalf(t, c, DecodeCoord(EncodeCoord(c)), `bit %d of axis %d`, i, a)
			c = Coord{MaxCoord, MaxCoord, MaxCoord}
			c[a] &^= 1 << i
			require.Equalf(t, c, DecodeCoord(EncodeCoord(c)), `all but bit %d of axis %d`, i, a)
		}
	}
}

func TestSingleAxisDecodersMatchDecode(t *testing.T) {
	f := func(c Coord) bool {
		code := EncodeCoord(c)
		x, y, z := Decode(code)
		return DecodeX(code) == c.X() && DecodeY(code) == c.Y() && DecodeZ(code) == c.Z() &&
			DecodeX(code) == x && DecodeY(code) == y && DecodeZ(code) == z
	}
	require.NoError(t, quick.Check(f, quickConfig()))
}

func TestEncodeInterleavesBits(t *testing.T) {
	f := func(c Coord) bool {
		code := EncodeCoord(c)
		for i := uint(0); i < AxisBits; i++ {
			if bit(code, 3*i) != Code(bit(c.X(), i)) ||
				bit(code, 3*i+1) != Code(bit(c.Y(), i)) ||
				bit(code, 3*i+2) != Code(bit(c.Z(), i)) {
				return false
			}
		}
		return code == encodeObvious(c.X(), c.Y(), c.Z())
	}
	require.NoError(t, quick.Check(f, quickConfig()))
}

func TestEncodeTruncates(t *testing.T) {
	assert.Equal(t, Encode(0, 0, 0), Encode(1<<21, 0, 0))
	f := func(x, y, z uint32) bool {
		return Encode(x, y, z) == Encode(x&MaxCoord, y&MaxCoord, z&MaxCoord) &&
			Encode(x, y, z) == encodeObvious(x, y, z)
	}
	require.NoError(t, quick.Check(f, &quick.Config{MaxCount: 20000}))
}

func TestDecodeEarlyExitMatchesDecode(t *testing.T) {
	f := func(code uint64, shift uint8) bool {
		// shorter codes exercise every exit point
		code >>= shift % 64
		x1, y1, z1 := Decode(code)
		x2, y2, z2 := DecodeEarlyExit(code)
		return x1 == x2 && y1 == y2 && z1 == z2
	}
	require.NoError(t, quick.Check(f, &quick.Config{MaxCount: 50000}))

	for i := 0; i < 64; i++ {
		for _, code := range []Code{1 << i, 1<<i - 1, 1<<i | 1} {
			x1, y1, z1 := Decode(code)
			x2, y2, z2 := DecodeEarlyExit(code)
			require.Equalf(t, [3]uint32{x1, y1, z1}, [3]uint32{x2, y2, z2}, `%064b`, code)
		}
	}
}

func TestDecodeCompat(t *testing.T) {
	// identical while bits 45-54 are clear
	f := func(c Coord) bool {
		c = Coord{c.X() & 0x7FFF, c.Y() & 0x7FFF, c.Z() & 0x7FFF}
		x, y, z := DecodeCompat(EncodeCoord(c))
		return Coord{x, y, z} == c
	}
	require.NoError(t, quick.Check(f, quickConfig()))

	// bit 45 (x bit 15) is never read
	x, y, z := DecodeCompat(Encode(1<<15, 0, 0))
	assert.Equal(t, [3]uint32{0, 0, 0}, [3]uint32{x, y, z})
	// bit 46 (y bit 15) is read as if it were an x bit
	x, y, z = DecodeCompat(Encode(0, 1<<15, 0))
	assert.Equal(t, [3]uint32{1 << 15, 0, 0}, [3]uint32{x, y, z})
	// the top window is aligned again
	x, y, z = DecodeCompat(Encode(1<<19, 1<<19, 1<<19))
	assert.Equal(t, [3]uint32{1 << 19, 1 << 19, 1 << 19}, [3]uint32{x, y, z})
}

func TestTablesMatchBitshelp(t *testing.T) {
	for v := range encodeX256 {
		require.Equal(t, bitshelp.Spread3(uint32(v)), encodeX256[v])
		require.Equal(t, bitshelp.Spread3(uint32(v))<<1, encodeY256[v])
		require.Equal(t, bitshelp.Spread3(uint32(v))<<2, encodeZ256[v])
	}
	for v := range decodeX512 {
		require.Equal(t, bitshelp.Compact3(uint64(v)), decodeX512[v])
		require.Equal(t, bitshelp.Compact3(uint64(v)>>1), decodeY512[v])
		require.Equal(t, bitshelp.Compact3(uint64(v)>>2), decodeZ512[v])
	}
}

func TestCoord(t *testing.T) {
	c := Coord{1, 2, 4}
	assert.Equal(t, uint32(1), c.X())
	assert.Equal(t, uint32(2), c.Y())
	assert.Equal(t, uint32(4), c.Z())
	assert.True(t, c.InDomain())
	assert.False(t, Coord{0, MaxCoord + 1, 0}.InDomain())
	assert.Equal(t, "(1, 2, 4)", c.String())
	assert.Equal(t, Code(0b100010001), EncodeCoord(c))
	assert.Equal(t, c, DecodeCoord(0b100010001))
}

var sink uint32

func BenchmarkEncode(b *testing.B) {
	var code Code
	for i := 0; i < b.N; i++ {
		v := uint32(i)
		code |= Encode(v, v>>1, v>>2)
	}
	sink = uint32(code)
}

func BenchmarkDecode(b *testing.B) {
	for i := 0; i < b.N; i++ {
		x, y, z := Decode(Code(i) * 0x9E3779B97F4A7C15)
		sink |= x ^ y ^ z
	}
}

func BenchmarkDecodeEarlyExit(b *testing.B) {
	for i := 0; i < b.N; i++ {
		x, y, z := DecodeEarlyExit(Code(i))
		sink |= x ^ y ^ z
	}
}

func BenchmarkDecodeX(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sink |= DecodeX(Code(i) * 0x9E3779B97F4A7C15)
	}
}
