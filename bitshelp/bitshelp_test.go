package bitshelp

import (
	"fmt"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/constraints"
)

func spread3Obvious(v uint32) uint64 {
	var r uint64
	for i := uint(0); i < AxisBits; i++ {
		r |= uint64(bit(v, i)) << (3 * i)
	}
	return r
}

func TestSpread3(t *testing.T) {
	tests := []struct {
		v    uint32
		want uint64
	}{
		{v: 0b0, want: 0b0},
		{v: 0b1, want: 0b1},
		{v: 0b10, want: 0b1000},
		{v: 0b11, want: 0b1001},
		{v: 0b11111111, want: 0b001001001001001001001001},
		{v: 0x1FFFFF, want: 0x1249249249249249},
		{v: 0x200000, want: 0b0},
		{v: 0xFFFFFFFF, want: 0x1249249249249249},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf(`Spread3(%b)`, tt.v), func(t *testing.T) {
			got := Spread3(tt.v)
			require.Equalf(t, tt.want, got, `%032b should spread into: %064b, got: %064b`, tt.v, tt.want, got)
		})
	}
}

func TestCompact3(t *testing.T) {
	tests := []struct {
		v    uint64
		want uint32
	}{
		{v: 0b0, want: 0b0},
		{v: 0b111, want: 0b1},
		{v: 0b1000, want: 0b10},
		{v: 0b110110, want: 0b0},
		{v: 0x7FFFFFFFFFFFFFFF, want: 0x1FFFFF},
		{v: 0x8000000000000000, want: 0b0},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf(`Compact3(%b)`, tt.v), func(t *testing.T) {
			got := Compact3(tt.v)
			require.Equalf(t, tt.want, got, `%064b should compact into: %021b, got: %021b`, tt.v, tt.want, got)
		})
	}
}

func TestSpread3MatchesObvious(t *testing.T) {
	f := func(v uint32) bool {
		return Spread3(v) == spread3Obvious(v)
	}
	require.NoError(t, quick.Check(f, &quick.Config{MaxCount: 10000}))
}

func TestCompact3InvertsSpread3(t *testing.T) {
	f := func(v uint32) bool {
		return Compact3(Spread3(v)) == v&0x1FFFFF
	}
	require.NoError(t, quick.Check(f, &quick.Config{MaxCount: 10000}))
}

func TestHighestSetBit(t *testing.T) {
	_, ok := HighestSetBit(0)
	assert.False(t, ok)
	for i := 0; i < 64; i++ {
		pos, ok := HighestSetBit(1 << i)
		assert.True(t, ok)
		assert.Equal(t, i, pos)
		pos, _ = HighestSetBit(1<<i | 1)
		assert.Equal(t, i, pos)
	}
}

func bit[T constraints.Unsigned](v T, i uint) T {
	return (v >> i) & 1
}

func TestFitsBits(t *testing.T) {
	assert.True(t, FitsBits(uint32(0x1FFFFF), AxisBits))
	assert.False(t, FitsBits(uint32(0x200000), AxisBits))
	assert.True(t, FitsBits(uint64(0), 0))
	assert.False(t, FitsBits(uint8(1), 0))
	assert.True(t, FitsBits(uint64(0xFFFFFFFFFFFFFFFF), 64))
}
