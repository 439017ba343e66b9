package morton

import (
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		name    string
		want    Strategy
		wantErr bool
	}{
		{name: "lut", want: LUT},
		{name: "early-exit", want: EarlyExit},
		{name: "compat", want: Compat},
		{name: "", wantErr: true},
		{name: "LUT", wantErr: true},
		{name: "bmi2", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStrategy(tt.name)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownStrategy)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.name, got.String())
		})
	}
}

func TestNewCodec(t *testing.T) {
	_, err := NewCodec(Strategy(42))
	require.ErrorIs(t, err, ErrUnknownStrategy)
	assert.Equal(t, "Strategy(42)", Strategy(42).String())

	var zero Codec
	assert.Equal(t, LUT, zero.Strategy())

	codec, err := NewCodec(EarlyExit)
	require.NoError(t, err)
	assert.Equal(t, EarlyExit, codec.Strategy())
}

func TestCodecRoundTrip(t *testing.T) {
	for _, strategy := range []Strategy{LUT, EarlyExit} {
		codec, err := NewCodec(strategy)
		require.NoError(t, err)
		t.Run(strategy.String(), func(t *testing.T) {
			f := func(c Coord) bool {
				code := codec.Encode(c)
				if codec.Decode(code) != c {
					return false
				}
				for a := AxisX; a <= AxisZ; a++ {
					v, err := codec.DecodeAxis(code, a)
					if err != nil || v != c[a] {
						return false
					}
				}
				return true
			}
			require.NoError(t, quick.Check(f, quickConfig()))
		})
	}
}

func TestCodecCompat(t *testing.T) {
	codec, err := NewCodec(Compat)
	require.NoError(t, err)
	assert.Equal(t, Coord{0, 0, 0}, codec.Decode(Encode(1<<15, 0, 0)))
	x, err := codec.DecodeAxis(Encode(1<<15, 0, 0), AxisX)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), x)
	assert.Equal(t, Coord{100, 200, 300}, codec.Decode(Encode(100, 200, 300)))
}

func TestParseAxis(t *testing.T) {
	for _, a := range []Axis{AxisX, AxisY, AxisZ} {
		got, err := ParseAxis(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}
	_, err := ParseAxis("w")
	assert.ErrorIs(t, err, ErrUnknownAxis)
	assert.Equal(t, "Axis(7)", Axis(7).String())
}

func TestDecodeAxisUnknownAxis(t *testing.T) {
	code := Encode(1, 2, 4)
	for _, strategy := range []Strategy{LUT, EarlyExit, Compat} {
		codec, err := NewCodec(strategy)
		require.NoError(t, err)
		for _, axis := range []Axis{-1, 3, 7} {
			assert.False(t, axis.Valid())
			_, err := codec.DecodeAxis(code, axis)
			assert.ErrorIsf(t, err, ErrUnknownAxis, "%v with %v", axis, strategy)
		}
	}
}
