package encoder

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ubjdata/codec/marker"
	"github.com/ubjdata/codec/value"
)

func newTestEncoder(t *testing.T, opts ...Option) *Encoder {
	t.Helper()

	cfg, err := NewConfig(opts...)
	require.NoError(t, err)

	return New(cfg)
}

func TestEncodeInt_UnsignedLadder(t *testing.T) {
	cases := []struct {
		n    int64
		want []byte
	}{
		{0, []byte{byte(marker.Uint8), 0x00}},
		{123, []byte{byte(marker.Uint8), 0x7b}},
		{127, []byte{byte(marker.Uint8), 0x7f}},
		{128, []byte{byte(marker.Uint8), 0x80}},
		{255, []byte{byte(marker.Uint8), 0xff}},
		{256, []byte{byte(marker.Uint16), 0x00, 0x01}},
		{65535, []byte{byte(marker.Uint16), 0xff, 0xff}},
		{65536, []byte{byte(marker.Uint32), 0x00, 0x00, 0x01, 0x00}},
	}

	for _, tc := range cases {
		e := newTestEncoder(t)
		require.NoError(t, e.encodeInt(big.NewInt(tc.n)))
		require.Equal(t, tc.want, e.Bytes(), "n=%d", tc.n)
	}
}

func TestEncodeInt_SignedLadder(t *testing.T) {
	cases := []struct {
		n    int64
		want []byte
	}{
		{-1, []byte{byte(marker.Int8), 0xff}},
		{-128, []byte{byte(marker.Int8), 0x80}},
		{-129, []byte{byte(marker.Int16), 0x7f, 0xff}},
		{math.MinInt16, []byte{byte(marker.Int16), 0x00, 0x80}},
		{math.MinInt16 - 1, []byte{byte(marker.Int32), 0xff, 0x7f, 0xff, 0xff}},
		{math.MinInt32, []byte{byte(marker.Int32), 0x00, 0x00, 0x00, 0x80}},
	}

	for _, tc := range cases {
		e := newTestEncoder(t)
		require.NoError(t, e.encodeInt(big.NewInt(tc.n)))
		require.Equal(t, tc.want, e.Bytes(), "n=%d", tc.n)
	}
}

func TestEncodeInt_BigEndian(t *testing.T) {
	e := newTestEncoder(t, WithBigEndian())
	require.NoError(t, e.encodeInt(big.NewInt(256)))
	require.Equal(t, []byte{byte(marker.Uint16), 0x01, 0x00}, e.Bytes())
}

func TestEncodeInt_OutOfRangeFallsBackToDecimal(t *testing.T) {
	huge := new(big.Int).Lsh(big.NewInt(1), 65) // 2^65, exceeds uint64

	e := newTestEncoder(t)
	require.NoError(t, e.encodeInt(huge))

	require.Equal(t, byte(marker.HighPrecision), e.Bytes()[0])

	neg := new(big.Int).Neg(huge)
	e2 := newTestEncoder(t)
	require.NoError(t, e2.encodeInt(neg))
	require.Equal(t, byte(marker.HighPrecision), e2.Bytes()[0])
}

func TestEncodeFloat_PermissiveFloat32Range(t *testing.T) {
	e := newTestEncoder(t)
	require.NoError(t, e.encodeFloat(1.5))
	require.Equal(t, byte(marker.Float32), e.Bytes()[0])
	require.Len(t, e.Bytes(), 5)
}

func TestEncodeFloat_PermissiveZeroUsesFloat32(t *testing.T) {
	e := newTestEncoder(t)
	require.NoError(t, e.encodeFloat(0))
	require.Equal(t, byte(marker.Float32), e.Bytes()[0])
}

func TestEncodeFloat_PermissiveFloat64Range(t *testing.T) {
	e := newTestEncoder(t)
	require.NoError(t, e.encodeFloat(1e100))
	require.Equal(t, byte(marker.Float64), e.Bytes()[0])
	require.Len(t, e.Bytes(), 9)
}

func TestEncodeFloat_PermissiveInfAndNaNUseFloat32(t *testing.T) {
	e := newTestEncoder(t)
	require.NoError(t, e.encodeFloat(math.Inf(1)))
	require.Equal(t, byte(marker.Float32), e.Bytes()[0])

	e2 := newTestEncoder(t)
	require.NoError(t, e2.encodeFloat(math.NaN()))
	require.Equal(t, byte(marker.Float32), e2.Bytes()[0])
}

func TestEncodeFloat_PermissiveSubnormalFallsBackToDecimal(t *testing.T) {
	e := newTestEncoder(t)
	require.NoError(t, e.encodeFloat(1e-320))
	require.Equal(t, byte(marker.HighPrecision), e.Bytes()[0])
}

func TestEncodeFloat_StrictPrefersFloat64(t *testing.T) {
	e := newTestEncoder(t, WithNoFloat32())
	require.NoError(t, e.encodeFloat(1.5))
	require.Equal(t, byte(marker.Float64), e.Bytes()[0])
}

func TestEncodeFloat_StrictZeroUsesFloat32(t *testing.T) {
	e := newTestEncoder(t, WithNoFloat32())
	require.NoError(t, e.encodeFloat(0))
	require.Equal(t, byte(marker.Float32), e.Bytes()[0])
}

func TestEncodeFloat_StrictInfAndNaNUseFloat64(t *testing.T) {
	e := newTestEncoder(t, WithNoFloat32())
	require.NoError(t, e.encodeFloat(math.Inf(-1)))
	require.Equal(t, byte(marker.Float64), e.Bytes()[0])
}

func TestEncodeString_CharShortcut(t *testing.T) {
	e := newTestEncoder(t)
	require.NoError(t, e.Encode(value.String("a")))
	require.Equal(t, []byte{byte(marker.Char), 'a'}, e.Bytes())
}

func TestEncodeString_MultiByteUsesStringMarker(t *testing.T) {
	e := newTestEncoder(t)
	require.NoError(t, e.Encode(value.String("hi")))

	want := []byte{byte(marker.String), byte(marker.Uint8), 0x02, 'h', 'i'}
	require.Equal(t, want, e.Bytes())
}

func TestEncodeBytes_DefaultByteMarker(t *testing.T) {
	e := newTestEncoder(t)
	require.NoError(t, e.Encode(value.Bytes{1, 2, 3}))

	want := []byte{
		byte(marker.ArrayStart), byte(marker.TypeQualifier), byte(marker.Byte),
		byte(marker.CountQualifier), byte(marker.Uint8), 0x03,
		1, 2, 3,
	}
	require.Equal(t, want, e.Bytes())
}

func TestEncodeBytes_Uint8BytesOption(t *testing.T) {
	e := newTestEncoder(t, WithUint8Bytes())
	require.NoError(t, e.Encode(value.Bytes{9}))
	require.Equal(t, byte(marker.Uint8), e.Bytes()[2])
}

func TestEncodeDecimal_FiniteUsesHighPrecisionMarker(t *testing.T) {
	e := newTestEncoder(t)
	require.NoError(t, e.Encode(value.DecimalFromString("1.8e309")))
	require.Equal(t, byte(marker.HighPrecision), e.Bytes()[0])
}

func TestEncodeDecimal_NonFiniteDegradesToNull(t *testing.T) {
	e := newTestEncoder(t)
	require.NoError(t, e.Encode(value.DecimalNaN()))
	require.Equal(t, []byte{byte(marker.Null)}, e.Bytes())
}

func TestEncodeNullAndBool(t *testing.T) {
	e := newTestEncoder(t)
	require.NoError(t, e.Encode(value.Null{}))
	require.Equal(t, []byte{byte(marker.Null)}, e.Bytes())

	e2 := newTestEncoder(t)
	require.NoError(t, e2.Encode(value.Bool(true)))
	require.Equal(t, []byte{byte(marker.True)}, e2.Bytes())

	e3 := newTestEncoder(t)
	require.NoError(t, e3.Encode(value.Bool(false)))
	require.Equal(t, []byte{byte(marker.False)}, e3.Bytes())
}
