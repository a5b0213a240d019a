// Package packer provides pure, allocation-minimal functions for appending
// fixed-width numeric payloads to a byte buffer at a chosen endianness.
//
// Every function here writes only the payload bytes for its width; callers
// are responsible for writing the preceding marker byte. None of the
// functions allocate beyond growing the destination slice.
package packer

import (
	"math"

	"github.com/x448/float16"

	"github.com/ubjdata/codec/endian"
	"github.com/ubjdata/codec/marker"
)

// smallIntEntry pairs a marker with its single payload byte, precomputed so
// that encoding a value in [-128, 255] costs a slice index instead of a
// branch-and-shift.
type smallIntEntry struct {
	m marker.Marker
	b byte
}

var (
	// int8Table maps n+128 (n in [-128,127]) to its (marker, byte) pair.
	int8Table [256]smallIntEntry
	// uint8Table maps n (n in [0,255]) to its (marker, byte) pair.
	uint8Table [256]smallIntEntry
)

func init() {
	for n := -128; n <= 127; n++ {
		int8Table[n+128] = smallIntEntry{m: marker.Int8, b: byte(int8(n))}
	}

	for n := 0; n <= 255; n++ {
		uint8Table[n] = smallIntEntry{m: marker.Uint8, b: byte(n)}
	}
}

// Int8Entry returns the precomputed (marker, byte) pair for a signed 8-bit
// value. n must be in [-128, 127].
func Int8Entry(n int8) (marker.Marker, byte) {
	e := int8Table[int(n)+128]
	return e.m, e.b
}

// Uint8Entry returns the precomputed (marker, byte) pair for an unsigned
// 8-bit value.
func Uint8Entry(n uint8) (marker.Marker, byte) {
	e := uint8Table[n]
	return e.m, e.b
}

// AppendInt16 appends the two-byte little/big-endian payload for n.
func AppendInt16(dst []byte, engine endian.EndianEngine, n int16) []byte {
	return engine.AppendUint16(dst, uint16(n))
}

// AppendUint16 appends the two-byte little/big-endian payload for n.
func AppendUint16(dst []byte, engine endian.EndianEngine, n uint16) []byte {
	return engine.AppendUint16(dst, n)
}

// AppendInt32 appends the four-byte little/big-endian payload for n.
func AppendInt32(dst []byte, engine endian.EndianEngine, n int32) []byte {
	return engine.AppendUint32(dst, uint32(n))
}

// AppendUint32 appends the four-byte little/big-endian payload for n.
func AppendUint32(dst []byte, engine endian.EndianEngine, n uint32) []byte {
	return engine.AppendUint32(dst, n)
}

// AppendInt64 appends the eight-byte little/big-endian payload for n.
func AppendInt64(dst []byte, engine endian.EndianEngine, n int64) []byte {
	return engine.AppendUint64(dst, uint64(n))
}

// AppendUint64 appends the eight-byte little/big-endian payload for n.
func AppendUint64(dst []byte, engine endian.EndianEngine, n uint64) []byte {
	return engine.AppendUint64(dst, n)
}

// AppendFloat16 converts x to IEEE-754 binary16 and appends its two-byte
// little/big-endian payload. Values outside the float16 range saturate to
// ±Inf per the conversion library's rounding rules; callers are expected to
// have already confirmed x belongs in the float16 policy branch.
func AppendFloat16(dst []byte, engine endian.EndianEngine, x float32) []byte {
	bits := float16.Fromfloat32(x).Bits()
	return engine.AppendUint16(dst, bits)
}

// AppendFloat32 appends the four-byte little/big-endian IEEE-754 payload for x.
func AppendFloat32(dst []byte, engine endian.EndianEngine, x float32) []byte {
	return engine.AppendUint32(dst, math.Float32bits(x))
}

// AppendFloat64 appends the eight-byte little/big-endian IEEE-754 payload for x.
func AppendFloat64(dst []byte, engine endian.EndianEngine, x float64) []byte {
	return engine.AppendUint64(dst, math.Float64bits(x))
}
