package encoder

import (
	"math"
	"math/big"
	"strconv"

	"github.com/ubjdata/codec/marker"
	"github.com/ubjdata/codec/packer"
	"github.com/ubjdata/codec/value"
)

// formatFloatDecimal renders x as its shortest exact decimal text, used
// when a float value falls outside both the float32 and float64 normal
// ranges and must fall back to a high-precision decimal.
func formatFloatDecimal(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

// Float32/float64 normal-range boundaries, reproduced exactly so wire output
// matches the canonical width table regardless of host float rounding.
const (
	float32MinNormal = 1.18e-38
	float32MaxNormal = 3.4e38
	float64MinNormal = 2.23e-308
	float64MaxNormal = 1.8e308
)

func (e *Encoder) encodeNull() {
	e.writeMarker(marker.Null)
}

func (e *Encoder) encodeBool(b bool) {
	if b {
		e.writeMarker(marker.True)
		return
	}

	e.writeMarker(marker.False)
}

// encodeInt chooses the narrowest marker in {i8,u8,i16,u16,i32,u32,i64,u64}
// that losslessly holds n, falling back to a high-precision decimal when n
// lies outside the 64-bit range in either direction.
func (e *Encoder) encodeInt(n *big.Int) error {
	if n.Sign() >= 0 && n.IsUint64() {
		e.encodeUint64(n.Uint64())
		return nil
	}

	if n.Sign() < 0 && n.IsInt64() {
		e.encodeInt64(n.Int64())
		return nil
	}

	return e.encodeDecimal(value.DecimalFromBigInt(n))
}

// encodeUint64 narrows a nonnegative integer to the smallest unsigned
// width that holds it.
func (e *Encoder) encodeUint64(u uint64) {
	switch {
	case u <= math.MaxUint8:
		m, b := packer.Uint8Entry(uint8(u))
		e.writeMarker(m)
		e.writeByte(b)
	case u <= math.MaxUint16:
		e.writeMarker(marker.Uint16)
		e.buf.B = packer.AppendUint16(e.buf.B, e.cfg.Engine, uint16(u))
	case u <= math.MaxUint32:
		e.writeMarker(marker.Uint32)
		e.buf.B = packer.AppendUint32(e.buf.B, e.cfg.Engine, uint32(u))
	default:
		e.writeMarker(marker.Uint64)
		e.buf.B = packer.AppendUint64(e.buf.B, e.cfg.Engine, u)
	}
}

func (e *Encoder) encodeInt64(n int64) {
	switch {
	case n >= math.MinInt8 && n <= math.MaxInt8:
		m, b := packer.Int8Entry(int8(n))
		e.writeMarker(m)
		e.writeByte(b)
	case n >= math.MinInt16 && n <= math.MaxInt16:
		e.writeMarker(marker.Int16)
		e.buf.B = packer.AppendInt16(e.buf.B, e.cfg.Engine, int16(n))
	case n >= math.MinInt32 && n <= math.MaxInt32:
		e.writeMarker(marker.Int32)
		e.buf.B = packer.AppendInt32(e.buf.B, e.cfg.Engine, int32(n))
	default:
		e.writeMarker(marker.Int64)
		e.buf.B = packer.AppendInt64(e.buf.B, e.cfg.Engine, n)
	}
}

// encodeFloat applies the permissive or strict (NoFloat32) float-width
// policy. The magnitude ranges are chosen so a float32 round-trip preserves
// the value's magnitude class.
func (e *Encoder) encodeFloat(x float64) error {
	if e.cfg.NoFloat32 {
		return e.encodeFloatStrict(x)
	}

	return e.encodeFloatPermissive(x)
}

func (e *Encoder) encodeFloatPermissive(x float64) error {
	abs := math.Abs(x)

	switch {
	case x == 0 || (abs >= float32MinNormal && abs <= float32MaxNormal):
		e.writeMarker(marker.Float32)
		e.buf.B = packer.AppendFloat32(e.buf.B, e.cfg.Engine, float32(x))
		return nil
	// float64MaxNormal (1.8e308) exceeds math.MaxFloat64 and cannot be
	// converted to float64, so the upper bound admits every finite float64.
	case abs >= float64MinNormal && abs <= math.MaxFloat64:
		e.writeMarker(marker.Float64)
		e.buf.B = packer.AppendFloat64(e.buf.B, e.cfg.Engine, x)
		return nil
	case math.IsInf(x, 0) || math.IsNaN(x):
		e.writeMarker(marker.Float32)
		e.buf.B = packer.AppendFloat32(e.buf.B, e.cfg.Engine, float32(x))
		return nil
	default:
		return e.encodeDecimal(value.DecimalFromString(formatFloatDecimal(x)))
	}
}

// encodeFloatStrict has no reachable decimal fallback: float64 already
// represents every finite, infinite, and NaN float64 value, so the only
// special case is the zero value, which prefers the narrower marker.
func (e *Encoder) encodeFloatStrict(x float64) error {
	if x == 0 {
		e.writeMarker(marker.Float32)
		e.buf.B = packer.AppendFloat32(e.buf.B, e.cfg.Engine, float32(x))
		return nil
	}

	e.writeMarker(marker.Float64)
	e.buf.B = packer.AppendFloat64(e.buf.B, e.cfg.Engine, x)
	return nil
}

// encodeDecimal writes a finite Decimal as a length-prefixed UTF-8 string
// under the high-precision marker, or NULL for an infinite/NaN special
// value (the wire format has no high-precision representation for those).
func (e *Encoder) encodeDecimal(d value.Decimal) error {
	if !d.IsFinite() {
		e.encodeNull()
		return nil
	}

	e.writeMarker(marker.HighPrecision)
	return e.writeLengthPrefixedText(d.Text())
}

// encodeString writes s as UTF-8, using the 1-byte CHAR shortcut when s is
// exactly one byte long.
func (e *Encoder) encodeString(s string) error {
	b := []byte(s)
	if len(b) == 1 {
		e.writeMarker(marker.Char)
		e.writeByte(b[0])
		return nil
	}

	e.writeMarker(marker.String)
	return e.writeLengthPrefixedText(s)
}

func (e *Encoder) writeLengthPrefixedText(s string) error {
	b := []byte(s)
	if err := e.encodeInt(big.NewInt(int64(len(b)))); err != nil {
		return err
	}

	e.writeBytes(b)
	return nil
}

// encodeBytes writes the typed-array prefix for an opaque byte buffer:
// `[ $ X #` followed by the length and the raw bytes, with no terminator.
// X is Byte by default, or Uint8 when the caller selected Uint8Bytes for
// Draft-2 compatibility.
func (e *Encoder) encodeBytes(b []byte) error {
	e.writeMarker(marker.ArrayStart)
	e.writeMarker(marker.TypeQualifier)

	if e.cfg.Uint8Bytes {
		e.writeMarker(marker.Uint8)
	} else {
		e.writeMarker(marker.Byte)
	}

	e.writeMarker(marker.CountQualifier)

	if err := e.encodeInt(big.NewInt(int64(len(b)))); err != nil {
		return err
	}

	e.writeBytes(b)
	return nil
}
