package encoder

import (
	"fmt"
	"io"

	"github.com/ubjdata/codec/errs"
	"github.com/ubjdata/codec/internal/pool"
	"github.com/ubjdata/codec/marker"
	"github.com/ubjdata/codec/value"
)

// Encoder walks a value graph and streams marker/payload bytes to an
// internal buffer. It does not retain the value it encodes. The buffer and
// the open-container set are created by New, so each top-level encode uses
// a fresh Encoder.
type Encoder struct {
	cfg  *Config
	buf  *pool.ByteBuffer
	open map[value.Value]struct{}
}

// New returns an Encoder ready to encode a single value tree under cfg.
func New(cfg *Config) *Encoder {
	return &Encoder{
		cfg:  cfg,
		buf:  pool.NewByteBuffer(pool.BlobBufferDefaultSize),
		open: make(map[value.Value]struct{}),
	}
}

// Encode classifies and writes v. It is the single entry point callers use;
// the root package's driver calls this once per top-level encode.
func (e *Encoder) Encode(v value.Value) error {
	return e.encodeValue(v)
}

// Bytes returns the accumulated output. Valid only after Encode succeeds.
func (e *Encoder) Bytes() []byte {
	return e.buf.Bytes()
}

// WriteTo copies the accumulated output to w in a single call.
func (e *Encoder) WriteTo(w io.Writer) error {
	if _, err := e.buf.WriteTo(w); err != nil {
		return fmt.Errorf("%w: %w", errs.ErrSinkFailure, err)
	}

	return nil
}

func (e *Encoder) writeByte(b byte) {
	e.buf.B = append(e.buf.B, b)
}

func (e *Encoder) writeBytes(b []byte) {
	e.buf.B = append(e.buf.B, b...)
}

func (e *Encoder) writeMarker(m marker.Marker) {
	e.writeByte(byte(m))
}

// encodeValue is the sealed-interface dispatch point.
//
// Dispatch order (preserved from the classifier this encoder is modeled on,
// significant because a mapping-shaped value must never be mistaken for a
// sequence of pairs): null, true, false, integer, float, decimal, string,
// bytes, mapping (checked before sequence), sequence, tabular, then the
// caller's DefaultFn, then error.
func (e *Encoder) encodeValue(v value.Value) error {
	switch x := v.(type) {
	case value.Null:
		e.encodeNull()
		return nil
	case value.Bool:
		e.encodeBool(bool(x))
		return nil
	case *value.Int:
		return e.encodeInt(x.BigInt())
	case value.Float:
		return e.encodeFloat(float64(x))
	case value.Decimal:
		return e.encodeDecimal(x)
	case value.String:
		return e.encodeString(string(x))
	case value.Bytes:
		return e.encodeBytes([]byte(x))
	case *value.Object:
		return e.encodeObject(x)
	case *value.Array:
		return e.encodeArray(x)
	case *value.Tabular:
		return e.encodeTabular(x)
	default:
		return e.encodeFallback(v)
	}
}

func (e *Encoder) encodeFallback(v value.Value) error {
	if e.cfg.DefaultFn == nil {
		return errs.ErrUnencodable
	}

	replacement, err := e.cfg.DefaultFn(v)
	if err != nil {
		return err
	}

	return e.encodeValue(replacement)
}
