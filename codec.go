package bjdata

import (
	"io"

	"github.com/ubjdata/codec/compress"
	"github.com/ubjdata/codec/encoder"
	"github.com/ubjdata/codec/value"
)

// Option configures an encode call. See the With* functions in this
// package, each a thin re-export of the matching encoder option.
type Option = encoder.Option

// SOAFormat selects the tabular payload ordering.
type SOAFormat = encoder.SOAFormat

// DefaultFunc is invoked when a value's runtime shape matches no known
// branch; it may return a replacement value or an error.
type DefaultFunc = encoder.DefaultFunc

var (
	WithCountedContainers = encoder.WithCountedContainers
	WithSortKeys          = encoder.WithSortKeys
	WithNoFloat32         = encoder.WithNoFloat32
	WithUint8Bytes        = encoder.WithUint8Bytes
	WithLittleEndian      = encoder.WithLittleEndian
	WithBigEndian         = encoder.WithBigEndian
	WithDefaultFunc       = encoder.WithDefaultFunc
	WithSOAFormat         = encoder.WithSOAFormat
)

// EncodeToBytes encodes v under the given options and returns the complete
// byte stream. When compression is non-None, the encoded stream is passed
// through the selected Compressor before returning.
func EncodeToBytes(v value.Value, compression compress.Type, opts ...Option) ([]byte, error) {
	cfg, err := encoder.NewConfig(opts...)
	if err != nil {
		return nil, err
	}

	enc := encoder.New(cfg)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	if compression == 0 {
		compression = compress.None
	}

	codec, err := compress.GetCodec(compression)
	if err != nil {
		return nil, err
	}

	out, err := codec.Compress(enc.Bytes())
	if err != nil {
		return nil, err
	}

	owned := make([]byte, len(out))
	copy(owned, out)

	return owned, nil
}

// EncodeToSink encodes v under the given options and writes the complete
// byte stream to w in a single call. When compression is non-None, the
// encoded stream is passed through the selected Compressor before being written.
func EncodeToSink(w io.Writer, v value.Value, compression compress.Type, opts ...Option) error {
	cfg, err := encoder.NewConfig(opts...)
	if err != nil {
		return err
	}

	enc := encoder.New(cfg)
	if err := enc.Encode(v); err != nil {
		return err
	}

	if compression == 0 {
		compression = compress.None
	}

	if compression == compress.None {
		return enc.WriteTo(w)
	}

	codec, err := compress.GetCodec(compression)
	if err != nil {
		return err
	}

	out, err := codec.Compress(enc.Bytes())
	if err != nil {
		return err
	}

	_, err = w.Write(out)
	return err
}
