// Package encoder implements the value classifier, scalar and container
// writers, and the structure-of-arrays engine that together turn an
// in-memory value into a BJData/UBJSON byte stream.
package encoder

import (
	"fmt"

	"github.com/ubjdata/codec/endian"
	"github.com/ubjdata/codec/errs"
	"github.com/ubjdata/codec/internal/options"
	"github.com/ubjdata/codec/value"
)

// SOAFormat selects the payload ordering the tabular engine uses, or leaves
// it to be chosen automatically.
type SOAFormat uint8

const (
	// SOAAuto emits column-major payloads for every tabular value. It is
	// the zero value, so a Config with no SOA option behaves this way.
	SOAAuto SOAFormat = iota
	SOACol
	SOARow
)

// DefaultFunc is invoked when a value's runtime shape matches no classifier
// branch. It may return a replacement value to re-enter dispatch, or an
// error to abort the encode.
type DefaultFunc func(v value.Value) (value.Value, error)

// Config holds the encode-time options described in the package's
// functional-option constructors. The zero Config is invalid; use NewConfig.
type Config struct {
	CountedContainers bool
	SortKeys          bool
	NoFloat32         bool
	Uint8Bytes        bool
	Engine            endian.EndianEngine
	DefaultFn         DefaultFunc
	SOAFormat         SOAFormat
}

// Option configures a Config.
type Option = options.Option[*Config]

// NewConfig builds a Config from defaults (little-endian, open containers,
// insertion-ordered keys, permissive float policy, Byte marker for byte
// arrays, auto SOA layout) plus the given options, applied in order.
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{
		Engine: endian.GetLittleEndianEngine(),
	}

	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithCountedContainers makes arrays and objects emit a `#count` prefix and
// omit their closing delimiter.
func WithCountedContainers() Option {
	return options.NoError(func(c *Config) { c.CountedContainers = true })
}

// WithSortKeys sorts mapping keys lexicographically by raw bytes before
// emission, independent of insertion order.
func WithSortKeys() Option {
	return options.NoError(func(c *Config) { c.SortKeys = true })
}

// WithNoFloat32 prefers float64 for every non-zero finite float, only
// falling back to float32 for the zero value.
func WithNoFloat32() Option {
	return options.NoError(func(c *Config) { c.NoFloat32 = true })
}

// WithUint8Bytes uses the Uint8 marker instead of Byte as the type
// qualifier inside an encoded byte array, for compatibility with
// Draft-2-era readers.
func WithUint8Bytes() Option {
	return options.NoError(func(c *Config) { c.Uint8Bytes = true })
}

// WithLittleEndian selects little-endian byte order for every multi-byte
// numeric. This is the default.
func WithLittleEndian() Option {
	return options.NoError(func(c *Config) { c.Engine = endian.GetLittleEndianEngine() })
}

// WithBigEndian selects big-endian byte order for every multi-byte numeric.
func WithBigEndian() Option {
	return options.NoError(func(c *Config) { c.Engine = endian.GetBigEndianEngine() })
}

// WithDefaultFunc installs a callback invoked for values the classifier
// cannot place in any known branch.
func WithDefaultFunc(fn DefaultFunc) Option {
	return options.NoError(func(c *Config) { c.DefaultFn = fn })
}

// WithSOAFormat selects the tabular payload ordering: "col" for
// column-major, "row" for row-major, or "" to restore the automatic
// (column-major) default.
func WithSOAFormat(format string) Option {
	return options.New(func(c *Config) error {
		switch format {
		case "col":
			c.SOAFormat = SOACol
		case "row":
			c.SOAFormat = SOARow
		case "":
			c.SOAFormat = SOAAuto
		default:
			return fmt.Errorf("%w: soa_format %q, want \"col\", \"row\", or \"\"", errs.ErrInvalidConfig, format)
		}

		return nil
	})
}
