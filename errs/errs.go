// Package errs defines the sentinel errors returned by the bjdata encoder.
//
// Callers should use errors.Is to test for a specific failure, since most
// errors are wrapped with contextual detail via fmt.Errorf("%w: ...").
package errs

import "errors"

var (
	// ErrUnencodable is returned when a value's runtime shape matches no
	// encodable branch and no DefaultFunc handled it.
	ErrUnencodable = errors.New("bjdata: value is not encodable")

	// ErrCircularReference is returned when a container's identity is
	// already present in the open-container stack of the current encode call.
	ErrCircularReference = errors.New("bjdata: circular reference detected")

	// ErrBadMappingKey is returned when a mapping entry carries a non-string key.
	ErrBadMappingKey = errors.New("bjdata: mapping key must be a string")

	// ErrDuplicateMappingKey is returned when a mapping carries two entries
	// with the same key.
	ErrDuplicateMappingKey = errors.New("bjdata: duplicate mapping key")

	// ErrUnsupportedColumnType is returned when a tabular column's element
	// type falls outside the set the SOA engine knows how to lay out.
	ErrUnsupportedColumnType = errors.New("bjdata: unsupported tabular column type")

	// ErrColumnLengthMismatch is returned when a tabular field's column
	// length does not match the table's elementwise count.
	ErrColumnLengthMismatch = errors.New("bjdata: column length does not match table element count")

	// ErrEmptyTable is returned when a tabular value has no fields. A zero
	// dimension is reported as ErrInvalidDimensions instead.
	ErrEmptyTable = errors.New("bjdata: tabular value has no fields")

	// ErrDuplicateFieldName is returned when a tabular value declares two
	// fields with the same name.
	ErrDuplicateFieldName = errors.New("bjdata: duplicate tabular field name")

	// ErrInvalidDimensions is returned when a tabular value's dimension
	// vector is empty or contains a non-positive entry.
	ErrInvalidDimensions = errors.New("bjdata: invalid tabular dimensions")

	// ErrSinkFailure wraps an error returned by the underlying sink's Write call.
	ErrSinkFailure = errors.New("bjdata: sink write failed")

	// ErrInvalidConfig is returned when an option applied to a Config is
	// internally inconsistent (e.g. an unknown SOA format string).
	ErrInvalidConfig = errors.New("bjdata: invalid configuration")

	// ErrIndexWidthExceeded names the case of a SOA schema whose index or
	// offset width would exceed the 32-bit ceiling the format supports. The
	// encoder does not return it: its index and offset widths are capped at
	// 4 bytes and no check is made against that ceiling.
	ErrIndexWidthExceeded = errors.New("bjdata: index width exceeds supported range")
)
