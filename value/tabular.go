package value

import (
	"fmt"

	"github.com/ubjdata/codec/errs"
	"github.com/ubjdata/codec/marker"
)

// ColumnKind identifies the element type of a tabular column.
type ColumnKind uint8

const (
	ColumnNumeric ColumnKind = iota
	ColumnBool
	ColumnNull
	ColumnString
)

// Column is one typed field of a Tabular value. Its length always equals
// the table's elementwise count (the product of Dims).
type Column interface {
	Kind() ColumnKind
	Len() int
}

// NumericColumn holds a column of integer or float values.
//
// Valid, when non-nil, marks which elements are present; an absent element
// (Valid[i] == false) contributes nothing to marker-width selection and is
// emitted as all-zero bytes ("None becomes 0" per the SOA payload rules).
// A nil Valid means every element is present.
type NumericColumn struct {
	Values []float64
	Valid  []bool

	// IsFloat forces float64 marker selection, skipping integer narrowing.
	// Set this for columns the producer knows are floating point even when
	// every observed value happens to be integral.
	IsFloat bool

	// Declared, if non-zero, is a marker width the record-array producer
	// already knows (e.g. a typed column of int32). When zero, the SOA
	// column analyzer infers the narrowest marker from the observed values.
	Declared marker.Marker
}

func (c *NumericColumn) Kind() ColumnKind { return ColumnNumeric }
func (c *NumericColumn) Len() int         { return len(c.Values) }

// IsValid reports whether element i is present. A nil Valid slice means
// every element is present.
func (c *NumericColumn) IsValid(i int) bool {
	return c.Valid == nil || c.Valid[i]
}

// BoolColumn holds a column of boolean values.
type BoolColumn struct {
	Values []bool
}

func (c *BoolColumn) Kind() ColumnKind { return ColumnBool }
func (c *BoolColumn) Len() int         { return len(c.Values) }

// NullColumn holds a column whose every element is null; it carries no
// per-element data, only a count.
type NullColumn struct {
	Count int
}

func (c *NullColumn) Kind() ColumnKind { return ColumnNull }
func (c *NullColumn) Len() int         { return c.Count }

// StringColumn holds a column of UTF-8 string values.
type StringColumn struct {
	Values []string
}

func (c *StringColumn) Kind() ColumnKind { return ColumnString }
func (c *StringColumn) Len() int         { return len(c.Values) }

// Field names one column of a Tabular value. Field names are unique within
// a Tabular value.
type Field struct {
	Name string
	Data Column
}

// Tabular is a record-shaped value: a dimension vector (elementwise count
// is the product of Dims) plus a list of equal-length, uniquely named
// columns. A Tabular value is immutable once constructed.
type Tabular struct {
	Dims   []int
	Fields []Field
}

func (*Tabular) isValue() {}

// NewTabular validates dims and fields and returns a Tabular value.
//
// dims must be non-empty with every entry positive; every field's column
// length must equal the product of dims; field names must be unique.
func NewTabular(dims []int, fields []Field) (*Tabular, error) {
	if len(dims) == 0 {
		return nil, errs.ErrInvalidDimensions
	}

	count := 1
	for _, d := range dims {
		if d <= 0 {
			return nil, fmt.Errorf("%w: dimension %d is not positive", errs.ErrInvalidDimensions, d)
		}
		count *= d
	}

	if len(fields) == 0 {
		return nil, errs.ErrEmptyTable
	}

	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if _, dup := seen[f.Name]; dup {
			return nil, fmt.Errorf("%w: %q", errs.ErrDuplicateFieldName, f.Name)
		}
		seen[f.Name] = struct{}{}

		if f.Data.Len() != count {
			return nil, fmt.Errorf("%w: field %q has %d elements, want %d", errs.ErrColumnLengthMismatch, f.Name, f.Data.Len(), count)
		}
	}

	return &Tabular{Dims: append([]int(nil), dims...), Fields: append([]Field(nil), fields...)}, nil
}

// Count returns the elementwise count: the product of Dims.
func (t *Tabular) Count() int {
	n := 1
	for _, d := range t.Dims {
		n *= d
	}

	return n
}
