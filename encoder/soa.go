package encoder

import (
	"math"
	"math/big"

	"github.com/ubjdata/codec/errs"
	"github.com/ubjdata/codec/marker"
	"github.com/ubjdata/codec/packer"
	"github.com/ubjdata/codec/value"
)

// fieldPlan is the resolved, schema-ready description of one tabular
// column: the kind-specific layout decision plus the raw data needed to
// emit it, computed once up front so schema and payload writers share it.
type fieldPlan struct {
	name string
	kind value.ColumnKind

	numMarker marker.Marker
	num       *value.NumericColumn

	boolValues []bool
	nullCount  int

	str    stringPlan
	strCol *value.StringColumn
}

// encodeTabular writes a record-shaped value as a structure-of-arrays
// document: a schema block describing every field's layout, followed by
// the elementwise payload in column-major or row-major order, followed by
// the offset-table and string-buffer trailers any offset-encoded column
// needs.
func (e *Encoder) encodeTabular(t *value.Tabular) error {
	if _, open := e.open[t]; open {
		return errs.ErrCircularReference
	}

	e.open[t] = struct{}{}
	defer delete(e.open, t)

	plans, err := planFields(t.Fields)
	if err != nil {
		return err
	}

	rowMajor := e.cfg.SOAFormat == SOARow

	if err := e.writeSOAHeader(rowMajor, plans, t.Dims); err != nil {
		return err
	}

	if rowMajor {
		e.writeSOARowMajorPayload(plans, t.Count())
	} else {
		e.writeSOAColumnMajorPayload(plans, t.Count())
	}

	e.writeSOATrailers(plans)

	return nil
}

func planFields(fields []value.Field) ([]fieldPlan, error) {
	plans := make([]fieldPlan, len(fields))

	for i, f := range fields {
		p := fieldPlan{name: f.Name, kind: f.Data.Kind()}

		switch col := f.Data.(type) {
		case *value.NumericColumn:
			p.num = col
			p.numMarker = numericColumnMarker(col)
		case *value.BoolColumn:
			p.boolValues = col.Values
		case *value.NullColumn:
			p.nullCount = col.Count
		case *value.StringColumn:
			p.strCol = col
			p.str = planStringColumn(col.Values)
		default:
			return nil, errs.ErrUnsupportedColumnType
		}

		plans[i] = p
	}

	return plans, nil
}

// numericColumnMarker honors an explicit Declared width (record-array
// columns whose element type the producer already knows); otherwise it
// computes the narrowest signed integer marker that fits the column's
// observed absolute maximum, or Float64 if any value carries a fractional
// part or the column was flagged IsFloat. Sign of the individual values is
// irrelevant to this scan: only their magnitude decides the width.
func numericColumnMarker(col *value.NumericColumn) marker.Marker {
	if col.Declared != 0 {
		return col.Declared
	}

	if col.IsFloat {
		return marker.Float64
	}

	haveAny := false
	maxAbs := 0.0

	for i, v := range col.Values {
		if !col.IsValid(i) {
			continue
		}

		if v != math.Trunc(v) {
			return marker.Float64
		}

		if a := math.Abs(v); a > maxAbs {
			maxAbs = a
		}

		haveAny = true
	}

	if !haveAny {
		return marker.Int8
	}

	switch {
	case maxAbs <= math.MaxInt8:
		return marker.Int8
	case maxAbs <= math.MaxInt16:
		return marker.Int16
	case maxAbs <= math.MaxInt32:
		return marker.Int32
	default:
		return marker.Int64
	}
}

// writeSOAHeader emits the container opener, the schema object, and the
// dimension count/vector.
//
// Row-major opens with ArrayStart and column-major with ObjectStart; both
// then carry an identical `$ { schema }` body. The asymmetry is
// deliberate — it signals the payload's iteration order to a reader — and
// must not be normalized away.
func (e *Encoder) writeSOAHeader(rowMajor bool, plans []fieldPlan, dims []int) error {
	if rowMajor {
		e.writeMarker(marker.ArrayStart)
	} else {
		e.writeMarker(marker.ObjectStart)
	}

	e.writeMarker(marker.TypeQualifier)
	e.writeMarker(marker.ObjectStart)

	for _, p := range plans {
		if err := e.writeLengthPrefixedText(p.name); err != nil {
			return err
		}

		if err := e.writeFieldDescriptor(p); err != nil {
			return err
		}
	}

	e.writeMarker(marker.ObjectEnd)

	e.writeMarker(marker.CountQualifier)

	if len(dims) == 1 {
		return e.encodeInt(big.NewInt(int64(dims[0])))
	}

	e.writeMarker(marker.ArrayStart)

	for _, d := range dims {
		if err := e.encodeInt(big.NewInt(int64(d))); err != nil {
			return err
		}
	}

	e.writeMarker(marker.ArrayEnd)

	return nil
}

func (e *Encoder) writeFieldDescriptor(p fieldPlan) error {
	switch p.kind {
	case value.ColumnNumeric:
		e.writeMarker(p.numMarker)
		return nil
	case value.ColumnBool:
		// Ad-hoc convention preserved from the source schema: the bool
		// column's descriptor reuses the TRUE marker as a type tag.
		e.writeMarker(marker.True)
		return nil
	case value.ColumnNull:
		e.writeMarker(marker.Null)
		return nil
	case value.ColumnString:
		return e.writeStringFieldDescriptor(p.str)
	default:
		return errs.ErrUnsupportedColumnType
	}
}

func (e *Encoder) writeStringFieldDescriptor(plan stringPlan) error {
	switch plan.kind {
	case layoutFixed:
		e.writeMarker(marker.String)
		return e.encodeInt(big.NewInt(int64(plan.fixedLen)))
	case layoutDict:
		e.writeMarker(marker.ArrayStart)
		e.writeMarker(marker.TypeQualifier)
		e.writeMarker(marker.String)
		e.writeMarker(marker.CountQualifier)

		if err := e.encodeInt(big.NewInt(int64(len(plan.dict)))); err != nil {
			return err
		}

		for _, s := range plan.dict {
			if err := e.writeLengthPrefixedText(s); err != nil {
				return err
			}
		}

		return nil
	case layoutOffset:
		e.writeMarker(marker.ArrayStart)
		e.writeMarker(marker.TypeQualifier)
		e.writeMarker(plan.offsetMarker)
		e.writeMarker(marker.ArrayEnd)
		return nil
	default:
		return errs.ErrUnsupportedColumnType
	}
}

func (e *Encoder) writeSOAColumnMajorPayload(plans []fieldPlan, n int) {
	for _, p := range plans {
		for row := 0; row < n; row++ {
			e.writeFieldElement(p, row)
		}
	}
}

func (e *Encoder) writeSOARowMajorPayload(plans []fieldPlan, n int) {
	for row := 0; row < n; row++ {
		for _, p := range plans {
			e.writeFieldElement(p, row)
		}
	}
}

func (e *Encoder) writeFieldElement(p fieldPlan, row int) {
	switch p.kind {
	case value.ColumnNumeric:
		x := 0.0
		if p.num.IsValid(row) {
			x = p.num.Values[row]
		}

		e.appendNumericElement(p.numMarker, x)
	case value.ColumnBool:
		e.encodeBool(p.boolValues[row])
	case value.ColumnNull:
		// nothing: a null column contributes zero payload bytes per element.
	case value.ColumnString:
		e.writeStringElement(p.str, p.strCol.Values[row], row)
	}
}

func (e *Encoder) appendNumericElement(m marker.Marker, x float64) {
	switch m {
	case marker.Int8:
		e.writeByte(byte(int8(x)))
	case marker.Uint8:
		e.writeByte(byte(uint8(x)))
	case marker.Int16:
		e.buf.B = packer.AppendInt16(e.buf.B, e.cfg.Engine, int16(x))
	case marker.Uint16:
		e.buf.B = packer.AppendUint16(e.buf.B, e.cfg.Engine, uint16(x))
	case marker.Int32:
		e.buf.B = packer.AppendInt32(e.buf.B, e.cfg.Engine, int32(x))
	case marker.Uint32:
		e.buf.B = packer.AppendUint32(e.buf.B, e.cfg.Engine, uint32(x))
	case marker.Int64:
		e.buf.B = packer.AppendInt64(e.buf.B, e.cfg.Engine, int64(x))
	case marker.Uint64:
		e.buf.B = packer.AppendUint64(e.buf.B, e.cfg.Engine, uint64(x))
	case marker.Float16:
		e.buf.B = packer.AppendFloat16(e.buf.B, e.cfg.Engine, float32(x))
	case marker.Float32:
		e.buf.B = packer.AppendFloat32(e.buf.B, e.cfg.Engine, float32(x))
	default:
		e.buf.B = packer.AppendFloat64(e.buf.B, e.cfg.Engine, x)
	}
}

func (e *Encoder) writeStringElement(plan stringPlan, s string, row int) {
	switch plan.kind {
	case layoutFixed:
		e.writeFixedString(s, plan.fixedLen)
	case layoutDict:
		e.appendNumericElement(plan.dictIdxMarker, float64(plan.dictIndices[row]))
	case layoutOffset:
		e.appendNumericElement(plan.offsetMarker, float64(plan.rowIndices[row]))
	}
}

// writeFixedString truncates or right-pads s with NUL bytes to exactly n
// bytes.
func (e *Encoder) writeFixedString(s string, n int) {
	b := []byte(s)

	if len(b) >= n {
		e.writeBytes(b[:n])
		return
	}

	e.writeBytes(b)

	for i := len(b); i < n; i++ {
		e.writeByte(0)
	}
}

// writeSOATrailers appends, for every offset-encoded string field in
// schema order, its (N+1)-entry offset table followed by the concatenated
// UTF-8 buffer the table indexes into.
func (e *Encoder) writeSOATrailers(plans []fieldPlan) {
	for _, p := range plans {
		if p.kind != value.ColumnString || p.str.kind != layoutOffset {
			continue
		}

		offset := 0
		e.appendNumericElement(p.str.offsetMarker, float64(offset))

		for _, l := range p.str.lengths {
			offset += l
			e.appendNumericElement(p.str.offsetMarker, float64(offset))
		}

		for _, s := range p.strCol.Values {
			e.writeBytes([]byte(s))
		}
	}
}
