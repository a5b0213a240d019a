package encoder

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ubjdata/codec/marker"
	"github.com/ubjdata/codec/value"
)

func newTabular(t *testing.T, dims []int, fields ...value.Field) *value.Tabular {
	t.Helper()

	tbl, err := value.NewTabular(dims, fields)
	require.NoError(t, err)

	return tbl
}

func TestNumericColumnMarker_DeclaredWins(t *testing.T) {
	col := &value.NumericColumn{Values: []float64{1, 2}, Declared: marker.Int64}
	require.Equal(t, marker.Int64, numericColumnMarker(col))
}

func TestNumericColumnMarker_IsFloatForcesFloat64(t *testing.T) {
	col := &value.NumericColumn{Values: []float64{1, 2}, IsFloat: true}
	require.Equal(t, marker.Float64, numericColumnMarker(col))
}

func TestNumericColumnMarker_FractionalForcesFloat64(t *testing.T) {
	col := &value.NumericColumn{Values: []float64{1, 2.5}}
	require.Equal(t, marker.Float64, numericColumnMarker(col))
}

func TestNumericColumnMarker_UsesAbsoluteMagnitude(t *testing.T) {
	// Sign is irrelevant: only |v| decides the width, so a small negative
	// value still narrows to Int8, matching the two-row id column example.
	require.Equal(t, marker.Int8, numericColumnMarker(&value.NumericColumn{Values: []float64{1, 2}}))
	require.Equal(t, marker.Int8, numericColumnMarker(&value.NumericColumn{Values: []float64{-100, 5}}))
	require.Equal(t, marker.Int16, numericColumnMarker(&value.NumericColumn{Values: []float64{-200, 5}}))
	require.Equal(t, marker.Int32, numericColumnMarker(&value.NumericColumn{Values: []float64{40000, -5}}))
	require.Equal(t, marker.Int64, numericColumnMarker(&value.NumericColumn{Values: []float64{3e9, 0}}))
}

func TestNumericColumnMarker_IgnoresInvalidElements(t *testing.T) {
	col := &value.NumericColumn{
		Values: []float64{1, 1e10},
		Valid:  []bool{true, false},
	}
	require.Equal(t, marker.Int8, numericColumnMarker(col))
}

// TestEncodeTabular_TwoRowColumnMajor reproduces the worked two-row record
// example: id narrows to Int8, name narrows to a fixed-length-2 string
// column, and the column-major payload lays out id before name.
func TestEncodeTabular_TwoRowColumnMajor(t *testing.T) {
	tbl := newTabular(t, []int{2},
		value.Field{Name: "id", Data: &value.NumericColumn{Values: []float64{1, 2}}},
		value.Field{Name: "name", Data: &value.StringColumn{Values: []string{"A", "BB"}}},
	)

	e := newTestEncoder(t, WithSOAFormat("col"))
	require.NoError(t, e.Encode(tbl))

	out := e.Bytes()
	require.Equal(t, byte(marker.ObjectStart), out[0])

	require.Contains(t, string(out), "A\x00BB")

	payloadStart := strings.Index(string(out), "A\x00BB")
	require.GreaterOrEqual(t, payloadStart, 2)
	require.Equal(t, []byte{0x01, 0x02}, out[payloadStart-2:payloadStart])
}

func TestEncodeTabular_RowMajorOpensWithArrayStart(t *testing.T) {
	tbl := newTabular(t, []int{2},
		value.Field{Name: "id", Data: &value.NumericColumn{Values: []float64{1, 2}}},
	)

	e := newTestEncoder(t, WithSOAFormat("row"))
	require.NoError(t, e.Encode(tbl))
	require.Equal(t, byte(marker.ArrayStart), e.Bytes()[0])
}

func TestEncodeTabular_ColumnMajorOpensWithObjectStart(t *testing.T) {
	tbl := newTabular(t, []int{2},
		value.Field{Name: "id", Data: &value.NumericColumn{Values: []float64{1, 2}}},
	)

	e := newTestEncoder(t, WithSOAFormat("col"))
	require.NoError(t, e.Encode(tbl))
	require.Equal(t, byte(marker.ObjectStart), e.Bytes()[0])
}

func TestEncodeTabular_FourRowDictVsFixedDecision(t *testing.T) {
	tbl := newTabular(t, []int{4},
		value.Field{Name: "name", Data: &value.StringColumn{Values: []string{"x", "y", "x", "y"}}},
	)

	e := newTestEncoder(t, WithSOAFormat("col"))
	require.NoError(t, e.Encode(tbl))
	require.Contains(t, string(e.Bytes()), "xyxy")
}

func TestEncodeTabular_OffsetTrailerHasNPlus1MonotonicEntries(t *testing.T) {
	values := make([]string, 100)
	for i := range values {
		length := 40 + i%81
		values[i] = strings.Repeat("x", length-1) + string(rune('a'+i%26))
	}

	tbl := newTabular(t, []int{100},
		value.Field{Name: "name", Data: &value.StringColumn{Values: values}},
	)

	plan := planStringColumn(values)
	require.Equal(t, layoutOffset, plan.kind, "fixture must exercise the offset layout")

	e := newTestEncoder(t, WithSOAFormat("col"))
	require.NoError(t, e.Encode(tbl))

	out := e.Bytes()

	concat := strings.Join(values, "")
	idx := strings.Index(string(out), concat)
	require.Greater(t, idx, 0, "string buffer must appear in the trailer")

	offsetWidth := 2 // widthFor(total bytes) for this fixture's byte count
	entryCount := 101

	tableStart := idx - entryCount*offsetWidth
	require.GreaterOrEqual(t, tableStart, 0)

	entries := make([]int, entryCount)
	for i := 0; i < entryCount; i++ {
		lo := out[tableStart+i*offsetWidth]
		hi := out[tableStart+i*offsetWidth+1]
		entries[i] = int(lo) | int(hi)<<8
	}

	require.Equal(t, 0, entries[0])
	require.Equal(t, len(concat), entries[entryCount-1])

	for i := 1; i < entryCount; i++ {
		require.GreaterOrEqual(t, entries[i], entries[i-1])
	}
}

func TestEncodeTabular_CircularReferenceFails(t *testing.T) {
	tbl := newTabular(t, []int{1},
		value.Field{Name: "n", Data: &value.NumericColumn{Values: []float64{1}}},
	)

	e := newTestEncoder(t)
	e.open[tbl] = struct{}{}

	err := e.encodeTabular(tbl)
	require.Error(t, err)
}
