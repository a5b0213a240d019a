package encoder

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ubjdata/codec/errs"
	"github.com/ubjdata/codec/marker"
	"github.com/ubjdata/codec/value"
)

func TestEncodeArray_OpenForm(t *testing.T) {
	e := newTestEncoder(t)
	arr := value.NewArray(value.IntFromInt64(1), value.IntFromInt64(2))
	require.NoError(t, e.Encode(arr))

	want := []byte{
		byte(marker.ArrayStart),
		byte(marker.Uint8), 0x01,
		byte(marker.Uint8), 0x02,
		byte(marker.ArrayEnd),
	}
	require.Equal(t, want, e.Bytes())
}

func TestEncodeArray_CountedForm(t *testing.T) {
	e := newTestEncoder(t, WithCountedContainers())
	arr := value.NewArray(value.IntFromInt64(1), value.IntFromInt64(2))
	require.NoError(t, e.Encode(arr))

	want := []byte{
		byte(marker.ArrayStart),
		byte(marker.CountQualifier), byte(marker.Uint8), 0x02,
		byte(marker.Uint8), 0x01,
		byte(marker.Uint8), 0x02,
	}
	require.Equal(t, want, e.Bytes())
}

func TestEncodeArray_Empty(t *testing.T) {
	e := newTestEncoder(t)
	require.NoError(t, e.Encode(value.NewArray()))
	require.Equal(t, []byte{byte(marker.ArrayStart), byte(marker.ArrayEnd)}, e.Bytes())
}

func TestEncodeObject_KeysHaveNoTypeMarker(t *testing.T) {
	e := newTestEncoder(t)
	obj, err := value.NewObject(value.Pair{Key: "a", Val: value.IntFromInt64(123)})
	require.NoError(t, err)
	require.NoError(t, e.Encode(obj))

	want := []byte{
		byte(marker.ObjectStart),
		byte(marker.Uint8), 0x01, 'a',
		byte(marker.Uint8), 0x7b,
		byte(marker.ObjectEnd),
	}
	require.Equal(t, want, e.Bytes())
}

func TestEncodeObject_SortKeysIsIdempotentOverInsertionOrder(t *testing.T) {
	canonical, err := value.NewObject(
		value.Pair{Key: "a", Val: value.Bool(true)},
		value.Pair{Key: "b", Val: value.Bool(false)},
	)
	require.NoError(t, err)

	reversed, err := value.NewObject(
		value.Pair{Key: "b", Val: value.Bool(false)},
		value.Pair{Key: "a", Val: value.Bool(true)},
	)
	require.NoError(t, err)

	e1 := newTestEncoder(t, WithSortKeys())
	require.NoError(t, e1.Encode(canonical))

	e2 := newTestEncoder(t, WithSortKeys())
	require.NoError(t, e2.Encode(reversed))

	require.Equal(t, e1.Bytes(), e2.Bytes())
}

func TestEncodeObject_Nested(t *testing.T) {
	e := newTestEncoder(t)
	inner := value.NewArray(value.IntFromInt64(4), value.IntFromInt64(5))
	obj, err := value.NewObject(
		value.Pair{Key: "a", Val: value.IntFromInt64(123)},
		value.Pair{Key: "b", Val: value.Float(12.3)},
		value.Pair{Key: "c", Val: value.NewArray(
			value.IntFromInt64(1), value.IntFromInt64(2), value.IntFromInt64(3),
			inner, value.String("test"),
		)},
	)
	require.NoError(t, err)
	require.NoError(t, e.Encode(obj))

	out := e.Bytes()
	require.Equal(t, byte(marker.ObjectStart), out[0])
	require.Equal(t, byte(marker.ObjectEnd), out[len(out)-1])
}

func TestEncodeArray_CircularReferenceFails(t *testing.T) {
	a := value.NewArray(value.IntFromInt64(1), nil)
	a.Items[1] = a

	e := newTestEncoder(t)
	err := e.Encode(a)
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrCircularReference))
}

func TestEncodeObject_CircularReferenceFails(t *testing.T) {
	o, err := value.NewObject(value.Pair{Key: "self", Val: value.Null{}})
	require.NoError(t, err)

	// Reach into the entries to install the cycle; the value model has no
	// public mutator since objects are normally built whole.
	entries := o.Entries()
	entries[0].Val = o

	e := newTestEncoder(t)
	err = e.Encode(o)
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrCircularReference))
}
