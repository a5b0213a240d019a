// Package bjdata encodes in-memory values as BJData (Draft 2 & Draft 4) and
// UBJSON (Draft 12) binary documents.
//
// The package covers the encode direction only: given a value built from
// the value package's tagged-union model — null, bool, integer, float,
// decimal, string, bytes, array, object, or tabular — it writes a
// self-describing byte stream of single-byte markers and packed payloads.
//
// # Basic usage
//
//	obj, _ := value.NewObject(
//	    value.Pair{Key: "a", Val: value.IntFromInt64(123)},
//	    value.Pair{Key: "b", Val: value.String("hello")},
//	)
//	out, err := bjdata.EncodeToBytes(obj, compress.None)
//
// # Compression
//
// EncodeToBytes and EncodeToSink take a compress.Type identifying a
// sink-level codec (None, Zstd, S2, or LZ4) applied to the finished byte
// stream. Compression is independent of the wire format: a reader only
// needs to know which Type was used, not anything about the document it
// wraps.
//
//	out, err := bjdata.EncodeToBytes(tbl, compress.Zstd, bjdata.WithSOAFormat("col"))
//
// # Tabular values
//
// A value.Tabular is encoded as a structure-of-arrays document: a schema
// block describing each column's layout is written once, followed by the
// elementwise payload in column-major or row-major order. String columns
// are independently analyzed and laid out as fixed-width, dictionary-coded,
// or offset-tabled, whichever the column's cost model favors.
//
//	tbl, _ := value.NewTabular([]int{2}, []value.Field{
//	    {Name: "id", Data: &value.NumericColumn{Values: []float64{1, 2}}},
//	    {Name: "name", Data: &value.StringColumn{Values: []string{"A", "BB"}}},
//	})
//	out, err := bjdata.EncodeToBytes(tbl, compress.None, bjdata.WithSOAFormat("col"))
//
// # Configuration
//
// Encode-time behavior is controlled by functional options: counted vs
// open containers, key sorting, float-width policy, byte-array marker
// choice, endianness, a fallback for unencodable values, and the
// structure-of-arrays payload ordering. See the With* functions.
package bjdata
