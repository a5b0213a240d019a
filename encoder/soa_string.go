package encoder

import (
	"github.com/ubjdata/codec/internal/dictionary"
	"github.com/ubjdata/codec/marker"
)

// stringLayoutKind is the string column storage strategy the layout picker
// chose.
type stringLayoutKind uint8

const (
	layoutFixed stringLayoutKind = iota
	layoutDict
	layoutOffset
)

// stringPlan is the layout picker's verdict for one string column, plus
// everything the schema and payload writers need to act on it without
// recomputing anything.
type stringPlan struct {
	kind stringLayoutKind

	// fixed
	fixedLen int

	// dict
	dictIdxMarker marker.Marker
	dict          []string
	dictIndices   []int

	// offset
	offsetMarker marker.Marker
	rowIndices   []int // always 0..n-1; kept for emission symmetry with dict
	lengths      []int
	total        int
}

// planStringColumn runs the layout picker over values: it computes the
// three candidate costs and picks dict when U ≤ 0.3·N and dict costs
// strictly less than both fixed and offset; otherwise offset when
// L_max > 32 and offset costs strictly less than fixed; otherwise fixed.
// A tie with fixed therefore goes to fixed, and a dict/offset tie goes to
// offset.
func planStringColumn(values []string) stringPlan {
	n := len(values)

	builder := dictionary.NewBuilder()
	dictIdx := make([]int, n)
	lengths := make([]int, n)

	maxLen, total := 0, 0
	for i, v := range values {
		dictIdx[i] = builder.Index(v)

		l := len(v)
		lengths[i] = l
		total += l

		if l > maxLen {
			maxLen = l
		}
	}

	distinct := builder.Values()
	u := len(distinct)

	idxW := widthFor(u)
	offW := widthFor(total)

	fixedCost := maxLen * n
	dictCost := idxW*n + sumDictEntryCost(distinct)
	offsetCost := idxW*n + (n+1)*offW + total

	rowIndices := make([]int, n)
	for i := range rowIndices {
		rowIndices[i] = i
	}

	switch {
	case float64(u) <= 0.3*float64(n) && dictCost < fixedCost && dictCost < offsetCost:
		return stringPlan{
			kind:          layoutDict,
			dictIdxMarker: widthMarker(idxW),
			dict:          distinct,
			dictIndices:   dictIdx,
		}
	case maxLen > 32 && offsetCost < fixedCost:
		return stringPlan{
			kind:         layoutOffset,
			offsetMarker: widthMarker(offW),
			rowIndices:   rowIndices,
			lengths:      lengths,
			total:        total,
		}
	default:
		return stringPlan{
			kind:     layoutFixed,
			fixedLen: maxLen,
		}
	}
}

// sumDictEntryCost is Σ_{v∈distinct}(ℓ(v) + 2): each dictionary entry costs
// its byte length plus a 2-byte length-prefix allowance.
func sumDictEntryCost(distinct []string) int {
	cost := 0
	for _, v := range distinct {
		cost += len(v) + 2
	}

	return cost
}

// widthFor returns the narrowest index width (in bytes) that can address n
// distinct positions: 1 for n ≤ 255, 2 for n ≤ 65535, else 4.
func widthFor(n int) int {
	switch {
	case n <= 255:
		return 1
	case n <= 65535:
		return 2
	default:
		return 4
	}
}

func widthMarker(w int) marker.Marker {
	switch w {
	case 1:
		return marker.Uint8
	case 2:
		return marker.Uint16
	default:
		return marker.Uint32
	}
}
