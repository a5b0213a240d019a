package encoder

import (
	"math/big"
	"sort"

	"github.com/ubjdata/codec/errs"
	"github.com/ubjdata/codec/marker"
	"github.com/ubjdata/codec/value"
)

// encodeArray writes a sequence. Cycle detection keys on v's pointer
// identity: Go interface equality over a pointer-typed Value compares the
// pointer itself, so no address arithmetic or identity counter is needed.
func (e *Encoder) encodeArray(v *value.Array) error {
	if _, open := e.open[v]; open {
		return errs.ErrCircularReference
	}

	e.open[v] = struct{}{}
	defer delete(e.open, v)

	e.writeMarker(marker.ArrayStart)

	if e.cfg.CountedContainers {
		e.writeMarker(marker.CountQualifier)
		if err := e.encodeInt(big.NewInt(int64(len(v.Items)))); err != nil {
			return err
		}
	}

	for _, item := range v.Items {
		if err := e.encodeValue(item); err != nil {
			return err
		}
	}

	if !e.cfg.CountedContainers {
		e.writeMarker(marker.ArrayEnd)
	}

	return nil
}

// encodeObject writes a mapping. See encodeArray for the cycle-detection
// discipline; both share it verbatim.
func (e *Encoder) encodeObject(v *value.Object) error {
	if _, open := e.open[v]; open {
		return errs.ErrCircularReference
	}

	e.open[v] = struct{}{}
	defer delete(e.open, v)

	e.writeMarker(marker.ObjectStart)

	entries := v.Entries()
	if e.cfg.SortKeys {
		sorted := make([]value.Pair, len(entries))
		copy(sorted, entries)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].Key < sorted[j].Key })
		entries = sorted
	}

	if e.cfg.CountedContainers {
		e.writeMarker(marker.CountQualifier)
		if err := e.encodeInt(big.NewInt(int64(len(entries)))); err != nil {
			return err
		}
	}

	for _, pair := range entries {
		if err := e.writeLengthPrefixedText(pair.Key); err != nil {
			return err
		}

		if err := e.encodeValue(pair.Val); err != nil {
			return err
		}
	}

	if !e.cfg.CountedContainers {
		e.writeMarker(marker.ObjectEnd)
	}

	return nil
}
