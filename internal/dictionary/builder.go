// Package dictionary builds the ordered, deduplicated string dictionary used
// by the SOA engine's dict string layout (see the encoder package).
//
// A 64-bit hash gives O(1) average lookup, and the rare true hash collision
// is resolved by comparing the actual bytes of every string hashed into the
// same bucket, so the dictionary is exact regardless of hash collisions.
package dictionary

import "github.com/cespare/xxhash/v2"

// entry pairs a distinct string with its position in the dictionary.
type entry struct {
	value string
	index int
}

// Builder accumulates distinct strings in first-seen order.
//
// Builder is not safe for concurrent use.
type Builder struct {
	buckets map[uint64][]entry // hash -> candidate entries sharing that hash
	order   []string           // distinct strings, in first-seen order
}

// NewBuilder creates an empty dictionary builder.
func NewBuilder() *Builder {
	return &Builder{
		buckets: make(map[uint64][]entry),
	}
}

// Index returns the dictionary index of s, inserting it at the end of the
// order if it has not been seen before.
func (b *Builder) Index(s string) int {
	h := xxhash.Sum64String(s)

	for _, e := range b.buckets[h] {
		if e.value == s {
			return e.index
		}
	}

	idx := len(b.order)
	b.buckets[h] = append(b.buckets[h], entry{value: s, index: idx})
	b.order = append(b.order, s)

	return idx
}

// Len returns the number of distinct strings seen so far.
func (b *Builder) Len() int {
	return len(b.order)
}

// Values returns the distinct strings in first-seen order. The caller must
// not modify the returned slice.
func (b *Builder) Values() []string {
	return b.order
}

// Reset clears the builder so it can be reused for the next column.
func (b *Builder) Reset() {
	clear(b.buckets)
	b.order = b.order[:0]
}
