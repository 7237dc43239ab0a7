// Package builder implements the builder-backed document/array: an
// alternative in-memory representation for values constructed fresh by
// a caller, as opposed to view.Document/view.Array which borrow and
// index existing BSON bytes. Values append into six parallel
// append-only columns plus a per-entry tag/local-index control pair,
// kept as typed Go slices rather than an encoded byte buffer.
package builder

import (
	"github.com/zerocopy-bson/bson/format"
	"github.com/zerocopy-bson/bson/tag"
)

// bitset is a packed bit array backing the boolean column.
type bitset struct {
	bits []uint64
	n    int
}

func newBitset(capacityHint int) *bitset {
	return &bitset{bits: make([]uint64, 0, (capacityHint+63)/64)}
}

// push appends v and returns its index within the bitset.
func (b *bitset) push(v bool) int {
	idx := b.n
	word := idx / 64
	for word >= len(b.bits) {
		b.bits = append(b.bits, 0)
	}
	if v {
		b.bits[word] |= 1 << uint(idx%64) //nolint:gosec
	}
	b.n++

	return idx
}

func (b *bitset) get(idx int) bool {
	word := idx / 64

	return b.bits[word]&(1<<uint(idx%64)) != 0 //nolint:gosec
}

func (b *bitset) len() int { return b.n }

// complexKind identifies which payload shape a complex[] column entry
// holds; only tags with no fixed-width scalar representation land here.
type complexKind uint8

const (
	complexDocument complexKind = iota
	complexArray
	complexBinary
	complexRegex
	complexJavaScriptWithScope
)

// complexValue is one entry of the complex[] column: nested documents,
// nested arrays, binary blobs, regexes, and JavaScript-with-scope — any
// value not representable in the scalar columns.
type complexValue struct {
	kind complexKind

	document *Document
	array    *Array

	binarySubtype byte
	binaryData    []byte // possibly compressed; see compressed/codec
	compressed    bool
	codec         format.CompressionType

	regexPattern string
	regexOptions string

	jsCode  string
	jsScope *Document
}

// columnSet holds the six parallel append-only columns plus the per-entry
// tag/local-index control columns shared by DocumentBuilder, ArrayBuilder,
// Document, and Array.
type columnSet struct {
	tags         []tag.Type
	localIndices []int32

	ints    []int32
	longs   []int64
	doubles []float64
	bools   *bitset
	strings []string
	complex []complexValue
}

func newColumnSet(estimatedFields int) columnSet {
	n := estimatedFields
	if n < 0 {
		n = 0
	}

	return columnSet{
		tags:         make([]tag.Type, 0, n),
		localIndices: make([]int32, 0, n),
		bools:        newBitset(n),
	}
}

// appendEntry records a new directory slot for t at home-column position
// localIdx, returning the entry index.
func (c *columnSet) appendEntry(t tag.Type, localIdx int32) int {
	c.tags = append(c.tags, t)
	c.localIndices = append(c.localIndices, localIdx)

	return len(c.tags) - 1
}

// overwriteEntry repurposes an existing entry slot in place: the
// earlier entry's slot in tags[]/localIndices is overwritten rather
// than appended. The stale home-column value at the old local index is
// left in place and becomes unreachable; it is never compacted.
func (c *columnSet) overwriteEntry(entryIdx int, t tag.Type, localIdx int32) {
	c.tags[entryIdx] = t
	c.localIndices[entryIdx] = localIdx
}

func (c *columnSet) size() int { return len(c.tags) }
