package index

import (
	"bytes"
	"sort"

	"github.com/zerocopy-bson/bson/internal/hash"
)

// Locate resolves name against the hash-sorted descriptors (which must
// already have been produced by Build and arranged by Sort), returning the
// descriptor index and true on success, or (-1, false) if name is absent.
//
// The search first binary-searches for any descriptor sharing name's
// hash, then sweeps both directions across the equal-hash run doing a
// full-bytes compare, so it resolves correctly even when two different
// names collide on the same 32-bit hash.
func Locate(descriptors []Descriptor, data []byte, name string) (int, bool) {
	if len(descriptors) == 0 {
		return -1, false
	}

	h := hash.Name(name)

	// sort.Search returns the smallest index i such that
	// descriptors[i].NameHash >= h (the lower bound). If that slot's hash
	// doesn't match h, no descriptor carries this hash at all.
	m := sort.Search(len(descriptors), func(i int) bool {
		return descriptors[i].NameHash >= h
	})
	if m == len(descriptors) || descriptors[m].NameHash != h {
		return -1, false
	}

	if nameEquals(descriptors[m], data, name) {
		return m, true
	}

	for i := m + 1; i < len(descriptors) && descriptors[i].NameHash == h; i++ {
		if nameEquals(descriptors[i], data, name) {
			return i, true
		}
	}

	for i := m - 1; i >= 0 && descriptors[i].NameHash == h; i-- {
		if nameEquals(descriptors[i], data, name) {
			return i, true
		}
	}

	return -1, false
}

// nameEquals performs the full-bytes compare backing Locate's match check:
// it fails fast on length mismatch before touching the byte contents.
func nameEquals(d Descriptor, data []byte, name string) bool {
	if int(d.NameLength) != len(name) {
		return false
	}

	return bytes.Equal(d.Name(data), []byte(name))
}
