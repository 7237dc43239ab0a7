// Package view implements the zero-copy indexed read surface over raw
// BSON bytes: Document keyed by field name and Array keyed by integer
// index, both backed by the same indexer/sorter/locator/cache machinery
// in internal/index and internal/cache.
package view

import (
	"fmt"
	"sort"

	"github.com/zerocopy-bson/bson/errs"
	"github.com/zerocopy-bson/bson/internal/cache"
	"github.com/zerocopy-bson/bson/internal/collision"
	"github.com/zerocopy-bson/bson/internal/index"
)

// Document is a read-only, random-access view over a BSON document byte
// range. It borrows data; the bytes are copied only where ToBytes
// returns a sub-range copy (see bytes.go), where GetBinary returns a
// fresh payload copy, and where strings are decoded.
//
// The zero value is not usable; construct with Parse or ParseAt.
type Document struct {
	data    []byte
	offset  int
	length  int
	fields  []index.Descriptor
	cache   *cache.Cache
	tracker *collision.Tracker
}

// minDocumentSize mirrors internal/index's own constant: parsing input
// shorter than a minimal valid document resolves to ErrInvalidInput
// rather than an undefined or crashing read.
const minDocumentSize = 5

// Parse indexes data as a complete BSON document occupying the whole
// slice (offset 0, length len(data)).
func Parse(data []byte) (*Document, error) {
	return ParseAt(data, 0, len(data))
}

// ParseAt indexes data as a BSON document occupying [offset, offset+length).
// When length is 0, the length is taken from the document's own 4-byte
// little-endian prefix at offset.
func ParseAt(data []byte, offset, length int) (*Document, error) {
	if data == nil {
		return nil, fmt.Errorf("%w: nil input", errs.ErrInvalidInput)
	}
	if length == 0 {
		if offset+4 > len(data) {
			return nil, fmt.Errorf("%w: truncated length prefix", errs.ErrInvalidInput)
		}
	}
	if offset < 0 || offset+minDocumentSize > len(data) {
		return nil, fmt.Errorf("%w: input shorter than the minimum 5-byte document", errs.ErrInvalidInput)
	}

	fields, tracker, end, err := index.Build(data, offset)
	if err != nil {
		return nil, err
	}
	index.Sort(fields)

	if length == 0 {
		length = end - offset
	}

	return &Document{
		data:    data,
		offset:  offset,
		length:  length,
		fields:  fields,
		cache:   cache.New(len(fields)),
		tracker: tracker,
	}, nil
}

// Size returns the number of elements in the document.
func (d *Document) Size() int {
	return len(d.fields)
}

// IsEmpty reports whether the document has no elements.
func (d *Document) IsEmpty() bool {
	return len(d.fields) == 0
}

// FieldNames returns the set of UTF-8 field names, in unsorted,
// unspecified order (left unordered on purpose).
func (d *Document) FieldNames() []string {
	out := make([]string, len(d.fields))
	for i, f := range d.fields {
		out[i] = string(f.Name(d.data))
	}

	return out
}

// FieldNamesSorted returns the field names lexicographically sorted, a
// convenience beyond the required unordered FieldNames for callers that
// want deterministic iteration (e.g. diffing two documents).
func (d *Document) FieldNamesSorted() []string {
	out := d.FieldNames()
	sort.Strings(out)

	return out
}

// CollisionCount reports how many name_hash collisions were observed
// while indexing (distinct names sharing a hash). This is a diagnostic,
// not required for correct lookup; see internal/collision.
func (d *Document) CollisionCount() int {
	if d.tracker == nil {
		return 0
	}

	return d.tracker.CollisionCount()
}

// HasHashCollisions reports whether any name_hash collisions were
// observed while indexing this document.
func (d *Document) HasHashCollisions() bool {
	return d.CollisionCount() > 0
}

// locate resolves name to its descriptor index, or (-1, false) if absent.
func (d *Document) locate(name string) (int, bool) {
	return index.Locate(d.fields, d.data, name)
}
