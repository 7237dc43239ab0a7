package view

import (
	"fmt"

	"github.com/zerocopy-bson/bson/errs"
	"github.com/zerocopy-bson/bson/internal/cache"
	"github.com/zerocopy-bson/bson/internal/index"
)

// Array is a read-only, random-access view over a BSON array byte range.
// Mechanically it is a Document whose element "names" happen to be the
// decimal string of their own position: the indexer still
// hashes and records them for uniformity, but Array's accessors use
// source order (descriptor index i ↔ logical index i) rather than the
// locator, since positional access doesn't need a hash lookup.
//
// The zero value is not usable; construct with ParseArray or ParseArrayAt.
type Array struct {
	data   []byte
	offset int
	length int
	fields []index.Descriptor
	cache  *cache.Cache
}

// ParseArray indexes data as a complete BSON array occupying the whole slice.
func ParseArray(data []byte) (*Array, error) {
	return ParseArrayAt(data, 0, len(data))
}

// ParseArrayAt indexes data as a BSON array occupying [offset, offset+length).
// When length is 0, the length is taken from the array's own 4-byte
// little-endian prefix at offset.
func ParseArrayAt(data []byte, offset, length int) (*Array, error) {
	if data == nil {
		return nil, fmt.Errorf("%w: nil input", errs.ErrInvalidInput)
	}
	if offset < 0 || offset+minDocumentSize > len(data) {
		return nil, fmt.Errorf("%w: input shorter than the minimum 5-byte array", errs.ErrInvalidInput)
	}

	fields, _, end, err := index.Build(data, offset)
	if err != nil {
		return nil, err
	}
	// Array elements are kept in source order; they are not re-sorted by
	// hash since positional access never goes through the locator.

	if length == 0 {
		length = end - offset
	}

	return &Array{
		data:   data,
		offset: offset,
		length: length,
		fields: fields,
		cache:  cache.New(len(fields)),
	}, nil
}

// Size returns the number of elements in the array.
func (a *Array) Size() int {
	return len(a.fields)
}

// IsEmpty reports whether the array has no elements.
func (a *Array) IsEmpty() bool {
	return len(a.fields) == 0
}

// inBounds reports whether i is a valid element index.
func (a *Array) inBounds(i int) bool {
	return i >= 0 && i < len(a.fields)
}
