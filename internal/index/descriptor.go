// Package index implements the element indexer, directory sorter, and
// field locator: a single forward pass that turns a BSON document/array
// byte range into a hash-sorted, collision-tolerant directory permitting
// O(log n) field lookup.
package index

import "github.com/zerocopy-bson/bson/tag"

// Descriptor is a compact record identifying one element within a parsed
// byte range. All offsets are relative
// to the root byte slice the owning view borrows, not to the element's
// containing document/array.
type Descriptor struct {
	Tag         tag.Type
	NameHash    int32
	NameOffset  int32
	NameLength  int32
	ValueOffset int32
	ValueSize   int32
}

// Name returns the element's raw name bytes from data.
func (d Descriptor) Name(data []byte) []byte {
	return data[d.NameOffset : d.NameOffset+d.NameLength]
}

// Value returns the element's raw payload bytes from data.
func (d Descriptor) Value(data []byte) []byte {
	return data[d.ValueOffset : d.ValueOffset+d.ValueSize]
}
