// Package bson provides a zero-copy, read-only decoder for BSON
// documents and arrays, plus a builder-backed in-memory representation
// for constructing values fresh.
//
// # Core Features
//
//   - Zero-copy parsing: parse indexes a byte slice in a single forward
//     pass without materializing the document tree.
//   - Hash-sorted field directory with O(log n) lookup and a
//     collision-tolerant linear sweep over equal-hash runs.
//   - Lazy, concurrency-safe decode cache for heap-producing accessors
//     (strings, nested documents/arrays, ObjectId hex, binary copies).
//   - An independent builder-backed document/array for values
//     constructed by the caller rather than parsed from bytes.
//
// # Basic Usage
//
// Parsing an existing BSON document:
//
//	import "github.com/zerocopy-bson/bson"
//
//	doc, err := bson.Parse(rawBytes)
//	if err != nil {
//	    return err
//	}
//	name, err := doc.GetString("name")
//
// Building a document from scratch:
//
//	b, _ := bson.NewDocumentBuilder()
//	doc, err := b.PutInt32("a", 1).PutString("b", "hello").PutBoolean("c", true).Build()
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the view
// and builder packages. For fine-grained control (collision
// diagnostics, binary compression options), use those packages
// directly.
package bson

import (
	"github.com/zerocopy-bson/bson/builder"
	"github.com/zerocopy-bson/bson/view"
)

// Parse indexes data as a BSON document occupying the whole slice.
func Parse(data []byte) (*view.Document, error) {
	return view.Parse(data)
}

// ParseAt indexes data as a BSON document occupying [offset, offset+length).
func ParseAt(data []byte, offset, length int) (*view.Document, error) {
	return view.ParseAt(data, offset, length)
}

// ParseArray indexes data as a BSON array occupying [offset, offset+length).
func ParseArray(data []byte, offset, length int) (*view.Array, error) {
	return view.ParseArrayAt(data, offset, length)
}

// NewDocumentBuilder creates a fresh builder-backed document builder.
func NewDocumentBuilder(opts ...builder.Option) (*builder.DocumentBuilder, error) {
	return builder.NewDocumentBuilder(opts...)
}

// NewArrayBuilder creates a fresh builder-backed array builder.
func NewArrayBuilder(opts ...builder.Option) (*builder.ArrayBuilder, error) {
	return builder.NewArrayBuilder(opts...)
}
