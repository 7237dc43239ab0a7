// Package wire provides the little-endian primitives used to read BSON
// bytes without allocating: fixed-width integer/float reads, NUL-terminated
// cstring span extraction, length-prefixed string extraction, and ObjectId
// hex formatting. Every function here is a pure function over (bytes,
// offset); none of them retain state or allocate unless the BSON wire
// format itself requires a heap value (e.g. decoding a UTF-8 string).
//
// BSON is little-endian throughout, so unlike callers of the endian
// package that pick a byte order at encode time, this package always
// selects endian.GetLittleEndianEngine(); there is no BigEndian variant
// to select for BSON.
package wire

import "github.com/zerocopy-bson/bson/endian"

// Engine is the fixed little-endian codec used throughout this package.
var Engine = endian.GetLittleEndianEngine()
