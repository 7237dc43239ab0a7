// Package bsontest builds literal BSON byte sequences for use in this
// module's own tests. It is intentionally independent of the
// builder/encoder package it is exercising the decoder against, so
// decoder tests aren't validated against their own encoder's output.
package bsontest

import (
	"encoding/binary"
	"math"
)

// Elem is one element to encode into a document or array via Doc.
type Elem struct {
	Tag     byte
	Name    string
	Payload []byte
}

// Doc encodes elems into a complete BSON document byte sequence: a 4-byte
// little-endian total length, the elements in order, and the trailing
// 0x00 terminator.
func Doc(elems []Elem) []byte {
	var body []byte
	for _, e := range elems {
		body = append(body, e.Tag)
		body = append(body, []byte(e.Name)...)
		body = append(body, 0x00)
		body = append(body, e.Payload...)
	}

	total := 4 + len(body) + 1
	out := make([]byte, 4, total)
	binary.LittleEndian.PutUint32(out, uint32(total)) //nolint:gosec
	out = append(out, body...)
	out = append(out, 0x00)

	return out
}

// Array encodes elems (whose Name fields should be "0", "1", ... in order)
// into a BSON array byte sequence, which is wire-identical to a document.
func Array(elems []Elem) []byte {
	return Doc(elems)
}

// PString encodes a UTF-8 string payload: 4-byte LE length (including
// trailing NUL) followed by the bytes and the NUL.
func PString(s string) []byte {
	b := []byte(s)
	out := make([]byte, 4, 4+len(b)+1)
	binary.LittleEndian.PutUint32(out, uint32(len(b)+1)) //nolint:gosec
	out = append(out, b...)
	out = append(out, 0x00)

	return out
}

// PInt32 encodes an INT32 payload.
func PInt32(v int32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, uint32(v)) //nolint:gosec

	return b
}

// PInt64 encodes an INT64/TIMESTAMP/DATE_TIME payload.
func PInt64(v int64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, uint64(v)) //nolint:gosec

	return b
}

// PDouble encodes a DOUBLE payload.
func PDouble(v float64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, math.Float64bits(v))

	return b
}

// PBool encodes a BOOLEAN payload.
func PBool(v bool) []byte {
	if v {
		return []byte{0x01}
	}

	return []byte{0x00}
}

// PNull encodes a NULL/UNDEFINED/MIN_KEY/MAX_KEY payload (empty).
func PNull() []byte {
	return nil
}

// PObjectID encodes a 12-byte OBJECT_ID payload.
func PObjectID(b [12]byte) []byte {
	out := make([]byte, 12)
	copy(out, b[:])

	return out
}

// PBinary encodes a BINARY payload: 4-byte LE length, 1-byte subtype, then
// the raw bytes.
func PBinary(subtype byte, data []byte) []byte {
	out := make([]byte, 4, 5+len(data))
	binary.LittleEndian.PutUint32(out, uint32(len(data))) //nolint:gosec
	out = append(out, subtype)
	out = append(out, data...)

	return out
}

// PDocument encodes a nested DOCUMENT/ARRAY payload: the raw bytes are the
// complete inner document (they already carry their own length prefix and
// terminator).
func PDocument(inner []byte) []byte {
	return inner
}
