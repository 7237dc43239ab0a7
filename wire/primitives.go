package wire

import (
	"fmt"
	"math"

	"github.com/zerocopy-bson/bson/errs"
)

// Int32 reads a little-endian 32-bit signed integer at offset.
func Int32(data []byte, offset int) int32 {
	return int32(Engine.Uint32(data[offset : offset+4])) //nolint:gosec
}

// Int64 reads a little-endian 64-bit signed integer at offset.
func Int64(data []byte, offset int) int64 {
	return int64(Engine.Uint64(data[offset : offset+8])) //nolint:gosec
}

// Float64 reads a little-endian IEEE 754 double at offset.
func Float64(data []byte, offset int) float64 {
	return math.Float64frombits(Engine.Uint64(data[offset : offset+8]))
}

// PutFloat64 writes v as a little-endian IEEE 754 double at offset.
func PutFloat64(data []byte, offset int, v float64) {
	Engine.PutUint64(data[offset:offset+8], math.Float64bits(v))
}

// PutInt32 writes v as a little-endian 32-bit signed integer at offset.
func PutInt32(data []byte, offset int, v int32) {
	Engine.PutUint32(data[offset:offset+4], uint32(v)) //nolint:gosec
}

// PutInt64 writes v as a little-endian 64-bit signed integer at offset.
func PutInt64(data []byte, offset int, v int64) {
	Engine.PutUint64(data[offset:offset+8], uint64(v)) //nolint:gosec
}

// CStringSpan locates the NUL terminator starting at offset and returns the
// span of the name in bytes (excluding the NUL) plus the offset of the byte
// immediately following the NUL. It fails with ErrMalformedBSON if no NUL
// is found before end.
func CStringSpan(data []byte, offset, end int) (nameOffset, nameLen, next int, err error) {
	i := offset
	for i < end {
		if data[i] == 0x00 {
			return offset, i - offset, i + 1, nil
		}
		i++
	}

	return 0, 0, 0, fmt.Errorf("%w: unterminated cstring starting at offset %d", errs.ErrMalformedBSON, offset)
}

// LengthPrefixedSpan reads a BSON "string" payload: a 4-byte little-endian
// length L (which includes the trailing NUL) followed by L bytes. It
// returns the offset/length of the text payload with the trailing NUL
// excluded, plus the offset immediately following the whole payload.
func LengthPrefixedSpan(data []byte, offset, end int) (textOffset, textLen, next int, err error) {
	if offset+4 > end {
		return 0, 0, 0, fmt.Errorf("%w: truncated string length prefix at offset %d", errs.ErrMalformedBSON, offset)
	}

	l := Int32(data, offset)
	if l < 1 {
		return 0, 0, 0, fmt.Errorf("%w: invalid string length %d at offset %d", errs.ErrMalformedBSON, l, offset)
	}

	payloadStart := offset + 4
	payloadEnd := payloadStart + int(l)
	if payloadEnd > end {
		return 0, 0, 0, fmt.Errorf("%w: string payload at offset %d crosses document end", errs.ErrMalformedBSON, offset)
	}

	return payloadStart, int(l) - 1, payloadEnd, nil
}
