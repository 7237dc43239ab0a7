package index

import (
	"fmt"

	"github.com/zerocopy-bson/bson/errs"
	"github.com/zerocopy-bson/bson/internal/collision"
	"github.com/zerocopy-bson/bson/internal/hash"
	"github.com/zerocopy-bson/bson/tag"
	"github.com/zerocopy-bson/bson/wire"
)

// minDocumentSize is the smallest possible well-formed BSON document: a
// 4-byte length prefix plus the trailing 0x00 terminator, with no elements.
const minDocumentSize = 5

// Build walks the document/array byte range starting at offset within
// data, reading the 4-byte little-endian length prefix to determine the
// range's end, and returns the descriptors in source order.
//
// data is always the root byte slice: nested documents/arrays reached
// through the lazy cache are indexed against the same root slice at their
// own offset, never against a copy: nested composites are children of the
// root byte slice, not of the parent view.
//
// Build also returns a collision.Tracker recording name_hash collision and
// duplicate-name statistics observed while indexing (an additive
// diagnostic, not required for correct lookup — see internal/collision).
func Build(data []byte, offset int) (descriptors []Descriptor, tracker *collision.Tracker, end int, err error) {
	if offset < 0 || offset+4 > len(data) {
		return nil, nil, 0, fmt.Errorf("%w: truncated length prefix at offset %d", errs.ErrMalformedBSON, offset)
	}

	length := int(wire.Int32(data, offset))
	if length < minDocumentSize {
		return nil, nil, 0, fmt.Errorf("%w: invalid document length %d at offset %d", errs.ErrMalformedBSON, length, offset)
	}

	end = offset + length
	if end > len(data) {
		return nil, nil, 0, fmt.Errorf("%w: declared length %d at offset %d exceeds input size %d", errs.ErrMalformedBSON, length, offset, len(data))
	}

	tr := collision.NewTracker()
	pos := offset + 4

	for pos < end {
		if data[pos] == 0x00 {
			break
		}

		t := tag.Type(data[pos])
		if !tag.Known(t) {
			return nil, nil, 0, fmt.Errorf("%w: unknown element tag 0x%02x at offset %d", errs.ErrMalformedBSON, data[pos], pos)
		}
		pos++

		nameOffset, nameLen, next, err := wire.CStringSpan(data, pos, end)
		if err != nil {
			return nil, nil, 0, err
		}
		pos = next

		valueOffset := pos
		valueSize, err := payloadSize(t, data, valueOffset, end)
		if err != nil {
			return nil, nil, 0, err
		}
		if valueOffset+valueSize > end {
			return nil, nil, 0, fmt.Errorf("%w: element %q payload crosses document end", errs.ErrMalformedBSON, data[nameOffset:nameOffset+nameLen])
		}
		pos = valueOffset + valueSize

		name := string(data[nameOffset : nameOffset+nameLen])
		nameHash := hash.Name(name)
		tr.Observe(nameHash, name)

		descriptors = append(descriptors, Descriptor{
			Tag:         t,
			NameHash:    nameHash,
			NameOffset:  int32(nameOffset), //nolint:gosec
			NameLength:  int32(nameLen),    //nolint:gosec
			ValueOffset: int32(valueOffset), //nolint:gosec
			ValueSize:   int32(valueSize),   //nolint:gosec
		})
	}

	return descriptors, tr, end, nil
}

// payloadSize computes the on-wire payload size of an element with tag t
// whose value starts at offset, per tag's layout rules.
func payloadSize(t tag.Type, data []byte, offset, end int) (int, error) {
	layout, ok := tag.LayoutOf(t)
	if !ok {
		return 0, fmt.Errorf("%w: unknown element tag 0x%02x at offset %d", errs.ErrMalformedBSON, byte(t), offset)
	}

	switch layout {
	case tag.LayoutFixed:
		size := tag.FixedSize(t)
		if offset+size > end {
			return 0, fmt.Errorf("%w: fixed payload at offset %d crosses document end", errs.ErrMalformedBSON, offset)
		}

		return size, nil

	case tag.LayoutLengthPrefixedString:
		_, _, next, err := wire.LengthPrefixedSpan(data, offset, end)
		if err != nil {
			return 0, err
		}

		return next - offset, nil

	case tag.LayoutNestedLength:
		if offset+4 > end {
			return 0, fmt.Errorf("%w: truncated nested length at offset %d", errs.ErrMalformedBSON, offset)
		}
		l := int(wire.Int32(data, offset))
		if l < minDocumentSize {
			return 0, fmt.Errorf("%w: invalid nested length %d at offset %d", errs.ErrMalformedBSON, l, offset)
		}
		if offset+l > end {
			return 0, fmt.Errorf("%w: nested payload at offset %d crosses document end", errs.ErrMalformedBSON, offset)
		}

		return l, nil

	case tag.LayoutBinary:
		if offset+4 > end {
			return 0, fmt.Errorf("%w: truncated binary length at offset %d", errs.ErrMalformedBSON, offset)
		}
		l := int(wire.Int32(data, offset))
		if l < 0 {
			return 0, fmt.Errorf("%w: invalid binary length %d at offset %d", errs.ErrMalformedBSON, l, offset)
		}
		total := 4 + 1 + l
		if offset+total > end {
			return 0, fmt.Errorf("%w: binary payload at offset %d crosses document end", errs.ErrMalformedBSON, offset)
		}

		return total, nil

	case tag.LayoutRegex:
		_, _, next1, err := wire.CStringSpan(data, offset, end)
		if err != nil {
			return 0, err
		}
		_, _, next2, err := wire.CStringSpan(data, next1, end)
		if err != nil {
			return 0, err
		}

		return next2 - offset, nil

	default:
		return 0, fmt.Errorf("%w: unhandled layout for tag 0x%02x", errs.ErrMalformedBSON, byte(t))
	}
}
