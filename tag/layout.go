package tag

// Layout classifies how a tag's payload size is determined. The indexer
// switches on this to compute an element's span in one pass without
// decoding the payload itself.
type Layout uint8

const (
	// LayoutFixed tags have a payload size that depends only on the tag.
	LayoutFixed Layout = iota
	// LayoutLengthPrefixedString tags store a 4-byte LE length L (which
	// includes the trailing NUL) followed by L bytes: STRING, JAVASCRIPT,
	// SYMBOL.
	LayoutLengthPrefixedString
	// LayoutNestedLength tags store a 4-byte LE length L that is itself
	// part of the L-byte payload: DOCUMENT, ARRAY, JAVASCRIPT_W_SCOPE.
	LayoutNestedLength
	// LayoutBinary stores a 4-byte LE length L, a 1-byte subtype, then L
	// payload bytes.
	LayoutBinary
	// LayoutRegex stores two back-to-back NUL-terminated cstrings.
	LayoutRegex
)

// fixedSizes is the authoritative table of fixed-width tag payload sizes.
var fixedSizes = map[Type]int{
	Double:    8,
	ObjectID:  12,
	Boolean:   1,
	DateTime:  8,
	Null:      0,
	Undefined: 0,
	Int32:     4,
	Timestamp: 8,
	Int64:     8,
	// Decimal128 is 16 bytes on the wire but not exercised by a Go numeric
	// type in this implementation; the indexer still spans it correctly
	// using this fixed size, it's just not surfaced by a typed getter.
	Decimal128: 16,
	MinKey:     0,
	MaxKey:     0,
}

// LayoutOf reports how to compute the payload span of an element with the
// given tag. ok is false for an unrecognized tag.
func LayoutOf(t Type) (Layout, bool) {
	if _, isFixed := fixedSizes[t]; isFixed {
		return LayoutFixed, true
	}

	switch t {
	case String, JavaScript, Symbol:
		return LayoutLengthPrefixedString, true
	case Document, Array, JavaScriptWScope:
		return LayoutNestedLength, true
	case Binary:
		return LayoutBinary, true
	case Regex:
		return LayoutRegex, true
	default:
		return 0, false
	}
}

// FixedSize returns the wire size of a LayoutFixed tag's payload.
// It panics if t is not LayoutFixed; callers must check LayoutOf first.
func FixedSize(t Type) int {
	size, ok := fixedSizes[t]
	if !ok {
		panic("tag: FixedSize called on a non-fixed tag")
	}

	return size
}
