// Package tag defines the closed set of BSON element tags and the payload
// layout table the indexer uses to compute an element's span without fully
// decoding it: a small closed byte enum with a String method and a lookup
// table, sized to BSON's element tag byte.
package tag

// Type is a single BSON element tag byte.
type Type uint8

const (
	Double           Type = 0x01
	String           Type = 0x02
	Document         Type = 0x03
	Array            Type = 0x04
	Binary           Type = 0x05
	Undefined        Type = 0x06
	ObjectID         Type = 0x07
	Boolean          Type = 0x08
	DateTime         Type = 0x09
	Null             Type = 0x0A
	Regex            Type = 0x0B
	JavaScript       Type = 0x0D
	Symbol           Type = 0x0E
	JavaScriptWScope Type = 0x0F
	Int32            Type = 0x10
	Timestamp        Type = 0x11
	Int64            Type = 0x12
	Decimal128       Type = 0x13
	MinKey           Type = 0xFF
	MaxKey           Type = 0x7F

	// none is the sentinel tag returned by type_of for an absent field. It
	// is deliberately 0, a byte value no real BSON element tag ever uses.
	None Type = 0x00
)

func (t Type) String() string {
	switch t {
	case Double:
		return "DOUBLE"
	case String:
		return "STRING"
	case Document:
		return "DOCUMENT"
	case Array:
		return "ARRAY"
	case Binary:
		return "BINARY"
	case Undefined:
		return "UNDEFINED"
	case ObjectID:
		return "OBJECT_ID"
	case Boolean:
		return "BOOLEAN"
	case DateTime:
		return "DATE_TIME"
	case Null:
		return "NULL"
	case Regex:
		return "REGEX"
	case JavaScript:
		return "JAVASCRIPT"
	case Symbol:
		return "SYMBOL"
	case JavaScriptWScope:
		return "JAVASCRIPT_W_SCOPE"
	case Int32:
		return "INT32"
	case Timestamp:
		return "TIMESTAMP"
	case Int64:
		return "INT64"
	case Decimal128:
		return "DECIMAL128"
	case MinKey:
		return "MIN_KEY"
	case MaxKey:
		return "MAX_KEY"
	case None:
		return "NONE"
	default:
		return "UNKNOWN"
	}
}

// Known reports whether t is a member of the closed BSON tag set. The
// indexer rejects any byte that fails this check with ErrMalformedBSON.
func Known(t Type) bool {
	switch t {
	case Double, String, Document, Array, Binary, Undefined, ObjectID, Boolean,
		DateTime, Null, Regex, JavaScript, Symbol, JavaScriptWScope, Int32,
		Timestamp, Int64, Decimal128, MinKey, MaxKey:
		return true
	default:
		return false
	}
}
