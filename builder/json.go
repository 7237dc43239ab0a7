package builder

import (
	"strconv"
	"strings"

	"github.com/zerocopy-bson/bson/tag"
)

// ToJSON renders a compact JSON-ish text form of the document. Strings
// are escaped with the standard `" \ / b f n r t` set; ObjectId renders
// as its 24-char hex in quotes; DateTime renders as an integer
// milliseconds-since-epoch; BINARY renders as the literal token
// <unsupported>.
func (d *Document) ToJSON() string {
	var b strings.Builder
	b.WriteByte('{')

	for i, name := range d.names {
		if i > 0 {
			b.WriteByte(',')
		}
		writeJSONString(&b, name)
		b.WriteByte(':')
		writeEntryJSON(&b, d, i)
	}

	b.WriteByte('}')

	return b.String()
}

// ToJSON renders the array's compact JSON-ish text form.
func (a *Array) ToJSON() string {
	var b strings.Builder
	b.WriteByte('[')

	for i := 0; i < a.cols.size(); i++ {
		if i > 0 {
			b.WriteByte(',')
		}
		writeEntryJSON(&b, a, i)
	}

	b.WriteByte(']')

	return b.String()
}

// jsonValuer is implemented by Document and Array so writeEntryJSON can
// render either without duplicating the per-tag dispatch.
type jsonValuer interface {
	valueAt(idx int) Value
}

func writeEntryJSON(b *strings.Builder, v jsonValuer, idx int) {
	val := v.valueAt(idx)

	switch val.Tag { //nolint:exhaustive
	case tag.Int32:
		b.WriteString(strconv.FormatInt(int64(val.Data.(int32)), 10)) //nolint:forcetypeassert
	case tag.Int64, tag.Timestamp, tag.DateTime:
		b.WriteString(strconv.FormatInt(val.Data.(int64), 10)) //nolint:forcetypeassert
	case tag.Double:
		b.WriteString(strconv.FormatFloat(val.Data.(float64), 'g', -1, 64)) //nolint:forcetypeassert
	case tag.Boolean:
		b.WriteString(strconv.FormatBool(val.Data.(bool))) //nolint:forcetypeassert
	case tag.String, tag.JavaScript, tag.Symbol:
		writeJSONString(b, val.Data.(string)) //nolint:forcetypeassert
	case tag.ObjectID:
		writeJSONString(b, val.Data.(string)) //nolint:forcetypeassert
	case tag.Binary:
		b.WriteString("<unsupported>")
	case tag.Document:
		if nested, ok := val.Data.(*Document); ok && nested != nil {
			b.WriteString(nested.ToJSON())
		} else {
			b.WriteString("null")
		}
	case tag.Array:
		if nested, ok := val.Data.(*Array); ok && nested != nil {
			b.WriteString(nested.ToJSON())
		} else {
			b.WriteString("null")
		}
	default:
		b.WriteString("null")
	}
}

// writeJSONString writes s as a double-quoted JSON string literal,
// escaping the standard set `" \ / b f n r t`.
func writeJSONString(b *strings.Builder, s string) {
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '/':
			b.WriteString(`\/`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
}
