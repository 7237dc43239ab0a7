package view

import (
	"sort"
	"strconv"
	"strings"

	"github.com/zerocopy-bson/bson/internal/cache"
	"github.com/zerocopy-bson/bson/internal/index"
	"github.com/zerocopy-bson/bson/tag"
	"github.com/zerocopy-bson/bson/wire"
)

// ToJSON renders a compact JSON-ish text form of the document. It is
// not a full BSON-to-JSON codec:
// BINARY fields render as the literal token <unsupported>, matching the
// builder-backed rendering, since stable binary JSON needs a caller-
// supplied encoding (base64, hex, ...) this layer doesn't choose for them.
func (d *Document) ToJSON() string {
	var b strings.Builder
	d.writeJSON(&b)

	return b.String()
}

func (d *Document) writeJSON(b *strings.Builder) {
	// The directory is hash-sorted; fields are rendered in source order,
	// which NameOffset preserves.
	order := make([]int, len(d.fields))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(x, y int) bool {
		return d.fields[order[x]].NameOffset < d.fields[order[y]].NameOffset
	})

	b.WriteByte('{')
	for n, i := range order {
		f := d.fields[i]
		if n > 0 {
			b.WriteByte(',')
		}
		writeJSONString(b, string(f.Name(d.data)))
		b.WriteByte(':')
		writeFieldJSON(b, d.data, d.cache, d.fields, i)
	}
	b.WriteByte('}')
}

// ToJSON renders the array's compact JSON-ish text form.
func (a *Array) ToJSON() string {
	var b strings.Builder
	a.writeJSON(&b)

	return b.String()
}

func (a *Array) writeJSON(b *strings.Builder) {
	b.WriteByte('[')
	for i := range a.fields {
		if i > 0 {
			b.WriteByte(',')
		}
		writeFieldJSON(b, a.data, a.cache, a.fields, i)
	}
	b.WriteByte(']')
}

// writeFieldJSON renders the element at fields[idx] as JSON, recursing
// into nested documents/arrays.
func writeFieldJSON(b *strings.Builder, data []byte, c *cache.Cache, fields []index.Descriptor, idx int) {
	f := fields[idx]

	switch f.Tag { //nolint:exhaustive
	case tag.Int32:
		v, _ := decodeInt32(data, fields, idx)
		b.WriteString(strconv.FormatInt(int64(v), 10))
	case tag.Int64:
		v, _ := decodeInt64(data, fields, idx)
		b.WriteString(strconv.FormatInt(v, 10))
	case tag.Timestamp:
		b.WriteString(strconv.FormatInt(wire.Int64(data, int(f.ValueOffset)), 10))
	case tag.Double:
		v, _ := decodeDouble(data, fields, idx)
		b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	case tag.Boolean:
		v, _ := decodeBoolean(data, fields, idx)
		b.WriteString(strconv.FormatBool(v))
	case tag.DateTime:
		v, _ := decodeDateTime(data, fields, idx)
		b.WriteString(strconv.FormatInt(v, 10))
	case tag.String, tag.JavaScript, tag.Symbol:
		v, _ := decodeString(data, c, fields, idx)
		writeJSONString(b, v)
	case tag.ObjectID:
		v, _ := decodeObjectID(data, c, fields, idx)
		writeJSONString(b, v)
	case tag.Binary:
		b.WriteString("<unsupported>")
	case tag.Document:
		nested, err := decodeDocument(data, c, fields, idx)
		if err != nil {
			b.WriteString("null")
			return
		}
		nested.writeJSON(b)
	case tag.Array:
		nested, err := decodeArray(data, c, fields, idx)
		if err != nil {
			b.WriteString("null")
			return
		}
		nested.writeJSON(b)
	case tag.Null, tag.Undefined:
		b.WriteString("null")
	default:
		b.WriteString("null")
	}
}

// writeJSONString writes s as a double-quoted JSON string literal,
// escaping the standard set `" \ / b f n r t`; other control characters
// are written unescaped.
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
