package view

import (
	"fmt"

	"github.com/zerocopy-bson/bson/errs"
	"github.com/zerocopy-bson/bson/internal/cache"
	"github.com/zerocopy-bson/bson/internal/index"
	"github.com/zerocopy-bson/bson/tag"
	"github.com/zerocopy-bson/bson/wire"
)

// Value is the result of an untyped Get/GetAt call: it carries the
// element's tag alongside a natural Go representation. Present is false
// for the "absent" sentinel (missing field or out-of-range index); a
// present NULL/UNDEFINED field has Present == true, Tag == tag.Null (or
// Undefined), and a nil Data.
type Value struct {
	Tag     tag.Type
	Data    any
	Present bool
}

// typeMismatch builds the ErrTypeMismatch error for a strict getter,
// naming the expected tag; the stored tag is not included.
func typeMismatch(expected string) error {
	return fmt.Errorf("%w: not %s", errs.ErrTypeMismatch, expected)
}

// --- shared decode helpers, operating on a (data, cache, fields, idx) tuple ---

func decodeInt32(data []byte, fields []index.Descriptor, idx int) (int32, error) {
	d := fields[idx]
	if d.Tag != tag.Int32 {
		return 0, typeMismatch("INT32")
	}

	return wire.Int32(data, int(d.ValueOffset)), nil
}

func decodeInt64(data []byte, fields []index.Descriptor, idx int) (int64, error) {
	d := fields[idx]
	if d.Tag != tag.Int64 {
		return 0, typeMismatch("INT64")
	}

	return wire.Int64(data, int(d.ValueOffset)), nil
}

func decodeDouble(data []byte, fields []index.Descriptor, idx int) (float64, error) {
	d := fields[idx]
	if d.Tag != tag.Double {
		return 0, typeMismatch("DOUBLE")
	}

	return wire.Float64(data, int(d.ValueOffset)), nil
}

func decodeBoolean(data []byte, fields []index.Descriptor, idx int) (bool, error) {
	d := fields[idx]
	if d.Tag != tag.Boolean {
		return false, typeMismatch("BOOLEAN")
	}

	return data[d.ValueOffset] != 0, nil
}

func decodeDateTime(data []byte, fields []index.Descriptor, idx int) (int64, error) {
	d := fields[idx]
	if d.Tag != tag.DateTime {
		return 0, typeMismatch("DATE_TIME")
	}

	return wire.Int64(data, int(d.ValueOffset)), nil
}

func decodeString(data []byte, c *cache.Cache, fields []index.Descriptor, idx int) (string, error) {
	d := fields[idx]
	switch d.Tag { //nolint:exhaustive
	case tag.String, tag.JavaScript, tag.Symbol:
	default:
		return "", typeMismatch("STRING")
	}

	v, err := c.GetOrCompute(idx, func() (any, error) {
		// The payload carries a trailing NUL not included in a Go string;
		// ValueSize covers the 4-byte length prefix, so the text itself is
		// the middle slice.
		raw := d.Value(data)
		return string(raw[4 : len(raw)-1]), nil
	})
	if err != nil {
		return "", err
	}

	return v.(string), nil
}

func decodeObjectID(data []byte, c *cache.Cache, fields []index.Descriptor, idx int) (string, error) {
	d := fields[idx]
	if d.Tag != tag.ObjectID {
		return "", typeMismatch("OBJECT_ID")
	}

	v, err := c.GetOrCompute(idx, func() (any, error) {
		return wire.ObjectIDHex(data, int(d.ValueOffset)), nil
	})
	if err != nil {
		return "", err
	}

	return v.(string), nil
}

func decodeBinary(data []byte, c *cache.Cache, fields []index.Descriptor, idx int) ([]byte, error) {
	d := fields[idx]
	if d.Tag != tag.Binary {
		return nil, typeMismatch("BINARY")
	}

	v, err := c.GetOrCompute(idx, func() (any, error) {
		length := int(wire.Int32(data, int(d.ValueOffset)))
		subtypeOffset := int(d.ValueOffset) + 4

		return wire.BinaryCopy(data, subtypeOffset, length), nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]byte), nil
}

func decodeDocument(data []byte, c *cache.Cache, fields []index.Descriptor, idx int) (*Document, error) {
	d := fields[idx]
	if d.Tag != tag.Document {
		return nil, typeMismatch("DOCUMENT")
	}

	v, err := c.GetOrCompute(idx, func() (any, error) {
		return ParseAt(data, int(d.ValueOffset), int(d.ValueSize))
	})
	if err != nil {
		return nil, err
	}

	return v.(*Document), nil
}

func decodeArray(data []byte, c *cache.Cache, fields []index.Descriptor, idx int) (*Array, error) {
	d := fields[idx]
	if d.Tag != tag.Array {
		return nil, typeMismatch("ARRAY")
	}

	v, err := c.GetOrCompute(idx, func() (any, error) {
		return ParseArrayAt(data, int(d.ValueOffset), int(d.ValueSize))
	})
	if err != nil {
		return nil, err
	}

	return v.(*Array), nil
}

// decodeGet implements the untyped get(n) dispatch table for a present
// descriptor.
func decodeGet(data []byte, c *cache.Cache, fields []index.Descriptor, idx int) (Value, error) {
	d := fields[idx]

	switch d.Tag { //nolint:exhaustive
	case tag.Int32:
		v, err := decodeInt32(data, fields, idx)
		return Value{Tag: d.Tag, Data: v, Present: true}, err
	case tag.Int64:
		v, err := decodeInt64(data, fields, idx)
		return Value{Tag: d.Tag, Data: v, Present: true}, err
	case tag.Timestamp:
		return Value{Tag: d.Tag, Data: wire.Int64(data, int(d.ValueOffset)), Present: true}, nil
	case tag.Double:
		v, err := decodeDouble(data, fields, idx)
		return Value{Tag: d.Tag, Data: v, Present: true}, err
	case tag.Boolean:
		v, err := decodeBoolean(data, fields, idx)
		return Value{Tag: d.Tag, Data: v, Present: true}, err
	case tag.DateTime:
		v, err := decodeDateTime(data, fields, idx)
		return Value{Tag: d.Tag, Data: v, Present: true}, err
	case tag.String, tag.JavaScript, tag.Symbol:
		v, err := decodeString(data, c, fields, idx)
		return Value{Tag: d.Tag, Data: v, Present: true}, err
	case tag.ObjectID:
		v, err := decodeObjectID(data, c, fields, idx)
		return Value{Tag: d.Tag, Data: v, Present: true}, err
	case tag.Binary:
		v, err := decodeBinary(data, c, fields, idx)
		return Value{Tag: d.Tag, Data: v, Present: true}, err
	case tag.Document:
		v, err := decodeDocument(data, c, fields, idx)
		return Value{Tag: d.Tag, Data: v, Present: true}, err
	case tag.Array:
		v, err := decodeArray(data, c, fields, idx)
		return Value{Tag: d.Tag, Data: v, Present: true}, err
	case tag.Null, tag.Undefined:
		return Value{Tag: d.Tag, Data: nil, Present: true}, nil
	default:
		// MinKey, MaxKey, Regex, JavaScriptWScope, Decimal128: recorded by
		// the indexer but not given a natural Go representation by the
		// untyped accessor (Data is nil); no typed getter exists for
		// these tags either.
		return Value{Tag: d.Tag, Data: nil, Present: true}, nil
	}
}

// --- Document typed accessors ---

// GetInt32 returns the INT32 value of field name, or fails with
// ErrFieldNotFound/ErrTypeMismatch.
func (d *Document) GetInt32(name string) (int32, error) {
	idx, ok := d.locate(name)
	if !ok {
		return 0, errs.ErrFieldNotFound
	}

	return decodeInt32(d.data, d.fields, idx)
}

// GetInt32OrDefault returns the INT32 value of field name, or def on any
// failure (absent, NULL, or type mismatch).
func (d *Document) GetInt32OrDefault(name string, def int32) int32 {
	v, err := d.GetInt32(name)
	if err != nil {
		return def
	}

	return v
}

// GetInt64 returns the INT64 value of field name.
func (d *Document) GetInt64(name string) (int64, error) {
	idx, ok := d.locate(name)
	if !ok {
		return 0, errs.ErrFieldNotFound
	}

	return decodeInt64(d.data, d.fields, idx)
}

// GetInt64OrDefault returns the INT64 value of field name, or def on any failure.
func (d *Document) GetInt64OrDefault(name string, def int64) int64 {
	v, err := d.GetInt64(name)
	if err != nil {
		return def
	}

	return v
}

// GetDouble returns the DOUBLE value of field name.
func (d *Document) GetDouble(name string) (float64, error) {
	idx, ok := d.locate(name)
	if !ok {
		return 0, errs.ErrFieldNotFound
	}

	return decodeDouble(d.data, d.fields, idx)
}

// GetDoubleOrDefault returns the DOUBLE value of field name, or def on any failure.
func (d *Document) GetDoubleOrDefault(name string, def float64) float64 {
	v, err := d.GetDouble(name)
	if err != nil {
		return def
	}

	return v
}

// GetBoolean returns the BOOLEAN value of field name.
func (d *Document) GetBoolean(name string) (bool, error) {
	idx, ok := d.locate(name)
	if !ok {
		return false, errs.ErrFieldNotFound
	}

	return decodeBoolean(d.data, d.fields, idx)
}

// GetBooleanOrDefault returns the BOOLEAN value of field name, or def on any failure.
func (d *Document) GetBooleanOrDefault(name string, def bool) bool {
	v, err := d.GetBoolean(name)
	if err != nil {
		return def
	}

	return v
}

// GetDateTime returns the DATE_TIME value (ms since epoch) of field name.
func (d *Document) GetDateTime(name string) (int64, error) {
	idx, ok := d.locate(name)
	if !ok {
		return 0, errs.ErrFieldNotFound
	}

	return decodeDateTime(d.data, d.fields, idx)
}

// GetDateTimeOrDefault returns the DATE_TIME value of field name, or def on any failure.
func (d *Document) GetDateTimeOrDefault(name string, def int64) int64 {
	v, err := d.GetDateTime(name)
	if err != nil {
		return def
	}

	return v
}

// GetString returns the string value of field name; the field must be
// tagged STRING, JAVASCRIPT, or SYMBOL.
func (d *Document) GetString(name string) (string, error) {
	idx, ok := d.locate(name)
	if !ok {
		return "", errs.ErrFieldNotFound
	}

	return decodeString(d.data, d.cache, d.fields, idx)
}

// GetStringOrDefault returns the string value of field name, or def if
// absent, type-mismatched, or NULL-typed.
func (d *Document) GetStringOrDefault(name string, def string) string {
	idx, ok := d.locate(name)
	if !ok {
		return def
	}
	if d.fields[idx].Tag == tag.Null {
		return def
	}
	v, err := decodeString(d.data, d.cache, d.fields, idx)
	if err != nil {
		return def
	}

	return v
}

// GetObjectID returns the 24-char lowercase hex of field name's OBJECT_ID payload.
func (d *Document) GetObjectID(name string) (string, error) {
	idx, ok := d.locate(name)
	if !ok {
		return "", errs.ErrFieldNotFound
	}

	return decodeObjectID(d.data, d.cache, d.fields, idx)
}

// GetObjectIDOrDefault returns the OBJECT_ID hex of field name, or def on any failure.
func (d *Document) GetObjectIDOrDefault(name string, def string) string {
	v, err := d.GetObjectID(name)
	if err != nil {
		return def
	}

	return v
}

// GetBinary returns a fresh copy of field name's BINARY payload bytes
// (subtype dropped).
func (d *Document) GetBinary(name string) ([]byte, error) {
	idx, ok := d.locate(name)
	if !ok {
		return nil, errs.ErrFieldNotFound
	}

	return decodeBinary(d.data, d.cache, d.fields, idx)
}

// GetBinaryOrDefault returns the BINARY payload of field name, or def on any failure.
func (d *Document) GetBinaryOrDefault(name string, def []byte) []byte {
	v, err := d.GetBinary(name)
	if err != nil {
		return def
	}

	return v
}

// GetDocument returns a nested indexed view over field name's DOCUMENT payload.
func (d *Document) GetDocument(name string) (*Document, error) {
	idx, ok := d.locate(name)
	if !ok {
		return nil, errs.ErrFieldNotFound
	}

	return decodeDocument(d.data, d.cache, d.fields, idx)
}

// GetDocumentOrDefault returns the nested view of field name, or def on any failure.
func (d *Document) GetDocumentOrDefault(name string, def *Document) *Document {
	v, err := d.GetDocument(name)
	if err != nil {
		return def
	}

	return v
}

// GetArray returns a nested indexed array view over field name's ARRAY payload.
func (d *Document) GetArray(name string) (*Array, error) {
	idx, ok := d.locate(name)
	if !ok {
		return nil, errs.ErrFieldNotFound
	}

	return decodeArray(d.data, d.cache, d.fields, idx)
}

// GetArrayOrDefault returns the nested array view of field name, or def on any failure.
func (d *Document) GetArrayOrDefault(name string, def *Array) *Array {
	v, err := d.GetArray(name)
	if err != nil {
		return def
	}

	return v
}

// Get is the untyped accessor. A missing field returns a Value with
// Present == false.
func (d *Document) Get(name string) Value {
	idx, ok := d.locate(name)
	if !ok {
		return Value{Present: false}
	}

	v, err := decodeGet(d.data, d.cache, d.fields, idx)
	if err != nil {
		return Value{Present: false}
	}

	return v
}

// Contains reports whether name resolves to a present field.
func (d *Document) Contains(name string) bool {
	_, ok := d.locate(name)

	return ok
}

// IsNull reports whether name is present and tagged NULL or UNDEFINED.
func (d *Document) IsNull(name string) bool {
	idx, ok := d.locate(name)
	if !ok {
		return false
	}

	return d.fields[idx].Tag == tag.Null || d.fields[idx].Tag == tag.Undefined
}

// TypeOf returns the stored tag for name, or tag.None if absent.
func (d *Document) TypeOf(name string) tag.Type {
	idx, ok := d.locate(name)
	if !ok {
		return tag.None
	}

	return d.fields[idx].Tag
}

// --- Array typed accessors ---

// GetInt32 returns the INT32 value at index i.
func (a *Array) GetInt32(i int) (int32, error) {
	if !a.inBounds(i) {
		return 0, errs.ErrIndexOutOfBounds
	}

	return decodeInt32(a.data, a.fields, i)
}

// GetInt32OrDefault returns the INT32 value at index i, or def on any failure.
func (a *Array) GetInt32OrDefault(i int, def int32) int32 {
	v, err := a.GetInt32(i)
	if err != nil {
		return def
	}

	return v
}

// GetInt64 returns the INT64 value at index i.
func (a *Array) GetInt64(i int) (int64, error) {
	if !a.inBounds(i) {
		return 0, errs.ErrIndexOutOfBounds
	}

	return decodeInt64(a.data, a.fields, i)
}

// GetInt64OrDefault returns the INT64 value at index i, or def on any failure.
func (a *Array) GetInt64OrDefault(i int, def int64) int64 {
	v, err := a.GetInt64(i)
	if err != nil {
		return def
	}

	return v
}

// GetDouble returns the DOUBLE value at index i.
func (a *Array) GetDouble(i int) (float64, error) {
	if !a.inBounds(i) {
		return 0, errs.ErrIndexOutOfBounds
	}

	return decodeDouble(a.data, a.fields, i)
}

// GetDoubleOrDefault returns the DOUBLE value at index i, or def on any failure.
func (a *Array) GetDoubleOrDefault(i int, def float64) float64 {
	v, err := a.GetDouble(i)
	if err != nil {
		return def
	}

	return v
}

// GetBoolean returns the BOOLEAN value at index i.
func (a *Array) GetBoolean(i int) (bool, error) {
	if !a.inBounds(i) {
		return false, errs.ErrIndexOutOfBounds
	}

	return decodeBoolean(a.data, a.fields, i)
}

// GetBooleanOrDefault returns the BOOLEAN value at index i, or def on any failure.
func (a *Array) GetBooleanOrDefault(i int, def bool) bool {
	v, err := a.GetBoolean(i)
	if err != nil {
		return def
	}

	return v
}

// GetDateTime returns the DATE_TIME value at index i.
func (a *Array) GetDateTime(i int) (int64, error) {
	if !a.inBounds(i) {
		return 0, errs.ErrIndexOutOfBounds
	}

	return decodeDateTime(a.data, a.fields, i)
}

// GetDateTimeOrDefault returns the DATE_TIME value at index i, or def on any failure.
func (a *Array) GetDateTimeOrDefault(i int, def int64) int64 {
	v, err := a.GetDateTime(i)
	if err != nil {
		return def
	}

	return v
}

// GetString returns the string value at index i.
func (a *Array) GetString(i int) (string, error) {
	if !a.inBounds(i) {
		return "", errs.ErrIndexOutOfBounds
	}

	return decodeString(a.data, a.cache, a.fields, i)
}

// GetStringOrDefault returns the string value at index i, or def on any failure.
func (a *Array) GetStringOrDefault(i int, def string) string {
	if !a.inBounds(i) {
		return def
	}
	if a.fields[i].Tag == tag.Null {
		return def
	}
	v, err := decodeString(a.data, a.cache, a.fields, i)
	if err != nil {
		return def
	}

	return v
}

// GetObjectID returns the OBJECT_ID hex at index i.
func (a *Array) GetObjectID(i int) (string, error) {
	if !a.inBounds(i) {
		return "", errs.ErrIndexOutOfBounds
	}

	return decodeObjectID(a.data, a.cache, a.fields, i)
}

// GetObjectIDOrDefault returns the OBJECT_ID hex at index i, or def on any failure.
func (a *Array) GetObjectIDOrDefault(i int, def string) string {
	v, err := a.GetObjectID(i)
	if err != nil {
		return def
	}

	return v
}

// GetBinary returns a fresh copy of the BINARY payload at index i.
func (a *Array) GetBinary(i int) ([]byte, error) {
	if !a.inBounds(i) {
		return nil, errs.ErrIndexOutOfBounds
	}

	return decodeBinary(a.data, a.cache, a.fields, i)
}

// GetBinaryOrDefault returns the BINARY payload at index i, or def on any failure.
func (a *Array) GetBinaryOrDefault(i int, def []byte) []byte {
	v, err := a.GetBinary(i)
	if err != nil {
		return def
	}

	return v
}

// GetDocument returns a nested indexed view over the DOCUMENT payload at index i.
func (a *Array) GetDocument(i int) (*Document, error) {
	if !a.inBounds(i) {
		return nil, errs.ErrIndexOutOfBounds
	}

	return decodeDocument(a.data, a.cache, a.fields, i)
}

// GetDocumentOrDefault returns the nested view at index i, or def on any failure.
func (a *Array) GetDocumentOrDefault(i int, def *Document) *Document {
	v, err := a.GetDocument(i)
	if err != nil {
		return def
	}

	return v
}

// GetArray returns a nested indexed array view over the ARRAY payload at index i.
func (a *Array) GetArray(i int) (*Array, error) {
	if !a.inBounds(i) {
		return nil, errs.ErrIndexOutOfBounds
	}

	return decodeArray(a.data, a.cache, a.fields, i)
}

// GetArrayOrDefault returns the nested array view at index i, or def on any failure.
func (a *Array) GetArrayOrDefault(i int, def *Array) *Array {
	v, err := a.GetArray(i)
	if err != nil {
		return def
	}

	return v
}

// Get is the untyped accessor. An out-of-range index returns a Value
// with Present == false.
func (a *Array) Get(i int) Value {
	if !a.inBounds(i) {
		return Value{Present: false}
	}

	v, err := decodeGet(a.data, a.cache, a.fields, i)
	if err != nil {
		return Value{Present: false}
	}

	return v
}

// Contains reports whether i is a valid element index.
func (a *Array) Contains(i int) bool {
	return a.inBounds(i)
}

// IsNull reports whether index i is in range and tagged NULL or UNDEFINED.
func (a *Array) IsNull(i int) bool {
	if !a.inBounds(i) {
		return false
	}

	return a.fields[i].Tag == tag.Null || a.fields[i].Tag == tag.Undefined
}

// TypeOf returns the stored tag at index i, or tag.None if out of range.
func (a *Array) TypeOf(i int) tag.Type {
	if !a.inBounds(i) {
		return tag.None
	}

	return a.fields[i].Tag
}
