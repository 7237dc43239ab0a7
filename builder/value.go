package builder

import (
	"fmt"
	"slices"

	"github.com/zerocopy-bson/bson/errs"
	"github.com/zerocopy-bson/bson/internal/cache"
	"github.com/zerocopy-bson/bson/tag"
)

// Value is the untyped result of Document.Get/Array.Get: a tag plus its
// decoded payload, or Present == false for an absent field/index.
type Value struct {
	Tag     tag.Type
	Data    any
	Present bool
}

func fieldNotFound(name string) error {
	return fmt.Errorf("%w: field %q", errs.ErrFieldNotFound, name)
}

func typeMismatch(name, expected string, got tag.Type) error {
	return fmt.Errorf("%w: field %q is %s, not %s", errs.ErrTypeMismatch, name, got, expected)
}

func indexOutOfBounds(i int) error {
	return fmt.Errorf("%w: index %d", errs.ErrIndexOutOfBounds, i)
}

func typeMismatchIndex(i int, expected string, got tag.Type) error {
	return fmt.Errorf("%w: index %d is %s, not %s", errs.ErrTypeMismatch, i, got, expected)
}

// Document is the immutable, builder-backed document value produced by
// DocumentBuilder.Build. Unlike view.Document it does not borrow a byte
// slice: every value already lives in one of the six parallel columns,
// decided at append time. The cache is only consulted to memoize
// decompression of a BINARY column entry.
type Document struct {
	cols        columnSet
	names       []string
	nameToEntry map[string]int
	cache       *cache.Cache
}

func (d *Document) Size() int     { return d.cols.size() }
func (d *Document) IsEmpty() bool { return d.cols.size() == 0 }

// FieldNames returns the document's field names in append order. Order
// is not part of the contract; callers that depend on BSON's
// name-hash-sorted directory order should use a parsed view.Document
// instead.
func (d *Document) FieldNames() []string {
	out := make([]string, len(d.names))
	copy(out, d.names)

	return out
}

func (d *Document) Contains(name string) bool {
	_, ok := d.nameToEntry[name]

	return ok
}

func (d *Document) TypeOf(name string) tag.Type {
	idx, ok := d.nameToEntry[name]
	if !ok {
		return tag.None
	}

	return d.cols.tags[idx]
}

func (d *Document) IsNull(name string) bool {
	t := d.TypeOf(name)

	return t == tag.Null || t == tag.Undefined
}

// Get returns the untyped value at name, or Present == false if name is
// absent.
func (d *Document) Get(name string) Value {
	idx, ok := d.nameToEntry[name]
	if !ok {
		return Value{Tag: tag.None}
	}

	return d.valueAt(idx)
}

func (d *Document) valueAt(idx int) Value {
	t := d.cols.tags[idx]
	li := d.cols.localIndices[idx]

	switch t { //nolint:exhaustive
	case tag.Int32:
		return Value{Tag: t, Data: d.cols.ints[li], Present: true}
	case tag.Int64, tag.Timestamp, tag.DateTime:
		return Value{Tag: t, Data: d.cols.longs[li], Present: true}
	case tag.Double:
		return Value{Tag: t, Data: d.cols.doubles[li], Present: true}
	case tag.Boolean:
		return Value{Tag: t, Data: d.cols.bools.get(int(li)), Present: true}
	case tag.String, tag.JavaScript, tag.Symbol, tag.ObjectID:
		return Value{Tag: t, Data: d.cols.strings[li], Present: true}
	case tag.Binary:
		cv := d.cols.complex[li]
		v, err := d.cache.GetOrCompute(idx, func() (any, error) { return decodeBinary(cv) })
		if err != nil {
			return Value{Tag: t, Present: true}
		}

		return Value{Tag: t, Data: v, Present: true}
	case tag.Document:
		return Value{Tag: t, Data: d.cols.complex[li].document, Present: true}
	case tag.Array:
		return Value{Tag: t, Data: d.cols.complex[li].array, Present: true}
	default:
		return Value{Tag: t, Present: true}
	}
}

func (d *Document) GetInt32(name string) (int32, error) {
	idx, ok := d.nameToEntry[name]
	if !ok {
		return 0, fieldNotFound(name)
	}
	if d.cols.tags[idx] != tag.Int32 {
		return 0, typeMismatch(name, "INT32", d.cols.tags[idx])
	}

	return d.cols.ints[d.cols.localIndices[idx]], nil
}

func (d *Document) GetInt32OrDefault(name string, def int32) int32 {
	v, err := d.GetInt32(name)
	if err != nil {
		return def
	}

	return v
}

func (d *Document) GetInt64(name string) (int64, error) {
	idx, ok := d.nameToEntry[name]
	if !ok {
		return 0, fieldNotFound(name)
	}
	if d.cols.tags[idx] != tag.Int64 {
		return 0, typeMismatch(name, "INT64", d.cols.tags[idx])
	}

	return d.cols.longs[d.cols.localIndices[idx]], nil
}

func (d *Document) GetInt64OrDefault(name string, def int64) int64 {
	v, err := d.GetInt64(name)
	if err != nil {
		return def
	}

	return v
}

func (d *Document) GetDouble(name string) (float64, error) {
	idx, ok := d.nameToEntry[name]
	if !ok {
		return 0, fieldNotFound(name)
	}
	if d.cols.tags[idx] != tag.Double {
		return 0, typeMismatch(name, "DOUBLE", d.cols.tags[idx])
	}

	return d.cols.doubles[d.cols.localIndices[idx]], nil
}

func (d *Document) GetDoubleOrDefault(name string, def float64) float64 {
	v, err := d.GetDouble(name)
	if err != nil {
		return def
	}

	return v
}

func (d *Document) GetBoolean(name string) (bool, error) {
	idx, ok := d.nameToEntry[name]
	if !ok {
		return false, fieldNotFound(name)
	}
	if d.cols.tags[idx] != tag.Boolean {
		return false, typeMismatch(name, "BOOLEAN", d.cols.tags[idx])
	}

	return d.cols.bools.get(int(d.cols.localIndices[idx])), nil
}

func (d *Document) GetBooleanOrDefault(name string, def bool) bool {
	v, err := d.GetBoolean(name)
	if err != nil {
		return def
	}

	return v
}

func (d *Document) GetDateTime(name string) (int64, error) {
	idx, ok := d.nameToEntry[name]
	if !ok {
		return 0, fieldNotFound(name)
	}
	if d.cols.tags[idx] != tag.DateTime {
		return 0, typeMismatch(name, "DATE_TIME", d.cols.tags[idx])
	}

	return d.cols.longs[d.cols.localIndices[idx]], nil
}

func (d *Document) GetDateTimeOrDefault(name string, def int64) int64 {
	v, err := d.GetDateTime(name)
	if err != nil {
		return def
	}

	return v
}

func (d *Document) GetString(name string) (string, error) {
	idx, ok := d.nameToEntry[name]
	if !ok {
		return "", fieldNotFound(name)
	}
	if t := d.cols.tags[idx]; t != tag.String && t != tag.JavaScript && t != tag.Symbol {
		return "", typeMismatch(name, "STRING", t)
	}

	return d.cols.strings[d.cols.localIndices[idx]], nil
}

func (d *Document) GetStringOrDefault(name, def string) string {
	v, err := d.GetString(name)
	if err != nil {
		return def
	}

	return v
}

func (d *Document) GetObjectID(name string) (string, error) {
	idx, ok := d.nameToEntry[name]
	if !ok {
		return "", fieldNotFound(name)
	}
	if d.cols.tags[idx] != tag.ObjectID {
		return "", typeMismatch(name, "OBJECT_ID", d.cols.tags[idx])
	}

	return d.cols.strings[d.cols.localIndices[idx]], nil
}

func (d *Document) GetObjectIDOrDefault(name, def string) string {
	v, err := d.GetObjectID(name)
	if err != nil {
		return def
	}

	return v
}

func (d *Document) GetBinary(name string) (subtype byte, data []byte, err error) {
	idx, ok := d.nameToEntry[name]
	if !ok {
		return 0, nil, fieldNotFound(name)
	}
	if d.cols.tags[idx] != tag.Binary {
		return 0, nil, typeMismatch(name, "BINARY", d.cols.tags[idx])
	}

	cv := d.cols.complex[d.cols.localIndices[idx]]

	raw, err := d.cache.GetOrCompute(idx, func() (any, error) { return decodeBinary(cv) })
	if err != nil {
		return 0, nil, fmt.Errorf("bson: decoding binary field %q: %w", name, err)
	}

	return cv.binarySubtype, raw.([]byte), nil //nolint:forcetypeassert
}

func (d *Document) GetBinaryOrDefault(name string, subtypeDef byte, dataDef []byte) (byte, []byte) {
	s, v, err := d.GetBinary(name)
	if err != nil {
		return subtypeDef, dataDef
	}

	return s, v
}

func (d *Document) GetDocument(name string) (*Document, error) {
	idx, ok := d.nameToEntry[name]
	if !ok {
		return nil, fieldNotFound(name)
	}
	if d.cols.tags[idx] != tag.Document {
		return nil, typeMismatch(name, "DOCUMENT", d.cols.tags[idx])
	}

	return d.cols.complex[d.cols.localIndices[idx]].document, nil
}

func (d *Document) GetDocumentOrDefault(name string, def *Document) *Document {
	v, err := d.GetDocument(name)
	if err != nil {
		return def
	}

	return v
}

func (d *Document) GetArray(name string) (*Array, error) {
	idx, ok := d.nameToEntry[name]
	if !ok {
		return nil, fieldNotFound(name)
	}
	if d.cols.tags[idx] != tag.Array {
		return nil, typeMismatch(name, "ARRAY", d.cols.tags[idx])
	}

	return d.cols.complex[d.cols.localIndices[idx]].array, nil
}

func (d *Document) GetArrayOrDefault(name string, def *Array) *Array {
	v, err := d.GetArray(name)
	if err != nil {
		return def
	}

	return v
}

// Equal reports whether d and other hold the same fields under a
// name-keyed multiset comparison: field order is not significant, only
// which names are present and what each one holds. Equality between a
// Document and any view.Document is intentionally undefined and not
// implemented by this method (the two types don't satisfy a common
// interface).
func (d *Document) Equal(other *Document) bool {
	if other == nil {
		return false
	}
	if len(d.nameToEntry) != len(other.nameToEntry) {
		return false
	}

	for name, idx := range d.nameToEntry {
		oidx, ok := other.nameToEntry[name]
		if !ok || !entryEqual(d.cols, idx, other.cols, oidx) {
			return false
		}
	}

	return true
}

// Array is the immutable, builder-backed array value produced by
// ArrayBuilder.Build. Elements are identified by position;
// append order is logical index order.
type Array struct {
	cols  columnSet
	cache *cache.Cache
}

func (a *Array) Size() int     { return a.cols.size() }
func (a *Array) IsEmpty() bool { return a.cols.size() == 0 }

func (a *Array) inBounds(i int) bool { return i >= 0 && i < a.cols.size() }

func (a *Array) Contains(i int) bool { return a.inBounds(i) }

func (a *Array) TypeOf(i int) tag.Type {
	if !a.inBounds(i) {
		return tag.None
	}

	return a.cols.tags[i]
}

func (a *Array) IsNull(i int) bool {
	return a.inBounds(i) && (a.cols.tags[i] == tag.Null || a.cols.tags[i] == tag.Undefined)
}

// Get returns the untyped value at i, or Present == false if i is out of
// range; a plain Get never panics, it returns the absent sentinel.
func (a *Array) Get(i int) Value {
	if !a.inBounds(i) {
		return Value{Tag: tag.None}
	}

	return a.valueAt(i)
}

func (a *Array) valueAt(idx int) Value {
	t := a.cols.tags[idx]
	li := a.cols.localIndices[idx]

	switch t { //nolint:exhaustive
	case tag.Int32:
		return Value{Tag: t, Data: a.cols.ints[li], Present: true}
	case tag.Int64, tag.Timestamp, tag.DateTime:
		return Value{Tag: t, Data: a.cols.longs[li], Present: true}
	case tag.Double:
		return Value{Tag: t, Data: a.cols.doubles[li], Present: true}
	case tag.Boolean:
		return Value{Tag: t, Data: a.cols.bools.get(int(li)), Present: true}
	case tag.String, tag.JavaScript, tag.Symbol, tag.ObjectID:
		return Value{Tag: t, Data: a.cols.strings[li], Present: true}
	case tag.Binary:
		cv := a.cols.complex[li]
		v, err := a.cache.GetOrCompute(idx, func() (any, error) { return decodeBinary(cv) })
		if err != nil {
			return Value{Tag: t, Present: true}
		}

		return Value{Tag: t, Data: v, Present: true}
	case tag.Document:
		return Value{Tag: t, Data: a.cols.complex[li].document, Present: true}
	case tag.Array:
		return Value{Tag: t, Data: a.cols.complex[li].array, Present: true}
	default:
		return Value{Tag: t, Present: true}
	}
}

func (a *Array) GetInt32(i int) (int32, error) {
	if !a.inBounds(i) {
		return 0, indexOutOfBounds(i)
	}
	if a.cols.tags[i] != tag.Int32 {
		return 0, typeMismatchIndex(i, "INT32", a.cols.tags[i])
	}

	return a.cols.ints[a.cols.localIndices[i]], nil
}

func (a *Array) GetInt32OrDefault(i int, def int32) int32 {
	v, err := a.GetInt32(i)
	if err != nil {
		return def
	}

	return v
}

func (a *Array) GetInt64(i int) (int64, error) {
	if !a.inBounds(i) {
		return 0, indexOutOfBounds(i)
	}
	if a.cols.tags[i] != tag.Int64 {
		return 0, typeMismatchIndex(i, "INT64", a.cols.tags[i])
	}

	return a.cols.longs[a.cols.localIndices[i]], nil
}

func (a *Array) GetInt64OrDefault(i int, def int64) int64 {
	v, err := a.GetInt64(i)
	if err != nil {
		return def
	}

	return v
}

func (a *Array) GetDouble(i int) (float64, error) {
	if !a.inBounds(i) {
		return 0, indexOutOfBounds(i)
	}
	if a.cols.tags[i] != tag.Double {
		return 0, typeMismatchIndex(i, "DOUBLE", a.cols.tags[i])
	}

	return a.cols.doubles[a.cols.localIndices[i]], nil
}

func (a *Array) GetDoubleOrDefault(i int, def float64) float64 {
	v, err := a.GetDouble(i)
	if err != nil {
		return def
	}

	return v
}

func (a *Array) GetBoolean(i int) (bool, error) {
	if !a.inBounds(i) {
		return false, indexOutOfBounds(i)
	}
	if a.cols.tags[i] != tag.Boolean {
		return false, typeMismatchIndex(i, "BOOLEAN", a.cols.tags[i])
	}

	return a.cols.bools.get(int(a.cols.localIndices[i])), nil
}

func (a *Array) GetBooleanOrDefault(i int, def bool) bool {
	v, err := a.GetBoolean(i)
	if err != nil {
		return def
	}

	return v
}

func (a *Array) GetString(i int) (string, error) {
	if !a.inBounds(i) {
		return "", indexOutOfBounds(i)
	}
	if t := a.cols.tags[i]; t != tag.String && t != tag.JavaScript && t != tag.Symbol {
		return "", typeMismatchIndex(i, "STRING", t)
	}

	return a.cols.strings[a.cols.localIndices[i]], nil
}

func (a *Array) GetStringOrDefault(i int, def string) string {
	v, err := a.GetString(i)
	if err != nil {
		return def
	}

	return v
}

func (a *Array) GetDocument(i int) (*Document, error) {
	if !a.inBounds(i) {
		return nil, indexOutOfBounds(i)
	}
	if a.cols.tags[i] != tag.Document {
		return nil, typeMismatchIndex(i, "DOCUMENT", a.cols.tags[i])
	}

	return a.cols.complex[a.cols.localIndices[i]].document, nil
}

func (a *Array) GetDocumentOrDefault(i int, def *Document) *Document {
	v, err := a.GetDocument(i)
	if err != nil {
		return def
	}

	return v
}

func (a *Array) GetArray(i int) (*Array, error) {
	if !a.inBounds(i) {
		return nil, indexOutOfBounds(i)
	}
	if a.cols.tags[i] != tag.Array {
		return nil, typeMismatchIndex(i, "ARRAY", a.cols.tags[i])
	}

	return a.cols.complex[a.cols.localIndices[i]].array, nil
}

func (a *Array) GetArrayOrDefault(i int, def *Array) *Array {
	v, err := a.GetArray(i)
	if err != nil {
		return def
	}

	return v
}

func (a *Array) GetBinary(i int) (subtype byte, data []byte, err error) {
	if !a.inBounds(i) {
		return 0, nil, indexOutOfBounds(i)
	}
	if a.cols.tags[i] != tag.Binary {
		return 0, nil, typeMismatchIndex(i, "BINARY", a.cols.tags[i])
	}

	cv := a.cols.complex[a.cols.localIndices[i]]

	raw, err := a.cache.GetOrCompute(i, func() (any, error) { return decodeBinary(cv) })
	if err != nil {
		return 0, nil, fmt.Errorf("bson: decoding binary index %d: %w", i, err)
	}

	return cv.binarySubtype, raw.([]byte), nil //nolint:forcetypeassert
}

func (a *Array) GetBinaryOrDefault(i int, subtypeDef byte, dataDef []byte) (byte, []byte) {
	s, v, err := a.GetBinary(i)
	if err != nil {
		return subtypeDef, dataDef
	}

	return s, v
}

// Equal reports whether a and other are built from identical tags,
// local indices, and column contents, compared in order.
func (a *Array) Equal(other *Array) bool {
	if other == nil {
		return false
	}
	if !slices.Equal(a.cols.tags, other.cols.tags) {
		return false
	}
	if !slices.Equal(a.cols.localIndices, other.cols.localIndices) {
		return false
	}

	return columnsEqual(a.cols, other.cols)
}

// entryEqual compares the entry at index ai in a to the entry at index bi
// in b by tag and value, resolving each side's own local index into its
// own home column rather than assuming the two entries share a position.
// This is what makes Document.Equal's per-name comparison correct
// regardless of append order.
func entryEqual(a columnSet, ai int, b columnSet, bi int) bool {
	t := a.tags[ai]
	if t != b.tags[bi] {
		return false
	}

	al, bl := a.localIndices[ai], b.localIndices[bi]

	switch t { //nolint:exhaustive
	case tag.Int32:
		return a.ints[al] == b.ints[bl]
	case tag.Int64, tag.Timestamp, tag.DateTime:
		return a.longs[al] == b.longs[bl]
	case tag.Double:
		return a.doubles[al] == b.doubles[bl]
	case tag.Boolean:
		return a.bools.get(int(al)) == b.bools.get(int(bl))
	case tag.String, tag.JavaScript, tag.Symbol, tag.ObjectID:
		return a.strings[al] == b.strings[bl]
	case tag.Binary, tag.Document, tag.Array, tag.Regex, tag.JavaScriptWScope:
		return complexEqual(a.complex[al], b.complex[bl])
	default:
		// Null, Undefined, MinKey, MaxKey carry no payload: a tag match
		// above is already the whole comparison.
		return true
	}
}

// columnsEqual compares the six value columns (everything but tags and
// local_indices, which callers compare themselves) element-wise.
func columnsEqual(a, b columnSet) bool {
	if !slices.Equal(a.ints, b.ints) {
		return false
	}
	if !slices.Equal(a.longs, b.longs) {
		return false
	}
	if !slices.Equal(a.doubles, b.doubles) {
		return false
	}
	if a.bools.len() != b.bools.len() {
		return false
	}
	for i := 0; i < a.bools.len(); i++ {
		if a.bools.get(i) != b.bools.get(i) {
			return false
		}
	}
	if !slices.Equal(a.strings, b.strings) {
		return false
	}
	if len(a.complex) != len(b.complex) {
		return false
	}
	for i := range a.complex {
		if !complexEqual(a.complex[i], b.complex[i]) {
			return false
		}
	}

	return true
}

func complexEqual(a, b complexValue) bool {
	if a.kind != b.kind {
		return false
	}

	switch a.kind {
	case complexDocument:
		if a.document == nil || b.document == nil {
			return a.document == b.document
		}

		return a.document.Equal(b.document)
	case complexArray:
		if a.array == nil || b.array == nil {
			return a.array == b.array
		}

		return a.array.Equal(b.array)
	case complexBinary:
		da, errA := decodeBinary(a)
		db, errB := decodeBinary(b)
		if errA != nil || errB != nil {
			return false
		}

		return a.binarySubtype == b.binarySubtype && slices.Equal(da, db)
	case complexRegex:
		return a.regexPattern == b.regexPattern && a.regexOptions == b.regexOptions
	case complexJavaScriptWithScope:
		if a.jsCode != b.jsCode {
			return false
		}
		if a.jsScope == nil || b.jsScope == nil {
			return a.jsScope == b.jsScope
		}

		return a.jsScope.Equal(b.jsScope)
	default:
		return false
	}
}
