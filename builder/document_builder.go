package builder

import (
	"fmt"

	"github.com/zerocopy-bson/bson/errs"
	"github.com/zerocopy-bson/bson/internal/cache"
	"github.com/zerocopy-bson/bson/internal/options"
	"github.com/zerocopy-bson/bson/tag"
)

// builderState tracks the fresh/populated/spent lifecycle shared by
// DocumentBuilder and ArrayBuilder.
type builderState uint8

const (
	stateFresh builderState = iota
	statePopulated
	stateSpent
)

// DocumentBuilder constructs an immutable Document by fluent,
// field-at-a-time appends. It is single-owner: its
// methods are not safe to call concurrently from multiple goroutines
// against the same instance. Once Build returns, the resulting Document
// is safe for concurrent readers.
//
// Appends after Build (without an intervening Reset) are no-ops: Build
// hands its column slices directly to the returned Document rather than
// copying them, so further mutation of a spent builder must not be
// allowed to reach the slices a caller may already be reading.
type DocumentBuilder struct {
	cols        columnSet
	names       []string
	nameToEntry map[string]int
	state       builderState
	cfg         config
}

// NewDocumentBuilder creates a fresh DocumentBuilder.
func NewDocumentBuilder(opts ...Option) (*DocumentBuilder, error) {
	cfg := defaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	return &DocumentBuilder{
		cols:        newColumnSet(cfg.estimatedFields),
		names:       make([]string, 0, cfg.estimatedFields),
		nameToEntry: make(map[string]int, cfg.estimatedFields),
		cfg:         cfg,
	}, nil
}

// entryFor returns the entry index to write name into: either an
// existing entry (overwrite, last-writer-wins) or a newly appended one.
func (b *DocumentBuilder) entryFor(name string) (idx int, isNew bool) {
	if idx, ok := b.nameToEntry[name]; ok {
		return idx, false
	}

	b.names = append(b.names, name)

	return len(b.names) - 1, true
}

func (b *DocumentBuilder) commit(name string, idx int, isNew bool, t tag.Type, localIdx int32) {
	if isNew {
		b.cols.appendEntry(t, localIdx)
		b.nameToEntry[name] = idx
	} else {
		b.cols.overwriteEntry(idx, t, localIdx)
	}

	b.state = statePopulated
}

// PutInt32 appends or overwrites name with an INT32 value.
func (b *DocumentBuilder) PutInt32(name string, v int32) *DocumentBuilder {
	if b.state == stateSpent {
		return b
	}

	idx, isNew := b.entryFor(name)
	local := int32(len(b.cols.ints)) //nolint:gosec
	b.cols.ints = append(b.cols.ints, v)
	b.commit(name, idx, isNew, tag.Int32, local)

	return b
}

// PutInt64 appends or overwrites name with an INT64 value.
func (b *DocumentBuilder) PutInt64(name string, v int64) *DocumentBuilder {
	if b.state == stateSpent {
		return b
	}

	idx, isNew := b.entryFor(name)
	local := int32(len(b.cols.longs)) //nolint:gosec
	b.cols.longs = append(b.cols.longs, v)
	b.commit(name, idx, isNew, tag.Int64, local)

	return b
}

// PutTimestamp appends or overwrites name with a TIMESTAMP value.
func (b *DocumentBuilder) PutTimestamp(name string, v int64) *DocumentBuilder {
	if b.state == stateSpent {
		return b
	}

	idx, isNew := b.entryFor(name)
	local := int32(len(b.cols.longs)) //nolint:gosec
	b.cols.longs = append(b.cols.longs, v)
	b.commit(name, idx, isNew, tag.Timestamp, local)

	return b
}

// PutDateTime appends or overwrites name with a DATE_TIME value
// expressed as milliseconds since the Unix epoch.
func (b *DocumentBuilder) PutDateTime(name string, millis int64) *DocumentBuilder {
	if b.state == stateSpent {
		return b
	}

	idx, isNew := b.entryFor(name)
	local := int32(len(b.cols.longs)) //nolint:gosec
	b.cols.longs = append(b.cols.longs, millis)
	b.commit(name, idx, isNew, tag.DateTime, local)

	return b
}

// PutDouble appends or overwrites name with a DOUBLE value.
func (b *DocumentBuilder) PutDouble(name string, v float64) *DocumentBuilder {
	if b.state == stateSpent {
		return b
	}

	idx, isNew := b.entryFor(name)
	local := int32(len(b.cols.doubles)) //nolint:gosec
	b.cols.doubles = append(b.cols.doubles, v)
	b.commit(name, idx, isNew, tag.Double, local)

	return b
}

// PutBoolean appends or overwrites name with a BOOLEAN value.
func (b *DocumentBuilder) PutBoolean(name string, v bool) *DocumentBuilder {
	if b.state == stateSpent {
		return b
	}

	idx, isNew := b.entryFor(name)
	local := int32(b.cols.bools.push(v)) //nolint:gosec
	b.commit(name, idx, isNew, tag.Boolean, local)

	return b
}

// PutString appends or overwrites name with a STRING value.
func (b *DocumentBuilder) PutString(name, v string) *DocumentBuilder {
	if b.state == stateSpent {
		return b
	}

	idx, isNew := b.entryFor(name)
	local := int32(len(b.cols.strings)) //nolint:gosec
	b.cols.strings = append(b.cols.strings, v)
	b.commit(name, idx, isNew, tag.String, local)

	return b
}

// PutObjectID appends or overwrites name with a 12-byte OBJECT_ID value,
// stored as its 24-char lowercase hex rendering.
func (b *DocumentBuilder) PutObjectID(name string, id [12]byte) *DocumentBuilder {
	if b.state == stateSpent {
		return b
	}

	idx, isNew := b.entryFor(name)
	local := int32(len(b.cols.strings)) //nolint:gosec
	b.cols.strings = append(b.cols.strings, objectIDHex(id))
	b.commit(name, idx, isNew, tag.ObjectID, local)

	return b
}

// PutJavaScript appends or overwrites name with a JAVASCRIPT code value.
func (b *DocumentBuilder) PutJavaScript(name, code string) *DocumentBuilder {
	if b.state == stateSpent {
		return b
	}

	idx, isNew := b.entryFor(name)
	local := int32(len(b.cols.strings)) //nolint:gosec
	b.cols.strings = append(b.cols.strings, code)
	b.commit(name, idx, isNew, tag.JavaScript, local)

	return b
}

// PutSymbol appends or overwrites name with a SYMBOL value.
func (b *DocumentBuilder) PutSymbol(name, sym string) *DocumentBuilder {
	if b.state == stateSpent {
		return b
	}

	idx, isNew := b.entryFor(name)
	local := int32(len(b.cols.strings)) //nolint:gosec
	b.cols.strings = append(b.cols.strings, sym)
	b.commit(name, idx, isNew, tag.Symbol, local)

	return b
}

// PutNull appends or overwrites name with a NULL value.
func (b *DocumentBuilder) PutNull(name string) *DocumentBuilder {
	if b.state == stateSpent {
		return b
	}

	idx, isNew := b.entryFor(name)
	b.commit(name, idx, isNew, tag.Null, 0)

	return b
}

// PutUndefined appends or overwrites name with an UNDEFINED value.
func (b *DocumentBuilder) PutUndefined(name string) *DocumentBuilder {
	if b.state == stateSpent {
		return b
	}

	idx, isNew := b.entryFor(name)
	b.commit(name, idx, isNew, tag.Undefined, 0)

	return b
}

// PutMinKey appends or overwrites name with a MIN_KEY value.
func (b *DocumentBuilder) PutMinKey(name string) *DocumentBuilder {
	if b.state == stateSpent {
		return b
	}

	idx, isNew := b.entryFor(name)
	b.commit(name, idx, isNew, tag.MinKey, 0)

	return b
}

// PutMaxKey appends or overwrites name with a MAX_KEY value.
func (b *DocumentBuilder) PutMaxKey(name string) *DocumentBuilder {
	if b.state == stateSpent {
		return b
	}

	idx, isNew := b.entryFor(name)
	b.commit(name, idx, isNew, tag.MaxKey, 0)

	return b
}

// PutBinary appends or overwrites name with a BINARY value. subtype is
// the BSON binary subtype byte; data is copied (and, per
// WithBinaryCompression, possibly compressed) into the builder.
func (b *DocumentBuilder) PutBinary(name string, subtype byte, data []byte) *DocumentBuilder {
	if b.state == stateSpent {
		return b
	}

	idx, isNew := b.entryFor(name)
	stored, compressed := encodeBinary(b.cfg, data)
	cv := complexValue{
		kind:          complexBinary,
		binarySubtype: subtype,
		binaryData:    stored,
		compressed:    compressed,
		codec:         b.cfg.compressionCodec,
	}
	local := int32(len(b.cols.complex)) //nolint:gosec
	b.cols.complex = append(b.cols.complex, cv)
	b.commit(name, idx, isNew, tag.Binary, local)

	return b
}

// PutDocument appends or overwrites name with a nested builder-backed
// Document value.
func (b *DocumentBuilder) PutDocument(name string, v *Document) *DocumentBuilder {
	if b.state == stateSpent {
		return b
	}

	idx, isNew := b.entryFor(name)
	local := int32(len(b.cols.complex)) //nolint:gosec
	b.cols.complex = append(b.cols.complex, complexValue{kind: complexDocument, document: v})
	b.commit(name, idx, isNew, tag.Document, local)

	return b
}

// PutArray appends or overwrites name with a nested builder-backed Array
// value.
func (b *DocumentBuilder) PutArray(name string, v *Array) *DocumentBuilder {
	if b.state == stateSpent {
		return b
	}

	idx, isNew := b.entryFor(name)
	local := int32(len(b.cols.complex)) //nolint:gosec
	b.cols.complex = append(b.cols.complex, complexValue{kind: complexArray, array: v})
	b.commit(name, idx, isNew, tag.Array, local)

	return b
}

// PutRegex appends or overwrites name with a REGEX value.
func (b *DocumentBuilder) PutRegex(name, pattern, regexOptions string) *DocumentBuilder {
	if b.state == stateSpent {
		return b
	}

	idx, isNew := b.entryFor(name)
	local := int32(len(b.cols.complex)) //nolint:gosec
	b.cols.complex = append(b.cols.complex, complexValue{
		kind:         complexRegex,
		regexPattern: pattern,
		regexOptions: regexOptions,
	})
	b.commit(name, idx, isNew, tag.Regex, local)

	return b
}

// PutJavaScriptWithScope appends or overwrites name with a
// JAVASCRIPT_W_SCOPE value.
func (b *DocumentBuilder) PutJavaScriptWithScope(name, code string, scope *Document) *DocumentBuilder {
	if b.state == stateSpent {
		return b
	}

	idx, isNew := b.entryFor(name)
	local := int32(len(b.cols.complex)) //nolint:gosec
	b.cols.complex = append(b.cols.complex, complexValue{
		kind:    complexJavaScriptWithScope,
		jsCode:  code,
		jsScope: scope,
	})
	b.commit(name, idx, isNew, tag.JavaScriptWScope, local)

	return b
}

// Build produces an immutable Document from the builder's current
// contents and transitions the builder to the spent state. A second
// Build without an intervening Reset fails with ErrIllegalState.
func (b *DocumentBuilder) Build() (*Document, error) {
	if b.state == stateSpent {
		return nil, fmt.Errorf("%w: Build called on a spent DocumentBuilder", errs.ErrIllegalState)
	}

	doc := &Document{
		cols:        b.cols,
		names:       b.names,
		nameToEntry: b.nameToEntry,
		cache:       cache.New(b.cols.size()),
	}
	b.state = stateSpent

	return doc, nil
}

// Reset returns the builder to the fresh state, discarding all appended
// fields and allocating new backing columns so a previously built
// Document is unaffected.
func (b *DocumentBuilder) Reset() *DocumentBuilder {
	b.cols = newColumnSet(b.cfg.estimatedFields)
	b.names = make([]string, 0, b.cfg.estimatedFields)
	b.nameToEntry = make(map[string]int, b.cfg.estimatedFields)
	b.state = stateFresh

	return b
}

// EstimateSize is a pre-allocation hint with no observable effect on
// the built value; it grows the name slice's capacity ahead of future
// appends.
func (b *DocumentBuilder) EstimateSize(n int) *DocumentBuilder {
	if n <= cap(b.names) {
		return b
	}

	grown := make([]string, len(b.names), n)
	copy(grown, b.names)
	b.names = grown

	return b
}
