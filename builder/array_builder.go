package builder

import (
	"fmt"

	"github.com/zerocopy-bson/bson/errs"
	"github.com/zerocopy-bson/bson/internal/cache"
	"github.com/zerocopy-bson/bson/internal/options"
	"github.com/zerocopy-bson/bson/tag"
)

// ArrayBuilder constructs an immutable Array by fluent, positional
// appends. Array elements have no name: the append order
// is the logical index order, matching BSON arrays where element names
// are the numeric string "0", "1", ... and are never chosen by the
// caller. It shares DocumentBuilder's single-owner and no-op-after-spent
// discipline.
type ArrayBuilder struct {
	cols  columnSet
	state builderState
	cfg   config
}

// NewArrayBuilder creates a fresh ArrayBuilder.
func NewArrayBuilder(opts ...Option) (*ArrayBuilder, error) {
	cfg := defaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	return &ArrayBuilder{cols: newColumnSet(cfg.estimatedFields), cfg: cfg}, nil
}

func (b *ArrayBuilder) append(t tag.Type, localIdx int32) {
	b.cols.appendEntry(t, localIdx)
	b.state = statePopulated
}

// PutInt32 appends an INT32 element.
func (b *ArrayBuilder) PutInt32(v int32) *ArrayBuilder {
	if b.state == stateSpent {
		return b
	}

	local := int32(len(b.cols.ints)) //nolint:gosec
	b.cols.ints = append(b.cols.ints, v)
	b.append(tag.Int32, local)

	return b
}

// PutInt64 appends an INT64 element.
func (b *ArrayBuilder) PutInt64(v int64) *ArrayBuilder {
	if b.state == stateSpent {
		return b
	}

	local := int32(len(b.cols.longs)) //nolint:gosec
	b.cols.longs = append(b.cols.longs, v)
	b.append(tag.Int64, local)

	return b
}

// PutTimestamp appends a TIMESTAMP element.
func (b *ArrayBuilder) PutTimestamp(v int64) *ArrayBuilder {
	if b.state == stateSpent {
		return b
	}

	local := int32(len(b.cols.longs)) //nolint:gosec
	b.cols.longs = append(b.cols.longs, v)
	b.append(tag.Timestamp, local)

	return b
}

// PutDateTime appends a DATE_TIME element expressed as milliseconds
// since the Unix epoch.
func (b *ArrayBuilder) PutDateTime(millis int64) *ArrayBuilder {
	if b.state == stateSpent {
		return b
	}

	local := int32(len(b.cols.longs)) //nolint:gosec
	b.cols.longs = append(b.cols.longs, millis)
	b.append(tag.DateTime, local)

	return b
}

// PutDouble appends a DOUBLE element.
func (b *ArrayBuilder) PutDouble(v float64) *ArrayBuilder {
	if b.state == stateSpent {
		return b
	}

	local := int32(len(b.cols.doubles)) //nolint:gosec
	b.cols.doubles = append(b.cols.doubles, v)
	b.append(tag.Double, local)

	return b
}

// PutBoolean appends a BOOLEAN element.
func (b *ArrayBuilder) PutBoolean(v bool) *ArrayBuilder {
	if b.state == stateSpent {
		return b
	}

	local := int32(b.cols.bools.push(v)) //nolint:gosec
	b.append(tag.Boolean, local)

	return b
}

// PutString appends a STRING element.
func (b *ArrayBuilder) PutString(v string) *ArrayBuilder {
	if b.state == stateSpent {
		return b
	}

	local := int32(len(b.cols.strings)) //nolint:gosec
	b.cols.strings = append(b.cols.strings, v)
	b.append(tag.String, local)

	return b
}

// PutObjectID appends an OBJECT_ID element.
func (b *ArrayBuilder) PutObjectID(id [12]byte) *ArrayBuilder {
	if b.state == stateSpent {
		return b
	}

	local := int32(len(b.cols.strings)) //nolint:gosec
	b.cols.strings = append(b.cols.strings, objectIDHex(id))
	b.append(tag.ObjectID, local)

	return b
}

// PutJavaScript appends a JAVASCRIPT element.
func (b *ArrayBuilder) PutJavaScript(code string) *ArrayBuilder {
	if b.state == stateSpent {
		return b
	}

	local := int32(len(b.cols.strings)) //nolint:gosec
	b.cols.strings = append(b.cols.strings, code)
	b.append(tag.JavaScript, local)

	return b
}

// PutSymbol appends a SYMBOL element.
func (b *ArrayBuilder) PutSymbol(sym string) *ArrayBuilder {
	if b.state == stateSpent {
		return b
	}

	local := int32(len(b.cols.strings)) //nolint:gosec
	b.cols.strings = append(b.cols.strings, sym)
	b.append(tag.Symbol, local)

	return b
}

// PutNull appends a NULL element.
func (b *ArrayBuilder) PutNull() *ArrayBuilder {
	if b.state == stateSpent {
		return b
	}

	b.append(tag.Null, 0)

	return b
}

// PutUndefined appends an UNDEFINED element.
func (b *ArrayBuilder) PutUndefined() *ArrayBuilder {
	if b.state == stateSpent {
		return b
	}

	b.append(tag.Undefined, 0)

	return b
}

// PutMinKey appends a MIN_KEY element.
func (b *ArrayBuilder) PutMinKey() *ArrayBuilder {
	if b.state == stateSpent {
		return b
	}

	b.append(tag.MinKey, 0)

	return b
}

// PutMaxKey appends a MAX_KEY element.
func (b *ArrayBuilder) PutMaxKey() *ArrayBuilder {
	if b.state == stateSpent {
		return b
	}

	b.append(tag.MaxKey, 0)

	return b
}

// PutBinary appends a BINARY element. subtype is the BSON binary
// subtype byte; data is copied (and, per WithBinaryCompression,
// possibly compressed) into the builder.
func (b *ArrayBuilder) PutBinary(subtype byte, data []byte) *ArrayBuilder {
	if b.state == stateSpent {
		return b
	}

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
	b.append(tag.Binary, local)

	return b
}

// PutDocument appends a nested builder-backed Document element.
func (b *ArrayBuilder) PutDocument(v *Document) *ArrayBuilder {
	if b.state == stateSpent {
		return b
	}

	local := int32(len(b.cols.complex)) //nolint:gosec
	b.cols.complex = append(b.cols.complex, complexValue{kind: complexDocument, document: v})
	b.append(tag.Document, local)

	return b
}

// PutArray appends a nested builder-backed Array element.
func (b *ArrayBuilder) PutArray(v *Array) *ArrayBuilder {
	if b.state == stateSpent {
		return b
	}

	local := int32(len(b.cols.complex)) //nolint:gosec
	b.cols.complex = append(b.cols.complex, complexValue{kind: complexArray, array: v})
	b.append(tag.Array, local)

	return b
}

// PutRegex appends a REGEX element.
func (b *ArrayBuilder) PutRegex(pattern, regexOptions string) *ArrayBuilder {
	if b.state == stateSpent {
		return b
	}

	local := int32(len(b.cols.complex)) //nolint:gosec
	b.cols.complex = append(b.cols.complex, complexValue{
		kind:         complexRegex,
		regexPattern: pattern,
		regexOptions: regexOptions,
	})
	b.append(tag.Regex, local)

	return b
}

// PutJavaScriptWithScope appends a JAVASCRIPT_W_SCOPE element.
func (b *ArrayBuilder) PutJavaScriptWithScope(code string, scope *Document) *ArrayBuilder {
	if b.state == stateSpent {
		return b
	}

	local := int32(len(b.cols.complex)) //nolint:gosec
	b.cols.complex = append(b.cols.complex, complexValue{
		kind:    complexJavaScriptWithScope,
		jsCode:  code,
		jsScope: scope,
	})
	b.append(tag.JavaScriptWScope, local)

	return b
}

// Build produces an immutable Array from the builder's current contents
// and transitions the builder to the spent state. A second Build without
// an intervening Reset fails with ErrIllegalState.
func (b *ArrayBuilder) Build() (*Array, error) {
	if b.state == stateSpent {
		return nil, fmt.Errorf("%w: Build called on a spent ArrayBuilder", errs.ErrIllegalState)
	}

	arr := &Array{cols: b.cols, cache: cache.New(b.cols.size())}
	b.state = stateSpent

	return arr, nil
}

// Reset returns the builder to the fresh state, discarding all appended
// elements and allocating new backing columns so a previously built
// Array is unaffected.
func (b *ArrayBuilder) Reset() *ArrayBuilder {
	b.cols = newColumnSet(b.cfg.estimatedFields)
	b.state = stateFresh

	return b
}

// EstimateSize is a pre-allocation hint with no observable effect.
func (b *ArrayBuilder) EstimateSize(n int) *ArrayBuilder {
	if n <= cap(b.cols.tags) {
		return b
	}

	grownTags := make([]tag.Type, len(b.cols.tags), n)
	copy(grownTags, b.cols.tags)
	b.cols.tags = grownTags

	grownIdx := make([]int32, len(b.cols.localIndices), n)
	copy(grownIdx, b.cols.localIndices)
	b.cols.localIndices = grownIdx

	return b
}
