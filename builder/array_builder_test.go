package builder

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zerocopy-bson/bson/errs"
	"github.com/zerocopy-bson/bson/tag"
)

func TestArrayBuilder_RoundTrip(t *testing.T) {
	b, err := NewArrayBuilder()
	require.NoError(t, err)

	arr, err := b.PutInt32(10).PutInt32(20).PutInt32(30).Build()
	require.NoError(t, err)
	require.Equal(t, 3, arr.Size())

	v0, err := arr.GetInt32(0)
	require.NoError(t, err)
	require.Equal(t, int32(10), v0)

	v2, err := arr.GetInt32(2)
	require.NoError(t, err)
	require.Equal(t, int32(30), v2)

	_, err = b.Build()
	require.ErrorIs(t, err, errs.ErrIllegalState)

	b.Reset()
	arr2, err := b.PutString("x").Build()
	require.NoError(t, err)
	require.Equal(t, 1, arr2.Size())
}

func TestArrayBuilder_OutOfBounds(t *testing.T) {
	b, err := NewArrayBuilder()
	require.NoError(t, err)

	arr, err := b.PutInt32(1).Build()
	require.NoError(t, err)

	_, err = arr.GetInt32(5)
	require.ErrorIs(t, err, errs.ErrIndexOutOfBounds)

	_, err = arr.GetInt32(-1)
	require.ErrorIs(t, err, errs.ErrIndexOutOfBounds)

	require.False(t, arr.Contains(5))
	require.Equal(t, int32(42), arr.GetInt32OrDefault(5, 42))
}

func TestArrayBuilder_TypeMismatch(t *testing.T) {
	b, err := NewArrayBuilder()
	require.NoError(t, err)

	arr, err := b.PutInt32(1).Build()
	require.NoError(t, err)

	_, err = arr.GetString(0)
	require.ErrorIs(t, err, errs.ErrTypeMismatch)
}

func TestArrayBuilder_FullTagCoverage(t *testing.T) {
	scope, err := NewDocumentBuilder()
	require.NoError(t, err)
	scopeDoc, err := scope.PutInt32("x", 1).Build()
	require.NoError(t, err)

	b, err := NewArrayBuilder()
	require.NoError(t, err)
	arr, err := b.
		PutJavaScript("function() {}").
		PutSymbol("sym").
		PutMinKey().
		PutMaxKey().
		PutRegex("^a", "i").
		PutJavaScriptWithScope("function() {}", scopeDoc).
		Build()
	require.NoError(t, err)

	require.Equal(t, 6, arr.Size())
	require.Equal(t, tag.JavaScript, arr.TypeOf(0))
	require.Equal(t, tag.Symbol, arr.TypeOf(1))
	require.Equal(t, tag.MinKey, arr.TypeOf(2))
	require.Equal(t, tag.MaxKey, arr.TypeOf(3))
	require.Equal(t, tag.Regex, arr.TypeOf(4))
	require.Equal(t, tag.JavaScriptWScope, arr.TypeOf(5))

	js, err := arr.GetString(0)
	require.NoError(t, err)
	require.Equal(t, "function() {}", js)

	sym, err := arr.GetString(1)
	require.NoError(t, err)
	require.Equal(t, "sym", sym)
}

func TestArrayBuilder_NestedArrayOfInts(t *testing.T) {
	inner, err := NewArrayBuilder()
	require.NoError(t, err)
	innerArr, err := inner.PutInt32(10).PutInt32(20).PutInt32(30).Build()
	require.NoError(t, err)

	outer, err := NewArrayBuilder()
	require.NoError(t, err)
	outerArr, err := outer.PutArray(innerArr).Build()
	require.NoError(t, err)

	got, err := outerArr.GetArray(0)
	require.NoError(t, err)
	require.Equal(t, 3, got.Size())
	require.Equal(t, "[10,20,30]", got.ToJSON())
}

func TestArrayBuilder_Equal(t *testing.T) {
	build := func() *Array {
		b, err := NewArrayBuilder()
		require.NoError(t, err)
		arr, err := b.PutInt32(1).PutBoolean(true).Build()
		require.NoError(t, err)

		return arr
	}

	a1 := build()
	a2 := build()
	require.True(t, a1.Equal(a2))

	b3, err := NewArrayBuilder()
	require.NoError(t, err)
	a3, err := b3.PutInt32(1).PutBoolean(false).Build()
	require.NoError(t, err)
	require.False(t, a1.Equal(a3))
}

func TestArrayBuilder_EmptyToJSON(t *testing.T) {
	b, err := NewArrayBuilder()
	require.NoError(t, err)
	arr, err := b.Build()
	require.NoError(t, err)
	require.True(t, arr.IsEmpty())
	require.Equal(t, "[]", arr.ToJSON())
}
