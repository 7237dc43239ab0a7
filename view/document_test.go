package view

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zerocopy-bson/bson/internal/bsontest"
	"github.com/zerocopy-bson/bson/tag"
)

func TestParse_SimpleDocument(t *testing.T) {
	data := bsontest.Doc([]bsontest.Elem{
		{Tag: byte(tag.String), Name: "name", Payload: bsontest.PString("Alice")},
		{Tag: byte(tag.Int32), Name: "age", Payload: bsontest.PInt32(30)},
		{Tag: byte(tag.Double), Name: "score", Payload: bsontest.PDouble(95.5)},
		{Tag: byte(tag.Boolean), Name: "active", Payload: bsontest.PBool(true)},
	})

	doc, err := Parse(data)
	require.NoError(t, err)
	require.Equal(t, 4, doc.Size())

	name, err := doc.GetString("name")
	require.NoError(t, err)
	require.Equal(t, "Alice", name)

	age, err := doc.GetInt32("age")
	require.NoError(t, err)
	require.Equal(t, int32(30), age)

	score, err := doc.GetDouble("score")
	require.NoError(t, err)
	require.InDelta(t, 95.5, score, 0)

	active, err := doc.GetBoolean("active")
	require.NoError(t, err)
	require.True(t, active)

	require.Equal(t, data, doc.ToBytes())
}

func TestParse_NestedDocument(t *testing.T) {
	data := bsontest.Doc([]bsontest.Elem{
		{Tag: byte(tag.String), Name: "name", Payload: bsontest.PString("Bob")},
		{Tag: byte(tag.Document), Name: "address", Payload: bsontest.PDocument(bsontest.Doc([]bsontest.Elem{
			{Tag: byte(tag.String), Name: "city", Payload: bsontest.PString("NYC")},
			{Tag: byte(tag.Int32), Name: "zip", Payload: bsontest.PInt32(10001)},
		}))},
	})

	doc, err := Parse(data)
	require.NoError(t, err)

	addr, err := doc.GetDocument("address")
	require.NoError(t, err)

	city, err := addr.GetString("city")
	require.NoError(t, err)
	require.Equal(t, "NYC", city)

	zip, err := addr.GetInt32("zip")
	require.NoError(t, err)
	require.Equal(t, int32(10001), zip)
}

func TestParse_Array(t *testing.T) {
	data := bsontest.Doc([]bsontest.Elem{
		{Tag: byte(tag.Array), Name: "numbers", Payload: bsontest.PDocument(bsontest.Array([]bsontest.Elem{
			{Tag: byte(tag.Int32), Name: "0", Payload: bsontest.PInt32(10)},
			{Tag: byte(tag.Int32), Name: "1", Payload: bsontest.PInt32(20)},
			{Tag: byte(tag.Int32), Name: "2", Payload: bsontest.PInt32(30)},
		}))},
	})

	doc, err := Parse(data)
	require.NoError(t, err)

	arr, err := doc.GetArray("numbers")
	require.NoError(t, err)
	require.Equal(t, 3, arr.Size())

	for i, want := range []int32{10, 20, 30} {
		v, err := arr.GetInt32(i)
		require.NoError(t, err)
		require.Equal(t, want, v)
	}
}

func TestGetDocument_CacheIdentity(t *testing.T) {
	data := bsontest.Doc([]bsontest.Elem{
		{Tag: byte(tag.Document), Name: "nested", Payload: bsontest.PDocument(bsontest.Doc([]bsontest.Elem{
			{Tag: byte(tag.Int32), Name: "x", Payload: bsontest.PInt32(1)},
		}))},
	})

	doc, err := Parse(data)
	require.NoError(t, err)

	first, err := doc.GetDocument("nested")
	require.NoError(t, err)
	second, err := doc.GetDocument("nested")
	require.NoError(t, err)
	require.Same(t, first, second, "repeated GetDocument must return the same cached instance")
}

func TestGetTypeMismatch(t *testing.T) {
	data := bsontest.Doc([]bsontest.Elem{
		{Tag: byte(tag.Int32), Name: "age", Payload: bsontest.PInt32(30)},
	})
	doc, err := Parse(data)
	require.NoError(t, err)

	_, err = doc.GetString("age")
	require.ErrorContains(t, err, "not STRING")
}

func TestGetOrDefault_OnAbsentAndMismatch(t *testing.T) {
	data := bsontest.Doc([]bsontest.Elem{
		{Tag: byte(tag.Int32), Name: "age", Payload: bsontest.PInt32(30)},
	})
	doc, err := Parse(data)
	require.NoError(t, err)

	require.Equal(t, int32(99), doc.GetInt32OrDefault("missing", 99))
	require.Equal(t, "fallback", doc.GetStringOrDefault("age", "fallback"))
}

func TestContainsIsNullTypeOf(t *testing.T) {
	data := bsontest.Doc([]bsontest.Elem{
		{Tag: byte(tag.Null), Name: "n", Payload: bsontest.PNull()},
		{Tag: byte(tag.Int32), Name: "i", Payload: bsontest.PInt32(1)},
	})
	doc, err := Parse(data)
	require.NoError(t, err)

	require.True(t, doc.Contains("n"))
	require.True(t, doc.IsNull("n"))
	require.False(t, doc.IsNull("i"))
	require.Equal(t, tag.Null, doc.TypeOf("n"))
	require.Equal(t, tag.None, doc.TypeOf("missing"))
	require.False(t, doc.Contains("missing"))
}

func TestToBytes_SubRangeCopies(t *testing.T) {
	inner := bsontest.Doc([]bsontest.Elem{
		{Tag: byte(tag.Int32), Name: "x", Payload: bsontest.PInt32(7)},
	})
	outer := bsontest.Doc([]bsontest.Elem{
		{Tag: byte(tag.Document), Name: "d", Payload: bsontest.PDocument(inner)},
	})

	doc, err := Parse(outer)
	require.NoError(t, err)

	nested, err := doc.GetDocument("d")
	require.NoError(t, err)

	require.Equal(t, inner, nested.ToBytes())
}

func TestFieldNames(t *testing.T) {
	data := bsontest.Doc([]bsontest.Elem{
		{Tag: byte(tag.Int32), Name: "b", Payload: bsontest.PInt32(1)},
		{Tag: byte(tag.Int32), Name: "a", Payload: bsontest.PInt32(2)},
	})
	doc, err := Parse(data)
	require.NoError(t, err)

	require.ElementsMatch(t, []string{"a", "b"}, doc.FieldNames())
	require.Equal(t, []string{"a", "b"}, doc.FieldNamesSorted())
}

func TestParse_RejectsShortInput(t *testing.T) {
	_, err := Parse([]byte{0x01, 0x02})
	require.Error(t, err)

	_, err = Parse(nil)
	require.Error(t, err)
}
