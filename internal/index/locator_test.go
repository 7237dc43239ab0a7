package index

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zerocopy-bson/bson/internal/bsontest"
	"github.com/zerocopy-bson/bson/tag"
)

func buildAndSort(t *testing.T, data []byte) []Descriptor {
	t.Helper()
	descriptors, _, _, err := Build(data, 0)
	require.NoError(t, err)
	Sort(descriptors)

	return descriptors
}

func TestLocate_Found(t *testing.T) {
	data := bsontest.Doc([]bsontest.Elem{
		{Tag: byte(tag.String), Name: "name", Payload: bsontest.PString("Alice")},
		{Tag: byte(tag.Int32), Name: "age", Payload: bsontest.PInt32(30)},
	})
	descriptors := buildAndSort(t, data)

	idx, ok := Locate(descriptors, data, "age")
	require.True(t, ok)
	require.Equal(t, tag.Int32, descriptors[idx].Tag)

	_, ok = Locate(descriptors, data, "missing")
	require.False(t, ok)
}

// TestLocate_HashCollisionSweep checks that "Aa" and
// "BB", which share a polynomial-31 hash (2112), both resolve to their own
// value, and a third colliding name that isn't present ("C#", which also
// hashes to 2112: 31*'C'+'#' = 2077+35 = 2112) must report absent.
func TestLocate_HashCollisionSweep(t *testing.T) {
	data := bsontest.Doc([]bsontest.Elem{
		{Tag: byte(tag.String), Name: "Aa", Payload: bsontest.PString("first")},
		{Tag: byte(tag.String), Name: "BB", Payload: bsontest.PString("second")},
	})
	descriptors := buildAndSort(t, data)

	iAa, ok := Locate(descriptors, data, "Aa")
	require.True(t, ok)
	iBB, ok := Locate(descriptors, data, "BB")
	require.True(t, ok)
	require.NotEqual(t, iAa, iBB)

	_, ok = Locate(descriptors, data, "C#")
	require.False(t, ok)
}

func TestLocate_EmptyDirectory(t *testing.T) {
	_, ok := Locate(nil, nil, "anything")
	require.False(t, ok)
}

func TestLocate_IdempotentAcrossRepeatedCalls(t *testing.T) {
	data := bsontest.Doc([]bsontest.Elem{
		{Tag: byte(tag.Int32), Name: "x", Payload: bsontest.PInt32(1)},
		{Tag: byte(tag.Int32), Name: "y", Payload: bsontest.PInt32(2)},
	})
	descriptors := buildAndSort(t, data)

	first, ok := Locate(descriptors, data, "y")
	require.True(t, ok)
	for i := 0; i < 5; i++ {
		again, ok := Locate(descriptors, data, "y")
		require.True(t, ok)
		require.Equal(t, first, again)
	}
}
