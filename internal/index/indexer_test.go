package index

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zerocopy-bson/bson/internal/bsontest"
	"github.com/zerocopy-bson/bson/tag"
)

func TestBuild_SimpleDocument(t *testing.T) {
	data := bsontest.Doc([]bsontest.Elem{
		{Tag: byte(tag.String), Name: "name", Payload: bsontest.PString("Alice")},
		{Tag: byte(tag.Int32), Name: "age", Payload: bsontest.PInt32(30)},
		{Tag: byte(tag.Double), Name: "score", Payload: bsontest.PDouble(95.5)},
		{Tag: byte(tag.Boolean), Name: "active", Payload: bsontest.PBool(true)},
	})

	descriptors, tracker, end, err := Build(data, 0)
	require.NoError(t, err)
	require.Equal(t, len(data), end)
	require.NotNil(t, tracker)
	require.Len(t, descriptors, 4)

	require.Equal(t, tag.String, descriptors[0].Tag)
	require.Equal(t, "name", string(descriptors[0].Name(data)))
	require.Equal(t, tag.Int32, descriptors[1].Tag)
	require.Equal(t, tag.Double, descriptors[2].Tag)
	require.Equal(t, tag.Boolean, descriptors[3].Tag)
}

func TestBuild_NestedDocument(t *testing.T) {
	address := bsontest.Doc([]bsontest.Elem{
		{Tag: byte(tag.String), Name: "city", Payload: bsontest.PString("NYC")},
		{Tag: byte(tag.Int32), Name: "zip", Payload: bsontest.PInt32(10001)},
	})
	data := bsontest.Doc([]bsontest.Elem{
		{Tag: byte(tag.String), Name: "name", Payload: bsontest.PString("Bob")},
		{Tag: byte(tag.Document), Name: "address", Payload: bsontest.PDocument(address)},
	})

	descriptors, _, end, err := Build(data, 0)
	require.NoError(t, err)
	require.Equal(t, len(data), end)
	require.Len(t, descriptors, 2)
	require.Equal(t, tag.Document, descriptors[1].Tag)

	nested := descriptors[1].Value(data)
	require.Equal(t, address, nested)
}

func TestBuild_Array(t *testing.T) {
	data := bsontest.Array([]bsontest.Elem{
		{Tag: byte(tag.Int32), Name: "0", Payload: bsontest.PInt32(10)},
		{Tag: byte(tag.Int32), Name: "1", Payload: bsontest.PInt32(20)},
		{Tag: byte(tag.Int32), Name: "2", Payload: bsontest.PInt32(30)},
	})

	descriptors, _, _, err := Build(data, 0)
	require.NoError(t, err)
	require.Len(t, descriptors, 3)
	for i, d := range descriptors {
		require.Equal(t, tag.Int32, d.Tag)
		require.Equal(t, int32((i+1)*10), int32(wireInt32(data, int(d.ValueOffset))))
	}
}

func TestBuild_UnknownTagFails(t *testing.T) {
	data := bsontest.Doc([]bsontest.Elem{
		{Tag: 0x99, Name: "bad", Payload: nil},
	})

	_, _, _, err := Build(data, 0)
	require.Error(t, err)
}

func TestBuild_TruncatedLengthFails(t *testing.T) {
	_, _, _, err := Build([]byte{0x01, 0x00}, 0)
	require.Error(t, err)
}

func TestBuild_CrossingDocumentEndFails(t *testing.T) {
	data := bsontest.Doc([]bsontest.Elem{
		{Tag: byte(tag.Int32), Name: "a", Payload: bsontest.PInt32(1)},
	})
	// Truncate the buffer so the element's payload runs past the (shrunk) end.
	truncated := data[:len(data)-2]

	_, _, _, err := Build(truncated, 0)
	require.Error(t, err)
}

func wireInt32(data []byte, offset int) int32 {
	return int32(uint32(data[offset]) | uint32(data[offset+1])<<8 | uint32(data[offset+2])<<16 | uint32(data[offset+3])<<24) //nolint:gosec
}
