package wire

// objectIDSize is the fixed wire size of a BSON ObjectId payload.
const objectIDSize = 12

const hexDigits = "0123456789abcdef"

// ObjectIDHex renders a 12-byte ObjectId payload as 24 lowercase hex
// characters. The caller must ensure data has at least 12 bytes available
// at offset; the indexer guarantees this for any descriptor tagged OBJECT_ID.
func ObjectIDHex(data []byte, offset int) string {
	buf := make([]byte, objectIDSize*2)
	for i := 0; i < objectIDSize; i++ {
		b := data[offset+i]
		buf[i*2] = hexDigits[b>>4]
		buf[i*2+1] = hexDigits[b&0x0f]
	}

	return string(buf)
}

// BinaryCopy returns a fresh copy of a BINARY element's payload bytes,
// dropping the 1-byte subtype prefix. subtypeOffset is the offset of the
// subtype byte; the L payload bytes immediately follow it.
func BinaryCopy(data []byte, subtypeOffset int, length int) []byte {
	start := subtypeOffset + 1
	out := make([]byte, length)
	copy(out, data[start:start+length])

	return out
}

// BinarySubtype returns the subtype byte of a BINARY element.
func BinarySubtype(data []byte, subtypeOffset int) byte {
	return data[subtypeOffset]
}
