package builder

import "encoding/hex"

// objectIDHex renders a 12-byte ObjectId as 24 lowercase hex characters,
// matching wire.ObjectIDHex's rendering for the indexed view so the two
// variants agree on OBJECT_ID string representation.
func objectIDHex(id [12]byte) string {
	return hex.EncodeToString(id[:])
}
