// Package hash computes the 32-bit name fingerprint used to sort and
// binary-search the element directory.
//
// The algorithm is a specific rolling polynomial-31 hash, not xxHash or
// another general-purpose hash: this fingerprint is wire-adjacent, and
// independent implementations of this format must compute it
// identically, so it is not free to vary by implementation the way an
// internal optimization would be.
package hash

// Name computes the rolling polynomial hash over the UTF-8 bytes of name:
// accumulator starts at 0, and for each byte b (in order) the accumulator
// becomes accumulator*31 + b. The result is truncated to 32 bits and
// interpreted as signed, matching the widely used polynomial-31 string
// hash (the same recurrence as java.lang.String.hashCode).
func Name(name string) int32 {
	var h uint32
	for i := 0; i < len(name); i++ {
		h = h*31 + uint32(name[i])
	}

	return int32(h) //nolint:gosec
}
