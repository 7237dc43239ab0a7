package index

import "sort"

// Sort arranges descriptors by NameHash ascending using a stable sort, so
// elements that share a hash retain their original source order. The
// locator's forward/backward sweep relies on this for
// deterministic tie-breaking among colliding hashes.
func Sort(descriptors []Descriptor) {
	sort.SliceStable(descriptors, func(i, j int) bool {
		return descriptors[i].NameHash < descriptors[j].NameHash
	})
}
