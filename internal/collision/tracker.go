// Package collision provides index-build-time diagnostics over the
// directory's name_hash values: how many distinct names collided on the
// same 32-bit hash, and how many names were seen more than once in the
// same document/array.
//
// Every parsed view builds one of these while indexing, and exposes the
// result as read-only telemetry. It never changes lookup behavior — the
// field locator (internal/index/locator.go) always resolves correctly
// regardless of what this tracker reports.
package collision

import "github.com/cespare/xxhash/v2"

// Tracker accumulates collision/duplicate statistics while an element
// directory is being built. It is not safe for concurrent use; each
// indexing pass owns its own Tracker.
type Tracker struct {
	// wideHash maps a 32-bit name_hash to the xxHash64 of the first name
	// observed under it. xxHash64 is used here purely as a wide
	// secondary fingerprint so a collision report doesn't rely on the
	// same narrow 32-bit hash it is trying to diagnose.
	wideHash map[int32]uint64
	// firstName maps a 32-bit name_hash to the first name string observed
	// under it, to distinguish a true collision (different names) from a
	// duplicate (same name twice).
	firstName map[int32]string

	collisionCount int
	duplicateCount int
}

// NewTracker creates an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{
		wideHash:  make(map[int32]uint64),
		firstName: make(map[int32]string),
	}
}

// Observe records one element name seen at the given 32-bit name_hash.
func (t *Tracker) Observe(nameHash int32, name string) {
	wide := xxhash.Sum64String(name)

	existingWide, ok := t.wideHash[nameHash]
	if !ok {
		t.wideHash[nameHash] = wide
		t.firstName[nameHash] = name

		return
	}

	if existingWide != wide {
		t.collisionCount++

		return
	}

	if t.firstName[nameHash] == name {
		t.duplicateCount++
	}
}

// CollisionCount returns the number of observations whose name differs
// from the first name seen under the same name_hash.
func (t *Tracker) CollisionCount() int {
	return t.collisionCount
}

// DuplicateCount returns the number of repeat observations of the first
// name seen under a name_hash (a name seen three times counts two).
func (t *Tracker) DuplicateCount() int {
	return t.duplicateCount
}

// HasCollisions reports whether any hash collision was observed.
func (t *Tracker) HasCollisions() bool {
	return t.collisionCount > 0
}
