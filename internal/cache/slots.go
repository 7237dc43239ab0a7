// Package cache implements a lazy decode cache: each indexed element
// gets one slot that holds, at most, a single decoded value. A slot is
// filled at most once; concurrent readers racing
// on first access must observe exactly one computed value, and a failed
// computation must not be cached (the next caller retries it).
//
// Unlike the LRU cache idiom this module borrows its locking shape from,
// slots here are never evicted — the cache lives exactly as long as the
// view that owns it, and its size is fixed at construction to the number
// of indexed elements.
package cache

import (
	"sync"
	"sync/atomic"
)

// slot holds one element's decoded value behind a double-checked lock:
// the atomic.Pointer gives lock-free reads once populated, and mu
// serializes the (rare) first write so concurrent computations don't
// race to publish.
type slot struct {
	mu    sync.Mutex
	value atomic.Pointer[any]
}

// Cache is a fixed-size array of lazily-populated slots, one per indexed
// element. The zero value is not usable; use New.
type Cache struct {
	slots []slot
}

// New returns a Cache sized for n elements. All slots start empty.
func New(n int) *Cache {
	return &Cache{slots: make([]slot, n)}
}

// Len reports the number of slots the cache was constructed with.
func (c *Cache) Len() int {
	return len(c.slots)
}

// GetOrCompute returns the cached value at idx, computing it via compute
// on first access. If multiple goroutines call GetOrCompute(idx, ...)
// concurrently before any value is published, exactly one compute call
// wins and every caller observes its result — the slot's identity is
// stable thereafter.
//
// If compute returns an error, nothing is cached: the error is returned
// to this caller, and the next call to GetOrCompute(idx, ...) retries
// compute from scratch.
func (c *Cache) GetOrCompute(idx int, compute func() (any, error)) (any, error) {
	s := &c.slots[idx]

	if v := s.value.Load(); v != nil {
		return *v, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Double-check: another goroutine may have published while we waited
	// for the lock.
	if v := s.value.Load(); v != nil {
		return *v, nil
	}

	computed, err := compute()
	if err != nil {
		return nil, err
	}

	s.value.Store(&computed)

	return computed, nil
}

// Peek returns the slot's current value without computing it, reporting
// whether it has been populated yet. It never blocks on s.mu.
func (c *Cache) Peek(idx int) (any, bool) {
	v := c.slots[idx].value.Load()
	if v == nil {
		return nil, false
	}

	return *v, true
}

// Reset clears every slot back to empty, so the next GetOrCompute call
// for any index recomputes its value. Builder-backed "spent" reuse paths
// do not need this; it exists for tests and for view implementations
// that choose to recycle a Cache across Parse calls sharing a buffer.
func (c *Cache) Reset() {
	for i := range c.slots {
		c.slots[i].value.Store(nil)
	}
}
