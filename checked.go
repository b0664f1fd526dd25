package slab

import "errors"

var (
	// ErrFull is returned by Checked.Insert once the key width's live-value
	// ceiling (2^W − 1) is reached.
	ErrFull = errors.New("slab: key width exhausted")

	// ErrInvalidKey is returned for a key that is out of range, was never
	// issued, or was already removed.
	ErrInvalidKey = errors.New("slab: key does not name a live value")
)

// Checked wraps a Slab with the validation the core deliberately omits: an
// occupancy bit per slot and a range check on every access, so stale keys
// and width exhaustion surface as errors instead of corruption. Useful for
// flushing out a caller's key bookkeeping, or wherever a bit per slot and a
// branch per operation are an acceptable price.
//
// The zero value is ready for use. Not synchronized, same as Slab.
type Checked[T any, K Key] struct {
	slab Slab[T, K]
	live bitset
}

func NewChecked[T any, K Key](opts ...Option[T, K]) *Checked[T, K] {
	c := &Checked[T, K]{}

	for _, opt := range opts {
		opt(&c.slab)
	}

	return c
}

// Insert stores val and returns its key, or ErrFull at the width ceiling.
func (c *Checked[T, K]) Insert(val T) (K, error) {
	if c.slab.len == ^K(0) {
		return 0, ErrFull
	}

	key := c.slab.Insert(val)
	c.live.set(uint(key))

	return key, nil
}

// Remove takes the value out of the slot named by key.
func (c *Checked[T, K]) Remove(key K) (T, error) {
	if !c.live.has(uint(key)) {
		var zero T
		return zero, ErrInvalidKey
	}

	c.live.clear(uint(key))

	return c.slab.Remove(key), nil
}

// Get returns a pointer to the value named by key. The pointer is subject
// to the same growth invalidation as Slab.Get.
func (c *Checked[T, K]) Get(key K) (*T, error) {
	if !c.live.has(uint(key)) {
		return nil, ErrInvalidKey
	}

	return c.slab.Get(key), nil
}

func (c *Checked[T, K]) Len() int {
	return c.slab.Len()
}

func (c *Checked[T, K]) Cap() int {
	return c.slab.Cap()
}

func (c *Checked[T, K]) Stats() Stats {
	return c.slab.Stats()
}
