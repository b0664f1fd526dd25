package slab

import "unsafe"

// slot holds a live value, or the free-list link to the next free slot when
// it has been vacated by Remove. Nothing records which of the two it
// currently is: the free list and the caller's key bookkeeping are the only
// such record, which is what keeps a slot as small as the value itself.
type slot[T any, K Key] struct {
	val  T
	next K
}

// Slab is a slot store that hands out stable, reusable integer keys for
// inserted values. Insert, Remove and Get are O(1); freed slots are recycled
// through an intrusive free list before the backing array grows.
//
// The core operations perform no bounds or occupancy validation. A key
// passed to Remove or Get must have been returned by Insert on the same
// slab and not removed since; anything else reads or corrupts free-list
// links. This is the contract that buys the density: one live-value-sized
// slot per key, no per-slot tag. Callers who want the validation pay for it
// explicitly via Checked.
//
// A Slab must not be used from multiple goroutines without external
// synchronization. The zero value is an empty slab ready for use.
type Slab[T any, K Key] struct {
	slots []slot[T, K]
	free  K // free-list head, stored +1 so the zero value means "empty list"
	len   K // number of live values
}

type Option[T any, K Key] func(s *Slab[T, K])

// Pre-size the backing array so early inserts don't reallocate.
func WithCapacity[T any, K Key](capacity int) Option[T, K] {
	return func(s *Slab[T, K]) {
		s.slots = make([]slot[T, K], 0, capacity)
	}
}

func New[T any, K Key](opts ...Option[T, K]) *Slab[T, K] {
	s := &Slab[T, K]{}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// slotAt addresses a slot without a bounds check; key validity is the
// caller's obligation.
//
//go:nocheckptr
func (s *Slab[T, K]) slotAt(key K) *slot[T, K] {
	base := unsafe.Pointer(unsafe.SliceData(s.slots))
	return (*slot[T, K])(unsafe.Add(base, uintptr(key)*unsafe.Sizeof(slot[T, K]{})))
}

// Insert stores val and returns its key. The slot comes off the free list
// when one is available, otherwise from the end of the storage, growing the
// backing array if it is full.
//
// The caller must keep the number of live values below 2^W − 1 for a W-bit
// K (the top key value is reserved to encode the free-list terminator);
// past that the key arithmetic wraps and the slab is silently corrupted.
// Check Len against the ceiling, or use Checked, when the bound isn't known
// to hold.
func (s *Slab[T, K]) Insert(val T) K {
	s.len++

	if s.free == 0 {
		s.slots = append(s.slots, slot[T, K]{val: val})
		return K(len(s.slots) - 1)
	}

	key := s.free - 1
	sl := s.slotAt(key)
	s.free = sl.next
	sl.val = val

	return key
}

// Remove takes the value out of the slot named by key and pushes the slot
// onto the free list.
//
// key must name a live value; see the type comment. In particular, removing
// the same key twice splices a cycle into the free list.
func (s *Slab[T, K]) Remove(key K) T {
	sl := s.slotAt(key)
	val := sl.val

	// Drop the stored copy so its referents don't outlive the removal.
	var zero T
	sl.val = zero

	sl.next = s.free
	s.free = key + 1
	s.len--

	return val
}

// Get returns a pointer to the value named by key, for reading or in-place
// mutation. key must name a live value; see the type comment.
//
// The pointer is into slot storage: any Insert may grow the backing array
// and leave it dangling onto the old allocation. Keys stay valid across
// growth, pointers don't. Don't hold one across inserts.
func (s *Slab[T, K]) Get(key K) *T {
	return &s.slotAt(key).val
}

// Len returns the number of live values.
func (s *Slab[T, K]) Len() int {
	return int(s.len)
}

// Cap returns the number of slots the backing array can hold before the
// next reallocation.
func (s *Slab[T, K]) Cap() int {
	return cap(s.slots)
}

// NextKey returns the key the next Insert will hand out.
func (s *Slab[T, K]) NextKey() K {
	if s.free != 0 {
		return s.free - 1
	}

	return K(len(s.slots))
}
