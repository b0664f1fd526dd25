package slab

// Key is the set of unsigned integer widths usable as slab keys.
// The width is a capacity/density trade: a W-bit key can address at most
// 2^W − 1 live values, and a free slot stores one K as its free-list link,
// so narrower keys waste less memory on slabs that are mostly free.
type Key interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Named width instantiations of the one generic implementation.
type (
	Slab8[T any]  = Slab[T, uint8]
	Slab16[T any] = Slab[T, uint16]
	Slab32[T any] = Slab[T, uint32]
	Slab64[T any] = Slab[T, uint64]
)

// Checked counterparts of the width aliases above.
type (
	Checked8[T any]  = Checked[T, uint8]
	Checked16[T any] = Checked[T, uint16]
	Checked32[T any] = Checked[T, uint32]
	Checked64[T any] = Checked[T, uint64]
)
