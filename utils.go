package slab

import "unsafe"

// Estimates capacity (number of slots) from the given memory size in bytes.
// Handy for choosing a key width from a memory budget: a free slot costs the
// same as a live one, so density is entirely per-slot size.
func CapacityFromSize[T any, K Key](size uintptr) int {
	return int(size / unsafe.Sizeof(slot[T, K]{}))
}
