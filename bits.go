package slab

import "math/bits"

const wordBits = 64

// bitset is a growable occupancy index, one bit per slot. It grows on set
// and treats everything past its end as unset, so it never needs sizing up
// front.
type bitset []uint64

func (b *bitset) set(i uint) {
	w := i / wordBits
	for uint(len(*b)) <= w {
		*b = append(*b, 0)
	}

	(*b)[w] |= 1 << (i % wordBits)
}

// clear assumes i was previously set (the word exists).
func (b bitset) clear(i uint) {
	b[i/wordBits] &^= 1 << (i % wordBits)
}

func (b bitset) has(i uint) bool {
	w := i / wordBits
	if w >= uint(len(b)) {
		return false
	}

	return b[w]&(1<<(i%wordBits)) != 0
}

// count returns the number of set bits.
func (b bitset) count() int {
	n := 0
	for _, w := range b {
		n += bits.OnesCount64(w)
	}

	return n
}
