package slab

type Stats struct {
	Len  int    // live values
	Cap  int    // slots the backing array holds before reallocating
	Free int    // free-listed slots awaiting reuse
	Next uint64 // key the next Insert will return
}

func (s *Slab[T, K]) Stats() Stats {
	return Stats{
		Len:  int(s.len),
		Cap:  cap(s.slots),
		Free: len(s.slots) - int(s.len),
		Next: uint64(s.NextKey()),
	}
}
