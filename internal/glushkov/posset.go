package glushkov

import "math/bits"

// posSet is a set of positions stored as a bitset. Iteration is always in
// ascending order.
type posSet struct {
	words []uint64
}

func newPosSet(size int) *posSet {
	return &posSet{words: make([]uint64, (size+63)/64)}
}

func singletonPos(size, p int) *posSet {
	s := newPosSet(size)
	s.set(p)
	return s
}

func (s *posSet) set(p int) { s.words[p/64] |= 1 << (uint(p) % 64) }

func (s *posSet) has(p int) bool { return s.words[p/64]&(1<<(uint(p)%64)) != 0 }

// or adds every member of o to s.
func (s *posSet) or(o *posSet) {
	for i, w := range o.words {
		s.words[i] |= w
	}
}

func (s *posSet) union(o *posSet) *posSet {
	out := &posSet{words: append([]uint64(nil), s.words...)}
	out.or(o)
	return out
}

func (s *posSet) len() int {
	n := 0
	for _, w := range s.words {
		n += bits.OnesCount64(w)
	}
	return n
}

func (s *posSet) forEach(fn func(p int)) {
	for i, w := range s.words {
		for w != 0 {
			tz := bits.TrailingZeros64(w)
			fn(i*64 + tz)
			w &= w - 1
		}
	}
}

func (s *posSet) slice() []int {
	out := make([]int, 0, s.len())
	s.forEach(func(p int) { out = append(out, p) })
	return out
}
