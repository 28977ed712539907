package glushkov

import "sort"

// Pair is an ordered pair of positions: To may be consumed right after From.
type Pair struct {
	From, To int
}

type pairSet map[Pair]struct{}

func (ps pairSet) add(p Pair) { ps[p] = struct{}{} }

// merge adds every pair of o to ps.
func (ps pairSet) merge(o pairSet) {
	for p := range o {
		ps[p] = struct{}{}
	}
}

// cross returns every pair with From taken from a and To taken from b.
func cross(a, b *posSet) pairSet {
	out := make(pairSet, a.len()*b.len())
	a.forEach(func(p int) {
		b.forEach(func(q int) {
			out.add(Pair{From: p, To: q})
		})
	})
	return out
}

// sorted returns the pairs ordered by From, then To.
func (ps pairSet) sorted() []Pair {
	out := make([]Pair, 0, len(ps))
	for p := range ps {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})
	return out
}
