package alphabet

import "sort"

// Symbol is a single alphabet symbol carried by a regular expression leaf
// and used as a transition label.
type Symbol rune

func (s Symbol) String() string { return string(rune(s)) }

// Set is an unordered set of symbols.
type Set map[Symbol]struct{}

func NewSet(symbols ...Symbol) Set {
	s := make(Set, len(symbols))
	for _, sym := range symbols {
		s[sym] = struct{}{}
	}
	return s
}

func (s Set) Add(sym Symbol) { s[sym] = struct{}{} }

func (s Set) Has(sym Symbol) bool {
	_, ok := s[sym]
	return ok
}

func (s Set) Len() int { return len(s) }

// Sorted returns the symbols in ascending order. Every printer uses this
// order for columns.
func (s Set) Sorted() []Symbol {
	out := make([]Symbol, 0, len(s))
	for sym := range s {
		out = append(out, sym)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Equal reports whether both sets hold the same symbols.
func (s Set) Equal(o Set) bool {
	if len(s) != len(o) {
		return false
	}
	for sym := range s {
		if !o.Has(sym) {
			return false
		}
	}
	return true
}
