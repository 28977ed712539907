// Package automaton defines the nondeterministic finite automaton produced by
// the Glushkov construction, together with its textual, Graphviz and Go
// source renderings.
package automaton

import (
	"errors"
	"fmt"
	"sort"

	"glushkov/internal/alphabet"
)

// ErrInconsistent is returned by Validate when the parts of an NFA disagree.
var ErrInconsistent = errors.New("inconsistent automaton")

type State int

// StateSet is an unordered set of states.
type StateSet map[State]struct{}

func NewStateSet(states ...State) StateSet {
	s := make(StateSet, len(states))
	for _, st := range states {
		s[st] = struct{}{}
	}
	return s
}

func (s StateSet) Add(st State) { s[st] = struct{}{} }

func (s StateSet) Has(st State) bool {
	_, ok := s[st]
	return ok
}

func (s StateSet) Sorted() []State {
	out := make([]State, 0, len(s))
	for st := range s {
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (s StateSet) Clone() StateSet {
	out := make(StateSet, len(s))
	for st := range s {
		out[st] = struct{}{}
	}
	return out
}

func (s StateSet) Equal(o StateSet) bool {
	if len(s) != len(o) {
		return false
	}
	for st := range s {
		if !o.Has(st) {
			return false
		}
	}
	return true
}

// Key identifies the transitions leaving From on Symbol.
type Key struct {
	From   State
	Symbol alphabet.Symbol
}

// NFA is a nondeterministic finite automaton without ε-transitions.
type NFA struct {
	States      StateSet
	Alphabet    alphabet.Set
	Transitions map[Key]StateSet
	Initial     State
	Final       StateSet
}

// New returns an automaton with every set allocated and no states.
func New() *NFA {
	return &NFA{
		States:      StateSet{},
		Alphabet:    alphabet.Set{},
		Transitions: map[Key]StateSet{},
		Final:       StateSet{},
	}
}

// AddTransition adds to to the destinations of (from, sym).
func (n *NFA) AddTransition(from State, sym alphabet.Symbol, to State) {
	k := Key{From: from, Symbol: sym}
	dst, ok := n.Transitions[k]
	if !ok {
		dst = StateSet{}
		n.Transitions[k] = dst
	}
	dst.Add(to)
}

// Next returns the destinations of (from, sym), or nil.
func (n *NFA) Next(from State, sym alphabet.Symbol) StateSet {
	return n.Transitions[Key{From: from, Symbol: sym}]
}

// Keys returns the transition keys ordered by state, then symbol.
func (n *NFA) Keys() []Key {
	keys := make([]Key, 0, len(n.Transitions))
	for k := range n.Transitions {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].From != keys[j].From {
			return keys[i].From < keys[j].From
		}
		return keys[i].Symbol < keys[j].Symbol
	})
	return keys
}

// Equal compares two automata structurally, ignoring order. A key mapped to
// an empty destination set counts as absent.
func Equal(a, b *NFA) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Initial != b.Initial ||
		!a.States.Equal(b.States) ||
		!a.Alphabet.Equal(b.Alphabet) ||
		!a.Final.Equal(b.Final) {
		return false
	}
	return transitionsIn(a, b) && transitionsIn(b, a)
}

func transitionsIn(a, b *NFA) bool {
	for k, dst := range a.Transitions {
		if len(dst) == 0 {
			continue
		}
		if !dst.Equal(b.Transitions[k]) {
			return false
		}
	}
	return true
}

func (n *NFA) Equal(o *NFA) bool { return Equal(n, o) }

// Validate checks that the initial state, final states and every transition
// refer to known states and symbols.
func (n *NFA) Validate() error {
	if !n.States.Has(n.Initial) {
		return fmt.Errorf("%w: initial state %d is not a state", ErrInconsistent, n.Initial)
	}
	for _, f := range n.Final.Sorted() {
		if !n.States.Has(f) {
			return fmt.Errorf("%w: final state %d is not a state", ErrInconsistent, f)
		}
	}
	for _, k := range n.Keys() {
		if !n.States.Has(k.From) {
			return fmt.Errorf("%w: transition from unknown state %d", ErrInconsistent, k.From)
		}
		if !n.Alphabet.Has(k.Symbol) {
			return fmt.Errorf("%w: transition on unknown symbol %q", ErrInconsistent, rune(k.Symbol))
		}
		for _, to := range n.Transitions[k].Sorted() {
			if !n.States.Has(to) {
				return fmt.Errorf("%w: transition %d -%v-> %d leads to unknown state", ErrInconsistent, k.From, k.Symbol, to)
			}
		}
	}
	return nil
}
