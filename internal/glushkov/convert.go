// Package glushkov builds the position automaton of a regular expression:
// one state per symbol occurrence plus a start state, with transitions
// derived from the first, last and follow sets of the expression.
package glushkov

import (
	"glushkov/internal/alphabet"
	"glushkov/internal/automaton"
	"glushkov/internal/regex"
)

// Start is the synthetic initial state. Position p maps to state p+1.
const Start automaton.State = 0

// Analysis holds the sets the automaton is assembled from.
type Analysis struct {
	// Symbols is indexed by position.
	Symbols  []alphabet.Symbol
	Nullable bool
	First    []int
	Last     []int
	Follow   []Pair
}

// Converter turns expressions into automata, optionally logging each stage.
type Converter struct {
	logger *Logger
}

func NewConverter(logger *Logger) *Converter {
	return &Converter{logger: logger}
}

// Convert returns the Glushkov automaton of re. It never fails.
func Convert(re *regex.RegExp) *automaton.NFA {
	return NewConverter(nil).Convert(re)
}

// Analyze computes the position index and the boundary and follow sets of re.
func Analyze(re *regex.RegExp) *Analysis {
	return NewConverter(nil).Analyze(re)
}

// Nullable reports whether re matches the empty string.
func Nullable(re *regex.RegExp) bool {
	t := build(re)
	return t.isNullable(t.root)
}

func (c *Converter) Convert(re *regex.RegExp) *automaton.NFA {
	a := c.Analyze(re)
	nfa := Assemble(a)
	c.logger.Section("Automaton")
	c.logger.Log("states: %d, transitions: %d, final: %v", len(nfa.States), len(nfa.Transitions), nfa.Final.Sorted())
	return nfa
}

func (c *Converter) Analyze(re *regex.RegExp) *Analysis {
	c.logger.Section("Positions")
	t := build(re)
	for p, sym := range t.symbols {
		c.logger.Log("position %d: %v", p, sym)
	}

	a := &Analysis{
		Symbols:  t.symbols,
		Nullable: t.isNullable(t.root),
		First:    t.firstPos(t.root).slice(),
		Last:     t.lastPos(t.root).slice(),
		Follow:   t.neighbours(t.root).sorted(),
	}

	c.logger.Section("Sets")
	c.logger.Log("nullable: %v", a.Nullable)
	c.logger.Log("first: %v", a.First)
	c.logger.Log("last: %v", a.Last)
	c.logger.Log("follow: %v", a.Follow)
	return a
}

// Assemble builds the automaton described by a.
func Assemble(a *Analysis) *automaton.NFA {
	nfa := automaton.New()
	nfa.Initial = Start
	nfa.States.Add(Start)
	for p, sym := range a.Symbols {
		nfa.States.Add(stateOf(p))
		nfa.Alphabet.Add(sym)
	}

	for _, p := range a.First {
		nfa.AddTransition(Start, a.Symbols[p], stateOf(p))
	}
	for _, f := range a.Follow {
		nfa.AddTransition(stateOf(f.From), a.Symbols[f.To], stateOf(f.To))
	}

	for _, p := range a.Last {
		nfa.Final.Add(stateOf(p))
	}
	if a.Nullable {
		nfa.Final.Add(Start)
	}
	return nfa
}

func stateOf(p int) automaton.State { return automaton.State(p + 1) }
