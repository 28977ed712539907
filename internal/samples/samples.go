// Package samples is a catalog of expression trees with their expected
// Glushkov automata, written in the table format of automaton.WriteTable.
package samples

import (
	"fmt"

	"glushkov/internal/automaton"
	"glushkov/internal/regex"
)

type Sample struct {
	Name        string
	Description string
	// Build returns a fresh tree on every call.
	Build func() *regex.RegExp
	// Table is the expected automaton.
	Table string
}

// Expected parses the expected automaton of s.
func (s Sample) Expected() (*automaton.NFA, error) {
	n, err := automaton.ParseTable(s.Table)
	if err != nil {
		return nil, fmt.Errorf("sample %s: %w", s.Name, err)
	}
	return n, nil
}

var (
	a = func() *regex.RegExp { return regex.Symbol('a') }
	b = func() *regex.RegExp { return regex.Symbol('b') }
	c = func() *regex.RegExp { return regex.Symbol('c') }
)

var catalog = []Sample{
	{
		Name:        "mixed",
		Description: "starred (a|b)* a b (a|b)*",
		Build: func() *regex.RegExp {
			return regex.Iteration(regex.Seq(
				regex.Iteration(regex.Alternation(a(), b())),
				a(),
				b(),
				regex.Iteration(regex.Alternation(a(), b())),
			))
		},
		Table: `
NFA a b
><0 1|3 2
  1 1|3 2
  2 1|3 2
  3 - 4
 <4 1|3|5 2|6
 <5 1|3|5 2|6
 <6 1|3|5 2|6
`,
	},
	{
		Name:        "unstarred",
		Description: "(a|b)* a b (a|b)*",
		Build: func() *regex.RegExp {
			return regex.Seq(
				regex.Iteration(regex.Alternation(a(), b())),
				a(),
				b(),
				regex.Iteration(regex.Alternation(a(), b())),
			)
		},
		Table: `
NFA a b
> 0 1|3 2
  1 1|3 2
  2 1|3 2
  3 - 4
 <4 5 6
 <5 5 6
 <6 5 6
`,
	},
	{
		Name:        "optional",
		Description: "iteration over optional a and b",
		Build: func() *regex.RegExp {
			return regex.Iteration(regex.Alternation(
				regex.Alternation(a(), regex.Epsilon()),
				regex.Alternation(b(), regex.Empty()),
			))
		},
		Table: `
NFA a b
><0 1 2
 <1 1 2
 <2 1 2
`,
	},
	{
		Name:        "nested",
		Description: "concatenation of a loop and a choice with dead branches",
		Build: func() *regex.RegExp {
			return regex.Concatenation(
				regex.Iteration(regex.Seq(
					a(),
					regex.Alternation(regex.Empty(), regex.Epsilon()),
					regex.Iteration(b()),
					a(),
				)),
				regex.Alternation(
					regex.Concatenation(b(), regex.Iteration(c())),
					regex.Concatenation(
						regex.Iteration(a()),
						regex.Alternation(regex.Epsilon(), regex.Concatenation(b(), regex.Empty())),
					),
				),
			)
		},
		Table: `
NFA a b c
><0 1|6 4|7 -
  1 3 2 -
  2 3 2 -
 <3 1|6 4|7 -
 <4 - - 5
 <5 - - 5
 <6 6 7 -
  7 - - -
`,
	},
	{
		Name:        "duplicate",
		Description: "a|a, equal symbols keep separate states",
		Build:       func() *regex.RegExp { return regex.Alternation(a(), a()) },
		Table: `
NFA a
> 0 1|2
 <1 -
 <2 -
`,
	},
	{
		Name:        "shared",
		Description: "one (a b) node referenced twice",
		Build: func() *regex.RegExp {
			ab := regex.Concatenation(a(), b())
			return regex.Concatenation(ab, ab)
		},
		Table: `
NFA a b
> 0 1 -
  1 - 2
  2 3 -
  3 - 4
 <4 - -
`,
	},
	{
		Name:        "empty",
		Description: "empty language",
		Build:       regex.Empty,
		Table: `
NFA
> 0
`,
	},
	{
		Name:        "epsilon",
		Description: "empty word",
		Build:       regex.Epsilon,
		Table: `
NFA
><0
`,
	},
}

// All returns the catalog in a stable order.
func All() []Sample {
	return append([]Sample(nil), catalog...)
}

func Names() []string {
	names := make([]string, len(catalog))
	for i, s := range catalog {
		names[i] = s.Name
	}
	return names
}

func Lookup(name string) (Sample, bool) {
	for _, s := range catalog {
		if s.Name == name {
			return s, true
		}
	}
	return Sample{}, false
}

func MustLookup(name string) Sample {
	s, ok := Lookup(name)
	if !ok {
		panic("samples: unknown sample " + name)
	}
	return s
}
