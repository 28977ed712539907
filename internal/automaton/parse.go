package automaton

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"glushkov/internal/alphabet"
)

// ErrInvalidTable is returned when a table dump cannot be read back.
var ErrInvalidTable = errors.New("invalid automaton table")

type table struct {
	Symbols []string `parser:"'NFA' @(Sym | Int | Marker | None | Pipe)* EOL"`
	Rows    []*row   `parser:"@@*"`
}

type row struct {
	Initial bool    `parser:"@'>'?"`
	Final   bool    `parser:"@'<'?"`
	State   int     `parser:"@Int"`
	Cells   []*cell `parser:"@@* EOL"`
}

type cell struct {
	None   bool  `parser:"  @'-'"`
	States []int `parser:"| @Int ('|' @Int)*"`
}

var tableLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Keyword", Pattern: `NFA`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Marker", Pattern: `[<>]`},
	{Name: "None", Pattern: `-`},
	{Name: "Pipe", Pattern: `\|`},
	{Name: "EOL", Pattern: `\r?\n`},
	{Name: "Whitespace", Pattern: `[ \t]+`},
	{Name: "Sym", Pattern: `\S`},
})

var tableParser = participle.MustBuild[table](
	participle.Lexer(tableLexer),
	participle.Elide("Whitespace"),
)

// ParseTable reads an automaton printed by WriteTable. The result is
// validated; a table naming a destination that has no row is rejected.
func ParseTable(src string) (*NFA, error) {
	src = strings.TrimSpace(src) + "\n"
	tbl, err := tableParser.ParseString("table", src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTable, err)
	}

	n := New()
	symbols := make([]alphabet.Symbol, 0, len(tbl.Symbols))
	for _, s := range tbl.Symbols {
		if utf8.RuneCountInString(s) != 1 {
			return nil, fmt.Errorf("%w: symbol %q is not a single character", ErrInvalidTable, s)
		}
		r, _ := utf8.DecodeRuneInString(s)
		sym := alphabet.Symbol(r)
		if n.Alphabet.Has(sym) {
			return nil, fmt.Errorf("%w: duplicate symbol %q", ErrInvalidTable, s)
		}
		n.Alphabet.Add(sym)
		symbols = append(symbols, sym)
	}

	initial := 0
	for _, r := range tbl.Rows {
		st := State(r.State)
		if n.States.Has(st) {
			return nil, fmt.Errorf("%w: duplicate row for state %d", ErrInvalidTable, st)
		}
		n.States.Add(st)
		if r.Initial {
			initial++
			n.Initial = st
		}
		if r.Final {
			n.Final.Add(st)
		}
		if len(r.Cells) != len(symbols) {
			return nil, fmt.Errorf("%w: state %d has %d cells, want %d", ErrInvalidTable, st, len(r.Cells), len(symbols))
		}
		for i, c := range r.Cells {
			for _, to := range c.States {
				n.AddTransition(st, symbols[i], State(to))
			}
		}
	}
	if initial != 1 {
		return nil, fmt.Errorf("%w: want exactly one initial state, got %d", ErrInvalidTable, initial)
	}
	if err := n.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTable, err)
	}
	return n, nil
}

// MustParseTable is like ParseTable but panics on error. It is meant for
// fixtures.
func MustParseTable(src string) *NFA {
	n, err := ParseTable(src)
	if err != nil {
		panic(err)
	}
	return n
}
