// Package regex holds the regular expression syntax tree consumed by the
// Glushkov construction. Trees are built with the constructors below and are
// immutable afterwards.
package regex

import "glushkov/internal/alphabet"

// Kind tags the variant of a node.
type Kind int

const (
	KindEmpty Kind = iota // ∅, the zero value
	KindEpsilon
	KindSymbol
	KindAlternation
	KindConcatenation
	KindIteration
)

var kindNames = [...]string{
	KindEmpty:         "Empty",
	KindEpsilon:       "Epsilon",
	KindSymbol:        "Symbol",
	KindAlternation:   "Alternation",
	KindConcatenation: "Concatenation",
	KindIteration:     "Iteration",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(?)"
	}
	return kindNames[k]
}

// RegExp is a node of the expression tree. The zero value and a nil pointer
// both denote the empty language.
type RegExp struct {
	kind  Kind
	left  *RegExp // Alternation, Concatenation, Iteration
	right *RegExp // Alternation, Concatenation

	symbol alphabet.Symbol // Symbol
}

func Alternation(left, right *RegExp) *RegExp {
	return &RegExp{kind: KindAlternation, left: orEmpty(left), right: orEmpty(right)}
}

func Concatenation(left, right *RegExp) *RegExp {
	return &RegExp{kind: KindConcatenation, left: orEmpty(left), right: orEmpty(right)}
}

// Iteration is the Kleene star of inner.
func Iteration(inner *RegExp) *RegExp {
	return &RegExp{kind: KindIteration, left: orEmpty(inner)}
}

// Symbol returns a new leaf. Every call yields a distinct occurrence, even
// for equal values.
func Symbol(s alphabet.Symbol) *RegExp {
	return &RegExp{kind: KindSymbol, symbol: s}
}

func Epsilon() *RegExp { return &RegExp{kind: KindEpsilon} }

func Empty() *RegExp { return &RegExp{kind: KindEmpty} }

// Alt folds its operands into right-nested alternations. Alt() is Empty.
func Alt(operands ...*RegExp) *RegExp {
	if len(operands) == 0 {
		return Empty()
	}
	return foldRight(operands, Alternation)
}

// Seq folds its operands into right-nested concatenations. Seq() is Epsilon.
func Seq(operands ...*RegExp) *RegExp {
	if len(operands) == 0 {
		return Epsilon()
	}
	return foldRight(operands, Concatenation)
}

func foldRight(operands []*RegExp, join func(l, r *RegExp) *RegExp) *RegExp {
	acc := orEmpty(operands[len(operands)-1])
	for i := len(operands) - 2; i >= 0; i-- {
		acc = join(operands[i], acc)
	}
	return acc
}

func orEmpty(r *RegExp) *RegExp {
	if r == nil {
		return Empty()
	}
	return r
}

func (r *RegExp) Kind() Kind {
	if r == nil {
		return KindEmpty
	}
	return r.kind
}

// Left returns the left operand of an Alternation or Concatenation.
func (r *RegExp) Left() *RegExp {
	if k := r.Kind(); k != KindAlternation && k != KindConcatenation {
		return nil
	}
	return r.left
}

// Right returns the right operand of an Alternation or Concatenation.
func (r *RegExp) Right() *RegExp {
	if k := r.Kind(); k != KindAlternation && k != KindConcatenation {
		return nil
	}
	return r.right
}

// Inner returns the operand of an Iteration.
func (r *RegExp) Inner() *RegExp {
	if r.Kind() != KindIteration {
		return nil
	}
	return r.left
}

// Value returns the symbol carried by a Symbol leaf.
func (r *RegExp) Value() (alphabet.Symbol, bool) {
	if r.Kind() != KindSymbol {
		return 0, false
	}
	return r.symbol, true
}
