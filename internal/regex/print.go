package regex

import (
	"io"
	"strings"
)

// String renders the tree in the parenthesized infix notation of the ALT
// tool: "+" for alternation, a space for concatenation, a trailing "*" for
// iteration, "#E" for epsilon and "#0" for the empty language.
func (r *RegExp) String() string {
	var b strings.Builder
	write(&b, r)
	return b.String()
}

// Fprint writes the notation of r to w.
func Fprint(w io.Writer, r *RegExp) error {
	_, err := io.WriteString(w, r.String())
	return err
}

func write(b *strings.Builder, r *RegExp) {
	switch r.Kind() {
	case KindAlternation:
		b.WriteByte('(')
		write(b, r.left)
		b.WriteByte('+')
		write(b, r.right)
		b.WriteByte(')')
	case KindConcatenation:
		b.WriteByte('(')
		write(b, r.left)
		b.WriteByte(' ')
		write(b, r.right)
		b.WriteByte(')')
	case KindIteration:
		b.WriteByte('(')
		write(b, r.left)
		b.WriteString(")*")
	case KindSymbol:
		b.WriteRune(rune(r.symbol))
	case KindEpsilon:
		b.WriteString("#E")
	case KindEmpty:
		b.WriteString("#0")
	}
}
