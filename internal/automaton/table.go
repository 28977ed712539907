package automaton

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// WriteTable prints n in the ALT table format:
//
//	NFA a b
//	><0 1 -
//	 <1 1 -
//
// The header lists the alphabet. Each row is marked ">" when initial and "<"
// when final, then lists per symbol either "-" or the "|"-joined
// destinations. States and symbols appear in ascending order.
func WriteTable(w io.Writer, n *NFA) error {
	bw := bufio.NewWriter(w)
	symbols := n.Alphabet.Sorted()

	bw.WriteString("NFA ")
	for _, sym := range symbols {
		bw.WriteString(sym.String())
		bw.WriteByte(' ')
	}
	bw.WriteByte('\n')

	for _, st := range n.States.Sorted() {
		if st == n.Initial {
			bw.WriteByte('>')
		} else {
			bw.WriteByte(' ')
		}
		if n.Final.Has(st) {
			bw.WriteByte('<')
		} else {
			bw.WriteByte(' ')
		}
		bw.WriteString(strconv.Itoa(int(st)))

		for _, sym := range symbols {
			bw.WriteByte(' ')
			dst := n.Next(st, sym)
			if len(dst) == 0 {
				bw.WriteByte('-')
				continue
			}
			for i, to := range dst.Sorted() {
				if i > 0 {
					bw.WriteByte('|')
				}
				bw.WriteString(strconv.Itoa(int(to)))
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func (n *NFA) String() string {
	var b strings.Builder
	_ = WriteTable(&b, n)
	return b.String()
}
