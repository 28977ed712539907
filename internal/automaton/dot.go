package automaton

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// WriteDOT prints the Graphviz representation of n to w.
func WriteDOT(w io.Writer, n *NFA) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("digraph NFA {\n")
	bw.WriteString("    rankdir=LR;\n")

	for _, st := range n.States.Sorted() {
		shape := "circle"
		if n.Final.Has(st) {
			shape = "doublecircle"
		}
		bw.WriteString("    q" + strconv.Itoa(int(st)) + " [shape=" + shape + "];\n")
	}
	for _, k := range n.Keys() {
		for _, to := range n.Transitions[k].Sorted() {
			bw.WriteString("    q" + strconv.Itoa(int(k.From)) + " -> q" + strconv.Itoa(int(to)) +
				" [label=\"" + dotEscape(k.Symbol.String()) + "\"];\n")
		}
	}
	bw.WriteString("    _start [shape=point]; _start -> q" + strconv.Itoa(int(n.Initial)) + ";\n")
	bw.WriteString("}\n")
	return bw.Flush()
}

func dotEscape(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s)
}
