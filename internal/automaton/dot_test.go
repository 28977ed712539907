package automaton

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriteDOT(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteDOT(&buf, sample()); err != nil {
		t.Fatalf("WriteDOT: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"digraph NFA {",
		"q0 [shape=circle];",
		"q1 [shape=doublecircle];",
		`q0 -> q0 [label="a"];`,
		`q0 -> q1 [label="a"];`,
		`q1 -> q1 [label="b"];`,
		"_start -> q0;",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in\n%s", want, out)
		}
	}
	if !strings.HasSuffix(out, "}\n") {
		t.Errorf("graph not closed")
	}
}

func TestWriteDOTEscapesLabels(t *testing.T) {
	n := New()
	n.States.Add(0)
	n.Alphabet.Add('"')
	n.AddTransition(0, '"', 0)
	var buf bytes.Buffer
	if err := WriteDOT(&buf, n); err != nil {
		t.Fatalf("WriteDOT: %v", err)
	}
	if !strings.Contains(buf.String(), `[label="\""]`) {
		t.Fatalf("quote not escaped:\n%s", buf.String())
	}
}
