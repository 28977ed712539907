package automaton

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestEmitGo(t *testing.T) {
	var buf bytes.Buffer
	err := EmitGo(&buf, sample(), GoOptions{Package: "fixtures", Name: "Sample"})
	if err != nil {
		t.Fatalf("EmitGo: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"// Code generated by glushkov. DO NOT EDIT.",
		"package fixtures",
		"const SampleInitial = 0",
		"var SampleStates = []int{0, 1}",
		"var SampleFinal = map[int]bool{",
		"var SampleTransitions = map[int]map[rune][]int{",
		"'a':",
		"{0, 1}",
		"'b':",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in\n%s", want, out)
		}
	}
}

func TestEmitGoOptions(t *testing.T) {
	tests := []struct {
		name string
		opts GoOptions
	}{
		{"empty package", GoOptions{Name: "X"}},
		{"bad package", GoOptions{Package: "my-pkg", Name: "X"}},
		{"empty name", GoOptions{Package: "p"}},
		{"unexported name", GoOptions{Package: "p", Name: "x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := EmitGo(&buf, sample(), tt.opts); !errors.Is(err, ErrInvalidOptions) {
				t.Errorf("EmitGo(%+v) = %v, want ErrInvalidOptions", tt.opts, err)
			}
			if buf.Len() != 0 {
				t.Errorf("output written for invalid options")
			}
		})
	}
}
