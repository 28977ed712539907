package regex

import (
	"bytes"
	"testing"
)

func TestString(t *testing.T) {
	tests := []struct {
		name string
		re   *RegExp
		want string
	}{
		{"empty", Empty(), "#0"},
		{"nil", nil, "#0"},
		{"zero value", &RegExp{}, "#0"},
		{"epsilon", Epsilon(), "#E"},
		{"symbol", Symbol('a'), "a"},
		{"alternation", Alternation(Symbol('a'), Symbol('b')), "(a+b)"},
		{"concatenation", Concatenation(Symbol('a'), Epsilon()), "(a #E)"},
		{"iteration", Iteration(Symbol('a')), "(a)*"},
		{
			"nested",
			Concatenation(Iteration(Alternation(Symbol('a'), Symbol('b'))), Symbol('a')),
			"(((a+b))* a)",
		},
		{"nil child", Alternation(nil, Symbol('c')), "(#0+c)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.re.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFprint(t *testing.T) {
	var buf bytes.Buffer
	if err := Fprint(&buf, Iteration(Epsilon())); err != nil {
		t.Fatalf("Fprint: %v", err)
	}
	if buf.String() != "(#E)*" {
		t.Fatalf("want (#E)* got %q", buf.String())
	}
}

func TestFold(t *testing.T) {
	if got := Seq().Kind(); got != KindEpsilon {
		t.Fatalf("Seq() kind = %v, want Epsilon", got)
	}
	if got := Alt().Kind(); got != KindEmpty {
		t.Fatalf("Alt() kind = %v, want Empty", got)
	}
	if got := Seq(Symbol('a')).String(); got != "a" {
		t.Fatalf("Seq(a) = %q", got)
	}
	if got := Seq(Symbol('a'), Symbol('b'), Symbol('c')).String(); got != "(a (b c))" {
		t.Fatalf("Seq(a,b,c) = %q", got)
	}
	if got := Alt(Symbol('a'), Symbol('b'), Symbol('c')).String(); got != "(a+(b+c))" {
		t.Fatalf("Alt(a,b,c) = %q", got)
	}
}

func TestAccessors(t *testing.T) {
	a, b := Symbol('a'), Symbol('b')
	alt := Alternation(a, b)
	if alt.Left() != a || alt.Right() != b || alt.Inner() != nil {
		t.Fatalf("alternation accessors wrong")
	}
	star := Iteration(alt)
	if star.Inner() != alt || star.Left() != nil || star.Right() != nil {
		t.Fatalf("iteration accessors wrong")
	}
	if v, ok := a.Value(); !ok || v != 'a' {
		t.Fatalf("Value() = %v, %v", v, ok)
	}
	if _, ok := star.Value(); ok {
		t.Fatalf("Value() on iteration should fail")
	}
	var nilRe *RegExp
	if nilRe.Kind() != KindEmpty || nilRe.Left() != nil || nilRe.Inner() != nil {
		t.Fatalf("nil node must behave as Empty")
	}
}

func TestKindString(t *testing.T) {
	if KindConcatenation.String() != "Concatenation" {
		t.Fatalf("got %q", KindConcatenation.String())
	}
	if Kind(42).String() != "Kind(?)" {
		t.Fatalf("got %q", Kind(42).String())
	}
}
