package alphabet

import "testing"

func TestSetSorted(t *testing.T) {
	s := NewSet('c', 'a', 'b', 'a')
	if s.Len() != 3 {
		t.Fatalf("len want 3 got %d", s.Len())
	}
	got := s.Sorted()
	want := []Symbol{'a', 'b', 'c'}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sorted[%d] want %v got %v", i, want[i], got[i])
		}
	}
}

func TestSetEqual(t *testing.T) {
	tests := []struct {
		a, b Set
		want bool
	}{
		{NewSet(), NewSet(), true},
		{NewSet('a', 'b'), NewSet('b', 'a'), true},
		{NewSet('a'), NewSet('a', 'b'), false},
		{NewSet('a', 'c'), NewSet('a', 'b'), false},
	}
	for _, tt := range tests {
		if got := tt.a.Equal(tt.b); got != tt.want {
			t.Errorf("%v.Equal(%v) = %v, want %v", tt.a.Sorted(), tt.b.Sorted(), got, tt.want)
		}
	}
}

func TestSymbolString(t *testing.T) {
	if got := Symbol('x').String(); got != "x" {
		t.Fatalf("want x got %q", got)
	}
}
