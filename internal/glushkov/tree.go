package glushkov

import (
	"glushkov/internal/alphabet"
	"glushkov/internal/regex"
)

const none = -1

// node is one reachable occurrence of a sub-expression. A sub-tree shared by
// several parents is copied once per path, so every symbol occurrence gets a
// handle of its own.
type node struct {
	kind        regex.Kind
	left, right int // handles, none if absent
	pos         int // position of a Symbol leaf, none otherwise
}

// tree is the arena form of an expression together with its position index
// and the per-handle caches of the boundary computations.
type tree struct {
	nodes   []node
	root    int
	symbols []alphabet.Symbol // indexed by position

	nullable []int8 // 0 unknown, 1 false, 2 true
	first    []*posSet
	last     []*posSet
}

// build walks re in pre-order, assigning handles and positions. Symbols are
// numbered left to right, so two builds of the same tree agree.
func build(re *regex.RegExp) *tree {
	t := &tree{}
	t.root = t.add(re)
	t.nullable = make([]int8, len(t.nodes))
	t.first = make([]*posSet, len(t.nodes))
	t.last = make([]*posSet, len(t.nodes))
	return t
}

func (t *tree) add(re *regex.RegExp) int {
	h := len(t.nodes)
	t.nodes = append(t.nodes, node{kind: re.Kind(), left: none, right: none, pos: none})

	switch re.Kind() {
	case regex.KindAlternation, regex.KindConcatenation:
		l := t.add(re.Left())
		r := t.add(re.Right())
		t.nodes[h].left, t.nodes[h].right = l, r
	case regex.KindIteration:
		t.nodes[h].left = t.add(re.Inner())
	case regex.KindSymbol:
		sym, _ := re.Value()
		t.nodes[h].pos = len(t.symbols)
		t.symbols = append(t.symbols, sym)
	case regex.KindEpsilon, regex.KindEmpty:
	}
	return h
}

// size is the number of positions.
func (t *tree) size() int { return len(t.symbols) }

func (t *tree) isNullable(h int) bool {
	if v := t.nullable[h]; v != 0 {
		return v == 2
	}
	n := t.nodes[h]
	var res bool
	switch n.kind {
	case regex.KindAlternation:
		res = t.isNullable(n.left) || t.isNullable(n.right)
	case regex.KindConcatenation:
		res = t.isNullable(n.left) && t.isNullable(n.right)
	case regex.KindIteration:
		res = true
	case regex.KindSymbol:
		res = false
	case regex.KindEpsilon:
		res = true
	case regex.KindEmpty:
		res = false
	}
	t.nullable[h] = 1
	if res {
		t.nullable[h] = 2
	}
	return res
}

// firstPos returns the positions that can start a match of h. The returned
// set is cached and must not be modified.
func (t *tree) firstPos(h int) *posSet {
	if s := t.first[h]; s != nil {
		return s
	}
	n := t.nodes[h]
	var s *posSet
	switch n.kind {
	case regex.KindAlternation:
		s = t.firstPos(n.left).union(t.firstPos(n.right))
	case regex.KindConcatenation:
		s = t.firstPos(n.left)
		if t.isNullable(n.left) {
			s = s.union(t.firstPos(n.right))
		}
	case regex.KindIteration:
		s = t.firstPos(n.left)
	case regex.KindSymbol:
		s = singletonPos(t.size(), n.pos)
	case regex.KindEpsilon, regex.KindEmpty:
		s = newPosSet(t.size())
	}
	t.first[h] = s
	return s
}

// lastPos mirrors firstPos: the positions that can end a match of h.
func (t *tree) lastPos(h int) *posSet {
	if s := t.last[h]; s != nil {
		return s
	}
	n := t.nodes[h]
	var s *posSet
	switch n.kind {
	case regex.KindAlternation:
		s = t.lastPos(n.left).union(t.lastPos(n.right))
	case regex.KindConcatenation:
		s = t.lastPos(n.right)
		if t.isNullable(n.right) {
			s = s.union(t.lastPos(n.left))
		}
	case regex.KindIteration:
		s = t.lastPos(n.left)
	case regex.KindSymbol:
		s = singletonPos(t.size(), n.pos)
	case regex.KindEpsilon, regex.KindEmpty:
		s = newPosSet(t.size())
	}
	t.last[h] = s
	return s
}
