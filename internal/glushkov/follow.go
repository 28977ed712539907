package glushkov

import "glushkov/internal/regex"

// neighbours returns the follow pairs of the sub-expression rooted at h.
//
//	a|b   follow(a) ∪ follow(b)
//	a b   follow(a) ∪ follow(b) ∪ last(a)×first(b)
//	a*    follow(a) ∪ last(a)×first(a)
func (t *tree) neighbours(h int) pairSet {
	n := t.nodes[h]
	switch n.kind {
	case regex.KindAlternation:
		out := t.neighbours(n.left)
		out.merge(t.neighbours(n.right))
		return out
	case regex.KindConcatenation:
		out := t.neighbours(n.left)
		out.merge(t.neighbours(n.right))
		out.merge(cross(t.lastPos(n.left), t.firstPos(n.right)))
		return out
	case regex.KindIteration:
		out := t.neighbours(n.left)
		out.merge(cross(t.lastPos(n.left), t.firstPos(n.left)))
		return out
	case regex.KindSymbol, regex.KindEpsilon, regex.KindEmpty:
	}
	return pairSet{}
}
