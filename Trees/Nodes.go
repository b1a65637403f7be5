package Trees

import "golang.org/x/exp/constraints"

// A node in the OSTree.
// l and r are owned by the node. p is only a back reference used for walking
// upwards; it is nil at the root.
type node[T any, S constraints.Unsigned] struct {
	v       T
	l, r, p *node[T, S]
	sz      S // number of nodes in the subtree rooting here, including itself
}

// sizeOf the subtree rooting at n. nil has size 0.
func sizeOf[T any, S constraints.Unsigned](n *node[T, S]) S {
	if n == nil {
		return 0
	}
	return n.sz
}

// sizeOfLeft is the size of the left subtree; used by the rank locator.
func (n *node[T, S]) sizeOfLeft() S {
	return sizeOf(n.l)
}

// minNode of the subtree rooting at n, nil if n==nil.
// Time: O(D); Space: O(1)
func minNode[T any, S constraints.Unsigned](n *node[T, S]) *node[T, S] {
	if n != nil {
		for n.l != nil {
			n = n.l
		}
	}
	return n
}

// maxNode of the subtree rooting at n, nil if n==nil.
// Time: O(D); Space: O(1)
func maxNode[T any, S constraints.Unsigned](n *node[T, S]) *node[T, S] {
	if n != nil {
		for n.r != nil {
			n = n.r
		}
	}
	return n
}

// successor of n in in-order, nil when n holds the maximum.
// Time: O(D), amortized O(1) over a full traversal; Space: O(1)
func successor[T any, S constraints.Unsigned](n *node[T, S]) *node[T, S] {
	if n.r != nil {
		return minNode(n.r)
	}
	p := n.p
	for p != nil && n == p.r {
		n, p = p, p.p
	}
	return p
}

// predecessor is the mirror image of successor.
func predecessor[T any, S constraints.Unsigned](n *node[T, S]) *node[T, S] {
	if n.l != nil {
		return maxNode(n.l)
	}
	p := n.p
	for p != nil && n == p.l {
		n, p = p, p.p
	}
	return p
}
