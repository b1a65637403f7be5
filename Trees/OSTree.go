package Trees

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// OSTree is a binary search tree with no repeated values. Every node knows the size
// of its subtree and its parent, so that it supports indexing by rank and in-order
// walks without an explicit stack.
// T is the type of values it will hold, S is the type of the variables
// used for storing the sizes of different subtrees. S should be a wide upperbound
// for the size of the tree.
// OSTree doesn't rebalance: inserting in sorted order degrades it to a list and the
// height D becomes O(n). For random insertion order D is O(log n) expected.
// This tree needs to keep track of the sizes of each subtree and parent pointers,
// so the additional memory cost is (size(S)+size(uintptr))*n.
// All methods are implemented iteratively, so no method uses stack space
// proportional to D.
type OSTree[T any, S constraints.Unsigned] struct {
	root *node[T, S]
	cmp  func(a, b T) int
}

var _ Tree[int] = (*OSTree[int, uint])(nil)

// New returns an empty OSTree ordered by cmp.Compare.
// OSTree shouldn't be created directly using struct literal.
func New[T cmp.Ordered, S constraints.Unsigned]() *OSTree[T, S] {
	return &OSTree[T, S]{cmp: cmp.Compare[T]}
}

// NewFunc returns an empty OSTree ordered by compare, which must define a total order
// and return a negative number, 0, or a positive number like cmp.Compare does.
func NewFunc[T any, S constraints.Unsigned](compare func(a, b T) int) *OSTree[T, S] {
	return &OSTree[T, S]{cmp: compare}
}

// Size of the tree.
// Time: O(1); Space: O(1)
func (u *OSTree[T, S]) Size() S {
	return sizeOf(u.root)
}

// Len [Tree.Len]
func (u *OSTree[T, S]) Len() int {
	return int(sizeOf(u.root))
}

// IsEmpty [Tree.IsEmpty]
func (u *OSTree[T, S]) IsEmpty() bool {
	return u.root == nil
}

// Clear [Tree.Clear]. The nodes are left to the garbage collector.
// Time: O(1)
func (u *OSTree[T, S]) Clear() {
	u.root = nil
}

// find the node holding v, nil if there's none.
// Time: O(D); Space: O(1)
func (u *OSTree[T, S]) find(v T) *node[T, S] {
	for cur := u.root; cur != nil; {
		if c := u.cmp(v, cur.v); c < 0 {
			cur = cur.l
		} else if c > 0 {
			cur = cur.r
		} else {
			return cur
		}
	}
	return nil
}

// Insert [Tree.Insert].
// The new node is attached at the empty slot the search ends in; the sizes of
// all its ancestors are then incremented on the way back up.
// Time: O(D); Space: O(1)
func (u *OSTree[T, S]) Insert(v T) bool {
	var p *node[T, S]
	slot := &u.root
	for cur := u.root; cur != nil; cur = *slot {
		c := u.cmp(v, cur.v)
		if c == 0 {
			return false
		}
		p = cur
		if c < 0 {
			slot = &cur.l
		} else {
			slot = &cur.r
		}
	}
	*slot = &node[T, S]{v: v, p: p, sz: 1}
	for ; p != nil; p = p.p {
		p.sz++
	}
	return true
}

// Remove [Tree.Remove].
// A node with 2 children takes the value of its in-order successor, and the
// successor, which has no left child, is unlinked instead. Exactly one node is
// unlinked, so every ancestor of it shrinks by 1. Nothing is modified when v isn't found.
// Time: O(D); Space: O(1)
func (u *OSTree[T, S]) Remove(v T) bool {
	n := u.find(v)
	if n == nil {
		return false
	}
	if n.l != nil && n.r != nil {
		s := minNode(n.r)
		n.v = s.v
		n = s
	}
	for p := n.p; p != nil; p = p.p {
		p.sz--
	}
	u.splice(n)
	return true
}

// splice n out of the tree. n must have at most 1 child, which takes n's place
// in its parent, or the root.
func (u *OSTree[T, S]) splice(n *node[T, S]) {
	c := n.l
	if c == nil {
		c = n.r
	}
	if c != nil {
		c.p = n.p
	}
	if p := n.p; p == nil {
		u.root = c
	} else if p.l == n {
		p.l = c
	} else {
		p.r = c
	}
	n.l, n.r, n.p = nil, nil, nil
}

// Contains [Tree.Contains]
// Time: O(D); Space: O(1)
func (u *OSTree[T, S]) Contains(v T) bool {
	return u.find(v) != nil
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *OSTree[T, S]) Minimum() (T, bool) {
	if n := minNode(u.root); n != nil {
		return n.v, true
	}
	return *new(T), false
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *OSTree[T, S]) Maximum() (T, bool) {
	if n := maxNode(u.root); n != nil {
		return n.v, true
	}
	return *new(T), false
}

// Predecessor [Tree.Predecessor]
// Time: O(D); Space: O(1)
func (u *OSTree[T, S]) Predecessor(v T) (T, bool) {
	var p *node[T, S]
	for cur := u.root; cur != nil; {
		if u.cmp(v, cur.v) <= 0 {
			cur = cur.l
		} else {
			p = cur
			cur = cur.r
		}
	}
	if p == nil {
		return *new(T), false
	}
	return p.v, true
}

// Successor [Tree.Successor]
// Time: O(D); Space: O(1)
func (u *OSTree[T, S]) Successor(v T) (T, bool) {
	var p *node[T, S]
	for cur := u.root; cur != nil; {
		if u.cmp(v, cur.v) < 0 {
			p = cur
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	if p == nil {
		return *new(T), false
	}
	return p.v, true
}
