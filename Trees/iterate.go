package Trees

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Iterator walks an OSTree in ascending order by following successor links.
// It starts just before the minimum. It holds nodes, not a snapshot, so the tree
// mustn't be modified while an Iterator is in use.
type Iterator[T any, S constraints.Unsigned] struct {
	cur *node[T, S]
}

// Iterator positioned before the minimum of the tree.
// Time: O(D)
func (u *OSTree[T, S]) Iterator() *Iterator[T, S] {
	return &Iterator[T, S]{minNode(u.root)}
}

// HasNext reports whether Next has an element to return.
func (it *Iterator[T, S]) HasNext() bool {
	return it.cur != nil
}

// Next element in ascending order. Panics with ErrExhausted if !HasNext().
// Time: amortized O(1)
func (it *Iterator[T, S]) Next() T {
	if it.cur == nil {
		panic(ErrExhausted)
	}
	v := it.cur.v
	it.cur = successor(it.cur)
	return v
}

// InOrder [Tree.InOrder]
// Time: f(): amortized O(1) at each call to the returned function. Space: O(1)
func (u *OSTree[T, S]) InOrder() func() (T, bool) {
	cur := minNode(u.root)
	return func() (r T, has bool) {
		if cur != nil {
			r, has = cur.v, true
			cur = successor(cur)
		}
		return
	}
}

// All [Tree.All]
func (u *OSTree[T, S]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := minNode(u.root); cur != nil; cur = successor(cur) {
			if !yield(cur.v) {
				return
			}
		}
	}
}

// Backward [Tree.Backward]
func (u *OSTree[T, S]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := maxNode(u.root); cur != nil; cur = predecessor(cur) {
			if !yield(cur.v) {
				return
			}
		}
	}
}
