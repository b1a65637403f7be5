package Trees

import (
	"fmt"

	"github.com/g-m-twostay/ostree/Queues"
	"golang.org/x/exp/constraints"
)

// level pairs a node with its depth for the breadth first walks below.
type level[T any, S constraints.Unsigned] struct {
	n *node[T, S]
	d int
}

// Levels returns the elements level by level, each level from left to right.
// Levels()[0] holds only the root. Empty tree gives nil.
// Time: O(n); Space: O(n)
func (u *OSTree[T, S]) Levels() [][]T {
	if u.root == nil {
		return nil
	}
	var ls [][]T
	q := Queues.MakeArrayQueue[level[T, S]](uint(u.Size()/2 + 1))
	for q.Push(level[T, S]{u.root, 0}); !q.Empty(); {
		top, _ := q.Pop()
		if top.d == len(ls) {
			ls = append(ls, nil)
		}
		ls[top.d] = append(ls[top.d], top.n.v)
		if top.n.l != nil {
			q.Push(level[T, S]{top.n.l, top.d + 1})
		}
		if top.n.r != nil {
			q.Push(level[T, S]{top.n.r, top.d + 1})
		}
	}
	return ls
}

// Height of the tree: -1 when empty, 0 when only the root exists.
// Time: O(n); Space: O(n)
func (u *OSTree[T, S]) Height() int {
	return len(u.Levels()) - 1
}

// Corrupt [Tree.Corrupt]. It's Verify()!=nil.
func (u *OSTree[T, S]) Corrupt() bool {
	return u.Verify() != nil
}

// Verify checks every node for the ordering, subtree size and parent link invariants,
// and returns an error describing the first violation found.
// Time: O(n*D); Space: O(n)
func (u *OSTree[T, S]) Verify() error {
	if u.root == nil {
		return nil
	}
	if u.root.p != nil {
		return fmt.Errorf("trees: root has parent %v", u.root.p.v)
	}
	q := Queues.MakeArrayQueue[*node[T, S]](uint(u.Size()/2 + 1))
	for q.Push(u.root); !q.Empty(); {
		n, _ := q.Pop()
		if n.sz != 1+sizeOf(n.l)+sizeOf(n.r) {
			return fmt.Errorf("trees: node %v has size %d, children have %d and %d", n.v, n.sz, sizeOf(n.l), sizeOf(n.r))
		}
		for _, c := range [2]*node[T, S]{n.l, n.r} {
			if c == nil {
				continue
			}
			if c.p != n {
				return fmt.Errorf("trees: child %v of %v doesn't point back to it", c.v, n.v)
			}
			q.Push(c)
		}
	}
	// In-order must be strictly ascending for the BST order to hold.
	cnt := S(0)
	for prev, cur := (*node[T, S])(nil), minNode(u.root); cur != nil; prev, cur = cur, successor(cur) {
		if prev != nil && u.cmp(prev.v, cur.v) >= 0 {
			return fmt.Errorf("trees: %v isn't less than its successor %v", prev.v, cur.v)
		}
		if u.getNode(cnt) != cur {
			return fmt.Errorf("trees: %v isn't found at its in-order index %d", cur.v, cnt)
		}
		cnt++
	}
	if cnt != u.root.sz {
		return fmt.Errorf("trees: walked %d nodes, root has size %d", cnt, u.root.sz)
	}
	return nil
}
