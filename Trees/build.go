package Trees

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// Build an OSTree ordered by cmp.Compare from the given sorted slice. This is faster than
// repeatedly calling Insert and gives a tree of minimal height.
// The given slice must be sorted in ascending order and mustn't contain duplicate elements.
// If safe==true, this function will check if the conditions are met and panic with InvalidSliceError
// if the conditions are broken. Otherwise, it is up to the user to ensure the conditions
// are met(otherwise the tree will be corrupt).
// The slice isn't retained.
// Time: O(n); Space: O(log n) besides the nodes.
func Build[T cmp.Ordered, S constraints.Unsigned](sli []T, safe bool) *OSTree[T, S] {
	return BuildFunc[T, S](sli, cmp.Compare[T], safe)
}

// BuildFunc is the NewFunc equivalence of Build; sli must be sorted according to compare.
func BuildFunc[T any, S constraints.Unsigned](sli []T, compare func(a, b T) int, safe bool) *OSTree[T, S] {
	if safe {
		for i := 1; i < len(sli); i++ {
			if compare(sli[i-1], sli[i]) >= 0 {
				panic(InvalidSliceError{sli[i-1], sli[i]})
			}
		}
	}
	var build func(s []T, p *node[T, S]) *node[T, S]
	build = func(s []T, p *node[T, S]) *node[T, S] {
		if len(s) == 0 {
			return nil
		}
		mid := len(s) >> 1
		n := &node[T, S]{v: s[mid], p: p, sz: S(len(s))}
		n.l, n.r = build(s[:mid], n), build(s[mid+1:], n)
		return n
	}
	return &OSTree[T, S]{root: build(sli, nil), cmp: compare}
}
