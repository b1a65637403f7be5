package Trees

// getNode at index i, where 0<=i<Size(). It only uses the subtree sizes, never
// compares values. count is the 1-based rank still to be found in the subtree of cur.
// Time: O(D); Space: O(1)
func (u *OSTree[T, S]) getNode(i S) *node[T, S] {
	count := i + 1
	for cur := u.root; cur != nil; {
		if l := cur.sizeOfLeft(); l+1 == count {
			return cur
		} else if l < count {
			count -= l + 1
			cur = cur.r
		} else {
			cur = cur.l
		}
	}
	return nil
}

// Get [Tree.Get]
// Time: O(D); Space: O(1)
func (u *OSTree[T, S]) Get(i int) (T, error) {
	if sz := u.Len(); i < 0 || i >= sz {
		return *new(T), &IndexError{i, i, sz}
	}
	return u.getNode(S(i)).v, nil
}

// GetRange [Tree.GetRange]
// Requires 0<=first<=last<Size(); an empty tree always fails.
// Locates first once, then follows successors.
// Time: O(D+last-first); Space: O(last-first)
func (u *OSTree[T, S]) GetRange(first, last int) ([]T, error) {
	if sz := u.Len(); first < 0 || last >= sz || first > last {
		return nil, &IndexError{first, last, sz}
	}
	vs := make([]T, 0, last-first+1)
	for cur, i := u.getNode(S(first)), first; i <= last; cur, i = successor(cur), i+1 {
		vs = append(vs, cur.v)
	}
	return vs, nil
}

// RankOf [Tree.RankOf]
// When v isn't present, the returned rank is the index v would have after inserting it.
// Time: O(D); Space: O(1)
func (u *OSTree[T, S]) RankOf(v T) (int, bool) {
	var ra S
	for cur := u.root; cur != nil; {
		if c := u.cmp(v, cur.v); c < 0 {
			cur = cur.l
		} else if c > 0 {
			ra += cur.sizeOfLeft() + 1
			cur = cur.r
		} else {
			return int(ra + cur.sizeOfLeft()), true
		}
	}
	return int(ra), false
}
