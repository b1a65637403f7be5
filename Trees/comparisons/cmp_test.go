package comparisons

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/cornelk/hashmap"
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/g-m-twostay/ostree/Trees"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
	"github.com/stretchr/testify/require"
)

// Differential tests: the same operations are applied to OSTree and to the balanced
// trees from https://github.com/google/btree, https://github.com/emirpasic/gods and
// https://github.com/petar/GoLLRB. They must agree on every answer and on the final order.
// https://github.com/cornelk/hashmap serves as the set oracle for Insert/Remove results.

const (
	opN        = 20000
	valRange   = 5000
	checkEvery = 2000
)

type refs struct {
	bt  *btree.BTreeG[int]
	rb  *redblacktree.Tree
	lr  *llrb.LLRB
	set *hashmap.Map[int, struct{}]
}

func newRefs() refs {
	return refs{btree.NewOrderedG[int](32), redblacktree.NewWithIntComparator(), llrb.New(), hashmap.New[int, struct{}]()}
}

func (r refs) insert(v int) bool {
	r.bt.ReplaceOrInsert(v)
	r.rb.Put(v, struct{}{})
	r.lr.ReplaceOrInsert(llrb.Int(v))
	return r.set.Insert(v, struct{}{})
}

func (r refs) remove(v int) bool {
	r.bt.Delete(v)
	r.rb.Remove(v)
	r.lr.Delete(llrb.Int(v))
	return r.set.Del(v)
}

// sorted contents of every reference tree; they must agree with each other first.
func (r refs) sorted(t *testing.T) []int {
	t.Helper()
	var a, b, c []int
	r.bt.Ascend(func(v int) bool {
		a = append(a, v)
		return true
	})
	for _, k := range r.rb.Keys() {
		b = append(b, k.(int))
	}
	if m := r.lr.Min(); m != nil {
		r.lr.AscendGreaterOrEqual(m, func(i llrb.Item) bool {
			c = append(c, int(i.(llrb.Int)))
			return true
		})
	}
	require.Equal(t, a, b, "btree and redblacktree disagree")
	require.Equal(t, a, c, "btree and llrb disagree")
	require.Equal(t, len(a), r.set.Len())
	return a
}

func compare(t *testing.T, tree *Trees.OSTree[int, uint32], r refs) {
	t.Helper()
	want := r.sorted(t)
	require.Equal(t, want, slices.Collect(tree.All()))
	require.Equal(t, len(want), tree.Len())
	require.NoError(t, tree.Verify())

	mn, ok := tree.Minimum()
	bmn, bok := r.bt.Min()
	require.Equal(t, bok, ok)
	require.Equal(t, bmn, mn)
	mx, ok := tree.Maximum()
	bmx, bok := r.bt.Max()
	require.Equal(t, bok, ok)
	require.Equal(t, bmx, mx)
	if ok {
		require.Equal(t, r.rb.Left().Key, mn)
		require.Equal(t, r.rb.Right().Key, mx)
	}

	for i, v := range want {
		g, err := tree.Get(i)
		require.NoError(t, err)
		require.Equal(t, v, g)
	}
	if len(want) > 0 {
		vs, err := tree.GetRange(len(want)/3, len(want)-1)
		require.NoError(t, err)
		require.Equal(t, want[len(want)/3:], vs)
	}
}

func TestDifferential_Random(t *testing.T) {
	rg := rand.New(rand.NewSource(1))
	tree, r := Trees.New[int, uint32](), newRefs()
	for i := range opN {
		v := rg.Intn(valRange)
		switch rg.Intn(3) {
		case 0, 1:
			require.Equal(t, r.insert(v), tree.Insert(v), "insert %d", v)
		default:
			require.Equal(t, r.remove(v), tree.Remove(v), "remove %d", v)
		}
		require.Equal(t, r.bt.Has(v), tree.Contains(v))
		if i%checkEvery == 0 {
			compare(t, tree, r)
		}
	}
	compare(t, tree, r)
}

func TestDifferential_Drain(t *testing.T) {
	rg := rand.New(rand.NewSource(2))
	tree, r := Trees.New[int, uint32](), newRefs()
	for _, v := range rg.Perm(valRange) {
		tree.Insert(v)
		r.insert(v)
	}
	compare(t, tree, r)
	for i, v := range rg.Perm(valRange) {
		require.True(t, tree.Remove(v))
		require.True(t, r.remove(v))
		if i%(valRange/10) == 0 {
			compare(t, tree, r)
		}
	}
	compare(t, tree, r)
	require.True(t, tree.IsEmpty())
}

func TestDifferential_Neighbours(t *testing.T) {
	rg := rand.New(rand.NewSource(3))
	tree, r := Trees.New[int, uint32](), newRefs()
	for range valRange {
		v := rg.Intn(valRange * 4)
		tree.Insert(v)
		r.insert(v)
	}
	for range valRange {
		v := rg.Intn(valRange*4+2) - 1
		p, ok := tree.Predecessor(v)
		var bp int
		var bok bool
		r.bt.DescendLessOrEqual(v-1, func(x int) bool {
			bp, bok = x, true
			return false
		})
		require.Equal(t, bok, ok)
		require.Equal(t, bp, p)

		s, ok := tree.Successor(v)
		n, rok := r.rb.Ceiling(v + 1)
		require.Equal(t, rok, ok)
		if rok {
			require.Equal(t, n.Key, s)
		}

		rank, in := tree.RankOf(v)
		less := 0
		r.bt.AscendLessThan(v, func(int) bool {
			less++
			return true
		})
		require.Equal(t, less, rank)
		require.Equal(t, r.bt.Has(v), in)
	}
}
