package Trees

import "iter"

// Tree represents an ordered set of distinct elements kept in a binary search tree.
// Receivers that has a bool as a second return value indicates whether
// the first return value is defined. For example, if calling Minimum on
// an empty tree, the return value will be (x T, false bool). In this
// case x is the zero value of T and shouldn't be used.
// Ranks and indexes are 0-based positions in ascending order.
// Implementations aren't safe for concurrent use; a tree must have a single owner
// or be guarded by the caller.
type Tree[T any] interface {
	//Insert v to the Tree. Returns false if v is already present, in which case
	//the tree is unchanged.
	Insert(v T) bool
	//Remove v from the Tree. Returns false if v isn't present, in which case
	//the tree is unchanged.
	Remove(v T) bool
	//Contains reports whether v is in the tree.
	Contains(v T) bool
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//Predecessor returns the greatest element less than v.
	Predecessor(v T) (T, bool)
	//Successor returns the smallest element greater than v.
	Successor(v T) (T, bool)
	//Get the element at index i.
	//0<=i<Len(), otherwise the error wraps ErrOutOfRange.
	Get(i int) (T, error)
	//GetRange returns the elements at indexes first through last inclusively.
	GetRange(first, last int) ([]T, error)
	//RankOf v is the number of elements less than v. The bool reports
	//whether v itself is in the tree.
	RankOf(v T) (int, bool)
	//Len is the number of elements.
	Len() int
	//IsEmpty reports whether Len()==0.
	IsEmpty() bool
	//Clear the tree.
	Clear()
	//InOrder returns a closure function f acting like an iterator. f
	//gives elements in the in-order traversal of the tree.
	//Calling f is like calling "Next()" of iterators: val, valid=f()
	//val is meaningful only if valid is true. When valid==false,
	//then f is exhausted. valid can't turn true after it first became false.
	//The tree mustn't be modified during the iteration of f.
	InOrder() func() (T, bool)
	//All elements in ascending order.
	All() iter.Seq[T]
	//Backward gives all elements in descending order.
	Backward() iter.Seq[T]
	//Corrupt returns whether the tree has corrupt structures, when the value
	//or bookkeeping at some node violates the properties of the implementation.
	//This is to be distinguished from whether the tree is balanced or not.
	Corrupt() bool
}
