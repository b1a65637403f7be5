package Trees

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is wrapped by every IndexError.
	ErrOutOfRange = errors.New("trees: index out of range")
	// ErrEmpty is additionally wrapped by an IndexError raised on an empty tree.
	ErrEmpty = errors.New("trees: tree is empty")
	// ErrExhausted is the panic value of Iterator.Next after the last element.
	ErrExhausted = errors.New("trees: iterator exhausted")
)

// IndexError is returned by Get and GetRange when the requested indexes don't
// lie in [0,Size). For Get, First==Last.
type IndexError struct {
	First, Last, Size int
}

func (e *IndexError) Error() string {
	if e.First == e.Last {
		return fmt.Sprintf("trees: index %d out of range [0,%d)", e.First, e.Size)
	}
	return fmt.Sprintf("trees: range [%d,%d] out of range [0,%d)", e.First, e.Last, e.Size)
}

func (e *IndexError) Unwrap() []error {
	if e.Size == 0 {
		return []error{ErrOutOfRange, ErrEmpty}
	}
	return []error{ErrOutOfRange}
}

// InvalidSliceError is the panic value of a safe Build when the slice isn't
// strictly ascending. Left and Right are the first offending neighbours.
type InvalidSliceError struct {
	Left, Right any
}

func (e InvalidSliceError) Error() string {
	return fmt.Sprintf("trees: slice isn't strictly ascending at %v, %v", e.Left, e.Right)
}
