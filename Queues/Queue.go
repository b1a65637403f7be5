package Queues

// Queue is a FIFO.
type Queue[T any] interface {
	Push(item T)
	// Pop the oldest item. Returns EmptyQueueError when the queue is empty.
	Pop() (T, error)
	// Peek at the oldest item without removing it. Gives the zero value when empty.
	Peek() T
	Empty() bool
}

type ArrayQueue[T any] interface {
	Queue[T]
	Shrink()
	Clear()
	Size() uint
	resize(newLen uint)
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "queue is empty: cannot Pop"
}
