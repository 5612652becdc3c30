// Package queue provides a small generic FIFO queue.
package queue

// Q is a generic queue walked from the oldest item to the newest.
type Q[T any] struct {
	items []T
}

// New creates a new Q
func New[T any]() *Q[T] {
	return &Q[T]{}
}

// Push appends an item to the queue
func (q *Q[T]) Push(item T) {
	q.items = append(q.items, item)
}

// ForEach visits the items from the oldest to the newest.
// Returning false from the callback stops the iteration.
func (q *Q[T]) ForEach(callback func(item T, index int) bool) {
	for i, item := range q.items {
		if !callback(item, i) {
			return
		}
	}
}
