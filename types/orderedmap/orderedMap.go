// Package orderedmap provides a generic map which remembers insertion order.
package orderedmap

import "iter"

// OrderedMap stores key/value pairs and iterates over them in the order keys were first set
type OrderedMap[K comparable, V any] struct {
	index map[K]int
	keys  []K
	vals  []V
}

// NewOrderedMap creates a new OrderedMap of type K
func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		index: map[K]int{},
	}
}

// Set will store a key-value pair. If the key already exists its value is
// replaced and it keeps its original position.
func (o *OrderedMap[K, V]) Set(key K, val V) {
	if i, exists := o.index[key]; exists {
		o.vals[i] = val
		return
	}
	o.index[key] = len(o.keys)
	o.keys = append(o.keys, key)
	o.vals = append(o.vals, val)
}

// Get will return the value associated with the key.
// If the key doesn't exist, the second return value will be false.
func (o *OrderedMap[K, V]) Get(key K) (V, bool) {
	i, exists := o.index[key]
	if !exists {
		return *new(V), false
	}
	return o.vals[i], true
}

// Has returns true when key is present
func (o *OrderedMap[K, V]) Has(key K) bool {
	_, exists := o.index[key]
	return exists
}

// Delete will remove the key and its associated value.
func (o *OrderedMap[K, V]) Delete(key K) {
	i, exists := o.index[key]
	if !exists {
		return
	}
	o.keys = append(o.keys[:i], o.keys[i+1:]...)
	o.vals = append(o.vals[:i], o.vals[i+1:]...)
	delete(o.index, key)
	for j := i; j < len(o.keys); j++ {
		o.index[o.keys[j]] = j
	}
}

// Count returns the count of keys in OrderedMap
func (o *OrderedMap[K, V]) Count() int {
	return len(o.keys)
}

// Keys returns a copy of the keys in insertion order
func (o *OrderedMap[K, V]) Keys() []K {
	keys := make([]K, len(o.keys))
	copy(keys, o.keys)
	return keys
}

// All iterates over the key-value pairs in insertion order
func (o *OrderedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i, k := range o.keys {
			if !yield(k, o.vals[i]) {
				return
			}
		}
	}
}
