package flatmap

import (
	"cmp"
	"iter"
	"slices"
)

// Map is an ordered map backed by parallel sorted slices.
//
// Invariant: keys is strictly increasing and len(keys) == len(vals) at all
// times.
type Map[K cmp.Ordered, V any] struct {
	keys []K
	vals []V
}

// New constructs an empty map. The zero value works too; New exists for
// symmetry with the other packages.
func New[K cmp.Ordered, V any]() *Map[K, V] {
	return &Map[K, V]{}
}

// Set inserts the pair keeping keys sorted, or replaces the value in place if
// the key is already present.
func (m *Map[K, V]) Set(key K, val V) {
	i, found := slices.BinarySearch(m.keys, key)
	if found {
		m.vals[i] = val
		return
	}
	m.keys = slices.Insert(m.keys, i, key)
	m.vals = slices.Insert(m.vals, i, val)
}

// Get returns the value for key. A missing key is reported as the zero value
// and false, never a fault.
func (m *Map[K, V]) Get(key K) (V, bool) {
	i, found := slices.BinarySearch(m.keys, key)
	if !found {
		var zero V
		return zero, false
	}
	return m.vals[i], true
}

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool {
	_, found := slices.BinarySearch(m.keys, key)
	return found
}

// Delete removes key and reports whether it was present.
func (m *Map[K, V]) Delete(key K) bool {
	i, found := slices.BinarySearch(m.keys, key)
	if !found {
		return false
	}
	m.keys = slices.Delete(m.keys, i, i+1)
	m.vals = slices.Delete(m.vals, i, i+1)
	return true
}

// Len reports the number of stored pairs.
func (m *Map[K, V]) Len() int { return len(m.keys) }

// At returns the i-th pair in key order. It panics if i is out of range, the
// same contract as indexing a slice.
func (m *Map[K, V]) At(i int) (K, V) {
	return m.keys[i], m.vals[i]
}

// Keys returns a copy of the keys in ascending order.
func (m *Map[K, V]) Keys() []K { return slices.Clone(m.keys) }

// Values returns a copy of the values in key order.
func (m *Map[K, V]) Values() []V { return slices.Clone(m.vals) }

// All iterates the pairs in ascending key order:
//
//	for name, age := range ages.All() {
//		...
//	}
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i, k := range m.keys {
			if !yield(k, m.vals[i]) {
				return
			}
		}
	}
}
