// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package collections

import (
	"github.com/natanelia/zerocopy/internal/arena"
	"github.com/natanelia/zerocopy/internal/rbtree"
)

// SharedSortedMap is the handle for the persistent red-black tree map
// (spec.md §4.8, §4.10): (root, size, valueType, comparator?).
type SharedSortedMap struct {
	fam       *rbtree.Family
	root      arena.Ptr
	size      int
	valueType ValueType
}

// NewSharedSortedMap returns an empty SharedSortedMap, using
// rbtree.DefaultComparator unless overridden via rbtree.WithComparator or
// rbtree.WithCollator.
func NewSharedSortedMap(valueType ValueType, opts ...rbtree.Option) SharedSortedMap {
	return SharedSortedMap{fam: rbtree.NewFamily(opts...), valueType: valueType}
}

// ValueType reports the declared value shape of this map.
func (m SharedSortedMap) ValueType() ValueType { return m.valueType }

// Size reports the number of entries.
func (m SharedSortedMap) Size() int { return m.size }

// Set binds key to val, returning the updated handle.
func (m SharedSortedMap) Set(key, val rbtree.Value) (SharedSortedMap, error) {
	newRoot, existed, err := m.fam.Insert(m.root, key, val)
	if err != nil {
		return m, err
	}
	size := m.size
	if !existed {
		size++
	}
	return SharedSortedMap{fam: m.fam, root: newRoot, size: size, valueType: m.valueType}, nil
}

// Find looks up key.
func (m SharedSortedMap) Find(key rbtree.Value) (rbtree.Value, bool) {
	return m.fam.Find(m.root, key)
}

// Delete unbinds key, returning the updated handle.
func (m SharedSortedMap) Delete(key rbtree.Value) (SharedSortedMap, bool, error) {
	newRoot, removed, err := m.fam.Delete(m.root, key)
	if err != nil {
		return m, false, err
	}
	if !removed {
		return m, false, nil
	}
	return SharedSortedMap{fam: m.fam, root: newRoot, size: m.size - 1, valueType: m.valueType}, true, nil
}

// GetMin returns the smallest key's (key, value) pair.
func (m SharedSortedMap) GetMin() (rbtree.Value, rbtree.Value, bool) {
	return m.fam.GetMin(m.root)
}

// GetMax returns the largest key's (key, value) pair.
func (m SharedSortedMap) GetMax() (rbtree.Value, rbtree.Value, bool) {
	return m.fam.GetMax(m.root)
}

// ForEach visits (key, value) pairs in ascending comparator order.
func (m SharedSortedMap) ForEach(visit func(key, val rbtree.Value) bool) {
	m.fam.ForEach(m.root, visit)
}
