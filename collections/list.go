// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package collections

import "github.com/natanelia/zerocopy/internal/vector"

// SharedList is the handle for the persistent vector trie (spec.md §4.4,
// §4.10): (root, depth, size, valueType).
type SharedList struct {
	fam       *vector.Family
	root      vector.Root
	valueType ValueType
}

// NewSharedList returns an empty SharedList over a fresh vector family.
func NewSharedList(valueType ValueType) SharedList {
	return SharedList{fam: vector.NewFamily(), valueType: valueType}
}

// ValueType reports the declared element shape of this list.
func (l SharedList) ValueType() ValueType { return l.valueType }

// Size reports the number of elements.
func (l SharedList) Size() int { return l.root.Size }

// Push appends v, returning the updated handle.
func (l SharedList) Push(v vector.Value) (SharedList, error) {
	newRoot, err := l.fam.Push(l.root, v)
	if err != nil {
		return l, err
	}
	return SharedList{fam: l.fam, root: newRoot, valueType: l.valueType}, nil
}

// Get returns the element at index, or ok=false if out of bounds
// (spec.md §7's IndexOutOfBounds policy: absent, not an error).
func (l SharedList) Get(index int) (vector.Value, bool) {
	return l.fam.Get(l.root, index)
}

// Set rebinds the element at index, returning the updated handle. An
// out-of-bounds index is a no-op that returns the same handle.
func (l SharedList) Set(index int, v vector.Value) (SharedList, error) {
	newRoot, err := l.fam.Set(l.root, index, v)
	if err != nil {
		return l, err
	}
	return SharedList{fam: l.fam, root: newRoot, valueType: l.valueType}, nil
}

// Pop drops the last element, returning the updated handle. Popping an
// empty list is a no-op.
func (l SharedList) Pop() SharedList {
	return SharedList{fam: l.fam, root: l.fam.Pop(l.root), valueType: l.valueType}
}

// ForEach visits every element in index order.
func (l SharedList) ForEach(visit func(index int, v vector.Value) bool) {
	l.fam.ForEach(l.root, visit)
}
