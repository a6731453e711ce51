// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package collections

import (
	"github.com/natanelia/zerocopy/internal/arena"
	"github.com/natanelia/zerocopy/internal/rbtree"
)

// SharedSortedSet is the handle for the persistent red-black tree set: a
// SharedSortedMap whose values equal their keys (spec.md §4.8, §4.10).
type SharedSortedSet struct {
	fam       *rbtree.Family
	root      arena.Ptr
	size      int
	valueType ValueType
}

// NewSharedSortedSet returns an empty SharedSortedSet.
func NewSharedSortedSet(valueType ValueType, opts ...rbtree.Option) SharedSortedSet {
	return SharedSortedSet{fam: rbtree.NewFamily(opts...), valueType: valueType}
}

// ValueType reports the declared element shape of this set.
func (s SharedSortedSet) ValueType() ValueType { return s.valueType }

// Size reports the number of elements.
func (s SharedSortedSet) Size() int { return s.size }

// Add inserts member, returning the updated handle.
func (s SharedSortedSet) Add(member rbtree.Value) (SharedSortedSet, error) {
	newRoot, existed, err := s.fam.Insert(s.root, member, member)
	if err != nil {
		return s, err
	}
	size := s.size
	if !existed {
		size++
	}
	return SharedSortedSet{fam: s.fam, root: newRoot, size: size, valueType: s.valueType}, nil
}

// Has reports whether member is in the set.
func (s SharedSortedSet) Has(member rbtree.Value) bool {
	_, ok := s.fam.Find(s.root, member)
	return ok
}

// Remove drops member, returning the updated handle.
func (s SharedSortedSet) Remove(member rbtree.Value) (SharedSortedSet, bool, error) {
	newRoot, removed, err := s.fam.Delete(s.root, member)
	if err != nil {
		return s, false, err
	}
	if !removed {
		return s, false, nil
	}
	return SharedSortedSet{fam: s.fam, root: newRoot, size: s.size - 1, valueType: s.valueType}, true, nil
}

// ForEach visits every member in ascending comparator order.
func (s SharedSortedSet) ForEach(visit func(member rbtree.Value) bool) {
	s.fam.ForEach(s.root, func(k, _ rbtree.Value) bool { return visit(k) })
}
