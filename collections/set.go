// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package collections

import (
	"github.com/natanelia/zerocopy/internal/arena"
	"github.com/natanelia/zerocopy/internal/hamt"
	"github.com/natanelia/zerocopy/internal/payload"
)

// SharedSet is the handle for the HAMT-backed set: a SharedMap whose values
// are the fixed membership marker payload.Bool(true) (spec.md §4.3, §4.10).
type SharedSet struct {
	fam       *hamt.Family
	root      arena.Ptr
	size      int
	valueType ValueType
}

// NewSharedSet returns an empty SharedSet over a fresh HAMT family.
func NewSharedSet(valueType ValueType, opts ...hamt.Option) SharedSet {
	return SharedSet{fam: hamt.NewFamily(opts...), valueType: valueType}
}

// ValueType reports the declared element shape of this set.
func (s SharedSet) ValueType() ValueType { return s.valueType }

// Size reports the number of elements.
func (s SharedSet) Size() int { return s.size }

// Add inserts member, returning the updated handle.
func (s SharedSet) Add(member []byte) (SharedSet, error) {
	newRoot, existed, err := s.fam.Insert(s.root, member, payload.Bool(true))
	if err != nil {
		return s, err
	}
	size := s.size
	if !existed {
		size++
	}
	return SharedSet{fam: s.fam, root: newRoot, size: size, valueType: s.valueType}, nil
}

// Has reports whether member is in the set.
func (s SharedSet) Has(member []byte) bool {
	return s.fam.Has(s.root, member)
}

// Remove drops member, returning the updated handle. Removing an absent
// member is a no-op that returns the same handle.
func (s SharedSet) Remove(member []byte) (SharedSet, bool, error) {
	newRoot, removed, err := s.fam.Remove(s.root, member)
	if err != nil {
		return s, false, err
	}
	if !removed {
		return s, false, nil
	}
	return SharedSet{fam: s.fam, root: newRoot, size: s.size - 1, valueType: s.valueType}, true, nil
}

// ForEach visits every member in unspecified order.
func (s SharedSet) ForEach(visit func(member []byte) bool) {
	s.fam.ForEach(s.root, func(k []byte, _ hamt.Value) bool { return visit(k) })
}
