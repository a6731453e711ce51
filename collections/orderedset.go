// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package collections

import (
	"github.com/natanelia/zerocopy/internal/ordered"
	"github.com/natanelia/zerocopy/internal/payload"
)

// SharedOrderedSet is the handle for the insertion-ordered set: a
// SharedOrderedMap whose values are the fixed membership marker
// payload.Bool(true) (spec.md §4.7, §4.10).
type SharedOrderedSet struct {
	fam       *ordered.Family
	root      ordered.Root
	valueType ValueType
}

// NewSharedOrderedSet returns an empty SharedOrderedSet.
func NewSharedOrderedSet(valueType ValueType, opts ...ordered.Option) SharedOrderedSet {
	return SharedOrderedSet{fam: ordered.NewFamily(opts...), valueType: valueType}
}

// ValueType reports the declared element shape of this set.
func (s SharedOrderedSet) ValueType() ValueType { return s.valueType }

// Size reports the number of elements.
func (s SharedOrderedSet) Size() int { return s.root.Size }

// Add inserts member at the tail if new, returning the updated handle.
func (s SharedOrderedSet) Add(member []byte) (SharedOrderedSet, error) {
	r, _, err := s.fam.Set(s.root, member, payload.Bool(true))
	if err != nil {
		return s, err
	}
	return SharedOrderedSet{fam: s.fam, root: r, valueType: s.valueType}, nil
}

// Has reports whether member is in the set.
func (s SharedOrderedSet) Has(member []byte) bool {
	return s.fam.Has(s.root, member)
}

// Remove drops member, returning the updated handle.
func (s SharedOrderedSet) Remove(member []byte) (SharedOrderedSet, bool, error) {
	r, removed, err := s.fam.Delete(s.root, member)
	if err != nil {
		return s, false, err
	}
	if !removed {
		return s, false, nil
	}
	return SharedOrderedSet{fam: s.fam, root: r, valueType: s.valueType}, true, nil
}

// ForEach visits every member in insertion order.
func (s SharedOrderedSet) ForEach(visit func(member []byte) bool) {
	s.fam.ForEach(s.root, func(k []byte, _ ordered.Value) bool { return visit(k) })
}
