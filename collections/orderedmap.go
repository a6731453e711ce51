// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package collections

import "github.com/natanelia/zerocopy/internal/ordered"

// SharedOrderedMap is the handle for the insertion-ordered map (spec.md
// §4.7, §4.10): (root, head, tail, size, valueType).
type SharedOrderedMap struct {
	fam       *ordered.Family
	root      ordered.Root
	valueType ValueType
}

// NewSharedOrderedMap returns an empty SharedOrderedMap.
func NewSharedOrderedMap(valueType ValueType, opts ...ordered.Option) SharedOrderedMap {
	return SharedOrderedMap{fam: ordered.NewFamily(opts...), valueType: valueType}
}

// ValueType reports the declared value shape of this map.
func (m SharedOrderedMap) ValueType() ValueType { return m.valueType }

// Size reports the number of entries.
func (m SharedOrderedMap) Size() int { return m.root.Size }

// Set binds key to val, returning the updated handle. Updating an existing
// key relinks a fresh entry in its old position rather than moving it to
// the tail (spec.md §4.7).
func (m SharedOrderedMap) Set(key []byte, val ordered.Value) (SharedOrderedMap, bool, error) {
	r, existed, err := m.fam.Set(m.root, key, val)
	if err != nil {
		return m, false, err
	}
	return SharedOrderedMap{fam: m.fam, root: r, valueType: m.valueType}, existed, nil
}

// Get looks up key.
func (m SharedOrderedMap) Get(key []byte) (ordered.Value, bool) {
	return m.fam.Get(m.root, key)
}

// Has reports whether key is bound.
func (m SharedOrderedMap) Has(key []byte) bool {
	return m.fam.Has(m.root, key)
}

// Delete unbinds key, returning the updated handle.
func (m SharedOrderedMap) Delete(key []byte) (SharedOrderedMap, bool, error) {
	r, removed, err := m.fam.Delete(m.root, key)
	if err != nil {
		return m, false, err
	}
	if !removed {
		return m, false, nil
	}
	return SharedOrderedMap{fam: m.fam, root: r, valueType: m.valueType}, true, nil
}

// ForEach visits (key, value) pairs in insertion order.
func (m SharedOrderedMap) ForEach(visit func(key []byte, v ordered.Value) bool) {
	m.fam.ForEach(m.root, visit)
}
