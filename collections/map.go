// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package collections

import (
	"github.com/natanelia/zerocopy/internal/arena"
	"github.com/natanelia/zerocopy/internal/hamt"
)

// SharedMap is the handle for the HAMT-backed map (spec.md §4.3, §4.10):
// (root, size, valueType).
type SharedMap struct {
	fam       *hamt.Family
	root      arena.Ptr
	size      int
	valueType ValueType
}

// NewSharedMap returns an empty SharedMap over a fresh HAMT family.
func NewSharedMap(valueType ValueType, opts ...hamt.Option) SharedMap {
	return SharedMap{fam: hamt.NewFamily(opts...), valueType: valueType}
}

// ValueType reports the declared value shape of this map.
func (m SharedMap) ValueType() ValueType { return m.valueType }

// Size reports the number of entries.
func (m SharedMap) Size() int { return m.size }

// Set binds key to val, returning the updated handle.
func (m SharedMap) Set(key []byte, val hamt.Value) (SharedMap, error) {
	newRoot, existed, err := m.fam.Insert(m.root, key, val)
	if err != nil {
		return m, err
	}
	size := m.size
	if !existed {
		size++
	}
	return SharedMap{fam: m.fam, root: newRoot, size: size, valueType: m.valueType}, nil
}

// Get looks up key.
func (m SharedMap) Get(key []byte) (hamt.Value, bool) {
	return m.fam.Get(m.root, key)
}

// Has reports whether key is bound.
func (m SharedMap) Has(key []byte) bool {
	return m.fam.Has(m.root, key)
}

// Delete unbinds key, returning the updated handle. A missing key is a
// no-op that returns the same handle (spec.md §7).
func (m SharedMap) Delete(key []byte) (SharedMap, bool, error) {
	newRoot, removed, err := m.fam.Remove(m.root, key)
	if err != nil {
		return m, false, err
	}
	if !removed {
		return m, false, nil
	}
	return SharedMap{fam: m.fam, root: newRoot, size: m.size - 1, valueType: m.valueType}, true, nil
}

// ForEach visits every (key, value) pair in unspecified order.
func (m SharedMap) ForEach(visit func(key []byte, v hamt.Value) bool) {
	m.fam.ForEach(m.root, visit)
}
