// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package sparse implements a generic sparse array with popcount
// compression: a bitmap records which of the addressable slots are
// occupied, and Items holds only those slots, densely packed in bitmap
// order. This is the in-memory shape of every HAMT/ordered-map internal
// node (spec.md §3: "[bitmap: u32][child_ptr × popcount(bitmap): u32]").
package sparse

import "github.com/natanelia/zerocopy/internal/bitset"

// Array is a popcount-compressed sparse array of payload T.
//
//	                   ⬇
//	BitSet: [0|0|1|0|0|1|0|1|...] <- 3 bits set
//	Items:  [*|*|*]               <- len(Items) = 3
//
// Get(5) tests bit 5, then reads Items[Rank0(5)].
type Array[T any] struct {
	Bits  bitset.BitSet
	Items []T
}

// Get returns the value at i and whether it was present.
func (a *Array[T]) Get(i uint) (value T, ok bool) {
	if a.Bits.Test(i) {
		return a.Items[a.Bits.Rank0(i)], true
	}
	return value, false
}

// MustGet returns the value at i; only valid after a successful Test.
func (a *Array[T]) MustGet(i uint) T {
	return a.Items[a.Bits.Rank0(i)]
}

// Len returns the number of occupied slots.
func (a *Array[T]) Len() int {
	return len(a.Items)
}

// Copy returns a shallow clone of a: a new bitmap and a new, independently
// growable Items slice, but the elements themselves are not deep-copied.
// This is the basis of path copy: callers of InsertAt/DeleteAt on a Copy
// leave the original Array untouched.
func (a *Array[T]) Copy() *Array[T] {
	if a == nil {
		return nil
	}
	items := make([]T, len(a.Items))
	copy(items, a.Items)
	return &Array[T]{Bits: a.Bits.Clone(), Items: items}
}

// InsertAt stores value at slot i, overwriting any existing value there.
// Returns true if a value already occupied that slot.
func (a *Array[T]) InsertAt(i uint, value T) (existed bool) {
	if a.Bits.Test(i) {
		a.Items[a.Bits.Rank0(i)] = value
		return true
	}
	a.Bits = a.Bits.Set(i)
	a.insertItem(a.Bits.Rank0(i), value)
	return false
}

// DeleteAt removes the value at slot i, if present.
func (a *Array[T]) DeleteAt(i uint) (value T, existed bool) {
	if !a.Bits.Test(i) {
		return value, false
	}
	rank := a.Bits.Rank0(i)
	value = a.Items[rank]
	a.deleteItem(rank)
	a.Bits = a.Bits.Clear(i)
	return value, true
}

// UpdateAt applies cb to the current value at i (zero value and false if
// absent) and stores the result, inserting a new slot if necessary.
func (a *Array[T]) UpdateAt(i uint, cb func(T, bool) T) (newValue T, wasPresent bool) {
	var old T
	if wasPresent = a.Bits.Test(i); wasPresent {
		old = a.Items[a.Bits.Rank0(i)]
	}
	newValue = cb(old, wasPresent)
	if wasPresent {
		a.Items[a.Bits.Rank0(i)] = newValue
		return newValue, true
	}
	a.Bits = a.Bits.Set(i)
	a.insertItem(a.Bits.Rank0(i), newValue)
	return newValue, false
}

// All iterates occupied slots in bitmap order, yielding each value; neither
// the dense nor the sparse slot index is passed to yield.
func (a *Array[T]) All(yield func(item T) bool) {
	for _, item := range a.Items {
		if !yield(item) {
			return
		}
	}
}

func (a *Array[T]) insertItem(i int, item T) {
	var zero T
	a.Items = append(a.Items, zero)
	copy(a.Items[i+1:], a.Items[i:])
	a.Items[i] = item
}

func (a *Array[T]) deleteItem(i int) {
	var zero T
	n := len(a.Items) - 1
	copy(a.Items[i:], a.Items[i+1:])
	a.Items[n] = zero
	a.Items = a.Items[:n]
}
