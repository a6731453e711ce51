// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package collections

import "github.com/natanelia/zerocopy/internal/dlist"

// SharedDoublyLinkedList is the handle for the doubly-linked list (spec.md
// §4.5, §4.10): (head, tail, size, valueType). Unlike the trie- and
// tree-backed handles, mutations change node fields in place (dlist.Family
// is not path-copied);
// persistence here lives entirely in the handle's own (head, tail, size)
// triple staying valid only until the nodes it reaches are mutated again.
type SharedDoublyLinkedList struct {
	fam       *dlist.Family
	root      dlist.Root
	valueType ValueType
}

// NewSharedDoublyLinkedList returns an empty SharedDoublyLinkedList.
func NewSharedDoublyLinkedList(valueType ValueType) SharedDoublyLinkedList {
	return SharedDoublyLinkedList{fam: dlist.NewFamily(), valueType: valueType}
}

// ValueType reports the declared element shape of this list.
func (l SharedDoublyLinkedList) ValueType() ValueType { return l.valueType }

// Size reports the number of elements.
func (l SharedDoublyLinkedList) Size() int { return l.root.Size }

func (l SharedDoublyLinkedList) with(r dlist.Root) SharedDoublyLinkedList {
	return SharedDoublyLinkedList{fam: l.fam, root: r, valueType: l.valueType}
}

// Prepend inserts v before the current head.
func (l SharedDoublyLinkedList) Prepend(v dlist.Value) (SharedDoublyLinkedList, error) {
	r, err := l.fam.Prepend(l.root, v)
	return l.with(r), err
}

// Append inserts v after the current tail.
func (l SharedDoublyLinkedList) Append(v dlist.Value) (SharedDoublyLinkedList, error) {
	r, err := l.fam.Append(l.root, v)
	return l.with(r), err
}

// RemoveFirst unlinks and returns the head value.
func (l SharedDoublyLinkedList) RemoveFirst() (SharedDoublyLinkedList, dlist.Value, bool) {
	r, v, ok := l.fam.RemoveFirst(l.root)
	return l.with(r), v, ok
}

// RemoveLast unlinks and returns the tail value.
func (l SharedDoublyLinkedList) RemoveLast() (SharedDoublyLinkedList, dlist.Value, bool) {
	r, v, ok := l.fam.RemoveLast(l.root)
	return l.with(r), v, ok
}

// GetAt returns the value at index i, walking from head.
func (l SharedDoublyLinkedList) GetAt(i int) (dlist.Value, bool) {
	return l.fam.GetAt(l.root, i)
}

// ForEach visits every element head to tail.
func (l SharedDoublyLinkedList) ForEach(visit func(index int, v dlist.Value) bool) {
	l.fam.ForEach(l.root, visit)
}

// ForEachReverse visits every element tail to head.
func (l SharedDoublyLinkedList) ForEachReverse(visit func(index int, v dlist.Value) bool) {
	l.fam.ForEachReverse(l.root, visit)
}
