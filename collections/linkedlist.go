// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package collections

import "github.com/natanelia/zerocopy/internal/dlist"

// SharedLinkedList is the handle for the singly-linked list (spec.md §4.6,
// §4.10): (head, tail, size, valueType).
type SharedLinkedList struct {
	fam       *dlist.SFamily
	root      dlist.SRoot
	valueType ValueType
}

// NewSharedLinkedList returns an empty SharedLinkedList.
func NewSharedLinkedList(valueType ValueType) SharedLinkedList {
	return SharedLinkedList{fam: dlist.NewSFamily(), valueType: valueType}
}

// ValueType reports the declared element shape of this list.
func (l SharedLinkedList) ValueType() ValueType { return l.valueType }

// Size reports the number of elements.
func (l SharedLinkedList) Size() int { return l.root.Size }

// PushFront prepends v, returning the updated handle.
func (l SharedLinkedList) PushFront(v dlist.Value) (SharedLinkedList, error) {
	newRoot, err := l.fam.PushFront(l.root, v)
	if err != nil {
		return l, err
	}
	return SharedLinkedList{fam: l.fam, root: newRoot, valueType: l.valueType}, nil
}

// PushBack appends v, returning the updated handle.
func (l SharedLinkedList) PushBack(v dlist.Value) (SharedLinkedList, error) {
	newRoot, err := l.fam.PushBack(l.root, v)
	if err != nil {
		return l, err
	}
	return SharedLinkedList{fam: l.fam, root: newRoot, valueType: l.valueType}, nil
}

// PopFront removes and returns the head value, returning the updated
// handle. Popping an empty list is a no-op.
func (l SharedLinkedList) PopFront() (SharedLinkedList, dlist.Value, bool) {
	newRoot, v, ok := l.fam.PopFront(l.root)
	if !ok {
		return l, dlist.Value{}, false
	}
	return SharedLinkedList{fam: l.fam, root: newRoot, valueType: l.valueType}, v, true
}

// ForEach visits every element head to tail.
func (l SharedLinkedList) ForEach(visit func(index int, v dlist.Value) bool) {
	l.fam.ForEach(l.root, visit)
}
