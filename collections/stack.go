// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package collections

import "github.com/natanelia/zerocopy/internal/dlist"

// SharedStack is the handle for the LIFO stack over a singly-linked list
// (spec.md §4.6, §4.10): (head, size, valueType, topValueCache). The cache
// lets Peek avoid a heap read right after Push/Pop.
type SharedStack struct {
	fam       *dlist.SFamily
	root      dlist.SRoot
	top       dlist.Value
	hasTop    bool
	valueType ValueType
}

// NewSharedStack returns an empty SharedStack.
func NewSharedStack(valueType ValueType) SharedStack {
	return SharedStack{fam: dlist.NewSFamily(), valueType: valueType}
}

// ValueType reports the declared element shape of this stack.
func (s SharedStack) ValueType() ValueType { return s.valueType }

// Size reports the number of elements.
func (s SharedStack) Size() int { return s.root.Size }

// Push places v on top, returning the updated handle.
func (s SharedStack) Push(v dlist.Value) (SharedStack, error) {
	newRoot, err := s.fam.PushFront(s.root, v)
	if err != nil {
		return s, err
	}
	return SharedStack{fam: s.fam, root: newRoot, top: v, hasTop: true, valueType: s.valueType}, nil
}

// Pop removes and returns the top value, returning the updated handle.
// Popping an empty stack is a no-op.
func (s SharedStack) Pop() (SharedStack, dlist.Value, bool) {
	newRoot, v, ok := s.fam.PopFront(s.root)
	if !ok {
		return s, dlist.Value{}, false
	}
	next, hasNext := s.fam.Peek(newRoot)
	return SharedStack{fam: s.fam, root: newRoot, top: next, hasTop: hasNext, valueType: s.valueType}, v, true
}

// Peek returns the top value without removing it, using the handle's cache
// when available and falling back to a heap read otherwise.
func (s SharedStack) Peek() (dlist.Value, bool) {
	if s.hasTop {
		return s.top, true
	}
	return s.fam.Peek(s.root)
}
