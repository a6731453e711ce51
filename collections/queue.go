// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package collections

import "github.com/natanelia/zerocopy/internal/dlist"

// SharedQueue is the handle for the FIFO queue over a singly-linked list
// (spec.md §4.6, §4.10): (head, tail, size, valueType).
type SharedQueue struct {
	fam       *dlist.SFamily
	root      dlist.SRoot
	valueType ValueType
}

// NewSharedQueue returns an empty SharedQueue.
func NewSharedQueue(valueType ValueType) SharedQueue {
	return SharedQueue{fam: dlist.NewSFamily(), valueType: valueType}
}

// ValueType reports the declared element shape of this queue.
func (q SharedQueue) ValueType() ValueType { return q.valueType }

// Size reports the number of elements.
func (q SharedQueue) Size() int { return q.root.Size }

// Enqueue places v at the back, returning the updated handle.
func (q SharedQueue) Enqueue(v dlist.Value) (SharedQueue, error) {
	newRoot, err := q.fam.PushBack(q.root, v)
	if err != nil {
		return q, err
	}
	return SharedQueue{fam: q.fam, root: newRoot, valueType: q.valueType}, nil
}

// Dequeue removes and returns the front value, returning the updated
// handle. Dequeuing an empty queue is a no-op.
func (q SharedQueue) Dequeue() (SharedQueue, dlist.Value, bool) {
	newRoot, v, ok := q.fam.PopFront(q.root)
	if !ok {
		return q, dlist.Value{}, false
	}
	return SharedQueue{fam: q.fam, root: newRoot, valueType: q.valueType}, v, true
}

// Peek returns the front value without removing it.
func (q SharedQueue) Peek() (dlist.Value, bool) {
	return q.fam.Peek(q.root)
}
