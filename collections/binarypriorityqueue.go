// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package collections

import "github.com/natanelia/zerocopy/internal/pqueue"

// BinaryPriorityQueue is the handle for the in-place binary-heap priority
// queue variant (spec.md §4.9, §4.10): it holds the *pqueue.BinaryHeap
// (which itself tracks size and min/max direction) and the valueType; it
// keeps no peek cache. Unlike every other handle in this package it does not
// implement the persistent return-a-new-handle convention; its methods
// mutate the underlying heap in place, matching pqueue.BinaryHeap's own
// documented non-persistence.
type BinaryPriorityQueue struct {
	heap      *pqueue.BinaryHeap
	valueType ValueType
}

// NewBinaryPriorityQueue wraps a fresh pqueue.BinaryHeap of the given
// initial capacity.
func NewBinaryPriorityQueue(valueType ValueType, cap int, opts ...pqueue.BinaryOption) BinaryPriorityQueue {
	return BinaryPriorityQueue{heap: pqueue.NewBinaryHeap(cap, opts...), valueType: valueType}
}

// ValueType reports the declared element shape of this queue.
func (q BinaryPriorityQueue) ValueType() ValueType { return q.valueType }

// Size reports the number of elements.
func (q BinaryPriorityQueue) Size() int { return q.heap.Len() }

// Enqueue inserts value at priority in place.
func (q BinaryPriorityQueue) Enqueue(priority float64, value pqueue.Value) {
	q.heap.Insert(priority, value)
}

// Dequeue removes and returns the top (priority, value) pair in place.
func (q BinaryPriorityQueue) Dequeue() (float64, pqueue.Value, bool) {
	return q.heap.Extract()
}

// Peek returns the top (priority, value) pair without removing it.
func (q BinaryPriorityQueue) Peek() (float64, pqueue.Value, bool) {
	priority, ok := q.heap.PeekPriority()
	if !ok {
		return 0, pqueue.Value{}, false
	}
	value, _ := q.heap.PeekValue()
	return priority, value, true
}
