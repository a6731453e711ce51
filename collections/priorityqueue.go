// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package collections

import (
	"github.com/natanelia/zerocopy/internal/arena"
	"github.com/natanelia/zerocopy/internal/pqueue"
)

// SharedPriorityQueue is the handle for the persistent leftist heap
// (spec.md §4.9, §4.10): (root, size, valueType, isMax).
type SharedPriorityQueue struct {
	fam       *pqueue.Family
	root      arena.Ptr
	size      int
	valueType ValueType
}

// NewSharedPriorityQueue returns an empty SharedPriorityQueue.
func NewSharedPriorityQueue(valueType ValueType, opts ...pqueue.Option) SharedPriorityQueue {
	return SharedPriorityQueue{fam: pqueue.NewFamily(opts...), valueType: valueType}
}

// ValueType reports the declared element shape of this queue.
func (q SharedPriorityQueue) ValueType() ValueType { return q.valueType }

// Size reports the number of elements.
func (q SharedPriorityQueue) Size() int { return q.size }

// Enqueue inserts value at priority, returning the updated handle.
func (q SharedPriorityQueue) Enqueue(priority float64, value pqueue.Value) (SharedPriorityQueue, error) {
	newRoot, err := q.fam.Insert(q.root, priority, value)
	if err != nil {
		return q, err
	}
	return SharedPriorityQueue{fam: q.fam, root: newRoot, size: q.size + 1, valueType: q.valueType}, nil
}

// Dequeue removes the top element, returning the updated handle. Dequeuing
// an empty queue is a no-op.
func (q SharedPriorityQueue) Dequeue() (SharedPriorityQueue, error) {
	if q.fam.IsEmpty(q.root) {
		return q, nil
	}
	newRoot, err := q.fam.ExtractTop(q.root)
	if err != nil {
		return q, err
	}
	return SharedPriorityQueue{fam: q.fam, root: newRoot, size: q.size - 1, valueType: q.valueType}, nil
}

// Peek returns the top element's (priority, value) pair.
func (q SharedPriorityQueue) Peek() (float64, pqueue.Value, bool) {
	priority, ok := q.fam.PeekPriority(q.root)
	if !ok {
		return 0, pqueue.Value{}, false
	}
	value, _ := q.fam.PeekValue(q.root)
	return priority, value, true
}

// IsEmpty reports whether the queue holds no elements.
func (q SharedPriorityQueue) IsEmpty() bool { return q.fam.IsEmpty(q.root) }
