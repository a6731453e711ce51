// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package pqueue implements the priority queue's two variants (spec.md
// §4.9, component C9): a persistent leftist heap, and an ephemeral binary
// heap backed by a plain Go slice for callers trading persistence for raw
// throughput.
package pqueue

import (
	"github.com/natanelia/zerocopy/internal/arena"
	"github.com/natanelia/zerocopy/internal/payload"
)

// Value is the element payload; see package payload.
type Value = payload.Value

// Node is a leftist heap node: priority, value, rank (the length of the
// shortest path to an empty right spine) and the two children.
type Node struct {
	priority    float64
	value       Value
	rank        int
	left, right arena.Ptr
}

// Reset clears n. Leftist nodes are never checked into a Pool, since an
// older root may still reach them; only BinaryHeapPool pools, and it holds
// whole BinaryHeaps.
func (n *Node) Reset() { *n = Node{} }

// Family owns one leftist heap's node heap.
type Family struct {
	Heap  *arena.Heap[Node]
	isMax bool
}

// Option configures a new Family.
type Option func(*Family)

// WithMaxHeap makes Insert/ExtractTop/PeekPriority treat a larger priority
// as "on top"; the default is a min-heap.
func WithMaxHeap() Option {
	return func(f *Family) { f.isMax = true }
}

// NewFamily returns an empty leftist-heap Family.
func NewFamily(opts ...Option) *Family {
	f := &Family{Heap: arena.NewHeap[Node]()}
	for _, o := range opts {
		o(f)
	}
	return f
}

func (f *Family) higherPriority(a, b float64) bool {
	if f.isMax {
		return a > b
	}
	return a < b
}

func (f *Family) rank(p arena.Ptr) int {
	if p == 0 {
		return 0
	}
	return f.Heap.Get(p).rank
}

// merge is the recursive leftist merge: compare priorities in the
// configured direction, recurse on the right subtree, then swap children
// if the left rank would fall below the right (spec.md §4.9).
func (f *Family) merge(a, b arena.Ptr) (arena.Ptr, error) {
	if a == 0 {
		return b, nil
	}
	if b == 0 {
		return a, nil
	}
	na, nb := f.Heap.Get(a), f.Heap.Get(b)
	if !f.higherPriority(na.priority, nb.priority) {
		a, b = b, a
		na, nb = nb, na
	}
	newRight, err := f.merge(na.right, b)
	if err != nil {
		return 0, err
	}
	left, right := na.left, newRight
	if f.rank(left) < f.rank(right) {
		left, right = right, left
	}
	newRank := f.rank(right) + 1
	return f.Heap.Alloc(Node{priority: na.priority, value: na.value, rank: newRank, left: left, right: right})
}

// Insert returns a new root with (priority, value) merged in.
func (f *Family) Insert(root arena.Ptr, priority float64, value Value) (arena.Ptr, error) {
	single, err := f.Heap.Alloc(Node{priority: priority, value: value, rank: 1})
	if err != nil {
		return root, err
	}
	return f.merge(root, single)
}

// ExtractTop returns a new root with the top element removed.
func (f *Family) ExtractTop(root arena.Ptr) (arena.Ptr, error) {
	if root == 0 {
		return 0, nil
	}
	n := f.Heap.Get(root)
	return f.merge(n.left, n.right)
}

// PeekPriority returns the top element's priority.
func (f *Family) PeekPriority(root arena.Ptr) (float64, bool) {
	if root == 0 {
		return 0, false
	}
	return f.Heap.Get(root).priority, true
}

// PeekValue returns the top element's value.
func (f *Family) PeekValue(root arena.Ptr) (Value, bool) {
	if root == 0 {
		return Value{}, false
	}
	return f.Heap.Get(root).value, true
}

// IsEmpty reports whether root is the empty heap.
func (f *Family) IsEmpty(root arena.Ptr) bool { return root == 0 }
