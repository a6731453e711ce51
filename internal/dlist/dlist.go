// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package dlist implements the doubly- and singly-linked list primitives
// used by the linked list, stack and queue structures, and as the ordering
// thread inside the insertion-ordered map (spec.md §4.5-§4.6, component C6).
//
// Unlike the tries in hamt/vector/rbtree, a list here is not persistent in
// the path-copy sense: mutations change node fields in place. Persistence
// lives at the handle layer (spec.md §4.10) — a handle snapshot stays valid
// only while the nodes it reaches are not themselves mutated.
package dlist

import (
	"github.com/natanelia/zerocopy/internal/arena"
	"github.com/natanelia/zerocopy/internal/payload"
)

// Value is the element payload; see package payload.
type Value = payload.Value

// Node is a doubly-linked list node: prev/next pointers plus a value.
type Node struct {
	Prev, Next arena.Ptr
	Value      Value
}

// Reset clears n for Pool reuse.
func (n *Node) Reset() { *n = Node{} }

// Family owns one doubly-linked list's node heap.
type Family struct {
	Heap *arena.Heap[Node]
}

// NewFamily returns an empty Family.
func NewFamily() *Family {
	return &Family{Heap: arena.NewHeap[Node]()}
}

// Root is the handle-layer state for a doubly-linked list (spec.md §4.10).
type Root struct {
	Head, Tail arena.Ptr
	Size       int
}

// Prepend inserts v before the current head.
func (f *Family) Prepend(r Root, v Value) (Root, error) {
	p, err := f.Heap.Alloc(Node{Next: r.Head, Value: v})
	if err != nil {
		return r, err
	}
	if r.Head != 0 {
		f.Heap.GetPtr(r.Head).Prev = p
	}
	newTail := r.Tail
	if newTail == 0 {
		newTail = p
	}
	return Root{Head: p, Tail: newTail, Size: r.Size + 1}, nil
}

// Append inserts v after the current tail.
func (f *Family) Append(r Root, v Value) (Root, error) {
	p, err := f.Heap.Alloc(Node{Prev: r.Tail, Value: v})
	if err != nil {
		return r, err
	}
	if r.Tail != 0 {
		f.Heap.GetPtr(r.Tail).Next = p
	}
	newHead := r.Head
	if newHead == 0 {
		newHead = p
	}
	return Root{Head: newHead, Tail: p, Size: r.Size + 1}, nil
}

// InsertAfter inserts v immediately after node.
func (f *Family) InsertAfter(r Root, node arena.Ptr, v Value) (Root, error) {
	n := f.Heap.Get(node)
	if n.Next == 0 {
		return f.Append(r, v)
	}
	p, err := f.Heap.Alloc(Node{Prev: node, Next: n.Next, Value: v})
	if err != nil {
		return r, err
	}
	f.Heap.GetPtr(node).Next = p
	f.Heap.GetPtr(n.Next).Prev = p
	return Root{Head: r.Head, Tail: r.Tail, Size: r.Size + 1}, nil
}

// InsertBefore inserts v immediately before node.
func (f *Family) InsertBefore(r Root, node arena.Ptr, v Value) (Root, error) {
	n := f.Heap.Get(node)
	if n.Prev == 0 {
		return f.Prepend(r, v)
	}
	p, err := f.Heap.Alloc(Node{Prev: n.Prev, Next: node, Value: v})
	if err != nil {
		return r, err
	}
	f.Heap.GetPtr(node).Prev = p
	f.Heap.GetPtr(n.Prev).Next = p
	return Root{Head: r.Head, Tail: r.Tail, Size: r.Size + 1}, nil
}

// RemoveFirst unlinks and returns the head node's value.
func (f *Family) RemoveFirst(r Root) (Root, Value, bool) {
	if r.Head == 0 {
		return r, Value{}, false
	}
	head := f.Heap.Get(r.Head)
	newRoot, _ := f.RemoveNode(r, r.Head)
	return newRoot, head.Value, true
}

// RemoveLast unlinks and returns the tail node's value.
func (f *Family) RemoveLast(r Root) (Root, Value, bool) {
	if r.Tail == 0 {
		return r, Value{}, false
	}
	tail := f.Heap.Get(r.Tail)
	newRoot, _ := f.RemoveNode(r, r.Tail)
	return newRoot, tail.Value, true
}

// RemoveNode unlinks node from the list.
func (f *Family) RemoveNode(r Root, node arena.Ptr) (Root, bool) {
	if node == 0 {
		return r, false
	}
	n := f.Heap.Get(node)

	if n.Prev != 0 {
		f.Heap.GetPtr(n.Prev).Next = n.Next
	}
	if n.Next != 0 {
		f.Heap.GetPtr(n.Next).Prev = n.Prev
	}

	newHead, newTail := r.Head, r.Tail
	if r.Head == node {
		newHead = n.Next
	}
	if r.Tail == node {
		newTail = n.Prev
	}
	f.Heap.Free(node)
	return Root{Head: newHead, Tail: newTail, Size: r.Size - 1}, true
}

// GetAt returns the value at index i, walking from head (O(i)).
func (f *Family) GetAt(r Root, i int) (Value, bool) {
	if i < 0 || i >= r.Size {
		return Value{}, false
	}
	p := r.Head
	for ; i > 0; i-- {
		p = f.Heap.Get(p).Next
	}
	return f.Heap.Get(p).Value, true
}

// GetAtReverse returns the value at index i counting from the tail.
func (f *Family) GetAtReverse(r Root, i int) (Value, bool) {
	if i < 0 || i >= r.Size {
		return Value{}, false
	}
	p := r.Tail
	for ; i > 0; i-- {
		p = f.Heap.Get(p).Prev
	}
	return f.Heap.Get(p).Value, true
}

// ForEach visits values head to tail.
func (f *Family) ForEach(r Root, visit func(index int, v Value) bool) {
	i := 0
	for p := r.Head; p != 0; {
		n := f.Heap.Get(p)
		if !visit(i, n.Value) {
			return
		}
		p = n.Next
		i++
	}
}

// ForEachReverse visits values tail to head.
func (f *Family) ForEachReverse(r Root, visit func(index int, v Value) bool) {
	i := 0
	for p := r.Tail; p != 0; {
		n := f.Heap.Get(p)
		if !visit(i, n.Value) {
			return
		}
		p = n.Prev
		i++
	}
}
