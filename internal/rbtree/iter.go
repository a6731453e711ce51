// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package rbtree

import "github.com/natanelia/zerocopy/internal/arena"

// Cursor is a single-use in-order iterator (spec.md §4.8's
// iterStart/iterNext), implemented as an explicit stack of the path to the
// next unvisited node rather than recursion.
type Cursor struct {
	f     *Family
	stack []arena.Ptr
}

// IterStart returns a Cursor positioned before the first (smallest) entry.
func (f *Family) IterStart(root arena.Ptr) *Cursor {
	c := &Cursor{f: f}
	c.pushLeftSpine(root)
	return c
}

func (c *Cursor) pushLeftSpine(p arena.Ptr) {
	for p != 0 {
		c.stack = append(c.stack, p)
		p = c.f.Heap.Get(p).left
	}
}

// Next advances the cursor and returns the next (key, value) pair in
// ascending order, or ok=false once exhausted.
func (c *Cursor) Next() (key, val Value, ok bool) {
	if len(c.stack) == 0 {
		return Value{}, Value{}, false
	}
	top := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	n := c.f.Heap.Get(top)
	c.pushLeftSpine(n.right)
	return n.key, n.val, true
}

// GetNext returns the successor of key: the smallest key strictly greater
// than key, if any.
func (f *Family) GetNext(root arena.Ptr, key Value) (Value, Value, bool) {
	p := root
	var succKey, succVal Value
	found := false
	for p != 0 {
		n := f.Heap.Get(p)
		if f.cmp(key, n.key) < 0 {
			succKey, succVal, found = n.key, n.val, true
			p = n.left
		} else {
			p = n.right
		}
	}
	return succKey, succVal, found
}

// GetPrev returns the predecessor of key: the largest key strictly less
// than key, if any.
func (f *Family) GetPrev(root arena.Ptr, key Value) (Value, Value, bool) {
	p := root
	var predKey, predVal Value
	found := false
	for p != 0 {
		n := f.Heap.Get(p)
		if f.cmp(n.key, key) < 0 {
			predKey, predVal, found = n.key, n.val, true
			p = n.right
		} else {
			p = n.left
		}
	}
	return predKey, predVal, found
}
