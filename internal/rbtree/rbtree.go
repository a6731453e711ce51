// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package rbtree implements the persistent red-black tree used by the
// sorted map and set (spec.md §4.8, component C8): a balanced BST keyed on
// a caller-supplied comparator, persistent on the handle side by way of
// path copy during rotations.
//
// Insertion uses Okasaki's balanced insert. Deletion follows the
// four-color (red/black/double-black/negative-black) rebalancing scheme
// commonly used for purely functional red-black trees: a deleted black
// leaf leaves behind a "double black" deficit that bubbles up the
// recursion and is absorbed by a local rotation as soon as one is
// possible. Double-black nodes are never reachable from a tree this
// package returns to a caller; they exist only as intermediate arena
// allocations consumed before the enclosing call returns, which the
// coarse, whole-arena reclamation model (spec.md §1) treats as ordinary
// garbage.
package rbtree

import (
	"github.com/natanelia/zerocopy/internal/arena"
	"github.com/natanelia/zerocopy/internal/payload"
)

// Value is the element payload; see package payload.
type Value = payload.Value

// Comparator orders two keys; negative means a < b, zero means equal,
// positive means a > b.
type Comparator func(a, b Value) int

// DefaultComparator compares numeric keys by IEEE-754 order and byte keys
// with memcmp/shorter-is-smaller semantics, matching spec.md §4.8.
func DefaultComparator(a, b Value) int {
	if a.Numeric && b.Numeric {
		switch {
		case a.Number < b.Number:
			return -1
		case a.Number > b.Number:
			return 1
		default:
			return 0
		}
	}
	return compareBytes(a.Bytes, b.Bytes)
}

func compareBytes(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

type color uint8

const (
	red color = iota
	black
	doubleBlack
	negativeBlack
)

// Node is one tree node: color, children and the (key, value) pair.
type Node struct {
	c           color
	left, right arena.Ptr
	key         Value
	val         Value
}

// Reset clears n. It satisfies arena.Resettable for API symmetry with the
// module's other node types; this package never pools nodes itself, since a
// node may still be reachable from an older root.
func (n *Node) Reset() { *n = Node{} }

// Family owns one red-black tree's node heap and its key comparator.
type Family struct {
	Heap *arena.Heap[Node]
	cmp  Comparator
}

// Option configures a new Family.
type Option func(*Family)

// WithComparator installs a custom key ordering, e.g. a
// golang.org/x/text/collate-backed comparator for locale-aware string
// sorting (SPEC_FULL.md DOMAIN STACK), or a reversed comparator for
// descending iteration.
func WithComparator(cmp Comparator) Option {
	return func(f *Family) { f.cmp = cmp }
}

// NewFamily returns an empty Family using DefaultComparator unless
// overridden.
func NewFamily(opts ...Option) *Family {
	f := &Family{Heap: arena.NewHeap[Node](), cmp: DefaultComparator}
	for _, o := range opts {
		o(f)
	}
	return f
}

func (f *Family) colorOf(p arena.Ptr) color {
	if p == 0 {
		return black
	}
	return f.Heap.Get(p).c
}

func (f *Family) alloc(c color, left, right arena.Ptr, key, val Value) (arena.Ptr, error) {
	return f.Heap.Alloc(Node{c: c, left: left, right: right, key: key, val: val})
}

// Insert returns a new root with key bound to val. existed reports whether
// key was already present.
func (f *Family) Insert(root arena.Ptr, key, val Value) (newRoot arena.Ptr, existed bool, err error) {
	p, existed, err := f.ins(root, key, val)
	if err != nil {
		return root, false, err
	}
	return f.blackenRoot(p), existed, nil
}

func (f *Family) blackenRoot(p arena.Ptr) arena.Ptr {
	if p == 0 {
		return 0
	}
	n := f.Heap.Get(p)
	if n.c == black {
		return p
	}
	np, _ := f.alloc(black, n.left, n.right, n.key, n.val)
	return np
}

func (f *Family) ins(p arena.Ptr, key, val Value) (arena.Ptr, bool, error) {
	if p == 0 {
		np, err := f.alloc(red, 0, 0, key, val)
		return np, false, err
	}
	n := f.Heap.Get(p)
	switch c := f.cmp(key, n.key); {
	case c < 0:
		newLeft, existed, err := f.ins(n.left, key, val)
		if err != nil {
			return 0, false, err
		}
		np, err := f.balanceInsert(n.c, newLeft, n.key, n.val, n.right)
		return np, existed, err
	case c > 0:
		newRight, existed, err := f.ins(n.right, key, val)
		if err != nil {
			return 0, false, err
		}
		np, err := f.balanceInsert(n.c, n.left, n.key, n.val, newRight)
		return np, existed, err
	default:
		np, err := f.alloc(n.c, n.left, n.right, key, val)
		return np, true, err
	}
}

// balanceInsert implements Okasaki's four red-red rotation cases.
func (f *Family) balanceInsert(c color, left arena.Ptr, key, val Value, right arena.Ptr) (arena.Ptr, error) {
	if c == black {
		if f.colorOf(left) == red {
			l := f.Heap.Get(left)
			if f.colorOf(l.left) == red {
				ll := f.Heap.Get(l.left)
				a, err := f.alloc(black, ll.left, ll.right, ll.key, ll.val)
				if err != nil {
					return 0, err
				}
				b, err := f.alloc(black, l.right, key, val, right)
				if err != nil {
					return 0, err
				}
				return f.alloc(red, a, l.key, l.val, b)
			}
			if f.colorOf(l.right) == red {
				lr := f.Heap.Get(l.right)
				a, err := f.alloc(black, l.left, l.key, l.val, lr.left)
				if err != nil {
					return 0, err
				}
				b, err := f.alloc(black, lr.right, key, val, right)
				if err != nil {
					return 0, err
				}
				return f.alloc(red, a, lr.key, lr.val, b)
			}
		}
		if f.colorOf(right) == red {
			r := f.Heap.Get(right)
			if f.colorOf(r.left) == red {
				rl := f.Heap.Get(r.left)
				a, err := f.alloc(black, left, key, val, rl.left)
				if err != nil {
					return 0, err
				}
				b, err := f.alloc(black, rl.right, r.key, r.val, r.right)
				if err != nil {
					return 0, err
				}
				return f.alloc(red, a, rl.key, rl.val, b)
			}
			if f.colorOf(r.right) == red {
				rr := f.Heap.Get(r.right)
				a, err := f.alloc(black, left, key, val, r.left)
				if err != nil {
					return 0, err
				}
				b, err := f.alloc(black, rr.left, rr.key, rr.val, rr.right)
				if err != nil {
					return 0, err
				}
				return f.alloc(red, a, r.key, r.val, b)
			}
		}
	}
	return f.alloc(c, left, key, val, right)
}

// Find looks up key.
func (f *Family) Find(root arena.Ptr, key Value) (Value, bool) {
	p := root
	for p != 0 {
		n := f.Heap.Get(p)
		switch c := f.cmp(key, n.key); {
		case c < 0:
			p = n.left
		case c > 0:
			p = n.right
		default:
			return n.val, true
		}
	}
	return Value{}, false
}

// GetMin returns the smallest key/value pair.
func (f *Family) GetMin(root arena.Ptr) (Value, Value, bool) {
	if root == 0 {
		return Value{}, Value{}, false
	}
	p := root
	n := f.Heap.Get(p)
	for n.left != 0 {
		p = n.left
		n = f.Heap.Get(p)
	}
	return n.key, n.val, true
}

// GetMax returns the largest key/value pair.
func (f *Family) GetMax(root arena.Ptr) (Value, Value, bool) {
	if root == 0 {
		return Value{}, Value{}, false
	}
	p := root
	n := f.Heap.Get(p)
	for n.right != 0 {
		p = n.right
		n = f.Heap.Get(p)
	}
	return n.key, n.val, true
}

// ForEach visits (key, value) pairs in ascending comparator order.
func (f *Family) ForEach(root arena.Ptr, visit func(key, val Value) bool) {
	f.forEach(root, visit)
}

func (f *Family) forEach(p arena.Ptr, visit func(key, val Value) bool) bool {
	if p == 0 {
		return true
	}
	n := f.Heap.Get(p)
	if !f.forEach(n.left, visit) {
		return false
	}
	if !visit(n.key, n.val) {
		return false
	}
	return f.forEach(n.right, visit)
}
