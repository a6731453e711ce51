// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package rbtree

import "github.com/natanelia/zerocopy/internal/arena"

// handle represents either a real arena node (ptr != 0), ordinary empty
// (ptr == 0, eeNode == false) or the double-black empty leaf EE that
// arises from deleting a black leaf (ptr == 0, eeNode == true). EE only
// ever exists transiently while a deletion's deficit is being bubbled up;
// it never survives into a value returned across a package boundary.
type handle struct {
	ptr    arena.Ptr
	eeNode bool
}

func realHandle(p arena.Ptr) handle { return handle{ptr: p} }

func (f *Family) handleColor(h handle) color {
	if h.ptr == 0 {
		if h.eeNode {
			return doubleBlack
		}
		return black
	}
	return f.Heap.Get(h.ptr).c
}

func (f *Family) isDoubleBlack(h handle) bool {
	return f.handleColor(h) == doubleBlack
}

// blacker darkens a color by one shade, applied to a node whose child
// subtree lost a black node and must track the deficit.
func blacker(c color) color {
	switch c {
	case red:
		return black
	case black:
		return doubleBlack
	case negativeBlack:
		return red
	default:
		return doubleBlack
	}
}

// redder lightens a color by one shade, undoing blacker.
func redder(c color) color {
	switch c {
	case doubleBlack:
		return black
	case black:
		return red
	case red:
		return negativeBlack
	default:
		return red
	}
}

// redderHandle lightens h by one shade. EE lightens to ordinary empty;
// ordinary empty has no valid lighter shade and passes through unchanged
// (a plain-empty sibling of a double-black node cannot occur in a valid
// tree, so this case is never load-bearing).
func (f *Family) redderHandle(h handle) (handle, error) {
	if h.ptr == 0 {
		return handle{}, nil
	}
	n := f.Heap.Get(h.ptr)
	p, err := f.alloc(redder(n.c), n.left, n.right, n.key, n.val)
	return realHandle(p), err
}

// recolor rebuilds the node at ptr with color c, preserving its children.
func (f *Family) recolor(ptr arena.Ptr, c color) (arena.Ptr, error) {
	n := f.Heap.Get(ptr)
	return f.alloc(c, n.left, n.right, n.key, n.val)
}

// balanceDelete generalizes balanceInsert's red-red rotation to
// double-black and negative-black inputs, per the standard four-color
// scheme for purely functional red-black tree deletion.
func (f *Family) balanceDelete(c color, left handle, key, val Value, right handle) (arena.Ptr, error) {
	lc, rc := f.handleColor(left), f.handleColor(right)

	if (c == black || c == doubleBlack) && lc == red {
		l := f.Heap.Get(left.ptr)
		if f.colorOf(l.left) == red {
			ll := f.Heap.Get(l.left)
			a, err := f.alloc(black, ll.left, ll.right, ll.key, ll.val)
			if err != nil {
				return 0, err
			}
			b, err := f.alloc(black, l.right, key, val, right.ptr)
			if err != nil {
				return 0, err
			}
			return f.alloc(redder(c), a, l.key, l.val, b)
		}
		if f.colorOf(l.right) == red {
			lr := f.Heap.Get(l.right)
			a, err := f.alloc(black, l.left, l.key, l.val, lr.left)
			if err != nil {
				return 0, err
			}
			b, err := f.alloc(black, lr.right, key, val, right.ptr)
			if err != nil {
				return 0, err
			}
			return f.alloc(redder(c), a, lr.key, lr.val, b)
		}
	}

	if (c == black || c == doubleBlack) && rc == red {
		r := f.Heap.Get(right.ptr)
		if f.colorOf(r.left) == red {
			rl := f.Heap.Get(r.left)
			a, err := f.alloc(black, left.ptr, key, val, rl.left)
			if err != nil {
				return 0, err
			}
			b, err := f.alloc(black, rl.right, r.key, r.val, r.right)
			if err != nil {
				return 0, err
			}
			return f.alloc(redder(c), a, rl.key, rl.val, b)
		}
		if f.colorOf(r.right) == red {
			rr := f.Heap.Get(r.right)
			a, err := f.alloc(black, left.ptr, key, val, r.left)
			if err != nil {
				return 0, err
			}
			b, err := f.alloc(black, rr.left, rr.key, rr.val, rr.right)
			if err != nil {
				return 0, err
			}
			return f.alloc(redder(c), a, r.key, r.val, b)
		}
	}

	// Negative-black resolution: a double-black node whose heavier side
	// carries a negative-black child is untangled by one extra rotation,
	// producing an ordinary double-black-free tree.
	if c == doubleBlack && rc == negativeBlack && right.ptr != 0 {
		rNode := f.Heap.Get(right.ptr)
		if rNode.left != 0 && rNode.right != 0 && f.colorOf(rNode.left) == black {
			inner := f.Heap.Get(rNode.left)
			newLeft, err := f.alloc(black, left.ptr, key, val, inner.left)
			if err != nil {
				return 0, err
			}
			reddenD, err := f.recolor(rNode.right, red)
			if err != nil {
				return 0, err
			}
			innerBalanced, err := f.balanceDelete(black, realHandle(inner.right), rNode.key, rNode.val, realHandle(reddenD))
			if err != nil {
				return 0, err
			}
			return f.alloc(black, newLeft, inner.key, inner.val, innerBalanced)
		}
	}
	if c == doubleBlack && lc == negativeBlack && left.ptr != 0 {
		lNode := f.Heap.Get(left.ptr)
		if lNode.left != 0 && lNode.right != 0 && f.colorOf(lNode.left) == black {
			inner := f.Heap.Get(lNode.right)
			reddenA, err := f.recolor(lNode.left, red)
			if err != nil {
				return 0, err
			}
			innerBalanced, err := f.balanceDelete(black, realHandle(reddenA), lNode.key, lNode.val, realHandle(inner.left))
			if err != nil {
				return 0, err
			}
			newRight, err := f.alloc(black, inner.right, key, val, right.ptr)
			if err != nil {
				return 0, err
			}
			return f.alloc(black, innerBalanced, inner.key, inner.val, newRight)
		}
	}

	return f.alloc(c, left.ptr, key, val, right.ptr)
}

// bubble propagates a double-black deficit from a child upward, darkening
// the parent and lightening both children, then re-running balanceDelete.
func (f *Family) bubble(c color, left handle, key, val Value, right handle) (handle, error) {
	if f.isDoubleBlack(left) || f.isDoubleBlack(right) {
		newLeft, err := f.redderHandle(left)
		if err != nil {
			return handle{}, err
		}
		newRight, err := f.redderHandle(right)
		if err != nil {
			return handle{}, err
		}
		p, err := f.balanceDelete(blacker(c), newLeft, key, val, newRight)
		return realHandle(p), err
	}
	p, err := f.balanceDelete(c, left, key, val, right)
	return realHandle(p), err
}

// Delete returns a new root with key removed, or (root, false) if absent.
func (f *Family) Delete(root arena.Ptr, key Value) (arena.Ptr, bool, error) {
	h, removed, err := f.del(realHandle(root), key)
	if err != nil {
		return root, false, err
	}
	if !removed {
		return root, false, nil
	}
	return f.finalizeRoot(h), true, nil
}

func (f *Family) finalizeRoot(h handle) arena.Ptr {
	if h.ptr == 0 {
		return 0
	}
	n := f.Heap.Get(h.ptr)
	if n.c == black {
		return h.ptr
	}
	p, _ := f.alloc(black, n.left, n.right, n.key, n.val)
	return p
}

func (f *Family) del(h handle, key Value) (handle, bool, error) {
	if h.ptr == 0 {
		return h, false, nil
	}
	n := f.Heap.Get(h.ptr)
	switch c := f.cmp(key, n.key); {
	case c < 0:
		newLeft, removed, err := f.del(realHandle(n.left), key)
		if err != nil || !removed {
			return h, removed, err
		}
		res, err := f.bubble(n.c, newLeft, n.key, n.val, realHandle(n.right))
		return res, true, err
	case c > 0:
		newRight, removed, err := f.del(realHandle(n.right), key)
		if err != nil || !removed {
			return h, removed, err
		}
		res, err := f.bubble(n.c, realHandle(n.left), n.key, n.val, newRight)
		return res, true, err
	default:
		res, err := f.removeNode(h)
		return res, true, err
	}
}

// removeNode removes the node at h (its key matched), returning the
// replacement subtree: a red or black leaf disappears outright (tracking
// a deficit for a removed black leaf via EE), a black node with a single
// red child is replaced by that child recolored black, and the general
// case splices in the in-order predecessor (the maximum of the left
// subtree).
func (f *Family) removeNode(h handle) (handle, error) {
	n := f.Heap.Get(h.ptr)

	if n.left == 0 && n.right == 0 {
		if n.c == red {
			return handle{}, nil
		}
		return handle{eeNode: true}, nil
	}
	if n.left == 0 {
		r := f.Heap.Get(n.right)
		p, err := f.alloc(black, r.left, r.right, r.key, r.val)
		return realHandle(p), err
	}
	if n.right == 0 {
		l := f.Heap.Get(n.left)
		p, err := f.alloc(black, l.left, l.right, l.key, l.val)
		return realHandle(p), err
	}

	predKey, predVal, newLeft, err := f.removeMax(realHandle(n.left))
	if err != nil {
		return handle{}, err
	}
	return f.bubble(n.c, newLeft, predKey, predVal, realHandle(n.right))
}

// removeMax removes and returns the maximum (key, value) from the subtree
// at h, along with the replacement subtree.
func (f *Family) removeMax(h handle) (Value, Value, handle, error) {
	n := f.Heap.Get(h.ptr)
	if n.right == 0 {
		if n.left == 0 {
			if n.c == red {
				return n.key, n.val, handle{}, nil
			}
			return n.key, n.val, handle{eeNode: true}, nil
		}
		l := f.Heap.Get(n.left)
		p, err := f.alloc(black, l.left, l.right, l.key, l.val)
		return n.key, n.val, realHandle(p), err
	}
	maxKey, maxVal, newRight, err := f.removeMax(realHandle(n.right))
	if err != nil {
		return Value{}, Value{}, handle{}, err
	}
	res, err := f.bubble(n.c, realHandle(n.left), n.key, n.val, newRight)
	return maxKey, maxVal, res, err
}
