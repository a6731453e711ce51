// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package vector implements the persistent vector trie used by the indexed
// list (spec.md §4.4, component C5): a radix-32 trie indexed by integer
// position, with a tail buffer holding the last up-to-32 elements for O(1)
// amortized push.
package vector

import (
	"github.com/natanelia/zerocopy/internal/arena"
	"github.com/natanelia/zerocopy/internal/payload"
)

const (
	bitsPerLevel = 5
	width        = 1 << bitsPerLevel // 32
	levelMask    = width - 1
)

// Value is the element payload; see package payload.
type Value = payload.Value

// Node is one trie node: either width-wide child pointers (an internal
// node) or width-wide leaf values (isLeaf). The tail is held in Root, not
// in a Node, and the trie root is always an internal node.
type Node struct {
	isLeaf   bool
	children []arena.Ptr
	values   []Value
}

// Reset clears n. It satisfies arena.Resettable for API symmetry with the
// module's other node types; this package never pools nodes itself, since a
// node may still be reachable from an older root.
func (n *Node) Reset() { *n = Node{} }

// Root is the handle-layer state a SharedList carries (spec.md §4.10):
// trie root, its depth, the tail buffer and the total element count.
type Root struct {
	Trie  arena.Ptr
	Depth int
	Size  int
	Tail  []Value // up to `width` elements; the most recently pushed
}

// Family owns one vector trie's node heap.
type Family struct {
	Heap *arena.Heap[Node]
}

// NewFamily returns an empty vector Family.
func NewFamily() *Family {
	return &Family{Heap: arena.NewHeap[Node]()}
}

// trieSize is the element count held in the trie portion (excluding tail).
func trieSize(r Root) int { return r.Size - len(r.Tail) }

// Push appends v, returning the new Root. Path-copies only the tail when it
// has room; spills the full tail into the trie otherwise (spec.md §4.4).
func (f *Family) Push(r Root, v Value) (Root, error) {
	if len(r.Tail) < width {
		newTail := append(append([]Value{}, r.Tail...), v)
		return Root{Trie: r.Trie, Depth: r.Depth, Size: r.Size + 1, Tail: newTail}, nil
	}

	// Tail is full: spill it into the trie at leaf leafIndex, then start a
	// new tail holding only v. trieSize(r) is always a multiple of width
	// right before a spill, so the division is exact.
	newTrie, newDepth, err := f.appendLeaf(r.Trie, r.Depth, trieSize(r)/width, r.Tail)
	if err != nil {
		return r, err
	}
	return Root{Trie: newTrie, Depth: newDepth, Size: r.Size + 1, Tail: []Value{v}}, nil
}

// appendLeaf inserts a full-width leaf of values at the trie leaf addressed
// by leafIndex (a count of width-sized leaves, the same unit descendToLeaf
// and setValueAtLeaf use), growing depth first if the trie is already full
// at its current depth.
func (f *Family) appendLeaf(trie arena.Ptr, depth int, leafIndex int, values []Value) (arena.Ptr, int, error) {
	if trie == 0 && depth == 0 {
		// First spill ever: wrap the leaf in a real depth-1 branch so later
		// spills and Get/descendToLeaf can navigate into it like any other
		// trie instead of finding a bare leaf where a branch is expected.
		leafPtr, err := f.Heap.Alloc(Node{isLeaf: true, values: values})
		if err != nil {
			return 0, 0, err
		}
		children := make([]arena.Ptr, width)
		children[0] = leafPtr
		branch, err := f.Heap.Alloc(Node{children: children})
		return branch, 1, err
	}

	capLeaves := 1 << (bitsPerLevel * depth) // leaves addressable at the current depth
	if leafIndex >= capLeaves {
		// Current depth is full: wrap it as the sole child of a taller root.
		newDepth := depth + 1
		children := make([]arena.Ptr, width)
		children[0] = trie
		branch, err := f.Heap.Alloc(Node{children: children})
		if err != nil {
			return 0, 0, err
		}
		return f.setLeafAtDepth(branch, newDepth, leafIndex, values)
	}
	return f.setLeafAtDepth(trie, depth, leafIndex, values)
}

// setLeafAtDepth path-copies the spine from trie down to the leaf slot
// addressed by leafIndex (in units of width-sized leaves) and installs
// values there.
func (f *Family) setLeafAtDepth(trie arena.Ptr, depth int, leafIndex int, values []Value) (arena.Ptr, int, error) {
	if depth == 1 {
		node := Node{isLeaf: false, children: make([]arena.Ptr, width)}
		if trie != 0 {
			copy(node.children, f.Heap.Get(trie).children)
		}
		leafPtr, err := f.Heap.Alloc(Node{isLeaf: true, values: values})
		if err != nil {
			return 0, 0, err
		}
		node.children[leafIndex&levelMask] = leafPtr
		p, err := f.Heap.Alloc(node)
		return p, depth, err
	}

	shift := bitsPerLevel * (depth - 1)
	slot := (leafIndex >> shift) & levelMask

	node := Node{isLeaf: false, children: make([]arena.Ptr, width)}
	if trie != 0 {
		copy(node.children, f.Heap.Get(trie).children)
	}
	childPtr, _, err := f.setLeafAtDepth(node.children[slot], depth-1, leafIndex, values)
	if err != nil {
		return 0, 0, err
	}
	node.children[slot] = childPtr
	p, err := f.Heap.Alloc(node)
	return p, depth, err
}

// Get returns the element at index.
func (f *Family) Get(r Root, index int) (Value, bool) {
	if index < 0 || index >= r.Size {
		return Value{}, false // spec.md §7: reads return "absent" on out-of-bounds
	}
	tsize := trieSize(r)
	if index >= tsize {
		return r.Tail[index-tsize], true
	}
	leafIndex := index / width
	offset := index % width
	leafPtr := f.descendToLeaf(r.Trie, r.Depth, leafIndex)
	return f.Heap.Get(leafPtr).values[offset], true
}

func (f *Family) descendToLeaf(trie arena.Ptr, depth, leafIndex int) arena.Ptr {
	if depth <= 1 {
		return f.Heap.Get(trie).children[leafIndex&levelMask]
	}
	shift := bitsPerLevel * (depth - 1)
	slot := (leafIndex >> shift) & levelMask
	return f.descendToLeaf(f.Heap.Get(trie).children[slot], depth-1, leafIndex)
}

// Set returns a new Root with index replaced by v, path-copying the
// affected spine; out-of-bounds writes are a documented no-op (spec.md §7).
func (f *Family) Set(r Root, index int, v Value) (Root, error) {
	if index < 0 || index >= r.Size {
		return r, nil
	}
	tsize := trieSize(r)
	if index >= tsize {
		newTail := append([]Value{}, r.Tail...)
		newTail[index-tsize] = v
		return Root{Trie: r.Trie, Depth: r.Depth, Size: r.Size, Tail: newTail}, nil
	}
	leafIndex := index / width
	offset := index % width
	newTrie, err := f.setValueAtLeaf(r.Trie, r.Depth, leafIndex, offset, v)
	if err != nil {
		return r, err
	}
	return Root{Trie: newTrie, Depth: r.Depth, Size: r.Size, Tail: r.Tail}, nil
}

func (f *Family) setValueAtLeaf(trie arena.Ptr, depth, leafIndex, offset int, v Value) (arena.Ptr, error) {
	if depth <= 1 {
		leafPtr := f.Heap.Get(trie).children[leafIndex&levelMask]
		leaf := f.Heap.Get(leafPtr)
		values := append([]Value{}, leaf.values...)
		values[offset] = v
		newLeafPtr, err := f.Heap.Alloc(Node{isLeaf: true, values: values})
		if err != nil {
			return 0, err
		}
		node := Node{isLeaf: false, children: append([]arena.Ptr{}, f.Heap.Get(trie).children...)}
		node.children[leafIndex&levelMask] = newLeafPtr
		return f.Heap.Alloc(node)
	}
	shift := bitsPerLevel * (depth - 1)
	slot := (leafIndex >> shift) & levelMask
	node := Node{isLeaf: false, children: append([]arena.Ptr{}, f.Heap.Get(trie).children...)}
	newChild, err := f.setValueAtLeaf(node.children[slot], depth-1, leafIndex, offset, v)
	if err != nil {
		return 0, err
	}
	node.children[slot] = newChild
	return f.Heap.Alloc(node)
}

// Pop removes the last element, returning the new Root. A no-op on an empty
// vector (spec.md §7's empty-structure policy).
func (f *Family) Pop(r Root) Root {
	if r.Size == 0 {
		return r
	}
	if len(r.Tail) > 0 {
		return Root{Trie: r.Trie, Depth: r.Depth, Size: r.Size - 1, Tail: r.Tail[:len(r.Tail)-1]}
	}
	// Tail is empty: the last full leaf in the trie becomes the new tail.
	tsize := trieSize(r)
	lastLeafIndex := (tsize - 1) / width
	leafPtr := f.descendToLeaf(r.Trie, r.Depth, lastLeafIndex)
	tail := append([]Value{}, f.Heap.Get(leafPtr).values...)
	return Root{Trie: r.Trie, Depth: r.Depth, Size: r.Size - 1, Tail: tail[:len(tail)-1]}
}

// ForEach visits every element of r in index order.
func (f *Family) ForEach(r Root, visit func(index int, v Value) bool) {
	for i := 0; i < r.Size; i++ {
		v, _ := f.Get(r, i)
		if !visit(i, v) {
			return
		}
	}
}
