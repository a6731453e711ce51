// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package hamt implements the persistent Hash Array Mapped Trie used by the
// unordered map/set (spec.md §4.3, component C4): a 32-way, 5-bits-per-level
// bitmap-indexed trie over a 32-bit key hash, with path copy on every write
// so old roots stay valid.
package hamt

import (
	"bytes"

	"github.com/natanelia/zerocopy/internal/arena"
	"github.com/natanelia/zerocopy/internal/fnv32"
	"github.com/natanelia/zerocopy/internal/payload"
	"github.com/natanelia/zerocopy/internal/sparse"
)

// Value is the packed-word payload a HAMT leaf carries; see package payload.
type Value = payload.Value

const (
	bitsPerLevel = 5
	levelMask    = 1<<bitsPerLevel - 1
	maxDepth     = 7 // ceil(32/5)
)

// Hasher mixes a key's bytes into a 32-bit hash. The default is the
// FNV-1a-like mixer spec.md §4.3 mandates; see WithRuntimeHasher for the
// dolthub/maphash-backed alternative (SPEC_FULL.md DOMAIN STACK).
type Hasher func(key []byte) uint32

// DefaultHasher is the spec-mandated 32-bit FNV-1a-like mixer.
func DefaultHasher(key []byte) uint32 { return fnv32.Hash(key) }

// Node is one HAMT trie node: either an internal bitmap-indexed fan-out, a
// leaf, or (in the rare full-hash-collision case) a collision node holding a
// short linear list of colliding leaves. Node is stored by value in a
// Family's node Heap; internal/collision node fan-out lives in the Items
// slice, which Go heap-allocates independently of the Heap's own backing
// array — the idiomatic-Go analogue of the variable-length "child_ptr ×
// popcount(bitmap)" node spec.md §3 describes in byte terms.
type Node struct {
	kind     kind
	children sparse.Array[arena.Ptr] // internal nodes only
	leaf     leaf                    // leaf nodes only
	overflow []arena.Ptr             // collision nodes only: leaf Ptrs sharing one 32-bit hash
}

type kind uint8

const (
	kindInternal kind = iota
	kindLeaf
	kindCollision
)

type leaf struct {
	hash    uint32
	keyW    arena.Word
	valW    arena.Word
	numeric bool    // true when the value is an inline float64, not a blob Word
	number  float64 // valid only when numeric
}

// Reset clears n. It satisfies arena.Resettable for API symmetry with the
// module's other node types, but a Family never pools nodes itself: a node
// may still be reachable from an older root, so it can only be reclaimed by
// a whole-arena Reset, never checked in and out of a reuse Pool.
func (n *Node) Reset() { *n = Node{} }

// Family owns one HAMT's node heap, blob storage and root-slot table. In the
// host layer each NewSharedMap/NewSharedSet call creates its own Family, and
// every handle derived from that one shares it.
type Family struct {
	Heap  *arena.Heap[Node]
	Blobs *arena.Blobs
	Roots *arena.RootTable
	hash  Hasher
}

// Option configures a new Family.
type Option func(*Family)

// WithHasher overrides the default FNV-1a-like mixer, e.g. with a
// github.com/dolthub/maphash-backed hasher for hot batch-insert paths.
func WithHasher(h Hasher) Option {
	return func(f *Family) { f.hash = h }
}

// NewFamily returns an empty HAMT Family.
func NewFamily(opts ...Option) *Family {
	f := &Family{
		Heap:  arena.NewHeap[Node](),
		Blobs: arena.NewBlobs(0, 0),
		Roots: arena.NewRootTable(0),
		hash:  DefaultHasher,
	}
	for _, o := range opts {
		o(f)
	}
	return f
}

func (f *Family) newLeaf(hash uint32, key []byte, val Value) (arena.Ptr, error) {
	l := leaf{hash: hash}
	keyW, err := f.Blobs.AllocBytes(key)
	if err != nil {
		return 0, err
	}
	l.keyW = keyW
	if val.Numeric {
		l.numeric = true
		l.number = val.Number
	} else {
		valW, err := f.Blobs.AllocBytes(val.Bytes)
		if err != nil {
			return 0, err
		}
		l.valW = valW
	}
	return f.Heap.Alloc(Node{kind: kindLeaf, leaf: l})
}

func (f *Family) keyOf(n Node) []byte { return f.Blobs.Bytes(n.leaf.keyW) }

func (f *Family) valueOf(n Node) Value {
	if n.leaf.numeric {
		return Value{Numeric: true, Number: n.leaf.number}
	}
	return Value{Bytes: f.Blobs.Bytes(n.leaf.valW)}
}

// Insert returns a new root with key bound to val, path-copying every
// touched node (spec.md §4.3). existed reports whether key was already
// present (in which case size should not be incremented by the caller).
func (f *Family) Insert(root arena.Ptr, key []byte, val Value) (newRoot arena.Ptr, existed bool, err error) {
	hash := f.hash(key)
	return f.insert(root, hash, key, val, 0)
}

func (f *Family) insert(nodePtr arena.Ptr, hash uint32, key []byte, val Value, depth int) (arena.Ptr, bool, error) {
	if nodePtr == 0 {
		p, err := f.newLeaf(hash, key, val)
		return p, false, err
	}

	cur := f.Heap.Get(nodePtr)

	switch cur.kind {
	case kindLeaf:
		if cur.leaf.hash == hash && bytes.Equal(f.keyOf(cur), key) {
			p, err := f.newLeaf(hash, key, val)
			return p, true, err
		}
		if depth >= maxDepth {
			// Exceedingly rare full 32-bit hash collision: fall back to a
			// linear collision node.
			existingPtr := nodePtr
			newPtr, err := f.newLeaf(hash, key, val)
			if err != nil {
				return 0, false, err
			}
			p, err := f.Heap.Alloc(Node{kind: kindCollision, overflow: []arena.Ptr{existingPtr, newPtr}})
			return p, false, err
		}
		// Split: push the existing leaf one level deeper alongside the new key.
		return f.split(cur, hash, key, val, depth)

	case kindCollision:
		for _, p := range cur.overflow {
			leafNode := f.Heap.Get(p)
			if leafNode.leaf.hash == hash && bytes.Equal(f.keyOf(leafNode), key) {
				newLeafPtr, err := f.newLeaf(hash, key, val)
				if err != nil {
					return 0, false, err
				}
				overflow := replacePtr(cur.overflow, p, newLeafPtr)
				np, err := f.Heap.Alloc(Node{kind: kindCollision, overflow: overflow})
				return np, true, err
			}
		}
		newLeafPtr, err := f.newLeaf(hash, key, val)
		if err != nil {
			return 0, false, err
		}
		overflow := append(append([]arena.Ptr{}, cur.overflow...), newLeafPtr)
		np, err := f.Heap.Alloc(Node{kind: kindCollision, overflow: overflow})
		return np, false, err

	default: // kindInternal
		idx := slice(hash, depth)
		children := cur.children.Copy()
		childPtr, has := children.Get(idx)
		newChildPtr, existed, err := f.insert(childPtr, hash, key, val, depth+1)
		if err != nil {
			return 0, false, err
		}
		_ = has
		children.InsertAt(idx, newChildPtr)
		p, err := f.Heap.Alloc(Node{kind: kindInternal, children: *children})
		return p, existed, err
	}
}

// split turns a leaf that collides (by slice, not full hash) with a new key
// into one or more internal nodes until their 5-bit slices diverge.
func (f *Family) split(existing Node, hash uint32, key []byte, val Value, depth int) (arena.Ptr, bool, error) {
	existingIdx := slice(existing.leaf.hash, depth)
	newIdx := slice(hash, depth)

	if existingIdx != newIdx {
		existingPtr, err := f.Heap.Alloc(existing)
		if err != nil {
			return 0, false, err
		}
		newLeafPtr, err := f.newLeaf(hash, key, val)
		if err != nil {
			return 0, false, err
		}
		children := &sparse.Array[arena.Ptr]{}
		children.InsertAt(existingIdx, existingPtr)
		children.InsertAt(newIdx, newLeafPtr)
		p, err := f.Heap.Alloc(Node{kind: kindInternal, children: *children})
		return p, false, err
	}

	// Same slice at this depth: recurse one level deeper.
	existingPtr, err := f.Heap.Alloc(existing)
	if err != nil {
		return 0, false, err
	}
	childPtr, _, err := f.insert(existingPtr, hash, key, val, depth+1)
	if err != nil {
		return 0, false, err
	}
	children := &sparse.Array[arena.Ptr]{}
	children.InsertAt(existingIdx, childPtr)
	p, err := f.Heap.Alloc(Node{kind: kindInternal, children: *children})
	return p, false, err
}

// Get returns the value bound to key, if any.
func (f *Family) Get(root arena.Ptr, key []byte) (Value, bool) {
	hash := f.hash(key)
	return f.get(root, hash, key, 0)
}

func (f *Family) get(nodePtr arena.Ptr, hash uint32, key []byte, depth int) (Value, bool) {
	if nodePtr == 0 {
		return Value{}, false
	}
	n := f.Heap.Get(nodePtr)
	switch n.kind {
	case kindLeaf:
		if n.leaf.hash == hash && bytes.Equal(f.keyOf(n), key) {
			return f.valueOf(n), true
		}
		return Value{}, false
	case kindCollision:
		for _, p := range n.overflow {
			leafNode := f.Heap.Get(p)
			if leafNode.leaf.hash == hash && bytes.Equal(f.keyOf(leafNode), key) {
				return f.valueOf(leafNode), true
			}
		}
		return Value{}, false
	default:
		idx := slice(hash, depth)
		childPtr, ok := n.children.Get(idx)
		if !ok {
			return Value{}, false
		}
		return f.get(childPtr, hash, key, depth+1)
	}
}

// Has reports whether key is present.
func (f *Family) Has(root arena.Ptr, key []byte) bool {
	_, ok := f.Get(root, key)
	return ok
}

// Remove returns a new root with key removed, or (root, false) if key was
// absent — the caller should reuse root and skip reallocating its handle
// in that case (spec.md §4.3's SENTINEL_NOT_FOUND policy).
func (f *Family) Remove(root arena.Ptr, key []byte) (arena.Ptr, bool, error) {
	hash := f.hash(key)
	newRoot, removed, _, err := f.remove(root, hash, key, 0)
	if err != nil {
		return root, false, err
	}
	if !removed {
		return root, false, nil
	}
	return newRoot, true, nil
}

// remove returns (newPtr, removed, collapsedLeaf) where collapsedLeaf is the
// single remaining leaf Ptr when a node has path-compressed down to it.
func (f *Family) remove(nodePtr arena.Ptr, hash uint32, key []byte, depth int) (arena.Ptr, bool, bool, error) {
	if nodePtr == 0 {
		return nodePtr, false, false, nil
	}
	n := f.Heap.Get(nodePtr)

	switch n.kind {
	case kindLeaf:
		if n.leaf.hash == hash && bytes.Equal(f.keyOf(n), key) {
			return 0, true, false, nil
		}
		return nodePtr, false, false, nil

	case kindCollision:
		for i, p := range n.overflow {
			leafNode := f.Heap.Get(p)
			if leafNode.leaf.hash == hash && bytes.Equal(f.keyOf(leafNode), key) {
				remaining := append(append([]arena.Ptr{}, n.overflow[:i]...), n.overflow[i+1:]...)
				if len(remaining) == 1 {
					return remaining[0], true, false, nil
				}
				np, err := f.Heap.Alloc(Node{kind: kindCollision, overflow: remaining})
				return np, true, false, err
			}
		}
		return nodePtr, false, false, nil

	default:
		idx := slice(hash, depth)
		childPtr, ok := n.children.Get(idx)
		if !ok {
			return nodePtr, false, false, nil
		}
		newChildPtr, removed, _, err := f.remove(childPtr, hash, key, depth+1)
		if err != nil || !removed {
			return nodePtr, removed, false, err
		}

		children := n.children.Copy()
		if newChildPtr == 0 {
			children.DeleteAt(idx)
		} else {
			children.InsertAt(idx, newChildPtr)
		}

		if children.Len() == 0 {
			return 0, true, false, nil
		}
		if children.Len() == 1 {
			only := children.Items[0]
			if f.Heap.Get(only).kind == kindLeaf {
				return only, true, true, nil
			}
		}
		p, err := f.Heap.Alloc(Node{kind: kindInternal, children: *children})
		return p, true, false, err
	}
}

func slice(hash uint32, depth int) uint {
	return uint((hash >> (depth * bitsPerLevel)) & levelMask)
}

func replacePtr(ptrs []arena.Ptr, old, new arena.Ptr) []arena.Ptr {
	out := make([]arena.Ptr, len(ptrs))
	for i, p := range ptrs {
		if p == old {
			out[i] = new
		} else {
			out[i] = p
		}
	}
	return out
}
