// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package hamt

import "github.com/natanelia/zerocopy/internal/arena"

// Leaf is a leaf descriptor yielded by iteration: the key/value bytes (or
// inline number) plus the leaf's own Ptr, matching spec.md §4.3's
// "(leafPtr, keyLen, valLen)" iterator contract in Go-idiomatic form.
type Leaf struct {
	Key   []byte
	Value Value
	Ptr   arena.Ptr
}

type frame struct {
	node    arena.Ptr
	nextIdx int
}

// Iterator is a single-use, non-restartable cursor over a HAMT root,
// matching spec.md §4.3/§9: a finite stack of (node, nextChildIdx) with no
// generator machinery.
type Iterator struct {
	f     *Family
	stack []frame
}

// NewIterator starts a fresh iterator at root.
func (f *Family) NewIterator(root arena.Ptr) *Iterator {
	it := &Iterator{f: f}
	if root != 0 {
		it.stack = append(it.stack, frame{node: root})
	}
	return it
}

// Next advances the iterator and returns the next leaf, or ok=false once
// exhausted.
func (it *Iterator) Next() (Leaf, bool) {
	for len(it.stack) > 0 {
		top := &it.stack[len(it.stack)-1]
		n := it.f.Heap.Get(top.node)

		switch n.kind {
		case kindLeaf:
			it.stack = it.stack[:len(it.stack)-1]
			return Leaf{Key: it.f.keyOf(n), Value: it.f.valueOf(n), Ptr: top.node}, true

		case kindCollision:
			if top.nextIdx >= len(n.overflow) {
				it.stack = it.stack[:len(it.stack)-1]
				continue
			}
			p := n.overflow[top.nextIdx]
			top.nextIdx++
			leafNode := it.f.Heap.Get(p)
			return Leaf{Key: it.f.keyOf(leafNode), Value: it.f.valueOf(leafNode), Ptr: p}, true

		default: // internal
			if top.nextIdx >= n.children.Len() {
				it.stack = it.stack[:len(it.stack)-1]
				continue
			}
			child := n.children.Items[top.nextIdx]
			top.nextIdx++
			it.stack = append(it.stack, frame{node: child})
		}
	}
	return Leaf{}, false
}

// NextLeaves emits up to max leaves, returning the leaves actually produced;
// an empty result means the iterator is exhausted (spec.md §4.3's
// nextLeaves(max)).
func (it *Iterator) NextLeaves(max int) []Leaf {
	out := make([]Leaf, 0, max)
	for len(out) < max {
		l, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, l)
	}
	return out
}

// ForEach visits every leaf in the trie rooted at root.
func (f *Family) ForEach(root arena.Ptr, visit func(key []byte, val Value) bool) {
	it := f.NewIterator(root)
	for {
		l, ok := it.Next()
		if !ok {
			return
		}
		if !visit(l.Key, l.Value) {
			return
		}
	}
}

// Record is one (key, value) pair for the batch operations below.
type Record struct {
	Key   []byte
	Value Value
}

// InsertMany applies records to root as if inserted in sequence, committing
// as one new persistent root (spec.md §4.3's insertMany). The batch is not
// internally transient (each record still path-copies its own spine); for
// the scale this library targets the extra allocations are immaterial, and
// keeping Insert as the single code path avoids a second, divergent
// traversal implementation to maintain.
func (f *Family) InsertMany(root arena.Ptr, records []Record) (arena.Ptr, error) {
	for _, r := range records {
		newRoot, _, err := f.Insert(root, r.Key, r.Value)
		if err != nil {
			return root, err
		}
		root = newRoot
	}
	return root, nil
}

// GetMany looks up several keys against one root.
func (f *Family) GetMany(root arena.Ptr, keys [][]byte) []Value {
	out := make([]Value, len(keys))
	for i, k := range keys {
		out[i], _ = f.Get(root, k)
	}
	return out
}

// DeleteMany removes several keys, committing as one new root.
func (f *Family) DeleteMany(root arena.Ptr, keys [][]byte) (arena.Ptr, error) {
	for _, k := range keys {
		newRoot, _, err := f.Remove(root, k)
		if err != nil {
			return root, err
		}
		root = newRoot
	}
	return root, nil
}

// Count walks root and counts its leaves. Handles generally carry their own
// size counter (spec.md §4.10); this exists for verifying that invariant in
// tests.
func (f *Family) Count(root arena.Ptr) int {
	n := 0
	f.ForEach(root, func([]byte, Value) bool { n++; return true })
	return n
}
