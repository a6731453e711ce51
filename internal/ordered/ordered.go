// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package ordered implements the insertion-ordered map (spec.md §4.7,
// component C7): a HAMT keyed on hash for O(1) lookup, with every leaf also
// threaded onto a doubly-linked list in insertion order, so iteration walks
// head to tail instead of hash-trie order.
package ordered

import (
	"bytes"

	"github.com/natanelia/zerocopy/internal/arena"
	"github.com/natanelia/zerocopy/internal/fnv32"
	"github.com/natanelia/zerocopy/internal/payload"
	"github.com/natanelia/zerocopy/internal/sparse"
)

// Value is the element payload; see package payload.
type Value = payload.Value

const (
	bitsPerLevel = 5
	levelMask    = 1<<bitsPerLevel - 1
	maxDepth     = 7
)

// Hasher mixes a key's bytes into a 32-bit hash.
type Hasher func(key []byte) uint32

// DefaultHasher is the spec-mandated 32-bit FNV-1a-like mixer.
func DefaultHasher(key []byte) uint32 { return fnv32.Hash(key) }

type kind uint8

const (
	kindInternal kind = iota
	kindLeaf
	kindCollision
)

// entryNode is the doubly-linked list node threading every leaf in
// insertion order. Its key/value live here rather than in the HAMT node
// itself, so the HAMT leaf is just a pointer to this entry (spec.md §4.7's
// "two-word sentinel [0, listNodePtr]").
type entryNode struct {
	prev, next arena.Ptr
	hash       uint32
	keyW       arena.Word
	valW       arena.Word
	numeric    bool
	number     float64
}

func (n *entryNode) Reset() { *n = entryNode{} }

// Node is a HAMT trie node over entry Ptrs.
type Node struct {
	kind     kind
	children sparse.Array[arena.Ptr]
	entry    arena.Ptr   // kindLeaf only: points into the entries heap
	overflow []arena.Ptr // kindCollision only: entry Ptrs sharing one hash
}

func (n *Node) Reset() { *n = Node{} }

// Root is the handle-layer state: the HAMT root plus the list head/tail/size
// (spec.md §4.10).
type Root struct {
	Trie       arena.Ptr
	Head, Tail arena.Ptr
	Size       int
}

// Family owns one ordered map's trie heap, entry heap and blob storage.
type Family struct {
	Trie    *arena.Heap[Node]
	Entries *arena.Heap[entryNode]
	Blobs   *arena.Blobs
	hash    Hasher
}

// Option configures a new Family.
type Option func(*Family)

// WithHasher overrides the default hasher.
func WithHasher(h Hasher) Option {
	return func(f *Family) { f.hash = h }
}

// NewFamily returns an empty ordered-map Family.
func NewFamily(opts ...Option) *Family {
	f := &Family{
		Trie:    arena.NewHeap[Node](),
		Entries: arena.NewHeap[entryNode](),
		Blobs:   arena.NewBlobs(0, 0),
		hash:    DefaultHasher,
	}
	for _, o := range opts {
		o(f)
	}
	return f
}

func (f *Family) keyOf(e entryNode) []byte { return f.Blobs.Bytes(e.keyW) }

func (f *Family) valueOf(e entryNode) Value {
	if e.numeric {
		return Value{Numeric: true, Number: e.number}
	}
	return Value{Bytes: f.Blobs.Bytes(e.valW)}
}

// Set binds key to val, appending a new list entry at the tail when the key
// is new, or relinking a replacement entry in place of the old one when the
// key already exists (spec.md §4.7). Returns the updated Root and whether
// the key already existed.
func (f *Family) Set(r Root, key []byte, val Value) (Root, bool, error) {
	hash := f.hash(key)

	existingPtr, ok := f.findEntry(r.Trie, hash, key, 0)
	if ok {
		old := f.Entries.Get(existingPtr)
		newEntryPtr, err := f.newEntry(hash, key, val)
		if err != nil {
			return r, false, err
		}
		ne := f.Entries.GetPtr(newEntryPtr)
		ne.prev, ne.next = old.prev, old.next
		if old.prev != 0 {
			f.Entries.GetPtr(old.prev).next = newEntryPtr
		}
		if old.next != 0 {
			f.Entries.GetPtr(old.next).prev = newEntryPtr
		}
		newHead, newTail := r.Head, r.Tail
		if r.Head == existingPtr {
			newHead = newEntryPtr
		}
		if r.Tail == existingPtr {
			newTail = newEntryPtr
		}
		newTrie, _, err := f.insert(r.Trie, hash, key, newEntryPtr, 0)
		if err != nil {
			return r, false, err
		}
		return Root{Trie: newTrie, Head: newHead, Tail: newTail, Size: r.Size}, true, nil
	}

	entryPtr, err := f.newEntry(hash, key, val)
	if err != nil {
		return r, false, err
	}
	if r.Tail != 0 {
		f.Entries.GetPtr(r.Tail).next = entryPtr
		f.Entries.GetPtr(entryPtr).prev = r.Tail
	}
	newHead := r.Head
	if newHead == 0 {
		newHead = entryPtr
	}
	newTrie, _, err := f.insert(r.Trie, hash, key, entryPtr, 0)
	if err != nil {
		return r, false, err
	}
	return Root{Trie: newTrie, Head: newHead, Tail: entryPtr, Size: r.Size + 1}, false, nil
}

func (f *Family) newEntry(hash uint32, key []byte, val Value) (arena.Ptr, error) {
	e := entryNode{hash: hash}
	keyW, err := f.Blobs.AllocBytes(key)
	if err != nil {
		return 0, err
	}
	e.keyW = keyW
	if val.Numeric {
		e.numeric = true
		e.number = val.Number
	} else {
		valW, err := f.Blobs.AllocBytes(val.Bytes)
		if err != nil {
			return 0, err
		}
		e.valW = valW
	}
	return f.Entries.Alloc(e)
}

func (f *Family) findEntry(nodePtr arena.Ptr, hash uint32, key []byte, depth int) (arena.Ptr, bool) {
	if nodePtr == 0 {
		return 0, false
	}
	n := f.Trie.Get(nodePtr)
	switch n.kind {
	case kindLeaf:
		e := f.Entries.Get(n.entry)
		if e.hash == hash && bytes.Equal(f.keyOf(e), key) {
			return n.entry, true
		}
		return 0, false
	case kindCollision:
		for _, p := range n.overflow {
			e := f.Entries.Get(p)
			if e.hash == hash && bytes.Equal(f.keyOf(e), key) {
				return p, true
			}
		}
		return 0, false
	default:
		idx := slice(hash, depth)
		childPtr, ok := n.children.Get(idx)
		if !ok {
			return 0, false
		}
		return f.findEntry(childPtr, hash, key, depth+1)
	}
}

// insert rewrites the trie path so key maps to entryPtr, mirroring hamt's
// path-copy insert but storing an entry Ptr instead of an inline leaf.
func (f *Family) insert(nodePtr arena.Ptr, hash uint32, key []byte, entryPtr arena.Ptr, depth int) (arena.Ptr, bool, error) {
	if nodePtr == 0 {
		p, err := f.Trie.Alloc(Node{kind: kindLeaf, entry: entryPtr})
		return p, false, err
	}

	cur := f.Trie.Get(nodePtr)
	switch cur.kind {
	case kindLeaf:
		existing := f.Entries.Get(cur.entry)
		if existing.hash == hash && bytes.Equal(f.keyOf(existing), key) {
			p, err := f.Trie.Alloc(Node{kind: kindLeaf, entry: entryPtr})
			return p, true, err
		}
		if depth >= maxDepth {
			p, err := f.Trie.Alloc(Node{kind: kindCollision, overflow: []arena.Ptr{cur.entry, entryPtr}})
			return p, false, err
		}
		return f.split(existing, cur.entry, hash, key, entryPtr, depth)

	case kindCollision:
		for i, p := range cur.overflow {
			e := f.Entries.Get(p)
			if e.hash == hash && bytes.Equal(f.keyOf(e), key) {
				overflow := append([]arena.Ptr{}, cur.overflow...)
				overflow[i] = entryPtr
				np, err := f.Trie.Alloc(Node{kind: kindCollision, overflow: overflow})
				return np, true, err
			}
		}
		overflow := append(append([]arena.Ptr{}, cur.overflow...), entryPtr)
		np, err := f.Trie.Alloc(Node{kind: kindCollision, overflow: overflow})
		return np, false, err

	default:
		idx := slice(hash, depth)
		children := cur.children.Copy()
		childPtr, _ := children.Get(idx)
		newChildPtr, existed, err := f.insert(childPtr, hash, key, entryPtr, depth+1)
		if err != nil {
			return 0, false, err
		}
		children.InsertAt(idx, newChildPtr)
		p, err := f.Trie.Alloc(Node{kind: kindInternal, children: *children})
		return p, existed, err
	}
}

func (f *Family) split(existing entryNode, existingEntryPtr arena.Ptr, hash uint32, key []byte, entryPtr arena.Ptr, depth int) (arena.Ptr, bool, error) {
	existingIdx := slice(existing.hash, depth)
	newIdx := slice(hash, depth)

	if existingIdx != newIdx {
		existingLeaf, err := f.Trie.Alloc(Node{kind: kindLeaf, entry: existingEntryPtr})
		if err != nil {
			return 0, false, err
		}
		newLeaf, err := f.Trie.Alloc(Node{kind: kindLeaf, entry: entryPtr})
		if err != nil {
			return 0, false, err
		}
		children := &sparse.Array[arena.Ptr]{}
		children.InsertAt(existingIdx, existingLeaf)
		children.InsertAt(newIdx, newLeaf)
		p, err := f.Trie.Alloc(Node{kind: kindInternal, children: *children})
		return p, false, err
	}

	existingLeaf, err := f.Trie.Alloc(Node{kind: kindLeaf, entry: existingEntryPtr})
	if err != nil {
		return 0, false, err
	}
	childPtr, _, err := f.insert(existingLeaf, hash, key, entryPtr, depth+1)
	if err != nil {
		return 0, false, err
	}
	children := &sparse.Array[arena.Ptr]{}
	children.InsertAt(existingIdx, childPtr)
	p, err := f.Trie.Alloc(Node{kind: kindInternal, children: *children})
	return p, false, err
}

// Get returns the value bound to key, if any.
func (f *Family) Get(r Root, key []byte) (Value, bool) {
	hash := f.hash(key)
	p, ok := f.findEntry(r.Trie, hash, key, 0)
	if !ok {
		return Value{}, false
	}
	return f.valueOf(f.Entries.Get(p)), true
}

// Has reports whether key is present.
func (f *Family) Has(r Root, key []byte) bool {
	_, ok := f.Get(r, key)
	return ok
}

// Delete unlinks key from both the trie and the insertion-order thread in
// one call, preserving the invariant that the HAMT reaches exactly the
// entries on the thread (spec.md §4.7).
func (f *Family) Delete(r Root, key []byte) (Root, bool, error) {
	hash := f.hash(key)
	entryPtr, ok := f.findEntry(r.Trie, hash, key, 0)
	if !ok {
		return r, false, nil
	}
	e := f.Entries.Get(entryPtr)

	newTrie, removed, err := f.remove(r.Trie, hash, key, 0)
	if err != nil || !removed {
		return r, false, err
	}

	if e.prev != 0 {
		f.Entries.GetPtr(e.prev).next = e.next
	}
	if e.next != 0 {
		f.Entries.GetPtr(e.next).prev = e.prev
	}
	newHead, newTail := r.Head, r.Tail
	if r.Head == entryPtr {
		newHead = e.next
	}
	if r.Tail == entryPtr {
		newTail = e.prev
	}
	return Root{Trie: newTrie, Head: newHead, Tail: newTail, Size: r.Size - 1}, true, nil
}

func (f *Family) remove(nodePtr arena.Ptr, hash uint32, key []byte, depth int) (arena.Ptr, bool, error) {
	if nodePtr == 0 {
		return nodePtr, false, nil
	}
	n := f.Trie.Get(nodePtr)
	switch n.kind {
	case kindLeaf:
		e := f.Entries.Get(n.entry)
		if e.hash == hash && bytes.Equal(f.keyOf(e), key) {
			return 0, true, nil
		}
		return nodePtr, false, nil

	case kindCollision:
		for i, p := range n.overflow {
			e := f.Entries.Get(p)
			if e.hash == hash && bytes.Equal(f.keyOf(e), key) {
				remaining := append(append([]arena.Ptr{}, n.overflow[:i]...), n.overflow[i+1:]...)
				if len(remaining) == 1 {
					leafPtr, err := f.Trie.Alloc(Node{kind: kindLeaf, entry: remaining[0]})
					return leafPtr, true, err
				}
				np, err := f.Trie.Alloc(Node{kind: kindCollision, overflow: remaining})
				return np, true, err
			}
		}
		return nodePtr, false, nil

	default:
		idx := slice(hash, depth)
		childPtr, ok := n.children.Get(idx)
		if !ok {
			return nodePtr, false, nil
		}
		newChildPtr, removed, err := f.remove(childPtr, hash, key, depth+1)
		if err != nil || !removed {
			return nodePtr, removed, err
		}
		children := n.children.Copy()
		if newChildPtr == 0 {
			children.DeleteAt(idx)
		} else {
			children.InsertAt(idx, newChildPtr)
		}
		if children.Len() == 0 {
			return 0, true, nil
		}
		if children.Len() == 1 && f.Trie.Get(children.Items[0]).kind == kindLeaf {
			return children.Items[0], true, nil
		}
		p, err := f.Trie.Alloc(Node{kind: kindInternal, children: *children})
		return p, true, err
	}
}

func slice(hash uint32, depth int) uint {
	return uint((hash >> (depth * bitsPerLevel)) & levelMask)
}

// ForEach visits entries in insertion order, head to tail.
func (f *Family) ForEach(r Root, visit func(key []byte, v Value) bool) {
	for p := r.Head; p != 0; {
		e := f.Entries.Get(p)
		if !visit(f.keyOf(e), f.valueOf(e)) {
			return
		}
		p = e.next
	}
}
