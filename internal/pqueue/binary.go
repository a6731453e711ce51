// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package pqueue

import "github.com/natanelia/zerocopy/internal/arena"

// entry is one binary-heap slot.
type entry struct {
	priority float64
	value    Value
}

// BinaryHeap is the in-place priority queue variant (spec.md §4.9). Its
// entries live in an ordinary Go slice, not in an arena.Heap: it grows by
// append on overflow, and the old backing array is left to the garbage
// collector rather than kept until an arena reset. Unlike the leftist
// heap it is explicitly *not* persistent — every method mutates the
// receiver. Callers who need to share a version across goroutines must copy
// it themselves; this type trades that guarantee for being 2-4x faster on
// large queues.
type BinaryHeap struct {
	items []entry
	isMax bool
}

// BinaryOption configures a new BinaryHeap.
type BinaryOption func(*BinaryHeap)

// WithBinaryMaxHeap makes the heap a max-heap instead of the default
// min-heap.
func WithBinaryMaxHeap() BinaryOption {
	return func(h *BinaryHeap) { h.isMax = true }
}

// NewBinaryHeap creates a heap with the given initial capacity
// (spec.md's createHeap(cap)).
func NewBinaryHeap(cap int, opts ...BinaryOption) *BinaryHeap {
	h := &BinaryHeap{items: make([]entry, 0, cap)}
	for _, o := range opts {
		o(h)
	}
	return h
}

// Reset empties the heap for Pool reuse.
func (h *BinaryHeap) Reset() { h.items = h.items[:0] }

func (h *BinaryHeap) higherPriority(a, b float64) bool {
	if h.isMax {
		return a > b
	}
	return a < b
}

// Len returns the number of elements in the heap.
func (h *BinaryHeap) Len() int { return len(h.items) }

// Insert adds (priority, value), growing the backing slice (and orphaning
// the old one) if capacity is exceeded.
func (h *BinaryHeap) Insert(priority float64, value Value) {
	h.items = append(h.items, entry{priority: priority, value: value})
	h.siftUp(len(h.items) - 1)
}

// Extract removes and returns the top element.
func (h *BinaryHeap) Extract() (float64, Value, bool) {
	if len(h.items) == 0 {
		return 0, Value{}, false
	}
	top := h.items[0]
	last := len(h.items) - 1
	h.items[0] = h.items[last]
	h.items = h.items[:last]
	if len(h.items) > 0 {
		h.siftDown(0)
	}
	return top.priority, top.value, true
}

// PeekPriority returns the top element's priority without removing it.
func (h *BinaryHeap) PeekPriority() (float64, bool) {
	if len(h.items) == 0 {
		return 0, false
	}
	return h.items[0].priority, true
}

// PeekValue returns the top element's value without removing it.
func (h *BinaryHeap) PeekValue() (Value, bool) {
	if len(h.items) == 0 {
		return Value{}, false
	}
	return h.items[0].value, true
}

func (h *BinaryHeap) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.higherPriority(h.items[i].priority, h.items[parent].priority) {
			break
		}
		h.items[i], h.items[parent] = h.items[parent], h.items[i]
		i = parent
	}
}

func (h *BinaryHeap) siftDown(i int) {
	n := len(h.items)
	for {
		left, right := 2*i+1, 2*i+2
		best := i
		if left < n && h.higherPriority(h.items[left].priority, h.items[best].priority) {
			best = left
		}
		if right < n && h.higherPriority(h.items[right].priority, h.items[best].priority) {
			best = right
		}
		if best == i {
			return
		}
		h.items[i], h.items[best] = h.items[best], h.items[i]
		i = best
	}
}

var _ arena.Resettable = (*BinaryHeap)(nil)

// BinaryHeapPool recycles BinaryHeap instances across short-lived batch
// jobs that would otherwise churn the allocator on every createHeap call,
// adapted from gaissmai/bart's pool.go discipline (arena.Pool).
type BinaryHeapPool struct {
	pool *arena.Pool[BinaryHeap]
	cap  int
}

// NewBinaryHeapPool returns a pool whose checked-out heaps start with the
// given capacity.
func NewBinaryHeapPool(cap int) *BinaryHeapPool {
	return &BinaryHeapPool{pool: arena.NewPool[BinaryHeap](), cap: cap}
}

// Get retrieves a reset BinaryHeap, growing its backing slice to cap if a
// freshly-allocated instance came back with none.
func (p *BinaryHeapPool) Get() *BinaryHeap {
	h := p.pool.Get()
	if cap(h.items) < p.cap {
		h.items = make([]entry, 0, p.cap)
	}
	return h
}

// Put resets and returns h to the pool.
func (p *BinaryHeapPool) Put(h *BinaryHeap) { p.pool.Put(h) }
