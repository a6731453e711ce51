// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package collections

import "github.com/natanelia/zerocopy/internal/arena"

// FamilyAllocState is the (heapEnd, freeList, generation) triple that
// crosses a thread boundary alongside a family's node memory (spec.md
// §4.12, §6).
type FamilyAllocState = arena.AllocState

// PublishMemory captures a family's heap for zero-copy sharing: the live
// backing node slice plus its allocator state. A receiver calls
// AttachMemory with the same pair to align its own Heap before it reads
// (spec.md §4.12's "(a) the same backing memory object").
func PublishMemory[N any](h *arena.Heap[N]) ([]N, FamilyAllocState) {
	return h.Backing(), h.Snapshot()
}

// AttachMemory instantiates a worker-side Heap over the same backing memory
// a publisher shared via PublishMemory. Subsequent bump allocations on
// either side are visible only to their own Heap value (see
// arena.Heap.AttachToMemory), matching spec.md §4.12's isolation-after-attach
// guarantee.
func AttachMemory[N any](nodes []N, state FamilyAllocState) *arena.Heap[N] {
	h := arena.NewHeap[N]()
	h.AttachToMemory(nodes, state)
	return h
}

// PublishCopy captures a family's heap as an independent byte copy plus its
// allocator state, for the non-zero-copy attach path (spec.md §4.12's
// "(b) a byte copy").
func PublishCopy[N any](h *arena.Heap[N]) ([]N, FamilyAllocState) {
	return h.BufferCopy(), h.Snapshot()
}

// AttachCopy instantiates a worker-side Heap over its own private copy of
// nodes.
func AttachCopy[N any](nodes []N, state FamilyAllocState) *arena.Heap[N] {
	h := arena.NewHeap[N]()
	h.AttachToBufferCopy(nodes, state)
	return h
}

// StructureRef names one structure inside a Snapshot: its kind tag and its
// handle value (one of the Shared* types above), carried as any because the
// handle shape varies per kind the way a dynamically-typed host language
// would carry it (spec.md §6's "structures: map of name -> {kind, handle}").
type StructureRef struct {
	Kind   StructureKind
	Handle any
}

// Snapshot is the Go rendition of the publisher -> subscriber payload
// (spec.md §6): one map buffer per family (opaque to this type; callers
// populate it with whatever PublishMemory/PublishCopy pairs they used),
// the per-family allocator state, and the named structures sharing that
// memory.
type Snapshot struct {
	MapBuffers          map[string]any
	PerFamilyAllocState map[string]FamilyAllocState
	Structures          map[string]StructureRef
}

// NewSnapshot returns an empty Snapshot ready to have buffers and
// structures added to it.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		MapBuffers:          make(map[string]any),
		PerFamilyAllocState: make(map[string]FamilyAllocState),
		Structures:          make(map[string]StructureRef),
	}
}
