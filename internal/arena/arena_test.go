// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package arena

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type testNode struct {
	value int
}

func TestHeapAllocGetFree(t *testing.T) {
	t.Parallel()
	h := NewHeap[testNode]()

	p1, err := h.Alloc(testNode{value: 1})
	require.NoError(t, err)
	require.NotEqual(t, Ptr(0), p1)
	require.Equal(t, 1, h.Get(p1).value)

	p2, err := h.Alloc(testNode{value: 2})
	require.NoError(t, err)
	require.NotEqual(t, p1, p2)

	h.GetPtr(p1).value = 10
	require.Equal(t, 10, h.Get(p1).value)

	h.Free(p1)
	p3, err := h.Alloc(testNode{value: 3})
	require.NoError(t, err)
	require.Equal(t, p1, p3, "freed slot should be recycled")
	require.Equal(t, 3, h.Get(p3).value)
}

func TestHeapFreeNullIsNoop(t *testing.T) {
	t.Parallel()
	h := NewHeap[testNode]()
	h.Free(Ptr(0))
	require.Empty(t, h.FreeList())
}

func TestHeapValid(t *testing.T) {
	t.Parallel()
	h := NewHeap[testNode]()
	require.False(t, h.Valid(Ptr(0)))

	p, err := h.Alloc(testNode{value: 1})
	require.NoError(t, err)
	require.True(t, h.Valid(p))
	require.False(t, h.Valid(Ptr(999)))
}

func TestHeapReset(t *testing.T) {
	t.Parallel()
	h := NewHeap[testNode]()
	p, err := h.Alloc(testNode{value: 1})
	require.NoError(t, err)
	h.Free(p)
	require.Equal(t, uint32(0), h.Generation())

	h.Reset()
	require.Equal(t, uint32(1), h.Generation())
	require.Empty(t, h.FreeList())
	require.Equal(t, uint32(1), h.HeapEnd())

	p2, err := h.Alloc(testNode{value: 2})
	require.NoError(t, err)
	require.Equal(t, 2, h.Get(p2).value)
}

func TestHeapHeapEndAndFreeListAreCopies(t *testing.T) {
	t.Parallel()
	h := NewHeap[testNode]()
	p, err := h.Alloc(testNode{value: 1})
	require.NoError(t, err)
	h.Free(p)

	fl := h.FreeList()
	fl[0] = Ptr(999)
	require.Equal(t, p, h.FreeList()[0], "mutating the returned slice must not affect the heap")

	require.Equal(t, uint32(2), h.HeapEnd())
}

func TestHeapAttachToMemoryIsZeroCopy(t *testing.T) {
	t.Parallel()
	pub := NewHeap[testNode]()
	p1, err := pub.Alloc(testNode{value: 1})
	require.NoError(t, err)
	_, err = pub.Alloc(testNode{value: 2})
	require.NoError(t, err)

	state := pub.Snapshot()
	nodes := pub.Backing()

	sub := NewHeap[testNode]()
	sub.AttachToMemory(nodes, state)
	require.Equal(t, 1, sub.Get(p1).value)

	pub.GetPtr(p1).value = 42
	require.Equal(t, 42, sub.Get(p1).value, "zero-copy attach shares the publisher's backing slice")
}

func TestHeapAttachToBufferCopyIsIndependent(t *testing.T) {
	t.Parallel()
	pub := NewHeap[testNode]()
	p1, err := pub.Alloc(testNode{value: 1})
	require.NoError(t, err)

	state := pub.Snapshot()
	cp := pub.BufferCopy()

	sub := NewHeap[testNode]()
	sub.AttachToBufferCopy(cp, state)
	require.Equal(t, 1, sub.Get(p1).value)

	pub.GetPtr(p1).value = 42
	require.Equal(t, 1, sub.Get(p1).value, "buffer-copy attach must not see later publisher writes")
}

func TestHeapSnapshotCapturesGeneration(t *testing.T) {
	t.Parallel()
	h := NewHeap[testNode]()
	h.Reset()
	h.Reset()
	snap := h.Snapshot()
	require.Equal(t, uint32(2), snap.Generation)
	require.Equal(t, uint32(1), snap.HeapEnd)
}
