// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package pqueue

import (
	"testing"

	"github.com/natanelia/zerocopy/internal/arena"
	"github.com/stretchr/testify/require"
)

func strVal(s string) Value { return Value{Bytes: []byte(s)} }

func TestLeftistMinHeap(t *testing.T) {
	// E5: enqueue ("low",3), ("high",1), ("med",2); peek = "high" priority 1;
	// dequeue -> peek = "med"; dequeue -> peek = "low"; dequeue -> empty.
	f := NewFamily()
	var root arena.Ptr
	var err error
	root, err = f.Insert(root, 3, strVal("low"))
	require.NoError(t, err)
	root, err = f.Insert(root, 1, strVal("high"))
	require.NoError(t, err)
	root, err = f.Insert(root, 2, strVal("med"))
	require.NoError(t, err)

	p, _ := f.PeekPriority(root)
	v, _ := f.PeekValue(root)
	require.Equal(t, float64(1), p)
	require.Equal(t, "high", string(v.Bytes))

	root, err = f.ExtractTop(root)
	require.NoError(t, err)
	v, _ = f.PeekValue(root)
	require.Equal(t, "med", string(v.Bytes))

	root, err = f.ExtractTop(root)
	require.NoError(t, err)
	v, _ = f.PeekValue(root)
	require.Equal(t, "low", string(v.Bytes))

	root, err = f.ExtractTop(root)
	require.NoError(t, err)
	require.True(t, f.IsEmpty(root))
}

func TestLeftistMaxHeap(t *testing.T) {
	f := NewFamily(WithMaxHeap())
	var root arena.Ptr
	root, _ = f.Insert(root, 3, strVal("low"))
	root, _ = f.Insert(root, 1, strVal("high"))
	root, _ = f.Insert(root, 2, strVal("med"))

	v, _ := f.PeekValue(root)
	require.Equal(t, "low", string(v.Bytes))
	root, _ = f.ExtractTop(root)
	v, _ = f.PeekValue(root)
	require.Equal(t, "med", string(v.Bytes))
	root, _ = f.ExtractTop(root)
	v, _ = f.PeekValue(root)
	require.Equal(t, "high", string(v.Bytes))
}

func TestLeftistBranchingImmutability(t *testing.T) {
	f := NewFamily()
	var base arena.Ptr
	base, _ = f.Insert(base, 5, strVal("a"))
	base, _ = f.Insert(base, 1, strVal("b"))

	b1, _ := f.Insert(base, 0, strVal("c"))
	b2, _ := f.Insert(base, 10, strVal("d"))

	v, _ := f.PeekValue(base)
	require.Equal(t, "b", string(v.Bytes))
	v, _ = f.PeekValue(b1)
	require.Equal(t, "c", string(v.Bytes))
	v, _ = f.PeekValue(b2)
	require.Equal(t, "b", string(v.Bytes))
}

func TestBinaryHeapMinMax(t *testing.T) {
	h := NewBinaryHeap(4)
	h.Insert(3, strVal("low"))
	h.Insert(1, strVal("high"))
	h.Insert(2, strVal("med"))

	p, _ := h.PeekPriority()
	require.Equal(t, float64(1), p)

	_, v, ok := h.Extract()
	require.True(t, ok)
	require.Equal(t, "high", string(v.Bytes))
	_, v, ok = h.Extract()
	require.True(t, ok)
	require.Equal(t, "med", string(v.Bytes))
	_, v, ok = h.Extract()
	require.True(t, ok)
	require.Equal(t, "low", string(v.Bytes))
	_, _, ok = h.Extract()
	require.False(t, ok)
}

func TestBinaryHeapGrowsBeyondInitialCapacity(t *testing.T) {
	h := NewBinaryHeap(2)
	for i := 0; i < 50; i++ {
		h.Insert(float64(50-i), strVal("x"))
	}
	require.Equal(t, 50, h.Len())
	prev := -1.0
	for h.Len() > 0 {
		p, _, _ := h.Extract()
		require.GreaterOrEqual(t, p, prev)
		prev = p
	}
}

func TestBinaryHeapPoolReuse(t *testing.T) {
	pool := NewBinaryHeapPool(8)
	h := pool.Get()
	h.Insert(1, strVal("a"))
	require.Equal(t, 1, h.Len())
	pool.Put(h)

	h2 := pool.Get()
	require.Equal(t, 0, h2.Len())
}
