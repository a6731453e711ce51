// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package collections

import (
	"fmt"
	"testing"

	"github.com/natanelia/zerocopy/internal/hamt"
	"github.com/natanelia/zerocopy/internal/payload"
	"github.com/stretchr/testify/require"
)

func TestAttachRoundTripHAMT1000Entries(t *testing.T) {
	// E7: publisher builds a 1000-entry map, publishes its heap, a subscriber
	// attaches over the same backing memory and sees the same 1000 entries.
	m := NewSharedMap(ValueObject)
	var err error
	for i := 0; i < 1000; i++ {
		key := []byte(fmt.Sprintf("k%d", i))
		m, err = m.Set(key, payload.Float(float64(i)))
		require.NoError(t, err)
	}
	require.Equal(t, 1000, m.Size())

	nodes, state := PublishMemory(m.fam.Heap)
	subHeap := AttachMemory(nodes, state)
	subFam := &hamt.Family{Heap: subHeap, Blobs: m.fam.Blobs, Roots: m.fam.Roots}
	subM := SharedMap{fam: subFam, root: m.root, size: m.size, valueType: m.valueType}

	require.Equal(t, 1000, subM.Size())

	count := 0
	subM.ForEach(func(key []byte, v hamt.Value) bool {
		count++
		pubVal, ok := m.Get(key)
		require.True(t, ok)
		require.Equal(t, pubVal.Number, v.Number)
		return true
	})
	require.Equal(t, 1000, count)
}

func TestAttachToBufferCopyIsIndependent(t *testing.T) {
	m := NewSharedMap(ValueString)
	var err error
	m, err = m.Set([]byte("a"), payload.Bytes([]byte("A")))
	require.NoError(t, err)

	nodes, state := PublishCopy(m.fam.Heap)
	subHeap := AttachCopy(nodes, state)
	subFam := &hamt.Family{Heap: subHeap, Blobs: m.fam.Blobs, Roots: m.fam.Roots}
	subM := SharedMap{fam: subFam, root: m.root, size: m.size, valueType: m.valueType}

	m, err = m.Set([]byte("b"), payload.Bytes([]byte("B")))
	require.NoError(t, err)
	require.Equal(t, 2, m.Size())

	// the subscriber's copy is unaffected by the publisher's later write.
	require.Equal(t, 1, subM.Size())
	require.False(t, subM.Has([]byte("b")))
}
