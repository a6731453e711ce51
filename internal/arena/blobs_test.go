// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package arena

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBlobsDefaults(t *testing.T) {
	t.Parallel()
	b := NewBlobs(0, 0)
	require.Len(t, b.KeyBuf(), DefaultKeyScratchSize)
	require.Len(t, b.BlobBuf(), DefaultBlobScratchSize)
}

func TestBlobsAllocBytesRoundTrip(t *testing.T) {
	t.Parallel()
	b := NewBlobs(0, 0)
	w, err := b.AllocBytes([]byte("hello"))
	require.NoError(t, err)
	require.Equal(t, "hello", string(b.Bytes(w)))
	require.Equal(t, uint32(8), b.HeapEnd(), "allocations are 8-byte aligned")
}

func TestBlobsAllocKeyAndValueBlob(t *testing.T) {
	t.Parallel()
	b := NewBlobs(0, 0)
	copy(b.KeyBuf(), "mykey")
	kw, err := b.AllocKeyBlob(5)
	require.NoError(t, err)
	require.Equal(t, "mykey", string(b.Bytes(kw)))

	copy(b.BlobBuf(), "myvalue")
	vw, err := b.AllocValueBlob(7)
	require.NoError(t, err)
	require.Equal(t, "myvalue", string(b.Bytes(vw)))
}

func TestBlobsAllocFromTooLargeForScratch(t *testing.T) {
	t.Parallel()
	b := NewBlobs(4, 4)
	_, err := b.AllocKeyBlob(5)
	require.ErrorIs(t, err, ErrValueTooLarge)
}

func TestBlobsReset(t *testing.T) {
	t.Parallel()
	b := NewBlobs(0, 0)
	_, err := b.AllocBytes([]byte("data"))
	require.NoError(t, err)
	require.Equal(t, uint32(0), b.Generation())

	b.Reset()
	require.Equal(t, uint32(0), b.HeapEnd())
	require.Equal(t, uint32(1), b.Generation())

	w, err := b.AllocBytes([]byte("new"))
	require.NoError(t, err)
	require.Equal(t, "new", string(b.Bytes(w)))
}

func TestBlobsAttachToMemoryIsZeroCopy(t *testing.T) {
	t.Parallel()
	pub := NewBlobs(0, 0)
	w, err := pub.AllocBytes([]byte("shared"))
	require.NoError(t, err)

	sub := NewBlobs(0, 0)
	sub.AttachToMemory(pub.Backing(), pub.HeapEnd(), pub.Generation())
	require.Equal(t, "shared", string(sub.Bytes(w)))
}

func TestBlobsAttachToBufferCopyIsIndependent(t *testing.T) {
	t.Parallel()
	pub := NewBlobs(0, 0)
	w, err := pub.AllocBytes([]byte("orig"))
	require.NoError(t, err)

	sub := NewBlobs(0, 0)
	sub.AttachToBufferCopy(pub.BufferCopy(), pub.HeapEnd(), pub.Generation())
	require.Equal(t, "orig", string(sub.Bytes(w)))

	_, err = pub.AllocBytes([]byte("more"))
	require.NoError(t, err)
	require.Equal(t, "orig", string(sub.Bytes(w)), "buffer copy must not see later publisher writes")
}
