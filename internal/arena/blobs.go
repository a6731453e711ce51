// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package arena

// Default scratch region sizes (spec.md §6): a KiB each for the key and
// value handoff buffers. This is below the 4095-byte packed-word cap, so
// AllocKeyBlob/AllocValueBlob reject longer blobs; AllocBytes does not go
// through scratch and accepts up to the cap.
const (
	DefaultKeyScratchSize  = 1024
	DefaultBlobScratchSize = 1024
)

// Blobs is the byte-oriented bump allocator backing variable-length key and
// value bytes (spec.md §3 "Scratch/blob buffers", component C3). Callers
// write the next key/value into KeyBuf()/BlobBuf() and then call
// AllocKeyBlob/AllocValueBlob, which copies out of scratch into the arena
// exactly as spec.md §4.1's alloc_blob documents.
type Blobs struct {
	buf         []byte
	keyScratch  []byte
	blobScratch []byte
	generation  uint32
}

// NewBlobs returns a Blobs with the given scratch region sizes.
func NewBlobs(keyScratchSize, blobScratchSize int) *Blobs {
	if keyScratchSize <= 0 {
		keyScratchSize = DefaultKeyScratchSize
	}
	if blobScratchSize <= 0 {
		blobScratchSize = DefaultBlobScratchSize
	}
	return &Blobs{
		buf:         make([]byte, 0, 64*1024),
		keyScratch:  make([]byte, keyScratchSize),
		blobScratch: make([]byte, blobScratchSize),
	}
}

// KeyBuf returns the scratch region the caller writes the next key into
// (spec.md §6 keyBuf()).
func (b *Blobs) KeyBuf() []byte { return b.keyScratch }

// BlobBuf returns the scratch region the caller writes the next value into
// (spec.md §6 blobBuf()).
func (b *Blobs) BlobBuf() []byte { return b.blobScratch }

func align8(n int) int { return (n + 7) &^ 7 }

// alloc bumps (len+7)&^7 bytes and returns the destination offset, without
// copying anything in — used internally by AllocKeyBlob/AllocValueBlob.
func (b *Blobs) alloc(n int) (Ptr, error) {
	if n < 0 || n > maxLen {
		return 0, ErrValueTooLarge
	}
	start := len(b.buf)
	if start+align8(n) > maxPtr {
		return 0, ErrValueTooLarge
	}
	b.buf = append(b.buf, make([]byte, align8(n))...)
	return Ptr(start), nil
}

// AllocKeyBlob copies the first n bytes of KeyBuf() into the arena and
// returns a Word referencing them.
func (b *Blobs) AllocKeyBlob(n int) (Word, error) {
	return b.allocFrom(b.keyScratch, n)
}

// AllocValueBlob copies the first n bytes of BlobBuf() into the arena and
// returns a Word referencing them.
func (b *Blobs) AllocValueBlob(n int) (Word, error) {
	return b.allocFrom(b.blobScratch, n)
}

// AllocBytes copies data directly into the arena, bypassing the scratch
// buffers — the convenience path idiomatic Go call sites use instead of
// staging through KeyBuf/BlobBuf when they already hold a []byte.
func (b *Blobs) AllocBytes(data []byte) (Word, error) {
	ptr, err := b.alloc(len(data))
	if err != nil {
		return 0, err
	}
	copy(b.buf[ptr:], data)
	return EncodeWord(ptr, len(data))
}

func (b *Blobs) allocFrom(scratch []byte, n int) (Word, error) {
	if n > len(scratch) {
		return 0, ErrValueTooLarge
	}
	ptr, err := b.alloc(n)
	if err != nil {
		return 0, err
	}
	copy(b.buf[ptr:], scratch[:n])
	return EncodeWord(ptr, n)
}

// Bytes returns the n bytes referenced by w.
func (b *Blobs) Bytes(w Word) []byte {
	ptr, n := w.Decode()
	return b.buf[ptr : ptr+Ptr(n)]
}

// Reset empties the blob region, invalidating every Word issued before the
// call, and bumps the generation counter.
func (b *Blobs) Reset() {
	b.buf = b.buf[:0]
	b.generation++
}

// Generation returns the current reset generation.
func (b *Blobs) Generation() uint32 { return b.generation }

// HeapEnd returns the next-free byte offset, for the attach protocol.
func (b *Blobs) HeapEnd() uint32 { return uint32(len(b.buf)) }

// AttachToMemory adopts buf as this Blobs' backing storage (zero-copy) and
// truncates it to heapEnd.
func (b *Blobs) AttachToMemory(buf []byte, heapEnd uint32, generation uint32) {
	b.buf = buf[:heapEnd]
	b.generation = generation
}

// AttachToBufferCopy is AttachToMemory over an independent copy of buf.
func (b *Blobs) AttachToBufferCopy(buf []byte, heapEnd uint32, generation uint32) {
	cp := make([]byte, len(buf))
	copy(cp, buf)
	b.AttachToMemory(cp, heapEnd, generation)
}

// BufferCopy returns an independent copy of the live blob bytes.
func (b *Blobs) BufferCopy() []byte {
	cp := make([]byte, len(b.buf))
	copy(cp, b.buf)
	return cp
}

// Backing returns the live blob byte slice for zero-copy publishing.
func (b *Blobs) Backing() []byte { return b.buf }
