// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package vector

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func iv(i int) Value { return Float(float64(i)) }

// Float is a small local alias kept for test readability.
func Float(f float64) Value { return Value{Numeric: true, Number: f} }

func TestPushGetSizeLaws(t *testing.T) {
	f := NewFamily()
	var r Root

	for i := 0; i < 200; i++ {
		before := r.Size
		r, _ = f.Push(r, iv(i))
		require.Equal(t, before+1, r.Size)
		v, ok := f.Get(r, r.Size-1)
		require.True(t, ok)
		require.Equal(t, float64(i), v.Number)
	}

	require.Equal(t, 200, r.Size)
	for i := 0; i < 200; i++ {
		v, ok := f.Get(r, i)
		require.True(t, ok)
		require.Equal(t, float64(i), v.Number)
	}
}

func TestSetPreservesSize(t *testing.T) {
	f := NewFamily()
	var r Root
	for i := 0; i < 100; i++ {
		r, _ = f.Push(r, iv(i))
	}

	for _, idx := range []int{0, 31, 32, 63, 64, 99} {
		before := r.Size
		nr, err := f.Set(r, idx, iv(-1))
		require.NoError(t, err)
		require.Equal(t, before, nr.Size)
		v, ok := f.Get(nr, idx)
		require.True(t, ok)
		require.Equal(t, float64(-1), v.Number)
		// original root unaffected
		orig, ok := f.Get(r, idx)
		require.True(t, ok)
		require.Equal(t, float64(idx), orig.Number)
	}
}

func TestPopUndoesPush(t *testing.T) {
	f := NewFamily()
	var r Root
	for i := 0; i < 70; i++ {
		r, _ = f.Push(r, iv(i))
	}
	for i := 69; i >= 0; i-- {
		v, ok := f.Get(r, r.Size-1)
		require.True(t, ok)
		require.Equal(t, float64(i), v.Number)
		r = f.Pop(r)
	}
	require.Equal(t, 0, r.Size)
	// popping an empty vector is a no-op
	r2 := f.Pop(r)
	require.Equal(t, 0, r2.Size)
}

func TestOutOfBoundsAccess(t *testing.T) {
	f := NewFamily()
	var r Root
	r, _ = f.Push(r, iv(1))

	_, ok := f.Get(r, 5)
	require.False(t, ok)
	_, ok = f.Get(r, -1)
	require.False(t, ok)

	nr, err := f.Set(r, 5, iv(9))
	require.NoError(t, err)
	require.Equal(t, r, nr)
}

func TestForEachOrder(t *testing.T) {
	f := NewFamily()
	var r Root
	for i := 0; i < 50; i++ {
		r, _ = f.Push(r, iv(i))
	}
	var seen []float64
	f.ForEach(r, func(index int, v Value) bool {
		seen = append(seen, v.Number)
		return true
	})
	require.Len(t, seen, 50)
	for i, v := range seen {
		require.Equal(t, float64(i), v)
	}
}

func TestBranchingImmutability(t *testing.T) {
	f := NewFamily()
	var base Root
	for i := 0; i < 40; i++ {
		base, _ = f.Push(base, iv(i))
	}

	b1, _ := f.Push(base, iv(100))
	b2, _ := f.Push(base, iv(200))

	require.Equal(t, 40, base.Size)
	require.Equal(t, 41, b1.Size)
	require.Equal(t, 41, b2.Size)

	v1, _ := f.Get(b1, 40)
	v2, _ := f.Get(b2, 40)
	require.Equal(t, float64(100), v1.Number)
	require.Equal(t, float64(200), v2.Number)
}
