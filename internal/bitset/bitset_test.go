// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package bitset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetTestClear(t *testing.T) {
	t.Parallel()
	var b BitSet
	require.False(t, b.Test(5))

	b = b.Set(5)
	require.True(t, b.Test(5))
	require.False(t, b.Test(4))

	b = b.Clear(5)
	require.False(t, b.Test(5))
}

func TestSetGrowsAcrossWords(t *testing.T) {
	t.Parallel()
	var b BitSet
	b = b.Set(130)
	require.True(t, b.Test(130))
	require.Len(t, b, 3)
}

func TestRank0(t *testing.T) {
	t.Parallel()
	var b BitSet
	b = b.Set(1)
	b = b.Set(3)
	b = b.Set(5)

	require.Equal(t, 0, b.Rank0(0))
	require.Equal(t, 1, b.Rank0(2))
	require.Equal(t, 2, b.Rank0(4))
	require.Equal(t, 3, b.Rank0(6))
}

func TestCount(t *testing.T) {
	t.Parallel()
	var b BitSet
	b = b.Set(1)
	b = b.Set(65)
	b = b.Set(200)
	require.Equal(t, 3, b.Count())
}

func TestClone(t *testing.T) {
	t.Parallel()
	var b BitSet
	b = b.Set(3)
	c := b.Clone()
	c = c.Set(4)
	require.True(t, c.Test(3))
	require.True(t, c.Test(4))
	require.False(t, b.Test(4), "Clone must be independent of the original")
}

func TestIsZero(t *testing.T) {
	t.Parallel()
	var b BitSet
	require.True(t, b.IsZero())
	b = b.Set(10)
	require.False(t, b.IsZero())
	b = b.Clear(10)
	require.True(t, b.IsZero())
}
