// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package fnv32

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashIsDeterministic(t *testing.T) {
	t.Parallel()
	require.Equal(t, Hash([]byte("alpha")), Hash([]byte("alpha")))
	require.NotEqual(t, Hash([]byte("alpha")), Hash([]byte("beta")))
}

func TestHashStringMatchesHash(t *testing.T) {
	t.Parallel()
	require.Equal(t, Hash([]byte("hello world")), HashString("hello world"))
}

func TestHashEmpty(t *testing.T) {
	t.Parallel()
	require.Equal(t, uint32(2166136261), Hash(nil))
	require.Equal(t, uint32(2166136261), HashString(""))
}
