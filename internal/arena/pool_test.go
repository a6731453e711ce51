// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package arena

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type poolNode struct {
	value int
}

func (n *poolNode) Reset() { n.value = 0 }

func TestPoolGetPutResets(t *testing.T) {
	t.Parallel()
	p := NewPool[poolNode]()

	n := p.Get()
	n.value = 5
	p.Put(n)

	live, total := p.Stats()
	require.Equal(t, int64(0), live)
	require.Equal(t, int64(1), total)

	n2 := p.Get()
	require.Equal(t, 0, n2.value, "Put must reset the node before recycling")
}

func TestPoolStatsTracksLive(t *testing.T) {
	t.Parallel()
	p := NewPool[poolNode]()
	a := p.Get()
	_ = p.Get()

	live, total := p.Stats()
	require.Equal(t, int64(2), live)
	require.Equal(t, int64(2), total)

	p.Put(a)
	live, _ = p.Stats()
	require.Equal(t, int64(1), live)
}

func TestNilPoolIsUsable(t *testing.T) {
	t.Parallel()
	var p *Pool[poolNode]
	n := p.Get()
	require.NotNil(t, n)
	p.Put(n)

	live, total := p.Stats()
	require.Equal(t, int64(0), live)
	require.Equal(t, int64(0), total)
}
