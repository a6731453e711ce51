// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package collections

import (
	"testing"

	"github.com/natanelia/zerocopy/internal/payload"
	"github.com/stretchr/testify/require"
)

func TestSharedMapSetGetDelete(t *testing.T) {
	m := NewSharedMap(ValueString)
	var err error
	m, err = m.Set([]byte("alpha"), payload.Bytes([]byte("A")))
	require.NoError(t, err)
	m, err = m.Set([]byte("beta"), payload.Bytes([]byte("B")))
	require.NoError(t, err)
	require.Equal(t, 2, m.Size())

	v, ok := m.Get([]byte("alpha"))
	require.True(t, ok)
	require.Equal(t, "A", string(v.Bytes))

	m, removed, err := m.Delete([]byte("alpha"))
	require.NoError(t, err)
	require.True(t, removed)
	require.Equal(t, 1, m.Size())
	require.False(t, m.Has([]byte("alpha")))
}

func TestSharedSetAddHasRemove(t *testing.T) {
	s := NewSharedSet(ValueString)
	var err error
	s, err = s.Add([]byte("x"))
	require.NoError(t, err)
	s, err = s.Add([]byte("y"))
	require.NoError(t, err)
	require.True(t, s.Has([]byte("x")))
	require.Equal(t, 2, s.Size())

	s, removed, err := s.Remove([]byte("x"))
	require.NoError(t, err)
	require.True(t, removed)
	require.False(t, s.Has([]byte("x")))
}

func TestNewObjectValueRoundTrip(t *testing.T) {
	type point struct {
		X, Y int
	}
	val, err := NewObjectValue(point{X: 1, Y: 2})
	require.NoError(t, err)

	got, err := DecodeObjectValue[point](val)
	require.NoError(t, err)
	require.Equal(t, point{X: 1, Y: 2}, got)
}
