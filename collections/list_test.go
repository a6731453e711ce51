// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package collections

import (
	"testing"

	"github.com/natanelia/zerocopy/internal/payload"
	"github.com/stretchr/testify/require"
)

func TestSharedListPushGetPop(t *testing.T) {
	l := NewSharedList(ValueNumber)
	var err error
	for i := 0; i < 40; i++ {
		l, err = l.Push(payload.Float(float64(i)))
		require.NoError(t, err)
	}
	require.Equal(t, 40, l.Size())

	v, ok := l.Get(39)
	require.True(t, ok)
	require.Equal(t, float64(39), v.Number)

	_, ok = l.Get(40)
	require.False(t, ok)

	l = l.Pop()
	require.Equal(t, 39, l.Size())
	_, ok = l.Get(39)
	require.False(t, ok)
}

func TestSharedStackQueue(t *testing.T) {
	st := NewSharedStack(ValueNumber)
	var err error
	st, err = st.Push(payload.Float(1))
	require.NoError(t, err)
	st, err = st.Push(payload.Float(2))
	require.NoError(t, err)
	top, ok := st.Peek()
	require.True(t, ok)
	require.Equal(t, float64(2), top.Number)
	st, v, ok := st.Pop()
	require.True(t, ok)
	require.Equal(t, float64(2), v.Number)
	require.Equal(t, 1, st.Size())

	q := NewSharedQueue(ValueNumber)
	q, err = q.Enqueue(payload.Float(1))
	require.NoError(t, err)
	q, err = q.Enqueue(payload.Float(2))
	require.NoError(t, err)
	q, v, ok = q.Dequeue()
	require.True(t, ok)
	require.Equal(t, float64(1), v.Number)
}
