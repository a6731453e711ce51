// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package arena

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegisterUpdateUnregisterRoot(t *testing.T) {
	t.Parallel()
	rt := NewRootTable(0)

	slot, ok := rt.RegisterRoot(Ptr(10))
	require.True(t, ok)
	require.NotEqual(t, SlotNone, slot)

	p, err := rt.Get(slot)
	require.NoError(t, err)
	require.Equal(t, Ptr(10), p)

	require.NoError(t, rt.UpdateRoot(slot, Ptr(20)))
	p, err = rt.Get(slot)
	require.NoError(t, err)
	require.Equal(t, Ptr(20), p)

	require.NoError(t, rt.UnregisterRoot(slot))
	require.True(t, rt.IsFree(uint32(slot)-1))

	_, err = rt.Get(slot)
	require.ErrorIs(t, err, ErrStaleGeneration)
}

func TestRegisterRootRecyclesFreedSlots(t *testing.T) {
	t.Parallel()
	rt := NewRootTable(0)
	s1, _ := rt.RegisterRoot(Ptr(1))
	require.NoError(t, rt.UnregisterRoot(s1))

	s2, ok := rt.RegisterRoot(Ptr(2))
	require.True(t, ok)
	require.Equal(t, s1, s2, "freed slot ids should be recycled")
	require.False(t, rt.IsFree(uint32(s2)-1))
}

func TestRegisterRootRespectsCapacity(t *testing.T) {
	t.Parallel()
	rt := NewRootTable(1)
	_, ok := rt.RegisterRoot(Ptr(1))
	require.True(t, ok)

	_, ok = rt.RegisterRoot(Ptr(2))
	require.False(t, ok, "a full table must return SlotNone")
}

func TestRootTableResetInvalidatesSlots(t *testing.T) {
	t.Parallel()
	rt := NewRootTable(0)
	slot, _ := rt.RegisterRoot(Ptr(1))
	require.Equal(t, uint32(0), rt.Generation())

	rt.Reset()
	require.Equal(t, uint32(1), rt.Generation())

	_, err := rt.Get(slot)
	require.ErrorIs(t, err, ErrStaleGeneration)
}

func TestGetUnregisteredSlotIsNotRegisteredError(t *testing.T) {
	t.Parallel()
	rt := NewRootTable(0)
	_, err := rt.Get(SlotNone)
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrStaleGeneration)
}
