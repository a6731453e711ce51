// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package nested

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeSetHandle struct {
	Root uint32   `json:"root"`
	Size int      `json:"size"`
	Keys []string `json:"keys"`
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	// E8: a SharedSet<string> stored as a nested value round-trips through
	// the envelope without the core needing to understand its shape.
	handle := fakeSetHandle{Root: 7, Size: 2, Keys: []string{"admin", "active"}}
	raw, err := Encode(KindSet, "string", handle)
	require.NoError(t, err)

	reg := NewRegistry()
	reg.Register(KindSet, func(innerValueType string, data json.RawMessage) (any, error) {
		require.Equal(t, "string", innerValueType)
		var h fakeSetHandle
		if err := json.Unmarshal(data, &h); err != nil {
			return nil, err
		}
		return h, nil
	})

	decoded, err := reg.Decode(raw)
	require.NoError(t, err)
	got := decoded.(fakeSetHandle)
	require.Equal(t, handle, got)
}

func TestUnknownStructureKindSurfaces(t *testing.T) {
	raw, err := Encode(KindPriorityQueue, "number", map[string]any{"root": 1})
	require.NoError(t, err)

	reg := NewRegistry() // nothing registered
	_, err = reg.Decode(raw)
	require.Error(t, err)
	var unk *UnknownStructureKind
	require.ErrorAs(t, err, &unk)
	require.Equal(t, KindPriorityQueue, unk.Kind)
}

func TestIsEnvelopeDistinguishesPlainBytes(t *testing.T) {
	raw, _ := Encode(KindMap, "string", map[string]int{"root": 1})
	require.True(t, IsEnvelope(raw))
	require.False(t, IsEnvelope([]byte(`"just a string"`)))
	require.False(t, IsEnvelope([]byte(`42`)))
}

func TestDecodedCopyIsUnaffectedByMutatingOriginalHandle(t *testing.T) {
	original := fakeSetHandle{Root: 1, Size: 2, Keys: []string{"admin", "active"}}
	raw, err := Encode(KindSet, "string", original)
	require.NoError(t, err)

	reg := NewRegistry()
	reg.Register(KindSet, func(_ string, data json.RawMessage) (any, error) {
		var h fakeSetHandle
		err := json.Unmarshal(data, &h)
		return h, err
	})

	decoded, err := reg.Decode(raw)
	require.NoError(t, err)

	// A new version of the original (e.g. after an insert) must not affect
	// the already-decoded snapshot.
	original.Root = 99
	original.Keys = append(original.Keys, "new")

	got := decoded.(fakeSetHandle)
	require.Equal(t, uint32(1), got.Root)
	require.Equal(t, []string{"admin", "active"}, got.Keys)
}
