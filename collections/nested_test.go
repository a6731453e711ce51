// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package collections

import (
	"encoding/json"
	"testing"

	"github.com/natanelia/zerocopy/internal/nested"
	"github.com/stretchr/testify/require"
)

type setMembers struct {
	Members []string
}

func TestNestedSharedSetEnvelope(t *testing.T) {
	// E8: a SharedSet<string> value round-trips through the nested envelope,
	// and mutating the original handle afterward leaves the decoded copy
	// unaffected.
	s := NewSharedSet(ValueString)
	var err error
	s, err = s.Add([]byte("admin"))
	require.NoError(t, err)
	s, err = s.Add([]byte("active"))
	require.NoError(t, err)

	var data setMembers
	s.ForEach(func(member []byte) bool { data.Members = append(data.Members, string(member)); return true })

	raw, err := nested.Encode(KindSet, "string", data)
	require.NoError(t, err)

	reg := nested.NewRegistry()
	reg.Register(KindSet, func(innerValueType string, d json.RawMessage) (any, error) {
		var sd setMembers
		if err := json.Unmarshal(d, &sd); err != nil {
			return nil, err
		}
		rebuilt := NewSharedSet(ValueType(innerValueType))
		for _, m := range sd.Members {
			rebuilt, err = rebuilt.Add([]byte(m))
			if err != nil {
				return nil, err
			}
		}
		return rebuilt, nil
	})

	decoded, err := reg.Decode(raw)
	require.NoError(t, err)
	rebuilt, ok := decoded.(SharedSet)
	require.True(t, ok)
	require.True(t, rebuilt.Has([]byte("admin")))
	require.Equal(t, 2, rebuilt.Size())

	s2, err := s.Add([]byte("guest"))
	require.NoError(t, err)
	require.Equal(t, 3, s2.Size())
	require.Equal(t, 2, rebuilt.Size())
}

func TestNestedUnknownKindSurfaces(t *testing.T) {
	raw, err := nested.Encode(KindQueue, "number", setMembers{})
	require.NoError(t, err)

	reg := nested.NewRegistry()
	_, err = reg.Decode(raw)
	require.Error(t, err)
	var unknown *nested.UnknownStructureKind
	require.ErrorAs(t, err, &unknown)
}
