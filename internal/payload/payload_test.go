// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package payload

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoolPacksAsInlineNumber(t *testing.T) {
	t.Parallel()
	require.Equal(t, Value{Numeric: true, Number: 1}, Bool(true))
	require.Equal(t, Value{Numeric: true, Number: 0}, Bool(false))
	require.True(t, Bool(true).AsBool())
	require.False(t, Bool(false).AsBool())
}

func TestFloat(t *testing.T) {
	t.Parallel()
	v := Float(3.5)
	require.True(t, v.Numeric)
	require.Equal(t, 3.5, v.Number)
}

func TestBytes(t *testing.T) {
	t.Parallel()
	v := Bytes([]byte("hi"))
	require.False(t, v.Numeric)
	require.Equal(t, "hi", string(v.Bytes))
}

func TestAsBoolOnNonNumericIsFalse(t *testing.T) {
	t.Parallel()
	v := Bytes([]byte("x"))
	require.False(t, v.AsBool())
}
