// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package collections

// Cloner is an interface that enables deep cloning of values of type V.
// If a value implements Cloner[V], NewObjectValue uses its Clone method
// before encoding it, so two handles never end up sharing mutable state
// through a stored object value.
type Cloner[V any] interface {
	Clone() V
}

func cloneValue[V any](v V) V {
	if c, ok := any(v).(Cloner[V]); ok {
		return c.Clone()
	}
	return v
}
