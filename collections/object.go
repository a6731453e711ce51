// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package collections

import (
	"encoding/json"

	"github.com/natanelia/zerocopy/internal/payload"
)

// NewObjectValue clones v (if it implements Cloner[V]) and JSON-encodes it
// into a payload.Value carrying ValueObject, for callers storing host-level
// structs rather than the scalar string/number/boolean value kinds.
func NewObjectValue[V any](v V) (payload.Value, error) {
	data, err := json.Marshal(cloneValue(v))
	if err != nil {
		return payload.Value{}, err
	}
	return payload.Value{Bytes: data}, nil
}

// DecodeObjectValue unmarshals a payload.Value previously built by
// NewObjectValue into a V.
func DecodeObjectValue[V any](val payload.Value) (V, error) {
	var v V
	err := json.Unmarshal(val.Bytes, &v)
	return v, err
}
