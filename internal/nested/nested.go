// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package nested implements the nested-structure envelope (spec.md §4.11,
// component C12): lets a value stored in one structure itself be a handle
// onto another structure. The core never interprets the envelope bytes —
// it stores and returns them like any other blob through the packed-word
// path (spec.md §3) — but the host-layer codec needs somewhere to encode
// and decode the `{__t, __i, __d}` triple, and that is what this package
// provides.
package nested

import (
	"encoding/json"
	"fmt"
)

// StructureKind tags which structure family an envelope's inner handle
// belongs to (spec.md §6's "Structure-kind tags").
type StructureKind string

const (
	KindMap              StructureKind = "SharedMap"
	KindSet              StructureKind = "SharedSet"
	KindList             StructureKind = "SharedList"
	KindStack            StructureKind = "SharedStack"
	KindQueue            StructureKind = "SharedQueue"
	KindLinkedList       StructureKind = "SharedLinkedList"
	KindDoublyLinkedList StructureKind = "SharedDoublyLinkedList"
	KindOrderedMap       StructureKind = "SharedOrderedMap"
	KindOrderedSet       StructureKind = "SharedOrderedSet"
	KindSortedMap        StructureKind = "SharedSortedMap"
	KindSortedSet        StructureKind = "SharedSortedSet"
	KindPriorityQueue    StructureKind = "SharedPriorityQueue"
)

// Envelope is the `{__t, __i, __d}` triple (spec.md §4.11). Data carries
// the inner structure's worker-data snapshot, whose shape is defined by
// whatever handle type __t names — nested does not know or care what that
// shape is beyond "some JSON value".
type Envelope struct {
	Kind           StructureKind   `json:"__t"`
	InnerValueType string          `json:"__i"`
	Data           json.RawMessage `json:"__d"`
}

// UnknownStructureKind is the one fatal, surfacing error this package can
// raise (spec.md §7): the envelope's __t tag has no registered decoder.
type UnknownStructureKind struct {
	Kind StructureKind
}

func (e *UnknownStructureKind) Error() string {
	return fmt.Sprintf("nested: unknown structure kind %q", e.Kind)
}

// Decoder reconstructs a handle from an envelope's raw __d payload.
type Decoder func(innerValueType string, data json.RawMessage) (any, error)

// Registry maps a StructureKind to the Decoder that knows how to
// reconstruct its handle type, closing the dynamic dispatch over structure
// kinds into a lookup table rather than a type switch the core would need
// to know about (spec.md's "compile-time closed set... runtime table only
// for deserialization").
type Registry struct {
	decoders map[StructureKind]Decoder
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{decoders: make(map[StructureKind]Decoder)}
}

// Register installs the decoder for kind, overwriting any prior entry.
func (r *Registry) Register(kind StructureKind, dec Decoder) {
	r.decoders[kind] = dec
}

// Encode marshals a handle's worker-data into an envelope's raw bytes,
// ready to be stored through the normal packed-word path.
func Encode(kind StructureKind, innerValueType string, handleData any) ([]byte, error) {
	data, err := json.Marshal(handleData)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Envelope{Kind: kind, InnerValueType: innerValueType, Data: data})
}

// Decode parses raw bytes as an envelope and reconstructs the inner handle
// via the registered Decoder for its kind.
func (r *Registry) Decode(raw []byte) (any, error) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, err
	}
	dec, ok := r.decoders[env.Kind]
	if !ok {
		return nil, &UnknownStructureKind{Kind: env.Kind}
	}
	return dec(env.InnerValueType, env.Data)
}

// IsEnvelope reports whether raw looks like a nested-structure envelope
// (a JSON object with a non-empty __t field), without fully decoding it.
// Whether that kind has a registered decoder is not checked.
func IsEnvelope(raw []byte) bool {
	var probe struct {
		Kind StructureKind `json:"__t"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return false
	}
	return probe.Kind != ""
}
