// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package payload defines the value shape every structure family stores at
// its leaves: either an inline IEEE-754 double (spec.md §3: numbers are
// stored directly in 8-byte node slots, no packing) or an opaque byte blob
// referenced through a packed word. Sharing one Value type across hamt,
// vector, ordered, rbtree and pqueue keeps the packed-word/inline-number
// split (spec.md §4.2) consistent everywhere instead of re-deriving it per
// package.
package payload

// Value is the payload a structure leaf carries.
type Value struct {
	Numeric bool
	Number  float64
	Bytes   []byte
}

// Bool packs a boolean the way spec.md §3 documents ("Booleans pack as
// 0/1"): as an inline number so it never needs a blob allocation.
func Bool(b bool) Value {
	if b {
		return Value{Numeric: true, Number: 1}
	}
	return Value{Numeric: true, Number: 0}
}

// Float wraps an inline IEEE-754 double.
func Float(f float64) Value { return Value{Numeric: true, Number: f} }

// Bytes wraps an opaque byte blob (UTF-8 text, JSON, or a nested-structure
// envelope — spec.md §1's "out of scope" encodings, carried as bytes here).
func Bytes(b []byte) Value { return Value{Bytes: b} }

// AsBool reports the value as a boolean, per the 0/1 packing convention.
func (v Value) AsBool() bool { return v.Numeric && v.Number != 0 }
