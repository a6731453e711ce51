// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package collections

import "fmt"

// ValueType tags the shape of a value stored behind a handle:
// string | number | boolean | object | <StructureKind><<innerValueType>>
// (spec.md §6, the redesign note in §9).
type ValueType string

const (
	ValueString  ValueType = "string"
	ValueNumber  ValueType = "number"
	ValueBoolean ValueType = "boolean"
	ValueObject  ValueType = "object"
)

// NestedValueType builds the tag for a value that is itself one of the core
// structures, e.g. NestedValueType(KindMap, "string") -> "SharedMap<string>"
// (spec.md §4.11).
func NestedValueType(kind StructureKind, innerValueType string) ValueType {
	return ValueType(fmt.Sprintf("%s<%s>", kind, innerValueType))
}
