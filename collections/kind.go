// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package collections

import "github.com/natanelia/zerocopy/internal/nested"

// StructureKind tags which of the twelve core structures a handle or an
// envelope describes (spec.md §6).
type StructureKind = nested.StructureKind

const (
	KindMap              = nested.KindMap
	KindSet              = nested.KindSet
	KindList             = nested.KindList
	KindStack            = nested.KindStack
	KindQueue            = nested.KindQueue
	KindLinkedList       = nested.KindLinkedList
	KindDoublyLinkedList = nested.KindDoublyLinkedList
	KindOrderedMap       = nested.KindOrderedMap
	KindOrderedSet       = nested.KindOrderedSet
	KindSortedMap        = nested.KindSortedMap
	KindSortedSet        = nested.KindSortedSet
	KindPriorityQueue    = nested.KindPriorityQueue
)
