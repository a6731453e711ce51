// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package collections is the handle layer (spec.md §4.10): the immutable,
// host-facing value each structure hands callers, wrapping the path-copy
// internals in internal/hamt, internal/vector, internal/dlist,
// internal/ordered, internal/rbtree and internal/pqueue. Every write method
// returns a new handle rather than mutating the receiver, except the
// binary-heap variant, whose methods mutate in place. The list-backed
// handles (doubly- and singly-linked list, stack, queue) and the ordered
// map/set return new handles but change shared node fields in place, so an
// older handle stays valid only while the nodes it reaches are not mutated.
package collections
