// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package arena

import (
	"fmt"

	set3 "github.com/TomTonic/Set3"
)

// SlotID names a registered root in a RootTable. SlotNone is returned when
// the table is exhausted (spec.md §4.1 NO_SLOT): the structure is still
// usable, it just cannot be individually released ahead of a full Reset.
type SlotID uint32

// SlotNone is the sentinel returned by RegisterRoot when the table has no
// free capacity.
const SlotNone SlotID = 0

// ErrStaleGeneration is returned by UpdateRoot/UnregisterRoot when slot was
// issued by a RootTable generation that has since been Reset (spec.md
// §4.12's generation guard, applied to root slots per §4.1's open question).
var ErrStaleGeneration = fmt.Errorf("arena: stale root slot generation")

type rootSlot struct {
	ptr  Ptr
	live bool
}

// RootTable is the optional root-slot table of spec.md §4.1: it lets a
// caller release one versioned root ahead of a whole-arena Reset. Free slot
// indices are kept on a LIFO stack that RegisterRoot recycles from, and
// mirrored in a Set3 (github.com/TomTonic/Set3, grounded on
// TomTonic/multimap's use of the same library as its value-set backing
// store) so IsFree membership queries are O(1).
type RootTable struct {
	capacity   int // 0 == unbounded
	slots      []rootSlot
	freeStack  []uint32         // LIFO of recycled slot indices, authoritative
	freeIDs    *set3.Set3[uint32] // mirror of freeStack for O(1) membership queries
	generation uint32
}

// NewRootTable returns a RootTable. capacity <= 0 means unbounded.
func NewRootTable(capacity int) *RootTable {
	return &RootTable{capacity: capacity, freeIDs: set3.Empty[uint32]()}
}

// RegisterRoot records ptr as a new root and returns its SlotID, or
// (SlotNone, false) if the table is exhausted.
func (t *RootTable) RegisterRoot(ptr Ptr) (SlotID, bool) {
	// Prefer recycling a freed slot.
	if n := len(t.freeStack); n > 0 {
		id := t.freeStack[n-1]
		t.freeStack = t.freeStack[:n-1]
		t.freeIDs.Remove(id)
		t.slots[id] = rootSlot{ptr: ptr, live: true}
		return SlotID(id + 1), true
	}

	if t.capacity > 0 && len(t.slots) >= t.capacity {
		return SlotNone, false
	}

	t.slots = append(t.slots, rootSlot{ptr: ptr, live: true})
	return SlotID(len(t.slots)), true
}

// IsFree reports whether slot index id (0-based) is currently on the free
// list — a diagnostic built on the Set3 membership mirror.
func (t *RootTable) IsFree(id uint32) bool {
	return t.freeIDs.Contains(id)
}

// UpdateRoot swaps slot's current root for newPtr.
func (t *RootTable) UpdateRoot(slot SlotID, newPtr Ptr) error {
	s, err := t.index(slot)
	if err != nil {
		return err
	}
	t.slots[s].ptr = newPtr
	return nil
}

// UnregisterRoot frees slot for reuse.
func (t *RootTable) UnregisterRoot(slot SlotID) error {
	s, err := t.index(slot)
	if err != nil {
		return err
	}
	t.slots[s] = rootSlot{}
	t.freeStack = append(t.freeStack, uint32(s))
	t.freeIDs.Add(uint32(s))
	return nil
}

// Get returns the root pointer currently registered at slot.
func (t *RootTable) Get(slot SlotID) (Ptr, error) {
	s, err := t.index(slot)
	if err != nil {
		return 0, err
	}
	return t.slots[s].ptr, nil
}

// Generation returns the table's current reset generation.
func (t *RootTable) Generation() uint32 { return t.generation }

// Reset invalidates every outstanding SlotID and bumps the generation
// counter (spec.md §4.1's open question: reset semantics for the root-slot
// table across arena Reset()).
func (t *RootTable) Reset() {
	t.slots = t.slots[:0]
	t.freeStack = t.freeStack[:0]
	t.freeIDs = set3.Empty[uint32]()
	t.generation++
}

func (t *RootTable) index(slot SlotID) (int, error) {
	if slot == SlotNone {
		return 0, fmt.Errorf("arena: slot %d is not registered", slot)
	}
	i := int(slot) - 1
	if i < 0 || i >= len(t.slots) || !t.slots[i].live {
		return 0, ErrStaleGeneration
	}
	return i, nil
}
