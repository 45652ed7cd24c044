package engine

import "github.com/ashenfell/brawlarc/core"

// allocator hands out slot+generation entity handles. Freed slots go on a
// free list and come back with a bumped generation, so a stale handle can
// never address the slot's next occupant.
type allocator struct {
	generations []uint32
	freeList    []uint32
	capacity    int
	live        int
}

func newAllocator(capacity int) *allocator {
	return &allocator{
		generations: make([]uint32, 0, capacity),
		capacity:    capacity,
	}
}

// Allocate returns a fresh handle, or NullEntity when at capacity.
func (a *allocator) Allocate() core.Entity {
	if n := len(a.freeList); n > 0 {
		slot := a.freeList[n-1]
		a.freeList = a.freeList[:n-1]
		a.live++
		return core.MakeEntity(slot, a.generations[slot])
	}
	if len(a.generations) >= a.capacity {
		return core.NullEntity
	}
	slot := uint32(len(a.generations))
	// Generations start at 1 so a live handle never encodes to zero
	a.generations = append(a.generations, 1)
	a.live++
	return core.MakeEntity(slot, 1)
}

// Alive reports whether the handle's generation matches the slot.
func (a *allocator) Alive(e core.Entity) bool {
	if e.IsNull() {
		return false
	}
	slot := e.Slot()
	if int(slot) >= len(a.generations) {
		return false
	}
	return a.generations[slot] == e.Generation()
}

// Free recycles a handle's slot. Stale handles are ignored.
func (a *allocator) Free(e core.Entity) {
	if !a.Alive(e) {
		return
	}
	slot := e.Slot()
	a.generations[slot]++
	a.freeList = append(a.freeList, slot)
	a.live--
}

// Live returns the number of live entities.
func (a *allocator) Live() int {
	return a.live
}

// Reset drops every entity and restarts generations.
func (a *allocator) Reset() {
	a.generations = a.generations[:0]
	a.freeList = a.freeList[:0]
	a.live = 0
}
