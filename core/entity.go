package core

// Entity is a generation-checked handle to one game object.
// The low 32 bits hold the slot index, the high 32 bits the generation
// counter for that slot. A handle is live only while its generation matches
// the allocator's current generation for the slot; a recycled slot bumps the
// generation so stale handles never alias a new object.
type Entity uint64

const (
	slotShift = 32
	slotMask  = (1 << slotShift) - 1
)

// NullEntity is the zero handle. Generations start at 1, so no live entity
// ever encodes to zero.
const NullEntity Entity = 0

// MakeEntity packs a slot index and generation into a handle.
func MakeEntity(slot, generation uint32) Entity {
	return Entity(uint64(generation)<<slotShift | uint64(slot))
}

// Slot returns the slot index portion of the handle.
func (e Entity) Slot() uint32 {
	return uint32(e & slotMask)
}

// Generation returns the generation portion of the handle.
func (e Entity) Generation() uint32 {
	return uint32(e >> slotShift)
}

// IsNull reports whether the handle is the zero handle.
func (e Entity) IsNull() bool {
	return e == NullEntity
}
