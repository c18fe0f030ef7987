package overlay

import "github.com/plus3/vtt/shape"

// ElementId identifies the game element (token, map object, ...) overlays are attached to.
type ElementId uint64

// Handle encodes the overlay kind (upper 32 bits) and its slot index (lower 32 bits).
// The zero Handle is never issued.
type Handle uint64

// NewHandle creates a Handle from a kind and slot index
func NewHandle(kind shape.Kind, index uint32) Handle {
	return Handle(uint64(kind)<<32 | uint64(index))
}

// Kind extracts the overlay kind from the handle
func (h Handle) Kind() shape.Kind {
	return shape.Kind(h >> 32)
}

// Index extracts the slot index from the handle
func (h Handle) Index() uint32 {
	return uint32(h & 0xFFFFFFFF)
}
