// Package shape declares the overlay records a game element can carry:
// numeric trackers, radius based auras and free text labels.
//
// The records are plain values. Ownership, validation and lifecycle belong to
// the store that holds them (see package overlay).
package shape

import "github.com/google/uuid"

// Kind identifies which of the three overlay records a value is.
type Kind uint32

const (
	KindTracker Kind = iota + 1
	KindAura
	KindLabel
)

func (k Kind) String() string {
	switch k {
	case KindTracker:
		return "tracker"
	case KindAura:
		return "aura"
	case KindLabel:
		return "label"
	default:
		return "unknown"
	}
}

// NewUUID returns a fresh random identifier in the canonical string form.
func NewUUID() string {
	return uuid.NewString()
}
