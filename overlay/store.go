// Package overlay owns the trackers, auras and labels attached to game elements.
//
// A Store is the single owner of every overlay record: it creates them when an
// element gains an overlay, mutates them through validated updates and destroys
// them when the overlay or the whole element goes away. Records are looked up
// by their UUID or by the element that carries them.
//
// A Store is not safe for concurrent use. Callers that receive changes from
// several goroutines should funnel them through a Changes buffer owned by the
// goroutine that flushes it.
package overlay

import (
	"slices"
	"weak"

	"github.com/kamstrup/intmap"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"github.com/plus3/vtt/shape"
)

const DefaultArcSegments = 32

// Store is the overlay container
type Store struct {
	trackers *table[shape.Tracker]
	auras    *table[shape.Aura]
	labels   *table[shape.Label]

	byUUID   map[string]Handle
	elements *intmap.Map[ElementId, []Handle]
	refs     *intmap.Map[Handle, weak.Pointer[Ref]]

	logger        zerolog.Logger
	strictColours bool
	arcSegments   int
}

// NewStore creates an empty store
func NewStore(opts ...Option) *Store {
	s := &Store{
		trackers:    newTrackerTable(),
		auras:       newAuraTable(),
		labels:      newLabelTable(),
		byUUID:      make(map[string]Handle),
		elements:    intmap.New[ElementId, []Handle](256),
		refs:        intmap.New[Handle, weak.Pointer[Ref]](256),
		logger:      zerolog.Nop(),
		arcSegments: DefaultArcSegments,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddTracker attaches a tracker to an element. An empty UUID is replaced with a
// generated one. The tracker must satisfy 0 <= Value <= MaxValue.
func (s *Store) AddTracker(element ElementId, t shape.Tracker) (Handle, error) {
	return insert(s, s.trackers, element, t)
}

// AddAura attaches an aura to an element.
func (s *Store) AddAura(element ElementId, a shape.Aura) (Handle, error) {
	return insert(s, s.auras, element, a)
}

// AddLabel attaches a label to an element.
func (s *Store) AddLabel(element ElementId, l shape.Label) (Handle, error) {
	return insert(s, s.labels, element, l)
}

// Tracker returns the stored tracker. The pointer stays valid until the tracker
// is removed or the store is compacted. Writing through it skips validation;
// use UpdateTracker for checked changes.
func (s *Store) Tracker(uuid string) (*shape.Tracker, bool) {
	rec, err := lookup(s, s.trackers, uuid)
	if err != nil {
		return nil, false
	}
	return &rec.value, true
}

// Aura returns the stored aura, see Tracker for pointer validity.
func (s *Store) Aura(uuid string) (*shape.Aura, bool) {
	rec, err := lookup(s, s.auras, uuid)
	if err != nil {
		return nil, false
	}
	return &rec.value, true
}

// Label returns the stored label, see Tracker for pointer validity.
func (s *Store) Label(uuid string) (*shape.Label, bool) {
	rec, err := lookup(s, s.labels, uuid)
	if err != nil {
		return nil, false
	}
	return &rec.value, true
}

// Lookup returns the handle of an overlay
func (s *Store) Lookup(uuid string) (Handle, bool) {
	h, ok := s.byUUID[uuid]
	return h, ok
}

// Kind returns the kind of an overlay, or 0 if it does not exist
func (s *Store) Kind(uuid string) shape.Kind {
	return s.byUUID[uuid].Kind()
}

// Owner returns the element an overlay is attached to
func (s *Store) Owner(uuid string) (ElementId, bool) {
	h, ok := s.byUUID[uuid]
	if !ok {
		return 0, false
	}
	return s.ownerOf(h)
}

func (s *Store) ownerOf(h Handle) (ElementId, bool) {
	switch h.Kind() {
	case shape.KindTracker:
		if rec := s.trackers.at(h); rec != nil {
			return rec.owner, true
		}
	case shape.KindAura:
		if rec := s.auras.at(h); rec != nil {
			return rec.owner, true
		}
	case shape.KindLabel:
		if rec := s.labels.at(h); rec != nil {
			return rec.owner, true
		}
	}
	return 0, false
}

// Len returns the number of stored overlays
func (s *Store) Len() int {
	return len(s.byUUID)
}

// Remove destroys a single overlay
func (s *Store) Remove(uuid string) error {
	h, ok := s.byUUID[uuid]
	if !ok {
		return eris.Wrapf(ErrNotFound, "%s", uuid)
	}

	owner, _ := s.ownerOf(h)
	s.release(h)
	delete(s.byUUID, uuid)
	s.detach(owner, h)

	s.logger.Debug().
		Str("kind", h.Kind().String()).
		Str("uuid", uuid).
		Uint64("element", uint64(owner)).
		Msg("overlay removed")
	return nil
}

// RemoveElement destroys every overlay attached to an element and returns how
// many were removed.
func (s *Store) RemoveElement(element ElementId) int {
	handles, ok := s.elements.Get(element)
	if !ok {
		return 0
	}

	for _, h := range handles {
		delete(s.byUUID, s.uuidOf(h))
		s.release(h)
	}
	s.elements.Del(element)

	s.logger.Debug().
		Uint64("element", uint64(element)).
		Int("removed", len(handles)).
		Msg("element overlays removed")
	return len(handles)
}

// release empties the slot behind h and invalidates its Ref
func (s *Store) release(h Handle) {
	if weakPtr, ok := s.refs.Get(h); ok {
		if ref := weakPtr.Value(); ref != nil {
			ref.Handle = 0
		}
		s.refs.Del(h)
	}

	index := int(h.Index())
	switch h.Kind() {
	case shape.KindTracker:
		s.trackers.slab.delete(index)
	case shape.KindAura:
		s.auras.slab.delete(index)
	case shape.KindLabel:
		s.labels.slab.delete(index)
	}
}

func (s *Store) uuidOf(h Handle) string {
	switch h.Kind() {
	case shape.KindTracker:
		if rec := s.trackers.at(h); rec != nil {
			return rec.value.UUID
		}
	case shape.KindAura:
		if rec := s.auras.at(h); rec != nil {
			return rec.value.UUID
		}
	case shape.KindLabel:
		if rec := s.labels.at(h); rec != nil {
			return rec.value.UUID
		}
	}
	return ""
}

func (s *Store) attach(element ElementId, h Handle) {
	handles, _ := s.elements.Get(element)
	s.elements.Put(element, append(handles, h))
}

func (s *Store) detach(element ElementId, h Handle) {
	handles, ok := s.elements.Get(element)
	if !ok {
		return
	}
	handles = slices.DeleteFunc(handles, func(other Handle) bool { return other == h })
	if len(handles) == 0 {
		s.elements.Del(element)
		return
	}
	s.elements.Put(element, handles)
}

func (s *Store) checkColours(uuid string, colours ...string) error {
	if !s.strictColours {
		return nil
	}
	for _, c := range colours {
		if _, err := shape.ParseColour(c); err != nil {
			return eris.Wrapf(err, "overlay %s", uuid)
		}
	}
	return nil
}

// Compact drops free slots left behind by removals. Handles change; UUIDs and
// Refs keep resolving to the same overlays.
func (s *Store) Compact() {
	remapped := make(map[Handle]Handle, s.Len())
	collect := func(kind shape.Kind, indexMap map[int]int) {
		for oldIdx, newIdx := range indexMap {
			remapped[NewHandle(kind, uint32(oldIdx))] = NewHandle(kind, uint32(newIdx))
		}
	}
	collect(shape.KindTracker, s.trackers.slab.compact())
	collect(shape.KindAura, s.auras.slab.compact())
	collect(shape.KindLabel, s.labels.slab.compact())

	for uuid, h := range s.byUUID {
		s.byUUID[uuid] = remapped[h]
	}

	s.elements.ForEach(func(element ElementId, handles []Handle) bool {
		for i, h := range handles {
			handles[i] = remapped[h]
		}
		return true
	})

	updatedRefs := make(map[Handle]weak.Pointer[Ref])
	s.refs.ForEach(func(h Handle, weakPtr weak.Pointer[Ref]) bool {
		if ref := weakPtr.Value(); ref != nil {
			ref.Handle = remapped[h]
			updatedRefs[ref.Handle] = weakPtr
		}
		return true
	})
	s.refs.Clear()
	for h, weakPtr := range updatedRefs {
		s.refs.Put(h, weakPtr)
	}

	s.logger.Debug().Int("overlays", s.Len()).Msg("store compacted")
}
