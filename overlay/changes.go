package overlay

import (
	"errors"
	"sync"

	"github.com/plus3/vtt/shape"
)

// Changes buffers overlay mutations so they can be applied to a Store in one
// step, e.g. at the end of a frame or after a batch of sync messages.
//
// Changes may be filled from several goroutines at once. Flush must be called
// from the goroutine that owns the Store.
type Changes struct {
	mu sync.Mutex
	changeSet
}

type changeSet struct {
	elementRemovals []ElementId
	removes         []string
	updates         []pendingUpdate
	adds            []pendingAdd
	defers          []func()
}

type pendingUpdate struct {
	uuid  string
	apply func(*Store) error
}

type pendingAdd struct {
	element ElementId
	apply   func(*Store) error
}

// NewChanges creates an empty buffer
func NewChanges() *Changes {
	return &Changes{}
}

// AddTracker queues a tracker addition.
func (c *Changes) AddTracker(element ElementId, t shape.Tracker) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.adds = append(c.adds, pendingAdd{element: element, apply: func(s *Store) error {
		_, err := s.AddTracker(element, t)
		return err
	}})
}

// AddAura queues an aura addition.
func (c *Changes) AddAura(element ElementId, a shape.Aura) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.adds = append(c.adds, pendingAdd{element: element, apply: func(s *Store) error {
		_, err := s.AddAura(element, a)
		return err
	}})
}

// AddLabel queues a label addition.
func (c *Changes) AddLabel(element ElementId, l shape.Label) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.adds = append(c.adds, pendingAdd{element: element, apply: func(s *Store) error {
		_, err := s.AddLabel(element, l)
		return err
	}})
}

// UpdateTracker queues a validated tracker update.
func (c *Changes) UpdateTracker(uuid string, fn func(*shape.Tracker)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.updates = append(c.updates, pendingUpdate{uuid: uuid, apply: func(s *Store) error {
		return s.UpdateTracker(uuid, fn)
	}})
}

// UpdateAura queues a validated aura update.
func (c *Changes) UpdateAura(uuid string, fn func(*shape.Aura)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.updates = append(c.updates, pendingUpdate{uuid: uuid, apply: func(s *Store) error {
		return s.UpdateAura(uuid, fn)
	}})
}

// UpdateLabel queues a validated label update.
func (c *Changes) UpdateLabel(uuid string, fn func(*shape.Label)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.updates = append(c.updates, pendingUpdate{uuid: uuid, apply: func(s *Store) error {
		return s.UpdateLabel(uuid, fn)
	}})
}

// Remove queues the removal of a single overlay.
func (c *Changes) Remove(uuid string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removes = append(c.removes, uuid)
}

// RemoveElement queues the removal of every overlay on an element.
func (c *Changes) RemoveElement(element ElementId) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.elementRemovals = append(c.elementRemovals, element)
}

// Defer queues a function to run after all other changes.
func (c *Changes) Defer(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.defers = append(c.defers, fn)
}

// Len returns the number of queued operations
func (c *Changes) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.elementRemovals) + len(c.removes) + len(c.updates) + len(c.adds) + len(c.defers)
}

// Flush applies the buffered changes to the store and resets the buffer.
// Element removals run first, then overlay removals, updates, additions and
// finally deferred functions. Updates to overlays removed in the same flush and
// additions to elements removed in the same flush are dropped. Every failure
// is collected; the returned error joins them.
//
// Changes queued while Flush runs, including those queued by deferred
// functions, are kept for the next Flush.
func (c *Changes) Flush(store *Store) error {
	c.mu.Lock()
	set := c.changeSet
	c.changeSet = changeSet{}
	c.mu.Unlock()

	var errs []error
	removedElements := make(map[ElementId]bool)
	removedOverlays := make(map[string]bool)

	for _, element := range set.elementRemovals {
		for _, h := range store.handlesOf(element) {
			removedOverlays[store.uuidOf(h)] = true
		}
		store.RemoveElement(element)
		removedElements[element] = true
	}

	for _, uuid := range set.removes {
		if removedOverlays[uuid] {
			continue
		}
		if err := store.Remove(uuid); err != nil {
			errs = append(errs, err)
		}
		removedOverlays[uuid] = true
	}

	for _, u := range set.updates {
		if removedOverlays[u.uuid] {
			continue
		}
		if err := u.apply(store); err != nil {
			errs = append(errs, err)
		}
	}

	for _, a := range set.adds {
		if removedElements[a.element] {
			continue
		}
		if err := a.apply(store); err != nil {
			errs = append(errs, err)
		}
	}

	for _, fn := range set.defers {
		fn()
	}

	if len(errs) > 0 {
		store.logger.Warn().Int("failed", len(errs)).Msg("some overlay changes were rejected")
	}
	return errors.Join(errs...)
}

func (s *Store) handlesOf(element ElementId) []Handle {
	handles, _ := s.elements.Get(element)
	return handles
}
