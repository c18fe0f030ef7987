package overlay

import (
	"iter"
	"slices"

	"github.com/plus3/vtt/shape"
)

// Overlays groups the records attached to one element, in insertion order.
type Overlays struct {
	Trackers []*shape.Tracker
	Auras    []*shape.Aura
	Labels   []*shape.Label
}

// Len returns the total number of overlays in the group
func (o Overlays) Len() int {
	return len(o.Trackers) + len(o.Auras) + len(o.Labels)
}

// Element returns every overlay attached to an element
func (s *Store) Element(element ElementId) Overlays {
	var out Overlays
	handles, _ := s.elements.Get(element)
	for _, h := range handles {
		switch h.Kind() {
		case shape.KindTracker:
			if rec := s.trackers.at(h); rec != nil {
				out.Trackers = append(out.Trackers, &rec.value)
			}
		case shape.KindAura:
			if rec := s.auras.at(h); rec != nil {
				out.Auras = append(out.Auras, &rec.value)
			}
		case shape.KindLabel:
			if rec := s.labels.at(h); rec != nil {
				out.Labels = append(out.Labels, &rec.value)
			}
		}
	}
	return out
}

// Elements returns the ids of all elements carrying at least one overlay, sorted
func (s *Store) Elements() []ElementId {
	ids := make([]ElementId, 0, s.elements.Len())
	s.elements.ForEach(func(element ElementId, _ []Handle) bool {
		ids = append(ids, element)
		return true
	})
	slices.Sort(ids)
	return ids
}

func each[T any](t *table[T]) iter.Seq2[ElementId, *T] {
	return func(yield func(ElementId, *T) bool) {
		for _, rec := range t.slab.all() {
			if !yield(rec.owner, &rec.value) {
				return
			}
		}
	}
}

// Trackers iterates every tracker with its owning element
func (s *Store) Trackers() iter.Seq2[ElementId, *shape.Tracker] {
	return each(s.trackers)
}

// Auras iterates every aura with its owning element
func (s *Store) Auras() iter.Seq2[ElementId, *shape.Aura] {
	return each(s.auras)
}

// Labels iterates every label with its owning element
func (s *Store) Labels() iter.Seq2[ElementId, *shape.Label] {
	return each(s.labels)
}

// VisionSources iterates the auras that are both active and marked as a vision source.
func (s *Store) VisionSources() iter.Seq2[ElementId, *shape.Aura] {
	return func(yield func(ElementId, *shape.Aura) bool) {
		for element, a := range s.Auras() {
			if !a.Active || !a.VisionSource {
				continue
			}
			if !yield(element, a) {
				return
			}
		}
	}
}

// LabelsByUser returns the labels authored by user
func (s *Store) LabelsByUser(user string) []*shape.Label {
	var out []*shape.Label
	for _, l := range s.Labels() {
		if l.User == user {
			out = append(out, l)
		}
	}
	return out
}

// ElementsWithLabel returns the sorted ids of elements carrying a label in
// category. A non-empty name narrows the match to labels with that name.
func (s *Store) ElementsWithLabel(category, name string) []ElementId {
	var out []ElementId
	for element, l := range s.Labels() {
		if l.Matches(category, name) && !slices.Contains(out, element) {
			out = append(out, element)
		}
	}
	slices.Sort(out)
	return out
}
