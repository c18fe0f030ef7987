package overlay

import (
	"github.com/rotisserie/eris"

	"github.com/plus3/vtt/shape"
)

// UpdateTracker applies fn to a copy of the tracker and stores the result if it
// is still valid. On error the stored tracker is left untouched.
func (s *Store) UpdateTracker(uuid string, fn func(*shape.Tracker)) error {
	return update(s, s.trackers, uuid, fn)
}

// UpdateAura applies fn to a copy of the aura and stores the result. Changing
// Value, Dim, Angle or Direction drops the cached outline unless fn replaced
// LastPath itself.
func (s *Store) UpdateAura(uuid string, fn func(*shape.Aura)) error {
	return update(s, s.auras, uuid, fn)
}

// UpdateLabel applies fn to a copy of the label and stores the result.
func (s *Store) UpdateLabel(uuid string, fn func(*shape.Label)) error {
	return update(s, s.labels, uuid, fn)
}

// SetTrackerValue sets a tracker's current value, rejecting values outside [0, maxvalue].
func (s *Store) SetTrackerValue(uuid string, value float64) error {
	return s.UpdateTracker(uuid, func(t *shape.Tracker) {
		t.Value = value
	})
}

// AdjustTrackerValue adds delta to a tracker's value and clamps the result to
// [0, maxvalue]. It returns the new value.
func (s *Store) AdjustTrackerValue(uuid string, delta float64) (float64, error) {
	var value float64
	err := s.UpdateTracker(uuid, func(t *shape.Tracker) {
		t.Value = min(max(t.Value+delta, 0), t.MaxValue)
		value = t.Value
	})
	return value, err
}

// SetVisible sets the visible flag of any overlay kind. Other flags are left as they are.
func (s *Store) SetVisible(uuid string, visible bool) error {
	switch s.Kind(uuid) {
	case shape.KindTracker:
		return s.UpdateTracker(uuid, func(t *shape.Tracker) { t.Visible = visible })
	case shape.KindAura:
		return s.UpdateAura(uuid, func(a *shape.Aura) { a.Visible = visible })
	case shape.KindLabel:
		return s.UpdateLabel(uuid, func(l *shape.Label) { l.Visible = visible })
	}
	return eris.Wrapf(ErrNotFound, "%s", uuid)
}

// AuraOutline returns the aura's outline, computing and caching it when needed.
func (s *Store) AuraOutline(uuid string) (*shape.Path, error) {
	rec, err := lookup(s, s.auras, uuid)
	if err != nil {
		return nil, err
	}
	if !rec.value.HasPath() {
		s.logger.Trace().Str("uuid", uuid).Msg("computing aura outline")
	}
	return rec.value.Outline(s.arcSegments), nil
}
