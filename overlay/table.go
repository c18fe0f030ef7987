package overlay

import (
	"github.com/rotisserie/eris"

	"github.com/plus3/vtt/shape"
)

// record is a stored overlay together with the element that owns it
type record[T any] struct {
	owner ElementId
	value T
}

// table holds every overlay of one kind.
type table[T any] struct {
	kind shape.Kind
	slab slab[record[T]]

	// uuid returns the address of the UUID field of a value
	uuid func(*T) *string
	// validate checks a value before it is stored
	validate func(s *Store, v *T) error
	// clone deep copies a value so an update can be discarded
	clone func(*T) T
	// commit adjusts next before it replaces prev in an update
	commit func(prev, next *T)
}

func newTrackerTable() *table[shape.Tracker] {
	return &table[shape.Tracker]{
		kind: shape.KindTracker,
		uuid: func(t *shape.Tracker) *string { return &t.UUID },
		validate: func(s *Store, t *shape.Tracker) error {
			if !t.Finite() {
				return eris.Wrapf(ErrNotFinite, "tracker %s: %v/%v", t.UUID, t.Value, t.MaxValue)
			}
			if !t.InRange() {
				return eris.Wrapf(ErrValueOutOfRange, "tracker %s: %v/%v", t.UUID, t.Value, t.MaxValue)
			}
			return s.checkColours(t.UUID, t.PrimaryColor, t.SecondaryColor)
		},
	}
}

func newAuraTable() *table[shape.Aura] {
	return &table[shape.Aura]{
		kind: shape.KindAura,
		uuid: func(a *shape.Aura) *string { return &a.UUID },
		validate: func(s *Store, a *shape.Aura) error {
			if !a.Finite() {
				return eris.Wrapf(ErrNotFinite, "aura %s", a.UUID)
			}
			return s.checkColours(a.UUID, a.Colour, a.BorderColour)
		},
		clone: func(a *shape.Aura) shape.Aura { return a.Clone() },
		// An untouched outline keeps its pointer, or is dropped if the
		// geometry moved. An outline fn rewrote is stored as given.
		commit: func(prev, next *shape.Aura) {
			if !prev.LastPath.Equal(next.LastPath) {
				return
			}
			next.LastPath = prev.LastPath
			if !prev.SameGeometry(next) {
				next.InvalidatePath()
			}
		},
	}
}

func newLabelTable() *table[shape.Label] {
	return &table[shape.Label]{
		kind:     shape.KindLabel,
		uuid:     func(l *shape.Label) *string { return &l.UUID },
		validate: func(*Store, *shape.Label) error { return nil },
	}
}

func (t *table[T]) at(h Handle) *record[T] {
	if h.Kind() != t.kind {
		return nil
	}
	return t.slab.get(int(h.Index()))
}

// lookup resolves a UUID to the stored record of this table's kind
func lookup[T any](s *Store, t *table[T], uuid string) (*record[T], error) {
	h, ok := s.byUUID[uuid]
	if !ok {
		return nil, eris.Wrapf(ErrNotFound, "%s %s", t.kind, uuid)
	}
	if h.Kind() != t.kind {
		return nil, eris.Wrapf(ErrWrongKind, "%s is a %s, not a %s", uuid, h.Kind(), t.kind)
	}
	return t.at(h), nil
}

func insert[T any](s *Store, t *table[T], element ElementId, v T) (Handle, error) {
	id := t.uuid(&v)
	if *id == "" {
		*id = shape.NewUUID()
	}
	if _, dup := s.byUUID[*id]; dup {
		return 0, eris.Wrapf(ErrDuplicateUUID, "%s %s", t.kind, *id)
	}
	if err := t.validate(s, &v); err != nil {
		return 0, err
	}

	index := t.slab.append(record[T]{owner: element, value: v})
	h := NewHandle(t.kind, uint32(index))
	s.byUUID[*id] = h
	s.attach(element, h)

	s.logger.Debug().
		Str("kind", t.kind.String()).
		Str("uuid", *id).
		Uint64("element", uint64(element)).
		Msg("overlay added")
	return h, nil
}

func update[T any](s *Store, t *table[T], uuid string, fn func(*T)) error {
	rec, err := lookup(s, t, uuid)
	if err != nil {
		return err
	}

	next := rec.value
	if t.clone != nil {
		next = t.clone(&rec.value)
	}
	fn(&next)
	if *t.uuid(&next) != uuid {
		return eris.Wrapf(ErrImmutableUUID, "%s %s", t.kind, uuid)
	}
	if err := t.validate(s, &next); err != nil {
		return err
	}
	if t.commit != nil {
		t.commit(&rec.value, &next)
	}
	rec.value = next
	return nil
}
