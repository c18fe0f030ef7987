package overlay

import "weak"

// Ref is a stable reference to an overlay. Its Handle follows the overlay
// through Compact and is zeroed when the overlay is removed.
type Ref struct {
	Handle Handle
	UUID   string
}

// Ref returns the reference for an overlay, or nil if it does not exist.
// Repeated calls return the same Ref while it is still reachable.
func (s *Store) Ref(uuid string) *Ref {
	h, ok := s.byUUID[uuid]
	if !ok {
		return nil
	}

	if weakPtr, ok := s.refs.Get(h); ok {
		if ref := weakPtr.Value(); ref != nil {
			return ref
		}
		s.refs.Del(h)
	}

	ref := &Ref{Handle: h, UUID: uuid}
	s.refs.Put(h, weak.Make(ref))
	return ref
}

// Resolve returns the current handle of ref, or false if the overlay is gone.
func (s *Store) Resolve(ref *Ref) (Handle, bool) {
	if ref == nil || ref.Handle == 0 {
		return 0, false
	}
	return ref.Handle, true
}
