package overlay

import "github.com/rotisserie/eris"

var (
	ErrNotFound        = eris.New("overlay not found")
	ErrWrongKind       = eris.New("overlay has a different kind")
	ErrDuplicateUUID   = eris.New("overlay uuid already in use")
	ErrImmutableUUID   = eris.New("overlay uuid cannot change")
	ErrValueOutOfRange = eris.New("tracker value outside [0, maxvalue]")
	ErrNotFinite       = eris.New("overlay holds a NaN or infinite number")
)
