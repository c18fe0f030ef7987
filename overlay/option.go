package overlay

import (
	"github.com/rs/zerolog"

	"github.com/plus3/vtt/shape"
)

// Option configures a Store
type Option func(*Store)

// WithLogger sets the logger lifecycle events are written to. The default discards them.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// WithStrictColours rejects overlays whose colour fields do not parse with shape.ParseColour.
func WithStrictColours(strict bool) Option {
	return func(s *Store) {
		s.strictColours = strict
	}
}

// WithArcSegments sets the arc resolution used when computing aura outlines.
func WithArcSegments(segments int) Option {
	return func(s *Store) {
		if segments >= shape.MinArcSegments {
			s.arcSegments = segments
		}
	}
}
