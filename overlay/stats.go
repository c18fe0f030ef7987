package overlay

import (
	"sort"

	"github.com/rs/zerolog"
)

// Stats summarises the content of a Store.
type Stats struct {
	Elements      int
	Trackers      int
	Auras         int
	Labels        int
	Visible       int
	VisionSources int
	CachedPaths   int
	FreeSlots     int
	Categories    map[string]int
}

// Overlays returns the total overlay count
func (st Stats) Overlays() int {
	return st.Trackers + st.Auras + st.Labels
}

// CollectStats walks the store and counts its content.
func (s *Store) CollectStats() Stats {
	st := Stats{
		Elements:   s.elements.Len(),
		Trackers:   s.trackers.slab.len(),
		Auras:      s.auras.slab.len(),
		Labels:     s.labels.slab.len(),
		FreeSlots:  s.trackers.slab.free() + s.auras.slab.free() + s.labels.slab.free(),
		Categories: make(map[string]int),
	}

	for _, t := range s.Trackers() {
		if t.Visible {
			st.Visible++
		}
	}
	for _, a := range s.Auras() {
		if a.Visible {
			st.Visible++
		}
		if a.Active && a.VisionSource {
			st.VisionSources++
		}
		if a.HasPath() {
			st.CachedPaths++
		}
	}
	for _, l := range s.Labels() {
		if l.Visible {
			st.Visible++
		}
		st.Categories[l.Category]++
	}
	return st
}

// LogStats writes stats as a single structured event.
func LogStats(logger *zerolog.Logger, st Stats, level zerolog.Level) {
	categories := make([]string, 0, len(st.Categories))
	for c := range st.Categories {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	dict := zerolog.Dict()
	for _, c := range categories {
		dict = dict.Int(c, st.Categories[c])
	}

	logger.WithLevel(level).
		Int("elements", st.Elements).
		Int("trackers", st.Trackers).
		Int("auras", st.Auras).
		Int("labels", st.Labels).
		Int("visible", st.Visible).
		Int("vision_sources", st.VisionSources).
		Int("cached_paths", st.CachedPaths).
		Int("free_slots", st.FreeSlots).
		Dict("categories", dict).
		Msg("overlay store stats")
}
