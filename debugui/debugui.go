// Package debugui provides Dear ImGui windows for inspecting and editing the
// overlays held by an overlay.Store.
package debugui

import (
	"github.com/plus3/vtt/overlay"
)

// Inspector bundles the overlay browser, the overlay editor and the store
// statistics window. Call Render once per frame between the ImGui backend's
// BeginFrame and EndFrame.
type Inspector struct {
	store   *overlay.Store
	browser *Browser
	editor  *Editor
	stats   *StatsPanel
}

// NewInspector creates the debug windows for a store. historyFrames sets how
// many frame times the stats window plots.
func NewInspector(store *overlay.Store, historyFrames int) *Inspector {
	return &Inspector{
		store:   store,
		browser: NewBrowser(100),
		editor:  &Editor{},
		stats:   NewStatsPanel(historyFrames),
	}
}

// Render draws every window
func (i *Inspector) Render(deltaTime float32) {
	i.browser.Render(i.store)
	i.editor.Render(i.store, i.browser.Selected())
	i.stats.Render(i.store, deltaTime)
}
