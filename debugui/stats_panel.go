package debugui

import (
	"fmt"
	"sort"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/vtt/overlay"
)

// StatsPanel shows overlay counts and a frame time graph.
type StatsPanel struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

func NewStatsPanel(historyFrames int) *StatsPanel {
	if historyFrames <= 0 {
		historyFrames = 1
	}
	return &StatsPanel{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
	}
}

// Record adds a frame time in seconds to the history ring
func (ps *StatsPanel) Record(deltaTime float32) {
	ps.frameHistory[ps.frameIndex] = deltaTime * 1000.0
	ps.frameIndex = (ps.frameIndex + 1) % ps.historyFrames
}

// AverageFrameMillis averages the recorded frame times
func (ps *StatsPanel) AverageFrameMillis() float32 {
	var total float32
	for _, ft := range ps.frameHistory {
		total += ft
	}
	return total / float32(ps.historyFrames)
}

func (ps *StatsPanel) Render(store *overlay.Store, deltaTime float32) {
	ps.Record(deltaTime)

	if !imgui.BeginV("Overlay Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := store.CollectStats()

	imgui.Text(fmt.Sprintf("Elements: %d", stats.Elements))
	imgui.Text(fmt.Sprintf("Trackers: %d  Auras: %d  Labels: %d", stats.Trackers, stats.Auras, stats.Labels))
	imgui.Text(fmt.Sprintf("Visible: %d  Vision sources: %d", stats.Visible, stats.VisionSources))
	imgui.Text(fmt.Sprintf("Cached outlines: %d  Free slots: %d", stats.CachedPaths, stats.FreeSlots))

	if stats.FreeSlots > 0 && imgui.Button("Compact") {
		store.Compact()
	}

	avg := ps.AverageFrameMillis()
	if avg > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, 1000.0/avg))
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.frameHistory[0], int32(len(ps.frameHistory)))

	if imgui.TreeNodeStr("Label Categories") {
		categories := make([]string, 0, len(stats.Categories))
		for c := range stats.Categories {
			categories = append(categories, c)
		}
		sort.Strings(categories)
		for _, c := range categories {
			imgui.BulletText(fmt.Sprintf("%s: %d", c, stats.Categories[c]))
		}
		imgui.TreePop()
	}

	imgui.End()
}

// FrameTimer measures the time between successive frames.
type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

func (ft *FrameTimer) GetDeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}
