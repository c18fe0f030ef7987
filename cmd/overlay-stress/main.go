package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog"

	"github.com/plus3/vtt/config"
	"github.com/plus3/vtt/overlay"
	"github.com/plus3/vtt/shape"
)

var (
	categories = []string{"Trap", "Loot", "Note", "Quest"}
	users      = []string{"gm", "alice", "bob", "carol"}
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	elementCount := flag.Int("elements", 10000, "The initial number of elements to attach overlays to.")
	churn := flag.Int("churn", 100, "The number of queued changes flushed per frame.")
	compactEvery := flag.Int("compact-every", 100, "Compact the store every N frames (0 disables).")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logger := cfg.Logger(os.Stderr)

	logger.Info().Msg("Starting overlay stress test...")

	store := overlay.NewStore(cfg.StoreOptions(logger)...)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	logger.Info().Int("elements", *elementCount).Msg("Populating store")
	for i := range *elementCount {
		// 1 to 5 random overlays per element
		populateElement(store, rng, overlay.ElementId(i+1), rng.Intn(5)+1)
	}
	logger.Info().Int("overlays", store.Len()).Msg("Population complete")

	report := &Report{
		Duration:       *duration,
		Elements:       *elementCount,
		Overlays:       store.Len(),
		Churn:          *churn,
		GCPauseMetrics: *gcPauseMetrics,
		FlushTime: Timing{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	logger.Info().Dur("duration", *duration).Msg("Running churn loop")
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	changes := overlay.NewChanges()
	nextElement := overlay.ElementId(*elementCount + 1)
	startTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			for range *churn {
				nextElement = queueRandomChange(store, changes, rng, nextElement)
			}

			flushStart := time.Now()
			if err := changes.Flush(store); err != nil {
				report.FlushErrors++
			}
			report.FlushTime.Samples = append(report.FlushTime.Samples, time.Since(flushStart))
			report.TotalFrames++

			if *compactEvery > 0 && report.TotalFrames%int64(*compactEvery) == 0 {
				compactStart := time.Now()
				store.Compact()
				report.CompactTime += time.Since(compactStart)
				report.Compactions++
			}

			// Recompute outlines the way a renderer would each frame
			for _, a := range store.VisionSources() {
				a.Outline(cfg.ArcSegments)
			}
		}
	}

	report.TotalTime = time.Since(startTime)
	report.FlushTime.Finalize()
	report.Final = store.CollectStats()
	runtime.ReadMemStats(&report.MemStatsEnd)

	overlay.LogStats(&logger, report.Final, zerolog.InfoLevel)

	fmt.Println("\n\n--- Overlay Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		logger.Fatal().Err(err).Msg("Failed to generate report")
	}
	fmt.Println("--- End of Report ---")
}

func populateElement(store *overlay.Store, rng *rand.Rand, element overlay.ElementId, count int) {
	for range count {
		var err error
		switch shape.Kind(rng.Intn(3) + 1) {
		case shape.KindTracker:
			_, err = store.AddTracker(element, randomTracker(rng))
		case shape.KindAura:
			_, err = store.AddAura(element, randomAura(rng))
		case shape.KindLabel:
			_, err = store.AddLabel(element, randomLabel(rng))
		}
		if err != nil {
			panic(err)
		}
	}
}

func randomTracker(rng *rand.Rand) shape.Tracker {
	t := shape.NewTracker("HP")
	t.MaxValue = float64(rng.Intn(100) + 1)
	t.Value = rng.Float64() * t.MaxValue
	t.Visible = rng.Intn(2) == 0
	t.Draw = rng.Intn(2) == 0
	return t
}

func randomAura(rng *rand.Rand) shape.Aura {
	a := shape.NewAura("Light")
	a.Active = rng.Intn(4) != 0
	a.VisionSource = rng.Intn(2) == 0
	a.Visible = rng.Intn(2) == 0
	a.Value = float64(rng.Intn(60))
	a.Dim = float64(rng.Intn(60))
	if rng.Intn(3) == 0 {
		a.Angle = float64(rng.Intn(180) + 10)
		a.Direction = float64(rng.Intn(360))
	}
	return a
}

func randomLabel(rng *rand.Rand) shape.Label {
	l := shape.NewLabel(categories[rng.Intn(len(categories))], fmt.Sprintf("label-%d", rng.Intn(50)), users[rng.Intn(len(users))])
	l.Visible = rng.Intn(2) == 0
	return l
}

// queueRandomChange buffers one change and returns the next unused element id.
func queueRandomChange(store *overlay.Store, changes *overlay.Changes, rng *rand.Rand, next overlay.ElementId) overlay.ElementId {
	elements := store.Elements()
	if len(elements) == 0 {
		changes.AddTracker(next, randomTracker(rng))
		return next + 1
	}
	element := elements[rng.Intn(len(elements))]
	ov := store.Element(element)

	switch rng.Intn(6) {
	case 0:
		if len(ov.Trackers) > 0 {
			t := ov.Trackers[rng.Intn(len(ov.Trackers))]
			changes.UpdateTracker(t.UUID, func(t *shape.Tracker) {
				t.Value = rng.Float64() * t.MaxValue
			})
		}
	case 1:
		if len(ov.Auras) > 0 {
			a := ov.Auras[rng.Intn(len(ov.Auras))]
			changes.UpdateAura(a.UUID, func(a *shape.Aura) {
				a.Direction = float64(rng.Intn(360))
			})
		}
	case 2:
		if len(ov.Labels) > 0 {
			changes.Remove(ov.Labels[rng.Intn(len(ov.Labels))].UUID)
		}
	case 3:
		changes.RemoveElement(element)
	case 4:
		changes.AddAura(element, randomAura(rng))
	default:
		changes.AddLabel(next, randomLabel(rng))
		return next + 1
	}
	return next
}
