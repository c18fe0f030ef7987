package main

import (
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/vtt/overlay"
)

type Report struct {
	Duration time.Duration
	Elements int
	Overlays int
	Churn    int

	TotalFrames    int64
	TotalTime      time.Duration
	FlushTime      Timing
	FlushErrors    int
	Compactions    int
	CompactTime    time.Duration
	Final          overlay.Stats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

// Timing summarises a set of duration samples.
type Timing struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Timing) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]
	for _, sample := range s.Samples {
		s.Min = min(s.Min, sample)
		s.Max = max(s.Max, sample)
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

const reportTemplate = `
# Overlay Stress Test Report

## Configuration
- **Run Duration:** {{.Duration}}
- **Initial Elements:** {{.Elements}}
- **Initial Overlays:** {{.Overlays}}
- **Changes Per Frame:** {{.Churn}}

## Results
- **Frames:** {{.TotalFrames}}
- **Total Time:** {{.TotalTime}}
- **Flush Time:**
  - **Avg:** {{.FlushTime.Avg}}
  - **Min:** {{.FlushTime.Min}}
  - **Max:** {{.FlushTime.Max}}
- **Flushes With Errors:** {{.FlushErrors}}
- **Compactions:** {{.Compactions}} ({{.CompactTime}})

## Final Store
- Elements: {{.Final.Elements}}
- Trackers: {{.Final.Trackers}}, Auras: {{.Final.Auras}}, Labels: {{.Final.Labels}}
- Vision Sources: {{.Final.VisionSources}}, Cached Outlines: {{.Final.CachedPaths}}
- Free Slots: {{.Final.FreeSlots}}

## Memory Usage (Raw Bytes)
- Heap Alloc:  {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc: {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:      {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pauses
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
{{end}}`

var reportFuncs = template.FuncMap{
	"bsub": func(a, b uint64) int64 {
		return int64(a) - int64(b)
	},
	"usub": func(a, b uint32) uint32 {
		return a - b
	},
	"ns": func(ns uint64) string {
		return time.Duration(ns).String()
	},
}

func (r *Report) Generate(w io.Writer) error {
	tmpl, err := template.New("report").Funcs(reportFuncs).Parse(reportTemplate)
	if err != nil {
		return err
	}
	return tmpl.Execute(w, r)
}
