package main

import (
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/spritelist/sprite"
)

type Report struct {
	// Configuration
	Duration time.Duration
	Sprites  int
	Shots    int
	Scripted int
	Capacity int

	// Results
	TotalUpdates   int64
	TotalTime      time.Duration
	UpdateTime     Stats
	Spawns         int64
	Hits           int64
	TileDraws      int64
	ComboDraws     int64
	Outlines       int64
	Layers         []LayerReport
	Passes         []sprite.PassStats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

type LayerReport struct {
	Name  string
	Count int
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
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
# Sprite Stress Test Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Guys Kept Alive:** {{.Sprites}}
- **Shots Per Frame:** {{.Shots}}
- **Scripted Sprites:** {{.Scripted}}
- **Registry Capacity:** {{if .Capacity}}{{.Capacity}}{{else}}unbounded{{end}}

## Performance Results
- **Total Updates:** {{.TotalUpdates}}
- **Total Test Time:** {{.TotalTime}}
- **Update Time (Frame):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}

## Sprites
- **Spawned:** {{.Spawns}}
- **Hits:** {{.Hits}}
- **Tile Draws:** {{.TileDraws}}
- **Combo Draws:** {{.ComboDraws}}
- **Hitbox Outlines:** {{.Outlines}}
{{range .Layers}}- {{.Name}}: {{.Count}} at end
{{end}}
## Passes
| pass | runs | avg | max |
|---|---|---|---|
{{range .Passes}}| {{.Name}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MaxDuration}} |
{{end}}
## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
{{end}}`

func (r *Report) Generate(w io.Writer) error {
	fm := template.FuncMap{
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

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
