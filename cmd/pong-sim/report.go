package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/pong/engine"
	"github.com/plus3/pong/pong"
)

// Report is everything written out after a simulated match.
type Report struct {
	// Configuration
	Options Options
	MatchID string

	// Results
	TotalTime     time.Duration
	Stats         pong.MatchStats
	Ball          pong.Ball
	LeftY         float32
	RightY        float32
	UpdateTime    Stats
	Systems       []engine.SystemStats
	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats
}

// Stats summarises per-frame update durations.
type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

// Finalize computes Min, Max and Avg from Samples.
func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

// Generate writes the report to w as markdown.
func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Pong Simulation Report

## Configuration
- **Match:** {{.MatchID}}
- **Seed:** {{.Options.Seed}}
{{- if .Options.Realtime}}
- **Mode:** realtime for {{.Options.Realtime}} at {{.Options.DeltaTime | secs}} per tick
{{- else}}
- **Mode:** fixed step, {{.Options.Frames}} frames of {{.Options.DeltaTime | secs}}
{{- end}}
- **Key hold:** {{.Options.Hold}} frames

## Match
- **Frames:** {{.Stats.Frames}} ({{printf "%.2f" .Stats.Elapsed}}s simulated)
- **Paddle hits:** {{.Stats.PaddleHits}}
- **Wall bounces:** {{.Stats.WallBounces}}
- **Serves:** {{.Stats.Resets}}
- **Peak |vx|:** {{printf "%.2f" .Stats.PeakSpeedX}}
- **Ball:** pos ({{printf "%.2f" .Ball.Pos.X}}, {{printf "%.2f" .Ball.Pos.Y}}) vel ({{printf "%.2f" .Ball.Vel.X}}, {{printf "%.2f" .Ball.Vel.Y}})
- **Paddles:** left y {{printf "%.2f" .LeftY}}, right y {{printf "%.2f" .RightY}}

## Performance
- **Total Time:** {{.TotalTime}}
{{- if .UpdateTime.Samples}}
- **Update Time (Frame):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}
{{- end}}

| System | Runs | Avg | Max |
|---|---|---|---|
{{- range .Systems}}
| {{.Name}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MaxDuration}} |
{{- end}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"secs": func(s float64) string {
			return fmt.Sprintf("%.4fs", s)
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
