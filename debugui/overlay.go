package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/pong/engine"
	"github.com/plus3/pong/pong"
)

// Overlay keeps a rolling frame-time history and renders the debug windows.
type Overlay struct {
	Visible bool

	historyFrames int
	frameHistory  []float32
	frameIndex    int
	samples       int
	stats         func() *engine.SchedulerStats
}

// NewOverlay creates an overlay remembering the last historyFrames frame times.
// stats may be nil, in which case the scheduler table is omitted.
func NewOverlay(historyFrames int, stats func() *engine.SchedulerStats) *Overlay {
	if historyFrames <= 0 {
		historyFrames = 1
	}
	return &Overlay{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
		stats:         stats,
	}
}

// Toggle flips the overlay's visibility.
func (o *Overlay) Toggle() {
	o.Visible = !o.Visible
}

// Record stores one frame time, in seconds.
func (o *Overlay) Record(deltaTime float32) {
	o.frameHistory[o.frameIndex] = deltaTime * 1000.0
	o.frameIndex = (o.frameIndex + 1) % o.historyFrames
	if o.samples < o.historyFrames {
		o.samples++
	}
}

// AverageFrameTime returns the mean of the recorded frame times in milliseconds.
func (o *Overlay) AverageFrameTime() float32 {
	if o.samples == 0 {
		return 0
	}
	var total float32
	for _, ft := range o.frameHistory {
		total += ft
	}
	return total / float32(o.samples)
}

// Render emits the ImGui windows. It must run between the backend's BeginFrame and
// EndFrame.
func (o *Overlay) Render(w *pong.World) {
	if !imgui.BeginV("Performance", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	avgFrameTime := o.AverageFrameTime()
	fps := float32(0)
	if avgFrameTime > 0 {
		fps = 1000.0 / avgFrameTime
	}
	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, fps))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &o.frameHistory[0], int32(len(o.frameHistory)))

	if o.stats != nil && imgui.TreeNodeStr("Systems") {
		o.renderSystems(o.stats())
		imgui.TreePop()
	}
	imgui.End()

	o.renderMatch(w)
}

func (o *Overlay) renderSystems(stats *engine.SchedulerStats) {
	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if !imgui.BeginTableV("SystemStatsTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		return
	}
	imgui.TableSetupColumn("System")
	imgui.TableSetupColumn("Last")
	imgui.TableSetupColumn("Avg")
	imgui.TableSetupColumn("Max")
	imgui.TableHeadersRow()

	for _, sys := range stats.Systems {
		imgui.TableNextRow()
		imgui.TableNextColumn()
		imgui.Text(sys.Name)
		imgui.TableNextColumn()
		imgui.Text(sys.LastDuration.String())
		imgui.TableNextColumn()
		imgui.Text(sys.AvgDuration.String())
		imgui.TableNextColumn()
		imgui.Text(sys.MaxDuration.String())
	}
	imgui.EndTable()
}

func (o *Overlay) renderMatch(w *pong.World) {
	if !imgui.BeginV("Match", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Match: %s", w.ID))
	imgui.Text(fmt.Sprintf("Frames: %d (%.1fs)", w.Stats.Frames, w.Stats.Elapsed))
	imgui.Text(fmt.Sprintf("Paddle hits: %d  Wall bounces: %d  Serves: %d",
		w.Stats.PaddleHits, w.Stats.WallBounces, w.Stats.Resets))
	imgui.Text(fmt.Sprintf("Peak |vx|: %.1f", w.Stats.PeakSpeedX))

	imgui.Separator()
	imgui.BulletText(fmt.Sprintf("Ball pos (%.1f, %.1f) vel (%.1f, %.1f)",
		w.Ball.Pos.X, w.Ball.Pos.Y, w.Ball.Vel.X, w.Ball.Vel.Y))
	for _, side := range [...]pong.Side{pong.Left, pong.Right} {
		p := w.Paddle(side)
		imgui.BulletText(fmt.Sprintf("%s paddle y %.1f", side, p.Rect.Y))
	}

	imgui.End()
}

// OverlaySystem records the frame time and, while the overlay is visible, defers
// its rendering to the end of the frame. Register it after the game systems.
type OverlaySystem struct {
	Overlay *Overlay
}

func (s *OverlaySystem) Execute(frame *engine.UpdateFrame[*pong.World]) {
	s.Overlay.Record(float32(frame.DeltaTime))
	if !s.Overlay.Visible {
		return
	}
	w := frame.State
	frame.Commands.Defer(func() {
		s.Overlay.Render(w)
	})
}
