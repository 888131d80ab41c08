// Package render hosts a pong world in an ebiten window.
package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/plus3/pong/debugui"
	"github.com/plus3/pong/engine"
	"github.com/plus3/pong/pong"
)

// Game implements ebiten.Game. Every tick samples the keyboard and the frame time
// once, runs the scheduler, and then draws the world.
type Game struct {
	World     *pong.World
	Scheduler *engine.Scheduler[*pong.World]
	Keys      *pong.KeySet
	Timer     *engine.FrameTimer

	// Overlay and Backend are nil when the debug overlay is disabled.
	Overlay *debugui.Overlay
	Backend *debugui.Backend
}

// NewGame wires a world to ebiten. keys must be the keyboard the world reads.
func NewGame(world *pong.World, keys *pong.KeySet, backend *debugui.Backend) *Game {
	g := &Game{
		World:     world,
		Scheduler: pong.NewScheduler(world),
		Keys:      keys,
		Timer:     engine.NewFrameTimer(nil),
		Backend:   backend,
	}
	if backend != nil {
		g.Overlay = debugui.NewOverlay(120, g.Scheduler.GetStats)
		g.Overlay.Visible = true
		g.Scheduler.Register(&debugui.OverlaySystem{Overlay: g.Overlay})
	}
	return g
}

// Update quits on Escape and otherwise advances the world by one frame.
func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if g.Overlay != nil && inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.Overlay.Toggle()
	}

	SampleKeys(g.Keys)
	dt := g.Timer.DeltaTime()

	if g.Backend != nil {
		g.Backend.BeginFrame()
		defer g.Backend.EndFrame()
	}
	g.Scheduler.Once(dt)
	return nil
}

// Draw renders the world and then the overlay, if any.
func (g *Game) Draw(screen *ebiten.Image) {
	g.World.Draw(Canvas{Image: screen})

	if g.Backend != nil {
		g.Backend.Draw(screen)
	}
}

// Layout keeps the logical playfield size regardless of the window size. The overlay
// backend is laid out at the same logical size so its widgets share the world's
// coordinates.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := int(g.World.Screen.Width), int(g.World.Screen.Height)
	if g.Backend != nil {
		g.Backend.Layout(w, h)
	}
	return w, h
}

// Run opens the window titled title and blocks until it is closed.
func (g *Game) Run(title string) error {
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(int(g.World.Screen.Width), int(g.World.Screen.Height))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(g)
}
