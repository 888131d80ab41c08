package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/plus3/pong/pong"
)

// Canvas draws pong shapes onto an ebiten image.
type Canvas struct {
	Image *ebiten.Image
}

func (c Canvas) Clear(clr color.Color) {
	c.Image.Fill(clr)
}

func (c Canvas) FillRect(r pong.Rect, clr color.Color) {
	vector.DrawFilledRect(c.Image, r.X, r.Y, r.W, r.H, clr, false)
}

// FillCircle is antialiased so sub-pixel offsets stay visible.
func (c Canvas) FillCircle(center pong.Vec2, radius float32, clr color.Color) {
	vector.DrawFilledCircle(c.Image, center.X, center.Y, radius, clr, true)
}
