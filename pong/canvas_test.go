package pong_test

import (
	"image/color"

	"github.com/plus3/pong/pong"
)

var (
	black = color.RGBA{0, 0, 0, 255}
	white = color.RGBA{255, 255, 255, 255}
	blue  = color.RGBA{0, 121, 241, 255}
	red   = color.RGBA{230, 41, 55, 255}
)

type drawCall struct {
	Op     string
	Rect   pong.Rect
	Center pong.Vec2
	Radius float32
	Color  color.Color
}

type recordingCanvas struct {
	calls []drawCall
}

func (c *recordingCanvas) Clear(clr color.Color) {
	c.calls = append(c.calls, drawCall{Op: "clear", Color: clr})
}

func (c *recordingCanvas) FillRect(r pong.Rect, clr color.Color) {
	c.calls = append(c.calls, drawCall{Op: "rect", Rect: r, Color: clr})
}

func (c *recordingCanvas) FillCircle(center pong.Vec2, radius float32, clr color.Color) {
	c.calls = append(c.calls, drawCall{Op: "circle", Center: center, Radius: radius, Color: clr})
}
