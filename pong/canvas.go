package pong

import "image/color"

var (
	backgroundColor = color.RGBA{0, 0, 0, 255}
	paddleColor     = color.RGBA{255, 255, 255, 255}
	ballColor       = color.RGBA{255, 255, 255, 255}
	// Fringe colours drawn under the ball, offset horizontally by FringeOffset.
	fringeRightColor = color.RGBA{0, 121, 241, 255}
	fringeLeftColor  = color.RGBA{230, 41, 55, 255}
)

// FringeOffset is how far the coloured fringe circles sit from the ball's centre.
const FringeOffset float32 = 0.2

// Canvas is the drawing surface a frame is rendered onto.
type Canvas interface {
	Clear(c color.Color)
	FillRect(r Rect, c color.Color)
	FillCircle(center Vec2, radius float32, c color.Color)
}
