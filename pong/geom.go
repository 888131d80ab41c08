package pong

// Vec2 is a point or direction in screen space. Y grows downwards.
type Vec2 struct {
	X, Y float32
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Rect is an axis-aligned box anchored at its top-left corner.
type Rect struct {
	X, Y, W, H float32
}

// Left returns the x coordinate of the left edge.
func (r Rect) Left() float32 { return r.X }

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float32 { return r.X + r.W }

// Top returns the y coordinate of the top edge.
func (r Rect) Top() float32 { return r.Y }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float32 { return r.Y + r.H }

// Overlaps reports whether r and o share any point. Edges are inclusive, so boxes
// that only touch count as overlapping.
func (r Rect) Overlaps(o Rect) bool {
	return r.Left() <= o.Right() &&
		r.Right() >= o.Left() &&
		r.Top() <= o.Bottom() &&
		r.Bottom() >= o.Top()
}

// Screen is the logical playfield size.
type Screen struct {
	Width, Height float32
}

// Center returns the middle of the playfield.
func (s Screen) Center() Vec2 {
	return Vec2{X: s.Width / 2, Y: s.Height / 2}
}
