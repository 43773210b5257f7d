// Package core holds the value types shared by games and front-ends: screen
// buffers, input frames, geometry and runtime configuration. Nothing here
// knows about Bubble Tea or any terminal.
package core

// Rect is an axis-aligned screen area. The right and bottom edges are exclusive.
type Rect struct {
	X, Y int
	W, H int
}

func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

func (r Rect) Right() int  { return r.X + r.W }
func (r Rect) Bottom() int { return r.Y + r.H }

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Centered returns a w×h rect centered on the point (cx, cy).
func Centered(cx, cy, w, h int) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// AlignCenter returns the x at which text of the given width starts when
// centered in r. It never returns a position left of r.X.
func (r Rect) AlignCenter(width int) int {
	return r.X + max(0, (r.W-width)/2)
}

// AlignRight returns the x at which text of the given width ends on r's right edge.
func (r Rect) AlignRight(width int) int {
	return max(r.X, r.Right()-width)
}
