package page

import "time"

const (
	outlineTrail = 500 * time.Millisecond

	hoverScale     = 1.5
	outlineIdle    = 0.3
	outlineHovered = 0.5
)

// Cursor is the custom pointer: a dot pinned to the mouse and an outline
// that trails it.
type Cursor struct {
	DotX, DotY float64

	fromX, fromY float64
	outX, outY   float64
	moved        time.Time
	Hovering     bool
	Visible      bool
}

func NewCursor() Cursor {
	return Cursor{}
}

// Move places the dot at (x, y) and restarts the outline animation from
// wherever the outline currently is.
func (c *Cursor) Move(now time.Time, x, y float64) {
	if !c.Visible {
		c.Visible = true
		c.DotX, c.DotY = x, y
		c.fromX, c.fromY = x, y
		c.outX, c.outY = x, y
		c.moved = now
		return
	}
	c.Update(now)
	c.fromX, c.fromY = c.outX, c.outY
	c.DotX, c.DotY = x, y
	c.moved = now
}

// Update moves the outline along its 500ms trail.
func (c *Cursor) Update(now time.Time) {
	t := clamp01(float64(now.Sub(c.moved)) / float64(outlineTrail))
	c.outX = c.fromX + (c.DotX-c.fromX)*t
	c.outY = c.fromY + (c.DotY-c.fromY)*t
}

// Outline returns the outline position.
func (c *Cursor) Outline() (x, y float64) {
	return c.outX, c.outY
}

// Scale is the size multiplier of both cursor parts.
func (c *Cursor) Scale() float64 {
	if c.Hovering {
		return hoverScale
	}
	return 1
}

// OutlineOpacity is the alpha of the outline ring.
func (c *Cursor) OutlineOpacity() float64 {
	if c.Hovering {
		return outlineHovered
	}
	return outlineIdle
}
