// Package core provides fundamental types and utilities for the skyfall platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// The world keeps its own units (pixels, as the window host draws them) so gameplay
// The world keeps its own units (pixels in the original layout) so gameplay
// does not depend on the terminal size.
type Viewport struct {
	WorldW, WorldH float64
	Area           Rect // Screen region the world is drawn into
}

// NewViewport fits a world of the given size into area.
func NewViewport(worldW, worldH float64, area Rect) Viewport {
	return Viewport{WorldW: worldW, WorldH: worldH, Area: area}
}

// ToCell converts a world point to a screen cell.
func (v Viewport) ToCell(x, y float64) (int, int) {
	if v.WorldW <= 0 || v.WorldH <= 0 {
		return v.Area.X, v.Area.Y
	}
	cx := v.Area.X + int(math.Floor(x*float64(v.Area.W)/v.WorldW))
	cy := v.Area.Y + int(math.Floor(y*float64(v.Area.H)/v.WorldH))
	return cx, cy
}

// RectFor converts a world box given by its centre and size to screen cells.
// Every visible box covers at least one cell.
func (v Viewport) RectFor(cx, cy, w, h float64) Rect {
	x0, y0 := v.ToCell(cx-w/2, cy-h/2)
	x1, y1 := v.ToCell(cx+w/2, cy+h/2)
	return NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}

// Clip returns r limited to the viewport area.
func (v Viewport) Clip(r Rect) Rect {
	x0 := Clamp(r.X, v.Area.X, v.Area.Right())
	y0 := Clamp(r.Y, v.Area.Y, v.Area.Bottom())
	x1 := Clamp(r.Right(), v.Area.X, v.Area.Right())
	y1 := Clamp(r.Bottom(), v.Area.Y, v.Area.Bottom())
	return NewRect(x0, y0, x1-x0, y1-y0)
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
