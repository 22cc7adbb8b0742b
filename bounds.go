package selection

import (
	"image"
	"math"
)

// Bounds is the rectangle of canvas space occupied by selection content.
// A zero-area Bounds denotes "no selection".
type Bounds struct {
	X, Y          float64
	Width, Height float64
}

// NewBounds creates a Bounds from position and size.
func NewBounds(x, y, w, h float64) Bounds {
	return Bounds{X: x, Y: y, Width: w, Height: h}
}

// Empty reports whether the bounds cover zero area.
func (b Bounds) Empty() bool {
	return b.Width <= 0 || b.Height <= 0
}

// MaxX returns the right edge (exclusive).
func (b Bounds) MaxX() float64 { return b.X + b.Width }

// MaxY returns the bottom edge (exclusive).
func (b Bounds) MaxY() float64 { return b.Y + b.Height }

// Union returns the bounding box of both rectangles.
// An empty operand does not contribute.
func (b Bounds) Union(o Bounds) Bounds {
	if b.Empty() {
		return o
	}
	if o.Empty() {
		return b
	}
	x0 := math.Min(b.X, o.X)
	y0 := math.Min(b.Y, o.Y)
	x1 := math.Max(b.MaxX(), o.MaxX())
	y1 := math.Max(b.MaxY(), o.MaxY())
	return Bounds{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Intersect returns the intersection of both rectangles, clamped to the
// zero Bounds when they are disjoint or either operand is empty.
func (b Bounds) Intersect(o Bounds) Bounds {
	if b.Empty() || o.Empty() {
		return Bounds{}
	}
	x0 := math.Max(b.X, o.X)
	y0 := math.Max(b.Y, o.Y)
	x1 := math.Min(b.MaxX(), o.MaxX())
	y1 := math.Min(b.MaxY(), o.MaxY())
	if x1 <= x0 || y1 <= y0 {
		return Bounds{}
	}
	return Bounds{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Translate returns the bounds shifted by (dx, dy).
func (b Bounds) Translate(dx, dy float64) Bounds {
	return Bounds{X: b.X + dx, Y: b.Y + dy, Width: b.Width, Height: b.Height}
}

// Rect returns the smallest integer-aligned image.Rectangle covering b.
func (b Bounds) Rect() image.Rectangle {
	if b.Empty() {
		return image.Rectangle{}
	}
	return image.Rect(
		int(math.Floor(b.X)),
		int(math.Floor(b.Y)),
		int(math.Ceil(b.MaxX())),
		int(math.Ceil(b.MaxY())),
	)
}
