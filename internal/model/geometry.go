package model

// Point is a coordinate in surface-local space (or shape-local space for outlines).
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Sub returns the delta from q to p.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Size is a width/height pair.
type Size struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// ClampAxis limits pos to [0, surface-extent]. When the surface is smaller
// than the extent the range collapses to 0.
func ClampAxis(pos, surface, extent float64) float64 {
	hi := surface - extent
	if hi < 0 {
		hi = 0
	}
	if pos < 0 {
		return 0
	}
	if pos > hi {
		return hi
	}
	return pos
}

// ClampPosition clamps each axis of pos independently so a box of the given
// size stays within the surface.
func ClampPosition(pos Point, size, surface Size) Point {
	return Point{
		X: ClampAxis(pos.X, surface.Width, size.Width),
		Y: ClampAxis(pos.Y, surface.Height, size.Height),
	}
}
