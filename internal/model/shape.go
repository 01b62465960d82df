package model

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/google/uuid"
)

// ShapeKind identifies which figure a Shape is. It is set at construction
// and never inferred from the outline.
type ShapeKind int

const (
	Square ShapeKind = iota
	Pentagon
	Hexagon
	Octagon
)

// AllKinds lists every kind in startup placement order.
var AllKinds = []ShapeKind{Square, Pentagon, Hexagon, Octagon}

func (k ShapeKind) String() string {
	switch k {
	case Square:
		return "square"
	case Pentagon:
		return "pentagon"
	case Hexagon:
		return "hexagon"
	case Octagon:
		return "octagon"
	default:
		return fmt.Sprintf("ShapeKind(%d)", int(k))
	}
}

// Valid reports whether k is one of the known kinds.
func (k ShapeKind) Valid() bool {
	return k >= Square && k <= Octagon
}

// Construction errors.
var (
	ErrUnknownKind       = errors.New("unknown shape kind")
	ErrEmptyOutline      = errors.New("outline has no points")
	ErrTooFewPoints      = errors.New("outline needs at least 3 points")
	ErrDegenerateOutline = errors.New("outline has zero width or height")
	ErrNonFiniteOutline  = errors.New("outline contains a non-finite coordinate")
)

// Shape is a figure placed on the board.
type Shape struct {
	ID       string
	Kind     ShapeKind
	Outline  []Point // local coordinates, normalized so the extent starts at (0,0)
	Position Point   // top-left offset on the surface
	Fill     color.NRGBA

	size Size
}

// NewShape validates the outline and builds a Shape at the origin.
// The outline is copied and shifted so its bounding box starts at (0,0).
func NewShape(kind ShapeKind, outline []Point) (*Shape, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("new shape: %w: %d", ErrUnknownKind, int(kind))
	}
	if len(outline) == 0 {
		return nil, fmt.Errorf("new %s: %w", kind, ErrEmptyOutline)
	}
	if len(outline) < 3 {
		return nil, fmt.Errorf("new %s: %w (got %d)", kind, ErrTooFewPoints, len(outline))
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range outline {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			return nil, fmt.Errorf("new %s: %w", kind, ErrNonFiniteOutline)
		}
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	if maxX-minX <= 0 || maxY-minY <= 0 {
		return nil, fmt.Errorf("new %s: %w", kind, ErrDegenerateOutline)
	}

	pts := make([]Point, len(outline))
	for i, p := range outline {
		pts[i] = Point{X: p.X - minX, Y: p.Y - minY}
	}

	return &Shape{
		ID:      uuid.New().String(),
		Kind:    kind,
		Outline: pts,
		Fill:    KindColor(kind),
		size:    Size{Width: maxX - minX, Height: maxY - minY},
	}, nil
}

// NewShapeOfKind builds a shape from the built-in outline for kind.
func NewShapeOfKind(kind ShapeKind) (*Shape, error) {
	outline, ok := kindOutlines[kind]
	if !ok {
		return nil, fmt.Errorf("new shape: %w: %d", ErrUnknownKind, int(kind))
	}
	return NewShape(kind, outline)
}

// Size returns the bounding-box dimensions derived from the outline.
func (s *Shape) Size() Size {
	return s.size
}

// Bounds returns the surface-space bounding box.
func (s *Shape) Bounds() Rect {
	return Rect{X: s.Position.X, Y: s.Position.Y, Width: s.size.Width, Height: s.size.Height}
}

// Contains reports whether p (surface space) falls within the bounding box.
// This is intentionally not a silhouette test.
func (s *Shape) Contains(p Point) bool {
	return s.Bounds().Contains(p)
}

// Clone returns a copy that shares nothing mutable with s. The ID is kept.
func (s *Shape) Clone() *Shape {
	cp := *s
	cp.Outline = make([]Point, len(s.Outline))
	copy(cp.Outline, s.Outline)
	return &cp
}

var kindOutlines = map[ShapeKind][]Point{
	Square: {
		{0, 0}, {80, 0}, {80, 80}, {0, 80},
	},
	Pentagon: {
		{40, 0}, {80, 30}, {65, 80}, {15, 80}, {0, 30},
	},
	Hexagon: {
		{40, 0}, {80, 20}, {80, 60}, {40, 80}, {0, 60}, {0, 20},
	},
	Octagon: {
		{30, 0}, {50, 0}, {80, 30}, {80, 50}, {50, 80}, {30, 80}, {0, 50}, {0, 30},
	},
}

// KindColor returns the fill color used for a kind.
func KindColor(kind ShapeKind) color.NRGBA {
	switch kind {
	case Square:
		return color.NRGBA{R: 0, G: 0, B: 255, A: 255} // blue
	case Pentagon:
		return color.NRGBA{R: 0, G: 128, B: 0, A: 255} // green
	case Hexagon:
		return color.NRGBA{R: 255, G: 0, B: 0, A: 255} // red
	case Octagon:
		return color.NRGBA{R: 128, G: 0, B: 128, A: 255} // purple
	default:
		return color.NRGBA{R: 128, G: 128, B: 128, A: 255}
	}
}
