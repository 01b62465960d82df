package model

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShapeOfKind_AllKinds(t *testing.T) {
	wantPoints := map[ShapeKind]int{Square: 4, Pentagon: 5, Hexagon: 6, Octagon: 8}

	for _, kind := range AllKinds {
		s, err := NewShapeOfKind(kind)
		require.NoError(t, err, kind.String())
		assert.Equal(t, kind, s.Kind)
		assert.Len(t, s.Outline, wantPoints[kind], kind.String())
		assert.Equal(t, Size{Width: 80, Height: 80}, s.Size(), kind.String())
		assert.NotEmpty(t, s.ID)
		assert.Equal(t, KindColor(kind), s.Fill)
	}
}

func TestNewShape_UniqueIDs(t *testing.T) {
	a, err := NewShapeOfKind(Square)
	require.NoError(t, err)
	b, err := NewShapeOfKind(Square)
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestNewShape_RejectsBadOutlines(t *testing.T) {
	tests := []struct {
		name    string
		kind    ShapeKind
		outline []Point
		want    error
	}{
		{"empty", Square, nil, ErrEmptyOutline},
		{"two points", Pentagon, []Point{{0, 0}, {10, 10}}, ErrTooFewPoints},
		{"flat", Hexagon, []Point{{0, 0}, {10, 0}, {20, 0}}, ErrDegenerateOutline},
		{"nan", Octagon, []Point{{0, 0}, {math.NaN(), 5}, {5, 5}}, ErrNonFiniteOutline},
		{"unknown kind", ShapeKind(42), []Point{{0, 0}, {1, 0}, {1, 1}}, ErrUnknownKind},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewShape(tt.kind, tt.outline)
			assert.Nil(t, s)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestNewShape_NormalizesOutlineToOrigin(t *testing.T) {
	s, err := NewShape(Square, []Point{{10, 20}, {50, 20}, {50, 60}, {10, 60}})
	require.NoError(t, err)

	assert.Equal(t, Point{0, 0}, s.Outline[0])
	assert.Equal(t, Size{Width: 40, Height: 40}, s.Size())
}

func TestShapeContains_UsesBoundingBox(t *testing.T) {
	s, err := NewShapeOfKind(Pentagon)
	require.NoError(t, err)
	s.Position = Point{X: 100, Y: 100}

	// Top-left corner of the box lies outside the pentagon silhouette but
	// still counts as a hit.
	assert.True(t, s.Contains(Point{X: 101, Y: 101}))
	assert.True(t, s.Contains(Point{X: 180, Y: 180}), "edges are inclusive")
	assert.False(t, s.Contains(Point{X: 99, Y: 150}))
	assert.False(t, s.Contains(Point{X: 150, Y: 181}))
}

func TestShapeClone(t *testing.T) {
	s, err := NewShapeOfKind(Hexagon)
	require.NoError(t, err)
	s.Position = Point{X: 5, Y: 6}

	cp := s.Clone()
	cp.Outline[0] = Point{X: 99, Y: 99}
	cp.Position = Point{}

	assert.Equal(t, s.ID, cp.ID)
	assert.Equal(t, Point{X: 40, Y: 0}, s.Outline[0])
	assert.Equal(t, Point{X: 5, Y: 6}, s.Position)
	assert.Equal(t, s.Size(), cp.Size())
}

func TestShapeKindString(t *testing.T) {
	assert.Equal(t, "square", Square.String())
	assert.Equal(t, "octagon", Octagon.String())
	assert.Equal(t, "ShapeKind(9)", ShapeKind(9).String())
}

func TestClampAxis(t *testing.T) {
	assert.Equal(t, 0.0, ClampAxis(-5, 400, 80))
	assert.Equal(t, 320.0, ClampAxis(450, 400, 80))
	assert.Equal(t, 100.0, ClampAxis(100, 400, 80))
	// Surface smaller than shape collapses to 0.
	assert.Equal(t, 0.0, ClampAxis(30, 50, 80))
	assert.Equal(t, 0.0, ClampAxis(-30, 50, 80))
}

func TestMessagesFor(t *testing.T) {
	en := MessagesFor("")
	assert.Equal(t, "You hit the square", en.Hit(Square))
	assert.Equal(t, "Missed!", en.Miss())

	ru := MessagesFor("ru")
	assert.Equal(t, "Ты попал в пятиугольник", ru.Hit(Pentagon))
	assert.Equal(t, "Не попал!", ru.Miss())

	assert.Equal(t, "hexagon", MessagesFor("xx-unknown").Label(Hexagon))
}
