package interaction

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/piwi3910/ShapeBoard/internal/logger"
	"github.com/piwi3910/ShapeBoard/internal/model"
)

// DragSession ties a pointer-down to the shape being moved.
type DragSession struct {
	Target       *model.Shape
	LastPosition model.Point

	recorded bool
}

// Controller owns the placed shapes and mediates pointer input.
type Controller struct {
	surface   Surface
	scheduler Scheduler
	messages  model.Messages
	log       logger.Logger
	now       func() time.Time

	shapes  []*model.Shape // insertion order, first = bottom
	drag    *DragSession
	lastHit *model.Shape

	feedback     *FeedbackMessage
	generation   uint64
	dismissTimer Timer

	// OnBeforeChange, when set, is called with a short label before any
	// command or drag alters the shape layout.
	OnBeforeChange func(label string)
}

// Option configures a Controller.
type Option func(*Controller)

// WithMessages sets the feedback catalog. English is used otherwise.
func WithMessages(m model.Messages) Option {
	return func(c *Controller) { c.messages = m }
}

// WithLogger sets the logger.
func WithLogger(l logger.Logger) Option {
	return func(c *Controller) { c.log = l }
}

// WithClock overrides the timestamp source for messages.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// NewController creates a controller driving surface.
func NewController(surface Surface, scheduler Scheduler, opts ...Option) *Controller {
	c := &Controller{
		surface:   surface,
		scheduler: scheduler,
		messages:  model.MessagesFor(""),
		log:       logger.NewNop(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetMessages switches the feedback catalog for future messages.
func (c *Controller) SetMessages(m model.Messages) {
	c.messages = m
}

// PlaceShape adds s on top of the z-order at pos and attaches it to the surface.
func (c *Controller) PlaceShape(s *model.Shape, pos model.Point) {
	s.Position = pos
	c.shapes = append(c.shapes, s)
	c.surface.AttachShape(s)
	c.log.Debug("shape placed",
		logger.F("id", s.ID), logger.F("kind", s.Kind),
		logger.F("x", pos.X), logger.F("y", pos.Y))
}

// ClearShapes removes every shape and ends any drag in progress.
func (c *Controller) ClearShapes() {
	c.shapes = nil
	c.drag = nil
	c.lastHit = nil
	c.surface.RemoveAllShapes()
	c.log.Debug("shapes cleared")
}

// Shapes returns the registry in insertion order. The slice is a copy; the
// shapes are shared.
func (c *Controller) Shapes() []*model.Shape {
	out := make([]*model.Shape, len(c.shapes))
	copy(out, c.shapes)
	return out
}

// RemoveShape takes s off the board. It reports false when s is not placed.
func (c *Controller) RemoveShape(s *model.Shape) bool {
	for i, placed := range c.shapes {
		if placed != s {
			continue
		}
		c.notifyChange("Remove " + s.Kind.String())
		c.shapes = append(c.shapes[:i], c.shapes[i+1:]...)
		if c.drag != nil && c.drag.Target == s {
			c.drag = nil
		}
		if c.lastHit == s {
			c.lastHit = nil
		}
		c.surface.RemoveShape(s)
		c.log.Debug("shape removed", logger.F("id", s.ID), logger.F("kind", s.Kind))
		return true
	}
	return false
}

// LastHit returns the shape hit by the most recent press, or nil after a
// miss or once that shape is gone.
func (c *Controller) LastHit() *model.Shape {
	return c.lastHit
}

// Drag returns the active drag session, or nil.
func (c *Controller) Drag() *DragSession {
	return c.drag
}

// HitTest returns the first shape, in insertion order, whose bounding box
// contains p. Bottom shapes therefore win where shapes overlap.
func (c *Controller) HitTest(p model.Point) *model.Shape {
	for _, s := range c.shapes {
		if s.Contains(p) {
			return s
		}
	}
	return nil
}

// PointerDown hit-tests p, starts a drag on a hit, and always shows exactly
// one feedback message.
func (c *Controller) PointerDown(p model.Point) {
	target := c.HitTest(p)
	c.lastHit = target
	if target == nil {
		c.drag = nil
		c.emit(c.messages.Miss())
		return
	}

	c.drag = &DragSession{Target: target, LastPosition: p}
	c.log.Debug("drag started", logger.F("id", target.ID), logger.F("kind", target.Kind))
	c.emit(c.messages.Hit(target.Kind))
}

// PointerMove translates the dragged shape by the pointer delta, clamping it
// to the surface. Without an active drag it does nothing.
func (c *Controller) PointerMove(p model.Point) {
	if c.drag == nil {
		return
	}
	target := c.drag.Target
	proposed := target.Position.Add(p.Sub(c.drag.LastPosition))
	if !c.drag.recorded && proposed != target.Position {
		c.notifyChange("Move " + target.Kind.String())
		c.drag.recorded = true
	}
	target.Position = model.ClampPosition(proposed, target.Size(), c.surface.SurfaceSize())
	c.surface.MoveShape(target)
	c.drag.LastPosition = p
}

// PointerUp ends the active drag, if any.
func (c *Controller) PointerUp() {
	if c.drag != nil {
		c.log.Debug("drag ended", logger.F("id", c.drag.Target.ID))
	}
	c.drag = nil
}

// Draw clears the board and places one shape of kind at its center.
func (c *Controller) Draw(kind model.ShapeKind) error {
	s, err := model.NewShapeOfKind(kind)
	if err != nil {
		return fmt.Errorf("draw %s: %w", kind, err)
	}
	c.notifyChange("Draw " + kind.String())
	c.ClearShapes()
	c.PlaceShape(s, CenteredPosition(s.Size(), c.surface.SurfaceSize()))
	return nil
}

// Populate places one shape of every kind at a random position, keeping any
// shapes already on the board.
func (c *Controller) Populate(rng *rand.Rand) error {
	shapes := make([]*model.Shape, 0, len(model.AllKinds))
	for _, kind := range model.AllKinds {
		s, err := model.NewShapeOfKind(kind)
		if err != nil {
			return fmt.Errorf("populate: %w", err)
		}
		shapes = append(shapes, s)
	}

	surface := c.surface.SurfaceSize()
	for _, s := range shapes {
		c.PlaceShape(s, RandomPosition(s.Size(), surface, rng))
	}
	c.log.Info("board populated", logger.F("count", len(shapes)),
		logger.F("width", surface.Width), logger.F("height", surface.Height))
	return nil
}

// Scatter clears the board and repopulates it at random positions.
func (c *Controller) Scatter(rng *rand.Rand) error {
	c.notifyChange("Scatter")
	c.ClearShapes()
	return c.Populate(rng)
}

// Clear is the user-facing clear command: like ClearShapes but recorded.
func (c *Controller) Clear() {
	c.notifyChange("Clear")
	c.ClearShapes()
}

// Snapshot returns independent copies of the current shapes.
func (c *Controller) Snapshot() []*model.Shape {
	out := make([]*model.Shape, len(c.shapes))
	for i, s := range c.shapes {
		out[i] = s.Clone()
	}
	return out
}

// Restore replaces the board with copies of shapes, re-clamped to the
// current surface size.
func (c *Controller) Restore(shapes []*model.Shape) {
	c.ClearShapes()
	surface := c.surface.SurfaceSize()
	for _, s := range shapes {
		cp := s.Clone()
		c.PlaceShape(cp, model.ClampPosition(cp.Position, cp.Size(), surface))
	}
}

func (c *Controller) notifyChange(label string) {
	if c.OnBeforeChange != nil {
		c.OnBeforeChange(label)
	}
}
